// Package picture reads the fractional digit count out of a COBOL picture
// clause.
//
// Only the implied decimal point marker is interpreted. Everything after the
// first 'v' counts as one fractional digit per byte:
//
//	s9(7)v99  -> 2
//	9(7)v999  -> 3
//	s9(7)     -> 0
//
// Repetition counts such as 9(2) after the marker are not expanded and the
// characters are not checked to be '9'.
package picture

import "strings"

// Marker is the implied decimal point.
const Marker = 'v'

// DecimalPlaces returns the number of fractional digits implied by picture.
// A picture without a marker describes an integer field.
func DecimalPlaces(picture string) int {
	i := strings.IndexByte(picture, Marker)
	if i < 0 {
		return 0
	}

	return len(picture) - i - 1
}
