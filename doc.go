// Package overpunch converts between exact decimals and the signed overpunch
// (zoned decimal) text fields found in mainframe and COBOL records.
//
// A signed overpunch field is a run of ASCII digits where the final digit is
// replaced by a character carrying both the sign of the number and the value
// of that digit. The decimal point is implied by the field's picture clause and
// never appears in the text.
//
// # Terminal Characters
//
//	| Digit | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 | 8 | 9 |
//	|-------|---|---|---|---|---|---|---|---|---|---|
//	| +     | { | A | B | C | D | E | F | G | H | I |
//	| -     | } | J | K | L | M | N | O | P | Q | R |
//	|-------|---|---|---|---|---|---|---|---|---|---|
//
// A plain digit in the final position is read as positive. Every other
// position must hold a plain digit.
//
// # Implied Decimal Point
//
// The picture s9(7)v99 has two digits after the v marker, so the field 2258{
// holds 225.80:
//
//	2 2 5 8 {
//	|-----|---|
//	 225 . 80
//
// Fields shorter than the number of decimal places plus one are read with
// leading zeros. The field N with two decimal places is -0.05.
//
// Encoding rounds half away from zero to the number of decimal places and pads
// with leading zeros so that at least one integer digit is present:
//
//	| Value    | Picture    | Field  |
//	|----------|------------|--------|
//	| 225.8    | s9(7)v99   | 2258{  |
//	| 1234.5678| s9(9)v99   | 12345G |
//	| -12.3451 | s9(7)v9999 | 12345J |
//	| 0.004    | s9(9)v99   | 00{    |
//	| -0.008   | s9(9)v99   | 00J    |
//	|----------|------------|--------|
//
// # Errors
//
// Decode and Encode return errors of class Error. Callers that only care
// whether a conversion succeeded can use DecodePicture and EncodePicture,
// which report a boolean instead.
//
// # Negative Zero
//
// The decimal type has no negative zero. The field } decodes to 0, and a
// negative value that rounds to zero encodes with the } character.
package overpunch
