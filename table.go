package overpunch

// SignDigit is the meaning of a terminal overpunch character.
type SignDigit struct {
	Negative bool
	Digit    uint8
}

// Overpunch characters indexed by digit.
var (
	positive = [10]byte{'{', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I'}
	negative = [10]byte{'}', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R'}
)

type entry struct {
	SignDigit
	ok bool
}

// terminal maps every byte that may appear in the last position of a field.
// Plain digits are accepted there and read as positive.
var terminal = func() (t [256]entry) {
	for d := uint8(0); d < 10; d++ {
		t['0'+d] = entry{SignDigit{Digit: d}, true}
		t[positive[d]] = entry{SignDigit{Digit: d}, true}
		t[negative[d]] = entry{SignDigit{Negative: true, Digit: d}, true}
	}

	return t
}()

// Lookup returns the sign and digit encoded by the terminal character c.
func Lookup(c byte) (sd SignDigit, ok bool) {
	e := terminal[c]

	return e.SignDigit, e.ok
}

// Punch returns the overpunch character for the given sign and digit. ok is
// false if digit is greater than 9.
func Punch(neg bool, digit uint8) (c byte, ok bool) {
	if digit > 9 {
		return 0, false
	}

	if neg {
		return negative[digit], true
	}

	return positive[digit], true
}

// Characters returns the 20 overpunch characters, positive zero through nine
// followed by negative zero through nine.
func Characters() []byte {
	cs := make([]byte, 0, len(positive)+len(negative))
	cs = append(cs, positive[:]...)
	cs = append(cs, negative[:]...)

	return cs
}
