package inventory

import (
	"math/rand"
	"strings"
)

const (
	idLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idDigits  = "0123456789"
)

// newBookingID generates a candidate booking id like "BK-ABC123" (or
// "FL-123ABC" when digitsFirst is set). The letter/digit ordering is
// cosmetic; uniqueness is enforced against the store by the caller.
func newBookingID(prefix string, digitsFirst bool) string {
	letters := randomRun(idLetters, 3)
	digits := randomRun(idDigits, 3)

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('-')
	if digitsFirst {
		b.WriteString(digits)
		b.WriteString(letters)
	} else {
		b.WriteString(letters)
		b.WriteString(digits)
	}
	return b.String()
}

func randomRun(alphabet string, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(out)
}
