package order

import "crypto/rand"

// codeAlphabet omits easily confused characters (0/O, 1/I/L).
const codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const codeLength = 10

// NewOrderCode generates a random public order code. Codes are guessable in
// principle, which is why lookups by code enforce the enumeration-safety
// rule: unknown and inaccessible codes fail identically.
func NewOrderCode() string {
	buf := make([]byte, codeLength)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
