package booking

import (
	"crypto/rand"
	"time"
)

// Reference alphabet avoids characters that read ambiguously on a
// printed receipt (no 0/O, 1/I/L).
const refAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const refSuffixLen = 6

// NewReference builds a human-presentable, collision-resistant booking
// reference: a second-resolution timestamp plus a random suffix. One
// reference covers every reservation row of a multi-slot request.
func NewReference(now time.Time) string {
	buf := make([]byte, refSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is unrecoverable for reference generation;
		// fall back to the timestamp alone rather than a weak suffix.
		return "BK" + now.UTC().Format("20060102150405")
	}
	for i := range buf {
		buf[i] = refAlphabet[int(buf[i])%len(refAlphabet)]
	}
	return "BK" + now.UTC().Format("20060102150405") + "-" + string(buf)
}
