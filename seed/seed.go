package seed

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/randomfusion/sdk/utils"
)

// Stream hands out fixed length chunks of a seed hex string. The cursor
// only ever moves forward; the underlying character index wraps around the
// seed so any number of chunks can be requested. Each generator owns one
// stream for the duration of a single call.
type Stream struct {
	seed     string
	position int
}

func NewStream(seedHex string) (*Stream, error) {
	if seedHex == "" {
		return nil, errors.New(utils.ErrorEmptySeed)
	}
	return &Stream{seed: seedHex}, nil
}

// NextChunk returns the next `length` characters and advances the cursor.
func (s *Stream) NextChunk(length int) string {
	buf := make([]byte, length)
	for i := 0; i < length; i++ {
		buf[i] = s.seed[(s.position+i)%len(s.seed)]
	}
	s.position += length
	return string(buf)
}

// Position reports how many characters have been handed out so far.
func (s *Stream) Position() int {
	return s.position
}

// Digest is the lowercase hex SHA-256 of data. All deterministic fallbacks
// in the sdk are defined in terms of this digest.
func Digest(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// Extend grows a working string until it is at least minLength characters,
// appending the digest of the current (already extended) string each round.
// This is distinct from cursor wraparound: the extension produces fresh
// characters instead of cycling the old ones.
func Extend(working string, minLength int) string {
	for len(working) < minLength {
		working += Digest(working)
	}
	return working
}
