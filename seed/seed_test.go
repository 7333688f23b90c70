package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStreamEmptySeed(t *testing.T) {
	_, err := NewStream("")
	assert.NotNil(t, err, "empty seed must be rejected")
}

func TestNextChunkSequential(t *testing.T) {
	s, err := NewStream("abcdef123456")
	require.Nil(t, err)
	assert.Equal(t, "abcdef", s.NextChunk(6))
	assert.Equal(t, "1234", s.NextChunk(4))
	assert.Equal(t, "56", s.NextChunk(2))
	assert.Equal(t, 12, s.Position())
}

func TestNextChunkWrapsAround(t *testing.T) {
	s, err := NewStream("abc")
	require.Nil(t, err)
	assert.Equal(t, "abcabca", s.NextChunk(7))
	// the cursor keeps counting past the seed length even though the
	// character index wrapped
	assert.Equal(t, 7, s.Position())
	assert.Equal(t, "bc", s.NextChunk(2))
}

func TestStreamsAreIndependent(t *testing.T) {
	s1, _ := NewStream("deadbeef")
	s2, _ := NewStream("deadbeef")
	s1.NextChunk(5)
	assert.Equal(t, "dead", s2.NextChunk(4), "a second stream must start from position zero")
}

func TestDigestShape(t *testing.T) {
	d := Digest("abc")
	assert.Len(t, d, 64)
	assert.Equal(t, strings.ToLower(d), d)
	assert.Equal(t, d, Digest("abc"), "digest must be deterministic")
}

func TestExtendDeterministic(t *testing.T) {
	a := Extend("abc", 200)
	b := Extend("abc", 200)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, len(a), 200)
	assert.True(t, strings.HasPrefix(a, "abc"), "extension appends, never rewrites")
}

func TestExtendUsesCurrentWorkingString(t *testing.T) {
	// each round must digest the already-extended string, not the original
	first := "abc" + Digest("abc")
	expected := first + Digest(first)
	assert.Equal(t, expected, Extend("abc", len(first)+1))
}

func TestExtendLongEnoughSeedUntouched(t *testing.T) {
	seed := strings.Repeat("a", 64)
	assert.Equal(t, seed, Extend(seed, 64))
}

func TestMapToRangeEndpoints(t *testing.T) {
	assert.Equal(t, 10.0, MapToRange("00", 10, 20, false))
	assert.Equal(t, 20.0, MapToRange("ff", 10, 20, false))
	assert.Equal(t, 15.0, MapToRange("7f", 10, 20, true), "0x7f of 0xff rounds to the midpoint")
}

func TestMapToRangeMalformedChunk(t *testing.T) {
	// unparseable chunks count as zero
	assert.Equal(t, 5.0, MapToRange("zz", 5, 9, false))
	// an empty chunk maps to min
	assert.Equal(t, 5.0, MapToRange("", 5, 9, false))
}

func TestMapToRangeStaysInBounds(t *testing.T) {
	for _, chunk := range []string{"0", "8", "f", "00", "ff", "abcd", "ffff"} {
		v := MapToRange(chunk, 2, 6, true)
		assert.GreaterOrEqual(t, v, 2.0, "chunk %s", chunk)
		assert.LessOrEqual(t, v, 6.0, "chunk %s", chunk)
	}
}
