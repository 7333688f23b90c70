package visuals

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/randomfusion/sdk/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoiseScapeRuns(t *testing.T) {
	img, err := NoiseScape(strings.Repeat("c0ffee1234567890", 4), 32, 32)
	require.Nil(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestNoiseScapeEmptySeed(t *testing.T) {
	_, err := NoiseScape("", 24, 24)
	assert.NotNil(t, err)
}

func TestNoiseScapeDeterminism(t *testing.T) {
	seed1 := strings.Repeat("deadbeefcafebabe", 4)
	img1, err := NoiseScape(seed1, 24, 24)
	require.Nil(t, err)
	img2, err := NoiseScape(seed1, 24, 24)
	require.Nil(t, err)
	assert.True(t, bytes.Equal(img1.Pix, img2.Pix))

	img3, err := NoiseScape(strings.Repeat("1234567890abcdef", 4), 24, 24)
	require.Nil(t, err)
	assert.False(t, bytes.Equal(img1.Pix, img3.Pix))
}

func TestDeriveNoiseParamsBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		seedHex := faker.UUIDDigit()
		stream, err := seed.NewStream(seedHex)
		require.Nil(t, err)
		p := deriveNoiseParams(stream, seedHex)
		assert.GreaterOrEqual(t, p.scale, 30.0)
		assert.LessOrEqual(t, p.scale, 120.0)
		assert.GreaterOrEqual(t, p.octaves, 2)
		assert.LessOrEqual(t, p.octaves, 6)
		assert.GreaterOrEqual(t, p.persistence, 0.3)
		assert.LessOrEqual(t, p.persistence, 0.7)
		assert.GreaterOrEqual(t, p.lacunarity, 1.8)
		assert.LessOrEqual(t, p.lacunarity, 3.5)
		assert.GreaterOrEqual(t, p.base, 0)
		assert.Less(t, p.base, 256)
	}
}

func TestDeriveNoiseParamsBaseComesFromWholeSeed(t *testing.T) {
	// two seeds sharing a prefix derive the same mapped parameters but
	// must still get different lattice offsets
	a := "00112233445566778899aabbccddeeff"
	b := a[:len(a)-1] + "0"
	sa, _ := seed.NewStream(a)
	sb, _ := seed.NewStream(b)
	pa := deriveNoiseParams(sa, a)
	pb := deriveNoiseParams(sb, b)
	assert.Equal(t, pa.scale, pb.scale)
	assert.NotEqual(t, pa.base, pb.base)
}
