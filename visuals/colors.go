package visuals

import (
	"encoding/hex"
	"image/color"
	"math"
	"strings"

	"github.com/randomfusion/sdk/seed"
)

// HexToRGB decodes a 6 character hex chunk (an optional leading # is
// stripped) into an opaque color. Malformed chunks fall back to the first
// six hex digits of the digest of the chunk as given, so the fallback is
// just as reproducible as the happy path.
func HexToRGB(chunk string) color.RGBA {
	trimmed := strings.TrimPrefix(chunk, "#")
	if len(trimmed) == 6 {
		if b, err := hex.DecodeString(trimmed); err == nil {
			return color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
		}
	}
	b, _ := hex.DecodeString(seed.Digest(chunk)[:6])
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: 0xff,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}
