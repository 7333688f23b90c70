// Package visuals turns a seed hex string into a raster image. Four styles
// are available; every one of them derives its parameters from the seed up
// front and then fills the raster without touching the seed again, so a
// given (seed, dimensions, options) triple always produces the same pixels.
package visuals

import (
	"errors"
	"image"
	"sort"

	"github.com/randomfusion/sdk/utils"
	"golang.org/x/exp/maps"
)

type Style string

const (
	ColorBlocksStyle Style = "blocks"
	CirclesStyle     Style = "circles"
	NoiseScapeStyle  Style = "noisescape"
	MandelbrotStyle  Style = "mandelbrot"
)

// Options carries the caller tunable knobs. GridSize only applies to the
// blocks style; NumCircles and BaseStroke are the circle style fallbacks
// used when the seed fails to parse.
type Options struct {
	Width      int
	Height     int
	GridSize   int
	NumCircles int
	BaseStroke int
}

func DefaultOptions() Options {
	return Options{
		Width:      256,
		Height:     256,
		GridSize:   8,
		NumCircles: 10,
		BaseStroke: 2,
	}
}

var generators = map[Style]func(string, Options) (*image.RGBA, error){
	ColorBlocksStyle: func(s string, o Options) (*image.RGBA, error) {
		return ColorBlocks(s, o.Width, o.Height, o.GridSize)
	},
	CirclesStyle: func(s string, o Options) (*image.RGBA, error) {
		return ConcentricCircles(s, o.Width, o.Height, o.NumCircles, o.BaseStroke)
	},
	NoiseScapeStyle: func(s string, o Options) (*image.RGBA, error) {
		return NoiseScape(s, o.Width, o.Height)
	},
	MandelbrotStyle: func(s string, o Options) (*image.RGBA, error) {
		return Mandelbrot(s, o.Width, o.Height)
	},
}

// Generate dispatches to the named style.
func Generate(style Style, seedHex string, opts Options) (*image.RGBA, error) {
	gen, ok := generators[style]
	if !ok {
		return nil, errors.New(utils.ErrorUnknownStyle)
	}
	return gen(seedHex, opts)
}

// Styles lists the known styles in a stable order.
func Styles() []Style {
	styles := maps.Keys(generators)
	sort.Slice(styles, func(i, j int) bool { return styles[i] < styles[j] })
	return styles
}
