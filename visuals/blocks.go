package visuals

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/randomfusion/sdk/seed"
	"github.com/randomfusion/sdk/utils"
)

// ColorBlocks partitions the raster into a gridSize x gridSize grid of
// solid colored blocks. The first six characters of the seed become the
// background; every block then consumes the next six characters of a color
// data string that is digest-extended until it can cover the whole grid.
// Remainder pixels at the right and bottom edges keep the background.
func ColorBlocks(seedHex string, width, height, gridSize int) (*image.RGBA, error) {
	if seedHex == "" {
		return nil, errors.New(utils.ErrorEmptySeed)
	}
	if gridSize <= 0 {
		return nil, errors.New(utils.ErrorGridSize)
	}

	bgHex := "101010"
	if len(seedHex) >= 6 {
		bgHex = seedHex[:6]
	}

	colorData := seed.Extend(seedHex, gridSize*gridSize*6)
	if len(seedHex) < 6 {
		// a too-short seed borrows its background from the extended string
		bgHex = colorData[:6]
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Bounds(), HexToRGB(bgHex))

	blockWidth := width / gridSize
	blockHeight := height / gridSize
	colorIdx := 6 // the first six characters were spent on the background
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			var blockHex string
			if colorIdx+6 <= len(colorData) {
				blockHex = colorData[colorIdx : colorIdx+6]
				colorIdx += 6
			} else {
				blockHex = seed.Digest(fmt.Sprintf("%s%d%d", seedHex, row, col))[:6]
			}
			x0 := col * blockWidth
			y0 := row * blockHeight
			fillRect(img, image.Rect(x0, y0, x0+blockWidth, y0+blockHeight), HexToRGB(blockHex))
		}
	}
	return img, nil
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}
