// Gallery tool: takes ssh key files or fingerprint strings and renders a
// grid where each input becomes a row of tiles, one per visual style plus a
// generative color canvas.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math/rand"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/jdxyw/generativeart"
	"github.com/jdxyw/generativeart/arts"
	"github.com/randomfusion/sdk/fingerprint"
	"github.com/randomfusion/sdk/seed"
	"github.com/randomfusion/sdk/visuals"
)

const tileSize = 256

// renderRow produces the tiles for one seed: the four procedural styles in
// stable order, then the color canvas tile.
func renderRow(seedHex string) ([]*image.RGBA, error) {
	opts := visuals.DefaultOptions()
	opts.Width, opts.Height = tileSize, tileSize

	var tiles []*image.RGBA
	for _, style := range visuals.Styles() {
		img, err := visuals.Generate(style, seedHex, opts)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, img)
	}
	canvas, err := colorCanvasTile(seedHex)
	if err != nil {
		return nil, err
	}
	return append(tiles, canvas), nil
}

// colorCanvasTile drives a generativeart color canvas from the seed stream.
// generativeart draws with the global rand source, so it is reseeded from
// the seed digest to keep the tile reproducible.
func colorCanvasTile(seedHex string) (*image.RGBA, error) {
	stream, err := seed.NewStream(seedHex)
	if err != nil {
		return nil, err
	}
	background := visuals.HexToRGB(stream.NextChunk(6))
	var schema []color.RGBA
	for i := 0; i < 5; i++ {
		schema = append(schema, visuals.HexToRGB(stream.NextChunk(6)))
	}
	iterations := 100 + int(seed.MapToRange(stream.NextChunk(2), 0, 100, true))
	lineWidth := seed.MapToRange(stream.NextChunk(1), 0.1, 1.6, false)

	raw, _ := strconv.ParseUint(seed.Digest(seedHex)[:8], 16, 64)
	rand.Seed(int64(raw))

	c := generativeart.NewCanva(tileSize, tileSize)
	c.SetBackground(background)
	c.SetLineWidth(lineWidth)
	c.FillBackground()
	c.SetColorSchema(schema)
	c.SetIterations(iterations)
	c.Draw(arts.NewColorCanve(5))

	img := image.NewRGBA(image.Rect(0, 0, tileSize, tileSize))
	draw.Draw(img, img.Bounds(), c.Img(), image.Point{}, draw.Src)
	return img, nil
}

func composeGrid(rows [][]*image.RGBA) *image.RGBA {
	cols := len(rows[0])
	grid := image.NewRGBA(image.Rect(0, 0, cols*tileSize, len(rows)*tileSize))
	for r, row := range rows {
		for col, tile := range row {
			dst := image.Rect(col*tileSize, r*tileSize, (col+1)*tileSize, (r+1)*tileSize)
			draw.Draw(grid, dst, tile, image.Point{}, draw.Src)
		}
	}
	return grid
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: avatars <key-file-or-fingerprint> [...]")
		os.Exit(2)
	}
	logger := log.Default()

	var rows [][]*image.RGBA
	for _, input := range os.Args[1:] {
		fp, err := fingerprint.KeyData(input, logger)
		if err != nil {
			log.Fatalln(err)
		}
		row, err := renderRow(fingerprint.Remap(fp))
		if err != nil {
			log.Fatalln(err)
		}
		rows = append(rows, row)
	}

	name := fmt.Sprintf("gallery-%s.png", uuid.New())
	f, err := os.Create(name)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()
	if err := png.Encode(f, composeGrid(rows)); err != nil {
		log.Fatalln(err)
	}
	fmt.Println(name)
}
