package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/randomfusion/sdk/cache"
	"github.com/randomfusion/sdk/config"
	"github.com/randomfusion/sdk/controller"
	"github.com/randomfusion/sdk/emitter"
	"github.com/randomfusion/sdk/fingerprint"
	"github.com/randomfusion/sdk/utils"
	"github.com/randomfusion/sdk/visuals"
)

func main() {
	key := flag.String("key", "", "path to an ssh public key file, or a fingerprint string (SHA256:... or MD5:...)")
	style := flag.String("style", "", "blocks, circles, noisescape or mandelbrot")
	width := flag.Int("width", 0, "image width, 0 uses the configured default")
	height := flag.Int("height", 0, "image height, 0 uses the configured default")
	gridSize := flag.Int("grid", 0, "grid size for the blocks style")
	numCircles := flag.Int("circles", 0, "fallback circle count for the circles style")
	baseStroke := flag.Int("stroke", 0, "fallback stroke width for the circles style")
	out := flag.String("out", "", "output png path, defaults to <style>-<id>.png in the output dir")
	noCache := flag.Bool("no-cache", false, "skip the render cache")
	flag.Parse()

	if *key == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not load config:", err)
		os.Exit(1)
	}
	logger, flush, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not build logger:", err)
		os.Exit(1)
	}
	defer flush()

	opts := cfg.Options()
	if *width > 0 {
		opts.Width = *width
	}
	if *height > 0 {
		opts.Height = *height
	}
	if *gridSize > 0 {
		opts.GridSize = *gridSize
	}
	if *numCircles > 0 {
		opts.NumCircles = *numCircles
	}
	if *baseStroke > 0 {
		opts.BaseStroke = *baseStroke
	}
	renderStyle := visuals.Style(cfg.Style)
	if *style != "" {
		renderStyle = visuals.Style(*style)
	}

	fp, err := fingerprint.KeyData(*key, logger)
	if err != nil {
		log.Fatalln(err)
	}
	seedHex := fingerprint.Remap(fp)
	logger.Println("fingerprint ", fp, " remapped to seed ", seedHex)

	var store *cache.Cache
	if !*noCache {
		store, err = cache.New(cfg.CachePath, logger)
		if err != nil {
			logger.Println("cache disabled: ", err)
		} else {
			defer store.Close()
		}
	}

	ctx := context.Background()
	ctrl := controller.New(emitter.LoggerEvent{Logger: logger}, store, logger)
	req := controller.NewRenderRequest(seedHex, renderStyle, opts)
	data, err := ctrl.Render(ctx, req)
	if err != nil {
		log.Fatalln(err)
	}

	outPath := *out
	if outPath == "" {
		outPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("%s-%s.png", renderStyle, req.Id))
	}
	if err := ctrl.WriteFile(ctx, data, outPath); err != nil {
		log.Fatalln(err)
	}
	fmt.Println(outPath)
}
