// Package controller orchestrates one render: cache lookup, generation,
// PNG encoding and file output, with lifecycle events flowing through the
// configured emitter.
package controller

import (
	"bytes"
	"context"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/randomfusion/sdk/cache"
	"github.com/randomfusion/sdk/emitter"
	"github.com/randomfusion/sdk/notification"
	"github.com/randomfusion/sdk/visuals"
)

type RenderRequest struct {
	Id    uuid.UUID
	Seed  string
	Style visuals.Style
	Opts  visuals.Options
}

func NewRenderRequest(seedHex string, style visuals.Style, opts visuals.Options) RenderRequest {
	return RenderRequest{
		Id:    uuid.New(),
		Seed:  seedHex,
		Style: style,
		Opts:  opts,
	}
}

type Controller struct {
	logger  *log.Logger
	emitter emitter.Emitter
	cache   *cache.Cache
}

// New builds a controller. store may be nil, in which case every render is
// computed fresh.
func New(em emitter.Emitter, store *cache.Cache, logger *log.Logger) *Controller {
	return &Controller{
		logger:  logger,
		emitter: em,
		cache:   store,
	}
}

// Render produces the encoded PNG for one request, consulting the cache
// first. Cached and fresh results are byte identical because the
// generators are deterministic.
func (c *Controller) Render(ctx context.Context, req RenderRequest) ([]byte, error) {
	if err := c.emitter.Emit(ctx, emitter.RenderStarted, req); err != nil {
		c.logger.Println("error emitting ", err)
	}
	key := cache.Key(req.Seed, req.Style, req.Opts)
	if c.cache != nil {
		data, ok, err := c.cache.Get(key)
		if err != nil {
			c.logger.Println("cache lookup failed ", err)
		} else if ok {
			if err := c.emitter.Emit(ctx, emitter.RenderCacheHit, req); err != nil {
				c.logger.Println("error emitting ", err)
			}
			return data, nil
		}
	}

	img, err := visuals.Generate(req.Style, req.Seed, req.Opts)
	if err != nil {
		if emitErr := c.emitter.Emit(ctx, emitter.RenderFailed, req); emitErr != nil {
			c.logger.Println("error emitting ", emitErr)
		}
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		if emitErr := c.emitter.Emit(ctx, emitter.RenderFailed, req); emitErr != nil {
			c.logger.Println("error emitting ", emitErr)
		}
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Put(key, buf.Bytes()); err != nil {
			c.logger.Println("cache store failed ", err)
		}
	}
	if err := c.emitter.Emit(ctx, emitter.RenderCompleted, req); err != nil {
		c.logger.Println("error emitting ", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes encoded image data to path through the progress writer
// so UIs can follow along.
func (c *Controller) WriteFile(ctx context.Context, data []byte, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return notification.CopyWithProgress(ctx, f, bytes.NewReader(data), int64(len(data)), filepath.Base(path), c.emitter, c.logger)
}
