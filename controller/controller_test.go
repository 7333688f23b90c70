package controller

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/randomfusion/sdk/cache"
	"github.com/randomfusion/sdk/emitter"
	"github.com/randomfusion/sdk/utils"
	"github.com/randomfusion/sdk/visuals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallOpts() visuals.Options {
	opts := visuals.DefaultOptions()
	opts.Width, opts.Height = 16, 16
	return opts
}

func TestRenderProducesPNG(t *testing.T) {
	ctrl := New(&emitter.CollectingEmitter{}, nil, utils.NewTestLogger(t))
	req := NewRenderRequest(strings.Repeat("a", 64), visuals.ColorBlocksStyle, smallOpts())

	data, err := ctrl.Render(context.Background(), req)
	require.Nil(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.Nil(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}

func TestRenderDeterministicWithoutCache(t *testing.T) {
	ctrl := New(&emitter.CollectingEmitter{}, nil, utils.NewTestLogger(t))
	seedHex := strings.Repeat("abcdef1234567890", 4)

	data1, err := ctrl.Render(context.Background(), NewRenderRequest(seedHex, visuals.MandelbrotStyle, smallOpts()))
	require.Nil(t, err)
	data2, err := ctrl.Render(context.Background(), NewRenderRequest(seedHex, visuals.MandelbrotStyle, smallOpts()))
	require.Nil(t, err)
	assert.Equal(t, data1, data2, "fresh renders of the same request must be byte identical")
}

func TestRenderUsesCacheOnSecondCall(t *testing.T) {
	logger := utils.NewTestLogger(t)
	store, err := cache.New(filepath.Join(t.TempDir(), "renders.db"), logger)
	require.Nil(t, err)
	defer store.Close()

	events := &emitter.CollectingEmitter{}
	ctrl := New(events, store, logger)
	seedHex := strings.Repeat("c", 64)

	data1, err := ctrl.Render(context.Background(), NewRenderRequest(seedHex, visuals.NoiseScapeStyle, smallOpts()))
	require.Nil(t, err)
	assert.False(t, events.Seen(emitter.RenderCacheHit))
	assert.True(t, events.Seen(emitter.RenderCompleted))

	data2, err := ctrl.Render(context.Background(), NewRenderRequest(seedHex, visuals.NoiseScapeStyle, smallOpts()))
	require.Nil(t, err)
	assert.True(t, events.Seen(emitter.RenderCacheHit))
	assert.Equal(t, data1, data2)
}

func TestRenderFailureEmitsEvent(t *testing.T) {
	events := &emitter.CollectingEmitter{}
	ctrl := New(events, nil, utils.NewTestLogger(t))

	_, err := ctrl.Render(context.Background(), NewRenderRequest("", visuals.ColorBlocksStyle, smallOpts()))
	assert.NotNil(t, err)
	assert.True(t, events.Seen(emitter.RenderFailed))

	_, err = ctrl.Render(context.Background(), NewRenderRequest("abc", visuals.Style("sunset"), smallOpts()))
	assert.NotNil(t, err)
}

func TestWriteFile(t *testing.T) {
	events := &emitter.CollectingEmitter{}
	ctrl := New(events, nil, utils.NewTestLogger(t))
	req := NewRenderRequest(strings.Repeat("b", 64), visuals.CirclesStyle, smallOpts())

	data, err := ctrl.Render(context.Background(), req)
	require.Nil(t, err)

	path := filepath.Join(t.TempDir(), "out.png")
	require.Nil(t, ctrl.WriteFile(context.Background(), data, path))

	written, err := os.ReadFile(path)
	require.Nil(t, err)
	assert.Equal(t, data, written)
	assert.True(t, events.Seen(emitter.ProgressMessage))
}
