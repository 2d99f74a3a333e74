package services

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.dev/internal/config"
)

func testBackgroundConfig() config.BackgroundConfig {
	return config.BackgroundConfig{
		Width:     320,
		Height:    200,
		MaxWidth:  640,
		MaxHeight: 480,
		FPS:       30,
		Stars:     20,
		Nebulae:   2,
		MaxFrames: 10,
	}
}

func TestBackgroundClampSize(t *testing.T) {
	svc := NewBackgroundService(testBackgroundConfig(), nil)

	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"defaults", 0, 0, 320, 200},
		{"negative", -5, -1, 320, 200},
		{"within", 100, 50, 100, 50},
		{"too large", 5000, 5000, 640, 480},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := svc.ClampSize(tc.w, tc.h)
			assert.Equal(t, tc.wantW, w)
			assert.Equal(t, tc.wantH, h)
		})
	}
}

func TestBackgroundSeed(t *testing.T) {
	cfg := testBackgroundConfig()
	svc := NewBackgroundService(cfg, nil)
	assert.Equal(t, uint64(7), svc.Seed(7))
	assert.NotZero(t, svc.Seed(0))

	cfg.Seed = 99
	svc = NewBackgroundService(cfg, nil)
	assert.Equal(t, uint64(99), svc.Seed(0))
	assert.Equal(t, uint64(7), svc.Seed(7))
}

func TestBackgroundPopulation(t *testing.T) {
	pop := NewBackgroundService(testBackgroundConfig(), nil).Population()
	assert.Equal(t, 20, pop.Stars)
	assert.Equal(t, 2, pop.Nebulae)
	assert.Equal(t, 3, pop.MaxShootingStars)
}

func TestBackgroundSnapshot(t *testing.T) {
	svc := NewBackgroundService(testBackgroundConfig(), nil)

	var first, second bytes.Buffer
	require.NoError(t, svc.Snapshot(context.Background(), &first, SnapshotRequest{Width: 80, Height: 60, Frames: 100, Seed: 3}))
	require.NoError(t, svc.Snapshot(context.Background(), &second, SnapshotRequest{Width: 80, Height: 60, Frames: 100, Seed: 3}))
	assert.Equal(t, first.Bytes(), second.Bytes(), "same seed renders the same image")

	img, err := png.Decode(&first)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestBackgroundSnapshotCancelled(t *testing.T) {
	cfg := testBackgroundConfig()
	cfg.MaxWidth, cfg.MaxHeight, cfg.MaxFrames = 3840, 2160, 600
	svc := NewBackgroundService(cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	start := time.Now()
	err := svc.Snapshot(ctx, &buf, SnapshotRequest{Width: 3840, Height: 2160, Frames: 600})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
	assert.Zero(t, buf.Len())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, clamp(0, 1, 10))
	assert.Equal(t, 10, clamp(11, 1, 10))
	assert.Equal(t, 5, clamp(5, 1, 10))
}
