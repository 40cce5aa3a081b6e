package screenx

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramePaths(t *testing.T) {
	tests := []struct {
		name  string
		out   string
		count int
		want  []string
	}{
		{"single frame keeps the name", "out/preview.png", 1, []string{"out/preview.png"}},
		{"numbered frames", "preview.png", 3, []string{"preview-0.png", "preview-1.png", "preview-2.png"}},
		{"padded numbers", "a.png", 11, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := framePaths(tt.out, tt.count)
			require.Len(t, got, tt.count)

			if tt.want != nil {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Equal(t, "a-00.png", got[0])
				assert.Equal(t, "a-10.png", got[10])
			}
		})
	}
}

func TestFileHostUpscales(t *testing.T) {
	dir := t.TempDir()
	host := &fileHost{
		paths:   framePaths(filepath.Join(dir, "frame.png"), 2),
		upscale: 3,
		bar:     progressbar.DefaultSilent(2),
	}

	frame := image.NewGray(image.Rect(0, 0, 8, 2))

	require.NoError(t, host.Present(frame))
	require.NoError(t, host.Present(frame))
	assert.Error(t, host.Present(frame))
	assert.Equal(t, 2, host.saved)

	img, err := imaging.Open(filepath.Join(dir, "frame-1.png"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 24, 6), img.Bounds())
	assert.Positive(t, host.written)
}

func TestLoadPatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"gear":"5","telemetryRunning":true}`), 0o600))

	patch, err := loadPatch(path)
	require.NoError(t, err)
	require.NotNil(t, patch.Gear)
	assert.Equal(t, "5", *patch.Gear)

	require.NoError(t, os.WriteFile(path, []byte(`{"gear":`), 0o600))

	_, err = loadPatch(path)
	assert.Error(t, err)
}
