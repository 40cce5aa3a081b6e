package screenx

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Xordas/ScreenX/db"
	"github.com/Xordas/ScreenX/model"
	"github.com/Xordas/ScreenX/preview"
	"github.com/Xordas/ScreenX/render"
	"github.com/Xordas/ScreenX/surface"
	"github.com/Xordas/ScreenX/telemetry"
	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	outPath       string
	demo          bool
	patchFile     string
	renderWidth   float64
	renderDensity float64
	frameCount    int
	frameInterval time.Duration
	pixelated     int
)

// fileHost writes every presented frame to its own PNG file.
type fileHost struct {
	paths   []string
	upscale int
	next    int
	saved   int
	written uint64
	bar     *progressbar.ProgressBar
}

func framePaths(out string, count int) []string {
	if count <= 1 {
		return []string{out}
	}

	ext := filepath.Ext(out)
	base := strings.TrimSuffix(out, ext)
	width := len(fmt.Sprint(count - 1))

	paths := make([]string, count)
	for i := range paths {
		paths[i] = fmt.Sprintf("%s-%0*d%s", base, width, i, ext)
	}

	return paths
}

func (h *fileHost) Present(frame image.Image) error {
	if h.next >= len(h.paths) {
		return fmt.Errorf("more frames than the %d requested", len(h.paths))
	}

	path := h.paths[h.next]
	h.next++

	img := frame
	if h.upscale > 1 {
		b := frame.Bounds()
		img = imaging.Resize(frame, b.Dx()*h.upscale, b.Dy()*h.upscale, imaging.NearestNeighbor)
	}

	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("could not write frame %s: %w", path, err)
	}

	h.saved++

	if info, err := os.Stat(path); err == nil {
		h.written += uint64(info.Size())
	}

	if err := h.bar.Add(1); err != nil {
		slog.ErrorContext(logCtx, "could not update progress bar", "error", err)
	}

	return nil
}

func loadPatch(path string) (model.Patch, error) {
	var patch model.Patch

	data, err := os.ReadFile(path)
	if err != nil {
		return patch, fmt.Errorf("could not read patch file: %w", err)
	}

	if err := json.Unmarshal(data, &patch); err != nil {
		return patch, fmt.Errorf("could not parse patch file %s: %w", path, err)
	}

	return patch, nil
}

// renderSource returns the demo values, or live defaults with the patch file applied.
func renderSource() (render.DataSource, error) {
	if demo {
		if patchFile != "" {
			return nil, errors.New("--demo and --patch cannot be combined")
		}

		return telemetry.NewDemoSource(), nil
	}

	live := telemetry.NewLiveSource()

	if patchFile != "" {
		patch, err := loadPatch(patchFile)
		if err != nil {
			return nil, err
		}

		live.Update(patch)
	}

	return live, nil
}

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the preview to PNG files",
	Long: `Render one or more frames of the preview to PNG files. Several frames show the
alert blinking; they are written as <out>-<n>.png.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if frameCount < 1 {
			return fmt.Errorf("--frames must be at least 1, got %d", frameCount)
		}

		var storage *db.SQLiteStorage
		if layoutFile == "" {
			storage = existingStorage()
		}

		if storage != nil {
			defer storage.Close()
		}

		l, err := startupLayout(layoutState(storage))
		if err != nil {
			return err
		}

		source, err := renderSource()
		if err != nil {
			return err
		}

		start := time.Now()
		host := &fileHost{
			paths:   framePaths(outPath, frameCount),
			upscale: pixelated,
			bar:     progressbar.Default(int64(frameCount), "Rendering frames"),
		}

		p := preview.New(host, preview.Config{
			Source:        source,
			Layout:        &l,
			SimulatorName: simulatorName,
			Bounds:        surface.Bounds{MinWidth: minWidth, MaxWidth: maxWidth},
			Clock:         func() time.Time { return start },
		})
		defer p.Close()

		size := p.Resize(renderWidth, renderDensity)

		for i := range frameCount {
			p.Tick(start.Add(time.Duration(i) * frameInterval))
		}

		if err := host.bar.Finish(); err != nil {
			slog.ErrorContext(logCtx, "could not finish progress bar", "error", err)
		}

		if host.saved != frameCount {
			return fmt.Errorf("only %d of %d frames were written", host.saved, frameCount)
		}

		slog.InfoContext(logCtx, "Rendered preview",
			"frames", frameCount,
			"width", size.BackingWidth,
			"height", size.BackingHeight,
			"written", humanize.Bytes(host.written),
			"first", host.paths[0])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&outPath, "out", "o", "preview.png", "Output PNG path")
	renderCmd.Flags().BoolVar(&demo, "demo", false, "Render the demo values instead of live defaults")
	renderCmd.Flags().StringVar(&patchFile, "patch", "", "JSON telemetry patch applied before rendering")
	renderCmd.Flags().Float64Var(&renderWidth, "width", 0, "Available width in pixels (0 uses the largest width)")
	renderCmd.Flags().Float64Var(&renderDensity, "density", 1, "Device pixel ratio")
	renderCmd.Flags().IntVar(&frameCount, "frames", 1, "Number of frames to render")
	renderCmd.Flags().DurationVar(&frameInterval, "frame-interval", render.BlinkPeriod, "Time between rendered frames")
	renderCmd.Flags().IntVar(&pixelated, "pixelated", 0, "Upscale every frame by this factor with nearest-neighbour sampling")

	addSizeFlags(renderCmd)
}
