package cmd

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/calderov/miniray/bmp"
	"github.com/calderov/miniray/renderer"
	"github.com/calderov/miniray/scene"
	"github.com/calderov/miniray/tracer"
	"github.com/calderov/miniray/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame and save it as a bitmap file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := configFromFlags(ctx)
	if err != nil {
		return err
	}

	sceneName := ctx.String("scene")
	preset, exists := scene.Lookup(sceneName)
	if !exists {
		return fmt.Errorf("unknown scene %q; try the list-scenes command", sceneName)
	}

	r, err := renderer.NewDefault(preset.Build(), tracer.UniformScheduler(), cfg)
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q at %dx%d with %d samples/pixel", sceneName, cfg.FrameW, cfg.FrameH, cfg.SamplesPerPixel)
	frame, err := r.Render()
	if err != nil {
		return err
	}

	imgFile := ctx.String("out")
	start := time.Now()
	if err = bmp.Save(imgFile, frame.W, frame.H, frame.Pix); err != nil {
		return fmt.Errorf("could not save frame: %v", err)
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1000000)

	// Display stats
	displayFrameStats(r.Stats())

	return nil
}

// Build a camera configuration from the render command flags.
func configFromFlags(ctx *cli.Context) (tracer.CameraConfig, error) {
	cfg := renderer.DefaultConfig()
	cfg.FrameW = ctx.Int("width")
	cfg.FrameH = ctx.Int("height")
	cfg.SamplesPerPixel = ctx.Int("spp")
	cfg.MaxDepth = ctx.Int("num-bounces")
	cfg.Fov = ctx.Float64("fov")
	cfg.Aperture = ctx.Float64("aperture")
	cfg.FocusDist = ctx.Float64("focus-dist")
	cfg.Seed = ctx.Int64("seed")
	if threads := ctx.Int("threads"); threads > 0 {
		cfg.MaxThreads = threads
	}

	var err error
	if cfg.Eye, err = parseVec3(ctx.String("eye")); err != nil {
		return cfg, fmt.Errorf("invalid eye position: %v", err)
	}
	if cfg.LookAt, err = parseVec3(ctx.String("look-at")); err != nil {
		return cfg, fmt.Errorf("invalid look-at position: %v", err)
	}
	if cfg.Up, err = parseVec3(ctx.String("up")); err != nil {
		return cfg, fmt.Errorf("invalid up vector: %v", err)
	}

	return cfg, nil
}

// Parse a comma-separated "x,y,z" vector argument.
func parseVec3(arg string) (types.Vec3, error) {
	fields := strings.Split(arg, ",")
	if len(fields) != 3 {
		return types.Vec3{}, fmt.Errorf("expected 3 comma-separated components; got %q", arg)
	}

	var out types.Vec3
	for idx, field := range fields {
		val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return types.Vec3{}, fmt.Errorf("component %d of %q is not a number", idx, arg)
		}
		out[idx] = val
	}

	return out, nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
