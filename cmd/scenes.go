package cmd

import (
	"bytes"

	"github.com/calderov/miniray/scene"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	for _, preset := range scene.Presets() {
		buf.WriteString("\n  ")
		buf.WriteString(preset.Name)
		buf.WriteString(" - ")
		buf.WriteString(preset.Description)
	}
	logger.Noticef("available scenes:%s", buf.String())

	return nil
}
