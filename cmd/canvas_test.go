package cmd

import (
	"image/color"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mkadlec/pagegrid/internal/config"
	"github.com/mkadlec/pagegrid/internal/layout"
)

func canvasTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addCanvasFlags(cmd)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parsing flags %v: %v", args, err)
	}
	return cmd
}

func TestSpecFromFlagsDefaults(t *testing.T) {
	spec, err := specFromFlags(canvasTestCmd(t), config.Load())
	if err != nil {
		t.Fatalf("specFromFlags() error = %v", err)
	}
	if spec.Width != 1920 || spec.Height != 1080 {
		t.Errorf("canvas = %dx%d, want 1920x1080", spec.Width, spec.Height)
	}
	if spec.Mode != layout.Horizontal || spec.Splits != 3 || spec.Gap != 0 {
		t.Errorf("unexpected defaults: %+v", spec)
	}
	if spec.Background != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background = %v, want white", spec.Background)
	}
}

func TestSpecFromFlagsPreset(t *testing.T) {
	cmd := canvasTestCmd(t, "--preset", "story", "--layout", "vertical", "--splits", "2", "--gap", "12")
	spec, err := specFromFlags(cmd, config.Load())
	if err != nil {
		t.Fatalf("specFromFlags() error = %v", err)
	}
	if spec.Width != 1080 || spec.Height != 1920 {
		t.Errorf("canvas = %dx%d, want story preset 1080x1920", spec.Width, spec.Height)
	}
	if spec.Mode != layout.Vertical || spec.Splits != 2 || spec.Gap != 12 {
		t.Errorf("flags not applied: %+v", spec)
	}
}

func TestSpecFromFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown preset", []string{"--preset", "betamax"}},
		{"bad layout", []string{"--layout", "diagonal"}},
		{"zero splits", []string{"--splits", "0"}},
		{"bad background", []string{"--bg", "300,0,0"}},
		{"short canvas", []string{"--canvas", "1920"}},
		{"bad tolerance", []string{"--tolerance", "1.5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := specFromFlags(canvasTestCmd(t, tt.args...), config.Load()); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
