package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrRendererUnavailable is returned when none of the external renderers
// for a format are installed.
var ErrRendererUnavailable = errors.New("renderer unavailable")

// Rasterizer converts an HTML file into another format. width is the page
// width in CSS pixels; zero means the renderer default.
type Rasterizer interface {
	Rasterize(ctx context.Context, src, dst string, width int) error
}

// renderCommand is one external program able to produce the output.
type renderCommand struct {
	binary string
	args   func(src, dst string, width int) []string
}

// CommandRasterizer runs the first installed program from a list of
// candidates.
type CommandRasterizer struct {
	name     string
	commands []renderCommand
	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewPDFRasterizer renders PDF with pandoc, falling back to wkhtmltopdf.
func NewPDFRasterizer() *CommandRasterizer {
	return &CommandRasterizer{
		name: "PDF",
		commands: []renderCommand{
			{binary: "pandoc", args: func(src, dst string, _ int) []string {
				return []string{"-f", "html", "-o", dst, src}
			}},
			{binary: "wkhtmltopdf", args: func(src, dst string, _ int) []string {
				return []string{"--quiet", "--enable-local-file-access", src, dst}
			}},
		},
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

// NewPNGRasterizer renders PNG cards with wkhtmltoimage at the device width.
func NewPNGRasterizer() *CommandRasterizer {
	return &CommandRasterizer{
		name: "PNG",
		commands: []renderCommand{
			{binary: "wkhtmltoimage", args: func(src, dst string, width int) []string {
				args := []string{"--quiet", "--enable-local-file-access", "--format", "png"}
				if width > 0 {
					args = append(args, "--width", strconv.Itoa(width))
				}
				return append(args, src, dst)
			}},
		},
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

// Binaries lists the candidate programs in preference order.
func (r *CommandRasterizer) Binaries() []string {
	names := make([]string, 0, len(r.commands))
	for _, c := range r.commands {
		names = append(names, c.binary)
	}
	return names
}

// Rasterize runs the first available program. It returns an error wrapping
// ErrRendererUnavailable when none is installed.
func (r *CommandRasterizer) Rasterize(ctx context.Context, src, dst string, width int) error {
	for _, c := range r.commands {
		path, err := r.lookPath(c.binary)
		if err != nil {
			continue
		}
		log.Debug("rasterize", "format", r.name, "binary", path, "src", src, "dst", dst)
		output, err := r.run(ctx, path, c.args(src, dst, width)...)
		if err != nil {
			line := strings.TrimSpace(string(output))
			if line == "" {
				line = err.Error()
			}
			return fmt.Errorf("%s export with %s failed: %s", r.name, c.binary, line)
		}
		return nil
	}
	return fmt.Errorf("%w: install %s to enable %s export",
		ErrRendererUnavailable, strings.Join(r.Binaries(), " or "), r.name)
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.Bytes(), err
}
