package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/md-cards/internal/app"
	"github.com/treykane/md-cards/internal/config"
	"github.com/treykane/md-cards/internal/contrast"
	"github.com/treykane/md-cards/internal/export"
)

const usage = `usage:
  mdcards [file.md]
  mdcards export [-format html|card|pdf|png] [-theme NAME] [-device NAME] [-o DIR] file.md
  mdcards contrast BACKGROUND TEXT
  mdcards config [-init] [-reset-fonts]
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	var err error
	switch cmd {
	case "export":
		err = runExport(args[1:], stdout, stderr)
	case "contrast":
		err = runContrast(args[1:], stdout)
	case "config":
		err = runConfig(args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		err = runEditor(args)
	}
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func runEditor(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("expected at most one file, got %d\n%s", len(args), usage)
	}
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	m, err := app.New(app.Options{Config: cfg, Path: path})
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func runExport(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formatName := fs.String("format", string(export.FormatHTML), "export format: html, card, pdf, png")
	themeName := fs.String("theme", cfg.Theme, "card theme")
	deviceName := fs.String("device", cfg.Device, "card device width")
	outDir := fs.String("o", cfg.ExportDir, "output directory")
	author := fs.String("author", cfg.Author, "author shown on cards")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("export needs exactly one Markdown file\n%s", usage)
	}

	format, err := export.ParseFormat(*formatName)
	if err != nil {
		return err
	}
	theme, ok := export.LookupTheme(*themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q, using %s\n", *themeName, theme.Name)
	}
	device, ok := export.LookupDevice(*deviceName)
	if !ok {
		fmt.Fprintf(stderr, "unknown device %q, using %s\n", *deviceName, device.Name)
	}
	dir, err := config.ExpandHome(*outDir)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, app.ExportTimeout)
	defer cancel()

	exporter := export.NewExporter(export.NewConverter(), dir)
	path, err := exporter.Export(ctx, string(content), format, export.Options{
		Theme:  theme,
		Device: device,
		Author: *author,
		Style: export.Style{
			FontFamily: cfg.FontFamily,
			FontSize:   cfg.FontSize,
			FontWeight: cfg.FontWeight,
		},
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, path)
	return nil
}

func runContrast(args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("contrast needs a background and a text color\n%s", usage)
	}
	bg, ok := contrast.ParseColor(args[0])
	if !ok {
		return fmt.Errorf("invalid background color %q", args[0])
	}
	text, ok := contrast.ParseColor(args[1])
	if !ok {
		return fmt.Errorf("invalid text color %q", args[1])
	}

	ratio := contrast.ContrastRatio(bg, text)
	fmt.Fprintf(stdout, "ratio:      %.2f:1\n", ratio)
	fmt.Fprintf(stdout, "accessible: %t\n", contrast.IsAccessible(bg, text))
	adjusted := contrast.AdjustBackground(bg, text)
	fmt.Fprintf(stdout, "adjusted:   %s (%.2f:1)\n", adjusted.Hex(), contrast.ContrastRatio(adjusted, text))
	return nil
}

// runConfig prints the effective configuration. -init writes the defaults
// when no file exists yet; -reset-fonts restores the default font settings.
func runConfig(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(stderr)
	initFile := fs.Bool("init", false, "write the default config if none exists")
	resetFonts := fs.Bool("reset-fonts", false, "restore the default font settings")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	exists, err := config.Exists()
	if err != nil {
		return err
	}
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}

	switch {
	case *resetFonts:
		cfg = config.RestoreDefaults(cfg)
		if err := config.Save(cfg); err != nil {
			return err
		}
	case *initFile && !exists:
		if err := config.Save(cfg); err != nil {
			return err
		}
	case *initFile:
		fmt.Fprintf(stderr, "config already exists at %s\n", path)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "# %s\n%s\n", path, data)
	return nil
}
