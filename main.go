package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/larsOhne/beautiful-LEITZ/config"
	"github.com/larsOhne/beautiful-LEITZ/layout"
	"github.com/larsOhne/beautiful-LEITZ/renderer"
	canvasrenderer "github.com/larsOhne/beautiful-LEITZ/renderer/canvas"
	"github.com/larsOhne/beautiful-LEITZ/renderer/markup"
	"github.com/larsOhne/beautiful-LEITZ/store"
)

func main() {
	configPath := flag.String("config", "data/label_config.yaml", "YAML style configuration (created with defaults if missing)")
	labelsPath := flag.String("labels", "data/binder_labels.csv", "CSV label records (created with samples if missing)")
	output := flag.String("out", "output/leitz_labels.pdf", "PDF output path")
	svgOut := flag.String("svg", "", "optional SVG sheet output path")
	debug := flag.String("debug", "", "optional layout debug JSON output path")
	flag.Parse()

	if err := run(*configPath, *labelsPath, *output, *svgOut, *debug); err != nil {
		log.Fatalf("label generation failed: %v", err)
	}
	fmt.Printf("generated %s\n", *output)
}

// run wires loading, layout and rendering together.
func run(configPath, labelsPath, outputPath, svgPath, debugPath string) error {
	cfg, err := config.Ensure(configPath)
	if err != nil {
		return err
	}
	records, err := store.Ensure(labelsPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no labels in %s; add some records first", labelsPath)
	}

	r := canvasrenderer.New(cfg)
	result, err := layout.Build(records, cfg, layout.BuildOptions{
		Measurer: r,
		Meta: layout.DocumentMeta{
			Title:   "LEITZ binder labels",
			Creator: "beautiful-LEITZ",
			Subject: "Binder spine labels",
		},
	})
	if err != nil {
		return fmt.Errorf("layout failed: %w", err)
	}

	if debugPath != "" {
		if err := writeDebug(result, debugPath); err != nil {
			return err
		}
	}

	if err := writeRendered(r, result, outputPath); err != nil {
		return err
	}
	if svgPath != "" {
		if err := writeRendered(markup.New(), result, svgPath); err != nil {
			return err
		}
	}
	return nil
}

func writeRendered(r renderer.Renderer, result *layout.Result, path string) error {
	data, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("create debug dir: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("write debug JSON: %w", err)
	}
	return nil
}
