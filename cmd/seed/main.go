// Package main provides the seed command-line tool that writes the bundled
// sample articles as a YAML input file for sitegen.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"noticias/internal/config"
	"noticias/internal/models"
)

var cli struct {
	Output string `short:"o" help:"Destination YAML file" default:"data/articles.yaml"`
	Force  bool   `help:"Overwrite an existing file"`
}

type document struct {
	Articles []models.RawArticle `yaml:"articles"`
}

func logInfo(msg string) {
	fmt.Printf("[SEEDER] %s\n", msg)
}

func main() {
	kong.Parse(&cli,
		kong.Name("seed"),
		kong.Description("Write the sample article set to "+config.DefaultInputPath+" or another path."),
	)

	if err := run(cli.Output, cli.Force); err != nil {
		fmt.Fprintf(os.Stderr, "[SEEDER] %v\n", err)
		os.Exit(1)
	}
}

func run(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := yaml.Marshal(document{Articles: samples})
	if err != nil {
		return fmt.Errorf("failed to marshal samples: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	logInfo(fmt.Sprintf("Wrote %d sample articles to %s", len(samples), path))

	return nil
}
