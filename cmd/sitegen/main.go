// Package main provides the sitegen command-line tool for building the
// article site, verifying signed pages, and printing author reports.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"noticias/internal/config"
	"noticias/internal/formatter"
	"noticias/internal/loader"
	"noticias/internal/logger"
	"noticias/internal/site"
	"noticias/pkg/metadata"
)

// CLI describes the command line.
var CLI struct {
	Config  string   `short:"c" help:"Configuration file path (optional)" type:"path"`
	Env     []string `help:"Dotenv files to load before reading the configuration" default:".env"`
	Verbose bool     `short:"v" help:"Enable debug logging"`

	Build struct {
		Input    string `short:"i" help:"Input file or directory"`
		Format   string `short:"f" help:"Input format (auto, yaml, markdown, feed)"`
		Output   string `short:"o" help:"Output directory for generated pages"`
		Keyword  string `short:"k" help:"Only list articles whose body contains this keyword on the index"`
		Initial  string `help:"Only list articles whose author surname starts with this letter on the index"`
		Markdown bool   `help:"Render article bodies as Markdown"`
		NoSign   bool   `help:"Do not append metadata blocks to pages"`
	} `cmd:"" help:"Generate index, summary and article pages"`

	Verify struct {
		Dir string `arg:"" optional:"" help:"Directory with generated pages (defaults to the configured output)"`
	} `cmd:"" help:"Check the metadata signature of every generated page"`

	Report struct {
		Input  string `short:"i" help:"Input file or directory"`
		Format string `short:"f" help:"Input format (auto, yaml, markdown, feed)"`
	} `cmd:"" help:"Print the author summary and rejection log without writing pages"`

	Init struct {
		Path  string `arg:"" optional:"" help:"Where to write the configuration" default:"configs/sitegen.yaml"`
		Force bool   `help:"Overwrite an existing configuration file"`
	} `cmd:"" help:"Write a configuration file with the default settings"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sitegen"),
		kong.Description("Static site generator for news articles."),
	)

	if err := config.LoadEnv(CLI.Env...); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	var err error

	switch ctx.Command() {
	case "build":
		err = runBuild()
	case "verify", "verify <dir>":
		err = runVerify()
	case "report":
		err = runReport()
	case "init", "init <path>":
		err = runInit(CLI.Init.Path, CLI.Init.Force)
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.LoadConfig(CLI.Config)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Logging.Level
	if CLI.Verbose {
		level = "debug"
	}

	return cfg, logger.NewLogger(level), nil
}

func applyInput(cfg *config.Config, input, format string) {
	if input != "" {
		cfg.Input.Path = input
	}

	if format != "" {
		cfg.Input.Format = format
	}
}

func newBuilder(cfg *config.Config, log *logger.Logger) (*site.Builder, error) {
	records, err := loader.Load(cfg.Input.Path, cfg.Input.Format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.Input.Path, err)
	}

	log.Info("records loaded", "path", cfg.Input.Path, "count", len(records))

	return site.New(records,
		site.WithPolicy(cfg.Policy()),
		site.WithOutputDir(cfg.Site.OutputDir),
		site.WithSiteTitle(cfg.Site.Title),
		site.WithMarkdownBody(cfg.Site.MarkdownBody),
		site.WithSigning(cfg.Site.SignPages),
		site.WithLogger(log),
	), nil
}

func runBuild() error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	applyInput(cfg, CLI.Build.Input, CLI.Build.Format)

	if CLI.Build.Output != "" {
		cfg.Site.OutputDir = CLI.Build.Output
	}

	if CLI.Build.Keyword != "" {
		cfg.Site.Keyword = CLI.Build.Keyword
	}

	if CLI.Build.Initial != "" {
		cfg.Site.Initial = CLI.Build.Initial
	}

	if CLI.Build.Markdown {
		cfg.Site.MarkdownBody = true
	}

	if CLI.Build.NoSign {
		cfg.Site.SignPages = false
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	log.Debug("configuration", "config", cfg.String())

	builder, err := newBuilder(cfg, log)
	if err != nil {
		return err
	}

	report, err := builder.Generate(site.Filter{Keyword: cfg.Site.Keyword, Initial: cfg.Site.Initial})
	if err != nil {
		var collision *site.CollisionError
		if errors.As(err, &collision) {
			return fmt.Errorf("rename the conflicting titles and try again: %w", err)
		}

		return err
	}

	printReport(builder)
	fmt.Printf("✅ %d pages written to %s (build %s)\n", len(report.Files), report.OutputDir, report.BuildID)

	return nil
}

func runReport() error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	applyInput(cfg, CLI.Report.Input, CLI.Report.Format)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	builder, err := newBuilder(cfg, log)
	if err != nil {
		return err
	}

	printReport(builder)

	return builder.CheckCollisions()
}

func printReport(builder *site.Builder) {
	fmt.Println("📊 Artículos por autor")
	fmt.Println(formatter.SummaryTable(builder.Summary()))

	if table := formatter.RejectionTable(builder.Rejections()); table != "" {
		fmt.Println()
		fmt.Println("⚠️  Registros rechazados")
		fmt.Println(table)
	}

	if skipped := builder.Skipped(); skipped > 0 {
		fmt.Printf("\n%d registros omitidos por campos vacíos\n", skipped)
	}
}

func runVerify() error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	dir := CLI.Verify.Dir
	if dir == "" {
		dir = cfg.Site.OutputDir
	}

	var checked, failed int

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".html") {
			return nil
		}

		checked++

		meta, verr := metadata.VerifyFile(path)
		if verr != nil {
			failed++
			fmt.Printf("❌ %v\n", verr)

			return nil
		}

		log.Debug("signature ok", "path", path, "build", meta.BuildID)

		return nil
	})
	if walkErr != nil {
		return walkErr
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed verification", failed, checked)
	}

	fmt.Printf("✅ %d pages verified in %s\n", checked, dir)

	return nil
}

func runInit(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	if err := config.Default().SaveConfig(path); err != nil {
		return err
	}

	fmt.Printf("✅ Configuration written to %s\n", path)

	return nil
}
