package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"kamenpro-backend/config"
	"kamenpro-backend/internal/catalog"
	"kamenpro-backend/internal/domain"
	"kamenpro-backend/internal/repository/file"
	"kamenpro-backend/internal/repository/postgres"
	"kamenpro-backend/internal/usecase"
	"kamenpro-backend/pkg/database"
	"kamenpro-backend/pkg/logger"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Output       string        `short:"o" help:"Path of the sitemap to write" default:"${output}"`
	BaseURL      string        `help:"Public site URL used for every <loc>" default:"${base_url}"`
	Source       string        `short:"s" help:"Product source (auto, postgres, file, none)" enum:"auto,postgres,file,none" default:"auto"`
	ProductsFile string        `help:"YAML product list for --source=file" default:"${products_file}"`
	DatabaseURL  string        `help:"Postgres connection string for --source=postgres" default:"${database_url}"`
	Date         string        `help:"Build date (YYYY-MM-DD) written as lastmod; defaults to today"`
	Timeout      time.Duration `help:"Time allowed for the product query" default:"20s"`
	Verbose      bool          `short:"v" help:"Enable verbose logging"`
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var cli CLI
	kong.Parse(&cli,
		kong.Name("sitemap"),
		kong.Description("Generate public/sitemap.xml for the KamenPro website."),
		kong.Vars{
			"output":        cfg.SitemapOutput,
			"base_url":      cfg.SiteBaseURL,
			"products_file": cfg.ProductsFile,
			"database_url":  cfg.DBUrl,
		},
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger.InitText(level)

	if err := run(context.Background(), &cli); err != nil {
		logger.Log.Error("Sitemap generation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cli *CLI) error {
	today := time.Now()
	if cli.Date != "" {
		d, err := time.Parse(time.DateOnly, cli.Date)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", cli.Date, err)
		}
		today = d
	}

	ctx, cancel := context.WithTimeout(ctx, cli.Timeout)
	defer cancel()

	source, closeSource := openSource(ctx, cli)
	defer closeSource()

	locations, err := catalog.Locations()
	if err != nil {
		return err
	}

	uc := usecase.NewSitemapUsecase(cli.BaseURL, locations, source)
	res, err := uc.Publish(ctx, today, cli.Output)
	if err != nil {
		return err
	}

	fmt.Printf("sitemap: wrote %d URLs to %s (%s)\n", len(res.Entries), cli.Output, res.Source)
	return nil
}

// unavailableSource reports why a configured source could not be opened, so
// the generator falls back and logs the real cause.
type unavailableSource struct {
	name string
	err  error
}

func (s unavailableSource) ListProductPages(context.Context) ([]domain.ProductPage, error) {
	return nil, s.err
}

func (s unavailableSource) Name() string { return s.name }

// openSource picks the product source.
func openSource(ctx context.Context, cli *CLI) (domain.ProductSource, func()) {
	noop := func() {}

	kind := cli.Source
	if kind == "auto" {
		switch {
		case cli.DatabaseURL != "":
			kind = "postgres"
		case cli.ProductsFile != "":
			kind = "file"
		default:
			kind = "none"
		}
	}
	logger.Log.Debug("Selected product source", "source", kind)

	switch kind {
	case "postgres":
		if cli.DatabaseURL == "" {
			return unavailableSource{name: kind, err: errors.New("DATABASE_URL is not set")}, noop
		}
		pool, err := database.NewPostgresConnection(ctx, cli.DatabaseURL)
		if err != nil {
			return unavailableSource{name: kind, err: fmt.Errorf("failed to connect to database: %w", err)}, noop
		}
		return postgres.NewProductRepository(pool), pool.Close
	case "file":
		return file.NewProductRepository(cli.ProductsFile), noop
	default:
		return nil, noop
	}
}
