package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"course-forge/internal/config"
	"course-forge/internal/devutil"
	"course-forge/internal/export"
	"course-forge/internal/logging"
	"course-forge/internal/pipeline"
	"course-forge/internal/sftpclient"
	"course-forge/internal/topics"
)

type options struct {
	catalog string
	outPath string
	diff    bool
	upload  bool
	debug   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.catalog, "catalog", "", "YAML topic catalog (default: built-in table, or COURSEGEN_CATALOG)")
	flag.StringVar(&opts.outPath, "out", "", "export packages to this file (.xml, .csv, .yaml, .json; add .br to compress)")
	flag.BoolVar(&opts.diff, "diff", false, "print a unified diff against the existing -out file before writing")
	flag.BoolVar(&opts.upload, "upload", false, "upload the -out file to SFTP")
	flag.BoolVar(&opts.debug, "debug", false, "log selected fields of every package")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr).
		With().Str("run_id", uuid.NewString()).Logger()

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	err := run(ctx, opts, cfg, os.Stdout, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("course generation failed")
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("job finished")
}

func run(ctx context.Context, opts options, cfg config.Config, stdout io.Writer, log zerolog.Logger) error {
	if opts.upload && opts.outPath == "" {
		return errors.New("-upload needs -out")
	}

	if opts.debug {
		log = log.Level(zerolog.DebugLevel)
	}

	catalog := strings.TrimSpace(opts.catalog)
	if catalog == "" {
		catalog = strings.TrimSpace(cfg.CatalogPath)
	}

	gen := pipeline.New(sourceFor(catalog), cfg.GitHubToken, stdout, log)
	res, err := gen.Run(ctx)
	if err != nil {
		return err
	}
	log.Info().
		Int("packaged", len(res.Packages)).
		Strs("skipped", res.Skipped).
		Msg("pipeline done")

	if opts.debug {
		for _, p := range res.Packages {
			log.Debug().Fields(devutil.Pick(p,
				"course.title",
				"course.pricing_strategy.launch_price",
				"course.pricing_strategy.regular_price",
				"course.pricing_strategy.bundle_price",
				"revenue_projection.realistic",
				"launch_timeline",
			)).Msg("package")
		}
	}

	if opts.outPath == "" {
		return nil
	}

	if opts.diff {
		f, _, err := export.FormatFor(opts.outPath)
		if err != nil {
			return err
		}
		rendered, err := export.Render(f, res.Packages)
		if err != nil {
			return err
		}
		d, err := export.DiffCatalog(opts.outPath, rendered)
		if err != nil {
			return err
		}
		if d == "" {
			log.Info().Str("path", opts.outPath).Msg("catalog unchanged")
		} else if _, err := io.WriteString(stdout, d); err != nil {
			return err
		}
	}

	if _, err := export.WriteCatalogFile(opts.outPath, res.Packages); err != nil {
		return err
	}
	log.Info().Str("path", opts.outPath).Int("courses", len(res.Packages)).Msg("catalog written")

	if !opts.upload {
		return nil
	}

	upCfg := sftpclient.Config{
		Host:                  cfg.SFTPHost,
		Port:                  cfg.SFTPPort,
		User:                  cfg.SFTPUser,
		Pass:                  cfg.SFTPPass,
		RemoteDir:             cfg.SFTPDir,
		InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		KnownHostsPath:        cfg.SFTPKnownHosts,
	}

	upCtx, upCancel := context.WithTimeout(ctx, 5*time.Minute)
	defer upCancel()

	remoteName := filepath.Base(opts.outPath)
	if err := sftpclient.UploadFile(upCtx, upCfg, opts.outPath, remoteName); err != nil {
		return err
	}
	log.Info().Msgf("uploaded to sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, remoteName)
	return nil
}

func sourceFor(catalog string) topics.TopicSource {
	if catalog == "" {
		return topics.Static{}
	}
	return topics.File{Path: catalog}
}
