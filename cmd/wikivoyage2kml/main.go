package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jorgemira/wikivoyage2kml/internal/app"
	"github.com/jorgemira/wikivoyage2kml/internal/config"
	"github.com/jorgemira/wikivoyage2kml/internal/geocode"
	"github.com/jorgemira/wikivoyage2kml/internal/logger"
	"github.com/jorgemira/wikivoyage2kml/internal/wikivoyage"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"   env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	Language   string `short:"l" long:"language" env:"LANGUAGE"    description:"Language of the Wikivoyage article" default:"en"`
	OutputDir  string `short:"o" long:"output"   env:"OUTPUT_DIR"  description:"Directory for the output file" default:"."`
	KMZ        bool   `short:"z" long:"kmz"    description:"Save output in KMZ format"`
	Add        bool   `short:"a" long:"add"    description:"Add missing locations via geocoding and prompt"`
	Minify     bool   `short:"m" long:"minify" description:"Minify the generated document"`

	Args struct {
		Destination string `positional-arg-name:"destination" description:"Destination name"`
	} `positional-args:"true" required:"true"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	pipeline := &app.App{
		Fetcher:  wikivoyage.NewClient(cfg.WikiURL, cfg.UserAgent),
		Prompter: &app.StdinPrompter{In: os.Stdin, Out: os.Stderr},
		Styles:   cfg.Styles,
	}

	if opts.Add {
		provider, err := geocode.NewProvider(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create geocoding provider")
		}
		pipeline.Resolver = geocode.NewResolver(provider)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path, err := pipeline.Run(ctx, app.RunConfig{
		Destination: opts.Args.Destination,
		Language:    opts.Language,
		KMZ:         opts.KMZ,
		Add:         opts.Add,
		Minify:      opts.Minify,
		OutputDir:   opts.OutputDir,
	})
	if err != nil {
		log.Fatal().Err(err).Str("destination", opts.Args.Destination).Msg("Failed to create document")
	}

	log.Info().Str("path", path).Msg("Done")
}
