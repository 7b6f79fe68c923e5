package main

import (
	"os"

	"github.com/woozymasta/shp2geojson/internal/config"
	"github.com/woozymasta/shp2geojson/internal/logger"
	"github.com/woozymasta/shp2geojson/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"SHP2GEOJSON_CONFIG" description:"Path to YAML configuration file"`
	Driver     string `short:"d" long:"driver" env:"SHP2GEOJSON_DRIVER" description:"Output driver (default: GeoJSON)"`

	Args struct {
		Input  string `positional-arg-name:"INPUT"  description:"Directory searched recursively for shapefiles (default: assets/shapefiles)"`
		Output string `positional-arg-name:"OUTPUT" description:"Directory receiving GeoJSON files (default: assets/geojsons)"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] [INPUT] [OUTPUT]"
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			log.Fatal().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load configuration")
		}
	}
	cfg.Override(opts.Args.Input, opts.Args.Output, opts.Driver)

	log.Info().
		Str("input", cfg.InputDir).
		Str("output", cfg.OutputDir).
		Str("driver", cfg.Driver).
		Msg("Starting conversion")

	converted, err := processor.ConvertShapefiles(cfg.InputDir, cfg.OutputDir, cfg.Driver)
	if err != nil {
		log.Fatal().
			Err(err).
			Int("converted", converted).
			Msg("Conversion failed")
	}

	log.Info().Int("converted", converted).Msg("Conversion finished successfully")
}
