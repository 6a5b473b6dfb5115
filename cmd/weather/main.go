// Command weather is an interactive terminal client: type a city name to see its
// weather, or "here" to use the configured device position.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"weather-lookup/app"
	"weather-lookup/datasource"
	"weather-lookup/lookup"
)

// options are the command line flags. Flags override configuration only when given.
type options struct {
	configFile string
	logLevel   string
	lat, lon   float64

	logLevelSet bool
	positionSet bool
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("weather", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.configFile, "config", "", "Path to YAML configuration file")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error), overrides log.level")
	fs.Float64Var(&opts.lat, "lat", 0, "Device latitude used by the 'here' command, overrides geolocation.lat")
	fs.Float64Var(&opts.lon, "lon", 0, "Device longitude used by the 'here' command, overrides geolocation.lon")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	var latSet, lonSet bool
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			opts.logLevelSet = true
		case "lat":
			latSet = true
		case "lon":
			lonSet = true
		}
	})
	if latSet != lonSet {
		return options{}, errors.New("-lat and -lon must be given together")
	}
	opts.positionSet = latSet && lonSet
	return opts, nil
}

// apply writes the flags that were given over cfg
func (o options) apply(cfg *datasource.Config) {
	if o.logLevelSet {
		cfg.Log.Level = o.logLevel
	}
	if o.positionSet {
		cfg.Geolocation.Lat = o.lat
		cfg.Geolocation.Lon = o.lon
		cfg.Geolocation.Fixed = true
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(2)
	}

	config, err := datasource.LoadConfig(opts.configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}
	opts.apply(config)
	app.SetupLogger(os.Stderr, config.Log.Level)

	client, err := app.NewClient(config, app.ConfiguredLocator(config))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	newREPL(lookup.NewSession(client), os.Stdout, os.Stderr).run(ctx, os.Stdin)
}
