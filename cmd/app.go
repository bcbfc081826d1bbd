// Package cmd implements the vwr command line tool, computing value-weighted
// returns from a folder of <ticker>.dat record files.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Environment variables providing the defaults of the global flags.
const (
	EnvDataDir  = "VWR_DATA_DIR"
	EnvCurrency = "VWR_CURRENCY"
	EnvVerbose  = "VWR_VERBOSE"
)

// Commands lists the subcommands of vwr.
var Commands = []subcommands.Command{
	&vwCmd{},
	&retsCmd{},
	&checkCmd{},
}

// Config holds the global options shared by all subcommands.
type Config struct {
	DataDir  string `validate:"required,dir"`
	Currency string `validate:"required,iso4217"`
	Verbose  bool
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	config Config
	stdout io.Writer = os.Stdout
)

// LoadEnv loads a .env file from the working directory, if any, into the environment.
func LoadEnv() error {
	err := godotenv.Load()
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// SetFlags registers the global flags on f. Defaults come from the environment,
// so LoadEnv must be called first.
func SetFlags(f *flag.FlagSet) {
	f.StringVar(&config.DataDir, "data", envOr(EnvDataDir, "data"), "Path to the folder of <ticker>.dat record files.")
	f.StringVar(&config.Currency, "currency", envOr(EnvCurrency, "USD"), "ISO 4217 currency used to display market values.")
	verbose, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	f.BoolVar(&config.Verbose, "v", verbose, "Verbose logging.")
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// validate checks the global configuration.
func (c Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// newLogger returns a development logger in verbose mode, and a warning level logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

// setup validates the configuration and creates the logger of a subcommand.
func setup() (*zap.Logger, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return newLogger(config.Verbose)
}
