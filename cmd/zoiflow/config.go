package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ZOIFLOW"

// Config is the CLI configuration. Values are resolved by viper in order: flags, environment, config file, defaults
type Config struct {
	Input    string       `mapstructure:"input"`
	Out      string       `mapstructure:"out"`
	Depth    int          `mapstructure:"depth"`
	Format   string       `mapstructure:"format"`
	GeomF    string       `mapstructure:"geomf"`
	Series   bool         `mapstructure:"series"`
	Parallel bool         `mapstructure:"parallel"`
	Export   ExportConfig `mapstructure:"export"`
	Log      LogConfig    `mapstructure:"log"`
}

// ExportConfig tells which optional features are exported along with average paths
type ExportConfig struct {
	Fragments bool `mapstructure:"fragments"`
	Zones     bool `mapstructure:"zones"`
}

// LogConfig tells zerolog level and output format
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func (cfg *Config) String() string {
	return fmt.Sprintf(`
zoiflow parameters:
	input: '%s'
	out: '%s'
	depth: %d
	format: '%s'
	geomf: '%s'
	series: %t
	parallel: %t
	export fragments?: %t
	export zones?: %t
	`,
		cfg.Input,
		cfg.Out,
		cfg.Depth,
		cfg.Format,
		cfg.GeomF,
		cfg.Series,
		cfg.Parallel,
		cfg.Export.Fragments,
		cfg.Export.Zones,
	)
}

// addFlags registers every configuration key as a command line flag
func addFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Configuration file (YAML, TOML or JSON). Flags and ZOIFLOW_* environment variables take precedence")
	flags.String("input", "", "GeoJSON feature collection with one Polygon feature (zone of interest) and LineString/MultiLineString features (trajectories)")
	flags.String("out", "flows.geojson", "Output filename. In series mode depth is appended to the name: 'flows_depth0.geojson', 'flows_depth1.geojson', ...")
	flags.Int("depth", 3, "Depth of clustering tree. Number of leaves is 4^depth")
	flags.String("format", "geojson", "Output format. Expected values: geojson / csv")
	flags.String("geomf", "wkt", "Format of geometry column in CSV output. Expected values: wkt / geojson")
	flags.Bool("series", false, "Export one result per depth from 0 up to --depth")
	flags.Bool("parallel", false, "Split quadrants concurrently while building tree")
	flags.Bool("export.fragments", false, "Export raw clipped fragments of every leaf")
	flags.Bool("export.zones", false, "Export zone of every leaf")
	flags.String("log.level", "info", "Log level. Expected values: debug / info / warn / error")
	flags.String("log.format", "console", "Log format. Expected values: console / json")
}

// newViper prepares viper instance bound to given flags and to ZOIFLOW_* environment variables
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("out", "flows.geojson")
	v.SetDefault("depth", 3)
	v.SetDefault("format", "geojson")
	v.SetDefault("geomf", "wkt")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	if err := v.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "Can't bind flags")
	}

	// ZOIFLOW_EXPORT_FRAGMENTS -> export.fragments
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "Can't read config file '%s'", configFile)
		}
	}
	return v, nil
}

// loadConfig resolves configuration and validates it
func loadConfig(v *viper.Viper) (*Config, error) {
	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "Can't unmarshal config")
	}
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.GeomF = strings.ToLower(cfg.GeomF)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that configuration values are usable
func (cfg *Config) Validate() error {
	errs := []string{}
	if cfg.Input == "" {
		errs = append(errs, "input is required")
	}
	if cfg.Out == "" {
		errs = append(errs, "out is required")
	}
	if cfg.Depth < 0 {
		errs = append(errs, fmt.Sprintf("depth must be greater or equal to zero, got %d", cfg.Depth))
	}
	if cfg.Format != "geojson" && cfg.Format != "csv" {
		errs = append(errs, fmt.Sprintf("format must be 'geojson' or 'csv', got '%s'", cfg.Format))
	}
	if cfg.GeomF != "wkt" && cfg.GeomF != "geojson" {
		errs = append(errs, fmt.Sprintf("geomf must be 'wkt' or 'geojson', got '%s'", cfg.GeomF))
	}
	if len(errs) > 0 {
		return errors.Errorf("Invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
