package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mssqlsplit/pkg/consts"
	"github.com/pseudomuto/mssqlsplit/pkg/dump"
	"github.com/pseudomuto/mssqlsplit/pkg/layout"
	"gopkg.in/yaml.v3"
)

// Config represents the settings of a split run. Every field can be overridden
// from the command line.
type Config struct {
	// Delimiter is the comment marker that introduces each object
	Delimiter string `yaml:"delimiter,omitempty"`

	// OnError selects the failure policy for chunks without a signature: fail or collect
	OnError string `yaml:"on_error,omitempty"`

	// Collisions selects what happens when two objects share a file name: overwrite or error
	Collisions string `yaml:"collisions,omitempty"`

	// StripScriptDates removes "Script Date: ..." timestamps from written files
	StripScriptDates bool `yaml:"strip_script_dates"`

	// Manifest writes an objects.sum file at the output root
	Manifest bool `yaml:"manifest"`

	// AllowEmpty treats a dump without any object as a successful run
	AllowEmpty bool `yaml:"allow_empty"`

	// Include restricts output to objects whose file safe name matches one of these globs
	Include []string `yaml:"include,omitempty"`

	// Exclude drops objects whose file safe name matches one of these globs
	Exclude []string `yaml:"exclude,omitempty"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Delimiter:        consts.Delimiter,
		OnError:          dump.FailFast.String(),
		Collisions:       layout.CollisionOverwrite.String(),
		StripScriptDates: true,
		AllowEmpty:       true,
	}
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// Keys missing from the document keep their default value (see Defaults). The
// decoded configuration is validated before it is returned.
//
// Example:
//
//	yamlData := `
//	on_error: collect
//	exclude:
//	  - "*_TB"
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("On error: %s\n", cfg.OnError)
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := Defaults()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Delimiter == "" {
		cfg.Delimiter = consts.Delimiter
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("mssqlsplit.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config: %s", path)
	}

	return cfg, nil
}

// LoadConfigFileOrDefaults is LoadConfigFile for an optional file: when path
// does not exist the defaults are returned. Any other failure, including an
// empty or invalid file, is an error.
func LoadConfigFileOrDefaults(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Defaults(), nil
	}

	return LoadConfigFile(path)
}

// Validate checks that the policies name known values and that every filter
// pattern compiles.
func (c *Config) Validate() error {
	if _, err := dump.ParseFailurePolicy(c.OnError); err != nil {
		return errors.Wrap(err, "invalid on_error")
	}

	if _, err := layout.ParseCollisionPolicy(c.Collisions); err != nil {
		return errors.Wrap(err, "invalid collisions")
	}

	if _, err := dump.NewFilter(c.Include, c.Exclude); err != nil {
		return errors.Wrap(err, "invalid filter")
	}

	return nil
}
