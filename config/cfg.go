package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"maps"
	"os"
	"slices"

	validator "github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"reveal/reveal"
	"reveal/styling"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type Config struct {
	Version    int                  `yaml:"version" validate:"eq=1"`
	Defaults   styling.Options      `yaml:"defaults"`
	Responsive styling.Responsive   `yaml:"responsive"`
	Refs       map[string]yaml.Node `yaml:"refs,omitempty"`
	Logging    LoggingConfig        `yaml:"logging"`
}

// OptionsFor returns defaults superimposed with overrides for ref, if any.
func (c *Config) OptionsFor(ref string) (styling.Options, error) {
	opts := c.Defaults
	opts.CustomEasing = slices.Clone(c.Defaults.CustomEasing)
	if node, ok := c.Refs[ref]; ok {
		// yaml.Node.Decode cannot refuse unknown fields, go through decoder
		data, err := yaml.Marshal(&node)
		if err != nil {
			return styling.Options{}, fmt.Errorf("unable to read options for ref '%s': %w", ref, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil {
			return styling.Options{}, fmt.Errorf("unable to decode options for ref '%s': %w", ref, err)
		}
	}
	opts.Ref = ref
	return opts, nil
}

// checkOptions makes sure every element option set could be activated: the
// defaults and defaults with each ref override applied.
func (c *Config) checkOptions() (err error) {
	check := func(name string, o styling.Options) error {
		if err := reveal.CheckOptions(o); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if _, err := styling.ResolveEasing(o.Easing, o.CustomEasing); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}

	err = check("defaults", c.Defaults)
	for _, ref := range slices.Sorted(maps.Keys(c.Refs)) {
		opts, er := c.OptionsFor(ref)
		if er != nil {
			err = multierr.Append(err, er)
			continue
		}
		err = multierr.Append(err, check(fmt.Sprintf("ref '%s'", ref), opts))
	}
	return err
}

// checkConfig reports problems validator tags cannot express.
func checkConfig(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	if err := styling.CheckResponsive(cfg.Responsive); err != nil {
		sl.ReportError(cfg.Responsive, "Responsive", "responsive", "breakpoints", err.Error())
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkConfig)); err != nil {
			return nil, err
		}
		if err := cfg.checkOptions(); err != nil {
			return nil, fmt.Errorf("invalid element options: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
