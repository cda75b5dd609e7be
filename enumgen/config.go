package enumgen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// ConfigFileName is the project configuration file searched for by FindConfig.
const ConfigFileName = "enumrefl.toml"

// DefaultOutput is the generated file name used when none is configured.
const DefaultOutput = "enumrefl_gen.go"

var validate = validator.New()

// Config holds generation defaults. Directive options override them per enum.
type Config struct {
	// Output is the generated file name, relative to each package directory.
	Output string `toml:"output" validate:"required,endswith=.go,excludesall=/\\"`

	// Strict makes duplicate names in a variant list an error.
	Strict bool `toml:"strict"`

	// Text emits MarshalText and UnmarshalText methods.
	Text bool `toml:"text"`

	// Jobs bounds the number of packages generated concurrently.
	// Zero means one per package.
	Jobs int `toml:"jobs" validate:"gte=0,lte=1024"`

	// Header is comment text placed after the generated-code notice.
	Header string `toml:"header"`
}

type configFile struct {
	Generate Config `toml:"generate"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() Config {
	return Config{Output: DefaultOutput}
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// FindConfig looks for ConfigFileName in startDir and its parents.
func FindConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// LoadConfig decodes a configuration file on top of DefaultConfig.
// Unknown keys are errors.
func LoadConfig(path string) (Config, error) {
	file := configFile{Generate: DefaultConfig()}
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := file.Generate.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return file.Generate, nil
}

// LoadConfigFrom finds and loads the configuration for startDir.
// If no file exists, DefaultConfig is returned with an empty path.
func LoadConfigFrom(startDir string) (Config, string, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}
