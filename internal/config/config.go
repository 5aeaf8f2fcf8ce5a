// Package config reads the optional YAML configuration of fxbmp.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"gopkg.in/yaml.v3"
)

// Config holds the settings which can also be given as flags.
type Config struct {
	Output     string `yaml:"output"`
	Codepage   string `yaml:"codepage"`
	Overwrite  bool   `yaml:"overwrite"`
	SkipChecks bool   `yaml:"skip_checks"`
	LogLevel   string `yaml:"log_level"`
	Format     string `yaml:"format"`
}

var codepages = map[string]encoding.Encoding{
	"shift-jis": japanese.ShiftJIS,
	"sjis":      japanese.ShiftJIS,
	"cp932":     japanese.ShiftJIS,
	"cp437":     charmap.CodePage437,
}

var formats = []string{"text", "json", "yaml"}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Output:   ".",
		Codepage: "shift-jis",
		LogLevel: "info",
		Format:   "text",
	}
}

// Load reads path from fs on top of Default. An empty path returns the
// defaults.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := c.Encoding(); err != nil {
		return err
	}

	for _, f := range formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (supported: %s)", c.Format, strings.Join(formats, ", "))
}

// Encoding returns the codepage entry names are decoded with.
func (c Config) Encoding() (encoding.Encoding, error) {
	enc, ok := codepages[strings.ToLower(c.Codepage)]
	if !ok {
		return nil, fmt.Errorf("unsupported codepage %q", c.Codepage)
	}
	return enc, nil
}
