// Package config loads the optional TOML configuration file of the
// renumber command.
//
// A config file may set any of:
//
//	file    = "src/data/survey_data.json"
//	indent  = 2
//	dry_run = false
//
// indent accepts 0 through 8. An indent of 0 selects the default of 2, so
// the renumber command always writes indented output; compact output is
// only produced by survey.Marshal when called directly.
//
// Unknown keys are rejected so that typos do not silently fall back to the
// defaults. Command-line flags take precedence over the file.
package config

import (
	stderrors "errors"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/renumber/pkg/errors"
	surveyio "github.com/matzehuels/renumber/pkg/io"
	"github.com/matzehuels/renumber/pkg/pipeline"
)

// Config holds the settings of a renumbering run.
type Config struct {
	File   string `toml:"file"`    // document to renumber
	Indent int    `toml:"indent"`  // spaces per nesting level in the output
	DryRun bool   `toml:"dry_run"` // report changes without writing
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		File:   pipeline.DefaultPath,
		Indent: surveyio.DefaultIndent,
	}
}

// Load reads the config file at path over the defaults.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if stderrors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks the settings.
func (c Config) Validate() error {
	if err := errors.ValidatePath(c.File); err != nil {
		return err
	}
	return errors.ValidateIndent(c.Indent)
}

// Options converts the settings into pipeline options.
func (c Config) Options() pipeline.Options {
	return pipeline.Options{
		Path:   c.File,
		Indent: c.Indent,
		DryRun: c.DryRun,
	}
}
