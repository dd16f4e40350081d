package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Properties is the caller-supplied half of the stack configuration. Any
	// field may be left blank; blanks fall through to the documented defaults
	// during resolution. A blank is never promoted to "set to empty".
	Properties struct {
		AppName        string            `json:"app" yaml:"app" toml:"app"`
		Region         string            `json:"region" yaml:"region" toml:"region"`
		Environment    string            `json:"environment" yaml:"environment" toml:"environment"`
		Suffix         string            `json:"suffix" yaml:"suffix" toml:"suffix"`
		StateBucket    string            `json:"state_bucket" yaml:"state_bucket" toml:"state_bucket"`
		StateLockTable string            `json:"state_lock_table" yaml:"state_lock_table" toml:"state_lock_table"`
		Ephemeral      string            `json:"ephemeral" yaml:"ephemeral" toml:"ephemeral"`
		Tags           map[string]string `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`
	}
)

// ReadProperties loads a Properties file, dispatching the decoder on the file
// extension.
func ReadProperties(fpath string) (Properties, error) {
	var props Properties

	f, err := os.Open(fpath)
	if err != nil {
		return props, err
	}
	defer f.Close() // nolint:errcheck

	switch filepath.Ext(fpath) {
	case ".json":
		err = json.NewDecoder(f).Decode(&props)

	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(&props)

	case ".toml":
		err = toml.NewDecoder(f).Decode(&props)

	default:
		err = errors.Errorf("unsupported properties format %q", filepath.Ext(fpath))
	}

	return props, err
}

// DecodeProperties converts a loose string-keyed map (the programmatic API
// surface) into Properties, using the same field names as the yaml form.
func DecodeProperties(m map[string]any) (Properties, error) {
	var props Properties
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		Result:           &props,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return props, err
	}
	if err := decoder.Decode(m); err != nil {
		return props, errors.Wrap(err, "could not decode properties map")
	}
	return props, nil
}
