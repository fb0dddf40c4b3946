package config

import (
	"errors"
	"io"
	"net/url"

	"github.com/BurntSushi/toml"
	"github.com/go-spatial/stampa/stampa/internal/urlutil"
	"github.com/go-spatial/tegola/dict"
)

// Config models the config file that can be passed into the application
type Config struct {
	// FileLocation is the location that the config file was
	// read from. If this value is nil, then the Parse() function
	// was used directly
	FileLocation *url.URL `toml:"-"`

	// Notifier describes where status updates are sent
	Notifier dict.Dict `toml:"notifier"`

	// Providers are the configured layout catalog providers
	Providers []dict.Dict `toml:"providers"`

	// Exporter describes the backend that drives the host's export
	// primitives
	Exporter dict.Dict `toml:"exporter"`

	// FileStores are used to move the exported files to locations
	// that the user wants
	FileStores []dict.Dict `toml:"file_stores"`

	// Defaults prefill the per invocation parameters
	Defaults Defaults `toml:"defaults"`

	// metadata holds the metadata from parsing the toml
	// file
	metadata toml.MetaData `toml:"-"`
}

// Defaults are the values used for parameters the user did not set
type Defaults struct {
	OutputDirectory       string `toml:"output_directory"`
	FileName              string `toml:"file_name"`
	Resolution            string `toml:"resolution"`
	Format                string `toml:"format"`
	IncludeGeoreferencing bool   `toml:"include_georeferencing"`
}

// Validate will validate the config and make sure the is valid
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("error config not initialized")
	}
	for i, p := range c.Providers {
		if _, err := p.String("type", nil); err != nil {
			return ErrProviderNoType(i)
		}
		if _, err := p.String("name", nil); err != nil {
			return ErrProviderNoName(i)
		}
	}
	for i, fs := range c.FileStores {
		if _, err := fs.String("type", nil); err != nil {
			return ErrFileStoreNoType(i)
		}
		if _, err := fs.String("name", nil); err != nil {
			return ErrFileStoreNoName(i)
		}
	}
	return nil
}

// Parse will parse a config file in the io.Reader
func Parse(reader io.Reader, fileLocation *url.URL) (conf Config, err error) {
	// decode conf file, don't care about the meta data.
	_, err = toml.DecodeReader(reader, &conf)
	conf.FileLocation = fileLocation

	return conf, err
}

// Load will load and parse the config file from the given location.
func Load(location *url.URL) (conf Config, err error) {
	err = urlutil.VisitReader(location, func(r io.Reader) error {
		var e error
		conf, e = Parse(r, location)
		return e
	})
	return conf, err
}

// LoadAndValidate is helper function that just calls load and then validate
func LoadAndValidate(location *url.URL) (cfg Config, err error) {
	cfg, err = Load(location)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
