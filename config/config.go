package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"time"

	"code.cloudfoundry.org/dataset-sampler/dataset"
	validator "gopkg.in/validator.v2"
)

const DefaultSampleSize = 15

type Config struct {
	DatasetURL        string   `json:"dataset_url" validate:"nonzero"`
	SampleSize        int      `json:"sample_size" validate:"min=0"`
	AppToken          string   `json:"app_token"`
	AppTokenHeader    string   `json:"app_token_header" validate:"nonzero"`
	TotalCountHeader  string   `json:"total_count_header" validate:"nonzero"`
	RequestTimeout    Duration `json:"request_timeout" validate:"min=1"`
	CACertFile        string   `json:"ca_cert_file"`
	SkipSSLValidation bool     `json:"skip_ssl_validation"`
	LogLevel          string   `json:"log_level"`
	LogPrefix         string   `json:"log_prefix" validate:"nonzero"`
	MetronAddress     string   `json:"metron_address"`
}

func Default() *Config {
	return &Config{
		DatasetURL:       dataset.DefaultURL,
		SampleSize:       DefaultSampleSize,
		AppTokenHeader:   dataset.DefaultTokenHeader,
		TotalCountHeader: dataset.DefaultTotalCountHeader,
		RequestTimeout:   Duration(10 * time.Second),
		LogLevel:         "error",
		LogPrefix:        "cfnetworking",
	}
}

func (c *Config) Validate() error {
	return validator.Validate(c)
}

// New reads the config file at path over the defaults.
func New(path string) (*Config, error) {
	jsonBytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %s", err)
	}

	cfg := Default()
	err = json.Unmarshal(jsonBytes, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %s", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %s", err)
	}

	return cfg, nil
}
