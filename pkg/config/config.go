// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/jedbites/bacs-file-automation/pkg/bacs"
	"github.com/jedbites/bacs-file-automation/pkg/util"

	"github.com/go-kit/kit/log"
	"github.com/moov-io/base/http/bind"
	"github.com/spf13/viper"
)

type Config struct {
	Logger  log.Logger `yaml:"-" json:"-"`
	Logging Logging

	Http  HTTP
	Admin Admin

	Bacs Bacs
}

type Logging struct {
	Format string
}

type HTTP struct {
	BindAddress string
}

type Admin struct {
	BindAddress           string
	DisableConfigEndpoint bool
}

// Bacs adjusts batch file construction and delivery.
type Bacs struct {
	// InstitutionTag is stamped into the VOL and HDR1 records.
	InstitutionTag string

	// AmountPolicy is "reject" or "zero". See bacs.AmountPolicy.
	AmountPolicy string

	// FilenameTemplate is a text/template for the download filename.
	FilenameTemplate string
}

// DefaultFilenameTemplate names downloaded files with the batch ID and
// the generation date.
const DefaultFilenameTemplate = `bacs_{{ .BatchID }}_{{ date "20060102" }}.csv`

func (b Bacs) Filename() string {
	return util.Or(b.FilenameTemplate, DefaultFilenameTemplate)
}

// Options returns the file construction options this config describes.
func (b Bacs) Options() bacs.Options {
	return bacs.Options{
		InstitutionTag: b.InstitutionTag,
		AmountPolicy:   bacs.AmountPolicy(b.AmountPolicy),
	}
}

func Empty() *Config {
	return &Config{
		Logger: log.NewNopLogger(),
		Http: HTTP{
			BindAddress: bind.HTTP("bacsfile"),
		},
		Admin: Admin{
			BindAddress: bind.Admin("bacsfile"),
		},
	}
}

// Load reads the optional YAML config at path and applies env var and
// flag overrides. An empty path returns defaults.
func Load(path string, logFormat string) (*Config, error) {
	cfg := Empty()
	if path != "" {
		bs, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %v", path, err)
		}
		cfg, err = Read(bs)
		if err != nil {
			return nil, err
		}
	}

	cfg.Logging.Format = util.Or(os.Getenv("LOG_FORMAT"), logFormat, cfg.Logging.Format)
	if util.Yes(os.Getenv("DISABLE_CONFIG_ENDPOINT")) {
		cfg.Admin.DisableConfigEndpoint = true
	}

	cfg = setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read parses YAML bytes into a Config without applying overrides.
func Read(data []byte) (*Config, error) {
	vip := viper.New()
	vip.SetConfigType("yaml")
	if err := vip.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("problem reading config: %v", err)
	}

	cfg := Empty()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("problem unmarshaling config: %v", err)
	}
	return cfg, nil
}

func setupLogger(cfg *Config) *Config {
	if strings.EqualFold(cfg.Logging.Format, "json") {
		cfg.Logger = log.NewJSONLogger(os.Stderr)
	} else {
		cfg.Logger = log.NewLogfmtLogger(os.Stderr)
	}

	cfg.Logger = log.With(cfg.Logger, "ts", log.DefaultTimestampUTC)
	cfg.Logger = log.With(cfg.Logger, "caller", log.DefaultCaller)

	return cfg
}

// Validate checks a Config's fields conform to expectations.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return fmt.Errorf("nil Config")
	}
	if err := bacs.AmountPolicy(cfg.Bacs.AmountPolicy).Validate(); err != nil {
		return fmt.Errorf("config: %v", err)
	}
	if _, err := parseFilenameTemplate(cfg.Bacs.Filename()); err != nil {
		return fmt.Errorf("config: filename template: %v", err)
	}
	return nil
}
