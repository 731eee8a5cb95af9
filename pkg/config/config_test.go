// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"path/filepath"
	"testing"

	"github.com/jedbites/bacs-file-automation/pkg/bacs"

	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "valid.yaml"), "")
	require.NoError(t, err)

	require.NotNil(t, cfg.Logger)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, ":9999", cfg.Http.BindAddress)
	require.Equal(t, "NatWest", cfg.Bacs.InstitutionTag)
	require.Equal(t, "zero", cfg.Bacs.AmountPolicy)

	opts := cfg.Bacs.Options()
	require.Equal(t, bacs.ZeroBadAmounts, opts.AmountPolicy)
	require.Equal(t, "NatWest", opts.InstitutionTag)
}

func TestConfig__invalid(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "invalid.yaml"), "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown amount policy")
}

func TestConfig__badFilenameTemplate(t *testing.T) {
	cfg := Empty()
	cfg.Bacs.FilenameTemplate = "{{ bad"

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "filename template")

	// unknown template functions are rejected too
	cfg.Bacs.FilenameTemplate = `{{ tomorrow "20060102" }}.csv`
	require.Error(t, cfg.Validate())
}

func TestConfig__defaults(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)

	require.NotEmpty(t, cfg.Http.BindAddress)
	require.NotEmpty(t, cfg.Admin.BindAddress)
	require.Equal(t, DefaultFilenameTemplate, cfg.Bacs.Filename())
	require.Equal(t, bacs.AmountPolicy(""), cfg.Bacs.Options().AmountPolicy)
}

func TestConfig__logFormatOverride(t *testing.T) {
	cfg, err := Load("", "json")
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestRead(t *testing.T) {
	cfg, err := Read([]byte(`
logging:
  format: json
bacs:
  filenametemplate: "{{ .BatchID }}.csv"
`))
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, "{{ .BatchID }}.csv", cfg.Bacs.Filename())
}

func TestRead__malformed(t *testing.T) {
	_, err := Read([]byte("\tnot yaml"))
	require.Error(t, err)
}
