// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"os"
	"text/template"
	"time"
)

// FilenameData is offered to the download filename template.
type FilenameData struct {
	BatchID string
}

var filenameFunctions template.FuncMap = map[string]interface{}{
	"date": func(pattern string) string {
		return time.Now().Format(pattern)
	},
	"env": func(name string) string {
		return os.Getenv(name)
	},
}

func parseFilenameTemplate(raw string) (*template.Template, error) {
	return template.New("filename").Funcs(filenameFunctions).Parse(raw)
}

// RenderFilename executes raw as a text/template against data.
func RenderFilename(raw string, data FilenameData) (string, error) {
	t, err := parseFilenameTemplate(raw)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
