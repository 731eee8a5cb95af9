// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package bacsfile

// Version is the version of this application
const Version = "v0.2.0-dev"
