// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

const notAvailable = "N/A"

// AppBuildInfo carries the build metadata injected with -ldflags. Empty
// values are reported as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from linker-provided values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) Version() string { return orNotAvailable(a.version) }
func (a AppBuildInfo) Date() string    { return orNotAvailable(a.date) }
func (a AppBuildInfo) Commit() string  { return orNotAvailable(a.commit) }

// String renders the three values on separate lines, as printed at startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		a.Version(), a.Date(), a.Commit())
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
