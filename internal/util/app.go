// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"runtime/debug"
	"strings"
)

// Set at build time with -ldflags.
var (
	AppName   = "postfixcalc"
	BuildDate = "unknown"
	Commit    = "unknown"
	Version   = "unknown"
)

// AppVersion describes the running binary for --version.
func AppVersion() string {
	lines := []string{
		Version,
		"Build timestamp: " + BuildDate,
		"Build commit: " + Commit,
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		lines = append(lines, "Go version: "+info.GoVersion)
		if info.Main.Sum != "" {
			lines = append(lines, "Module: "+info.Main.Path+"@"+info.Main.Version+" "+info.Main.Sum)
		}

		for _, bs := range info.Settings {
			if strings.HasPrefix(bs.Key, "vcs") {
				lines = append(lines, bs.Key+": "+bs.Value)
			}
		}
	}

	return strings.Join(lines, "\n")
}
