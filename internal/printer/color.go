// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/jwalton/go-supportscolor"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Enabled reports whether output written to w should be colored.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		f, ok := w.(*os.File)
		if !ok {
			return false
		}

		return supportscolor.SupportsColor(f.Fd(), supportscolor.SniffFlagsOption(false)).Level > supportscolor.None
	}
}

func (m ColorMode) Validate() error {
	switch m {
	case ColorAuto, ColorAlways, ColorNever, "":
		return nil
	default:
		return fmt.Errorf("invalid color mode %q", string(m))
	}
}
