// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package printer

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const resultMarker = "="

func New(stdout, stderr io.Writer, colored bool) *Printer {
	p := &Printer{
		stdout: stdout,
		stderr: stderr,
		marker: color.New(color.FgYellow),
		errMsg: color.New(color.FgRed),
	}

	for _, c := range []*color.Color{p.marker, p.errMsg} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

type Printer struct {
	stdout io.Writer
	stderr io.Writer
	marker *color.Color
	errMsg *color.Color
}

// PrintResult writes the result line: the marker followed by each value, in the given order.
func (p *Printer) PrintResult(values []float64) {
	var sb strings.Builder
	sb.WriteString(p.marker.Sprint(resultMarker))
	for _, v := range values {
		sb.WriteByte(' ')
		sb.WriteString(FormatValue(v))
	}
	sb.WriteByte('\n')

	_, _ = io.WriteString(p.stdout, sb.String())
}

// PrintErr writes a diagnostic to stderr.
func (p *Printer) PrintErr(msg string, err error) {
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}

	fmt.Fprintln(p.stderr, p.errMsg.Sprint(msg))
}

// FormatValue formats v in fixed-point notation with six fractional digits.
// Non-finite values are written as nan, -nan, inf and -inf.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		if math.Signbit(v) {
			return "-nan"
		}
		return "nan"

	case math.IsInf(v, 1):
		return "inf"

	case math.IsInf(v, -1):
		return "-inf"

	default:
		return strconv.FormatFloat(v, 'f', 6, 64)
	}
}
