// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package root_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajkaijanaho/postfixcalc/cmd/postfixcalc/root"
)

func run(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("POSTFIXCALC_LOG_LEVEL", "")
	t.Setenv("POSTFIXCALC_CONFIG", "")

	var stdout, stderr bytes.Buffer
	code := root.Run(args, strings.NewReader(input), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		input      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "addition",
			args:       []string{"--quiet"},
			input:      "3 4 +\n",
			wantStdout: "= 7.000000\n=\n",
		},
		{
			name:       "operand_order",
			args:       []string{"-q"},
			input:      "10 2 -\n10 2 /\n10 3 -\n",
			wantStdout: "= 8.000000\n= 5.000000\n= 7.000000\n=\n",
		},
		{
			name:       "trailing_literal_dropped",
			args:       []string{"--quiet"},
			input:      "42\n",
			wantStdout: "=\n=\n",
		},
		{
			name:       "trailing_literal_flushed",
			args:       []string{"--quiet", "--set=calc.flushAtEndOfLine=true"},
			input:      "42\n",
			wantStdout: "= 42.000000\n=\n",
		},
		{
			name:       "underflow",
			args:       []string{"--quiet"},
			input:      "+\n",
			wantStdout: "= nan\n=\n",
			wantStderr: "Stack underflow.\nStack underflow.\n",
		},
		{
			name:       "prompt",
			args:       nil,
			input:      "3 4 +\n",
			wantStdout: "> = 7.000000\n> =\n",
		},
		{
			name:       "prompt_from_config",
			args:       []string{"--set=source.prompt=calc:"},
			input:      "1 \n",
			wantStdout: "calc:= 1.000000\ncalc:=\n",
		},
		{
			name:       "explicit_plain_source",
			args:       []string{"--quiet", "--source=plain"},
			input:      "2 3 *\n",
			wantStdout: "= 6.000000\n=\n",
		},
		{
			name:       "many_values",
			args:       []string{"--quiet"},
			input:      "1 2 3 4 5 6 \n",
			wantStdout: "= 6.000000 5.000000 4.000000 3.000000 2.000000 1.000000\n=\n",
		},
		{
			name:       "exhausted",
			args:       []string{"--quiet", "--set=calc.maxStackDepth=2"},
			input:      "1 2 +\n1 2 3 \n4 5 +\n",
			wantCode:   root.ExitFailure,
			wantStdout: "= 3.000000\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := run(t, tc.input, tc.args...)

			require.Equal(t, tc.wantCode, code)
			require.Equal(t, tc.wantStdout, stdout)
			if tc.wantCode == root.ExitOK {
				require.Equal(t, tc.wantStderr, stderr)
			}
		})
	}
}

func TestExhaustedDiagnostic(t *testing.T) {
	code, _, stderr := run(t, "1 2 3 \n", "--quiet", "--set=calc.maxStackDepth=2")

	require.Equal(t, root.ExitFailure, code)
	require.Contains(t, stderr, "Stack storage exhausted.\n")
}

func TestConfigFile(t *testing.T) {
	confFile := filepath.Join(t.TempDir(), "postfixcalc.yaml")
	require.NoError(t, os.WriteFile(confFile, []byte("calc:\n  flushAtEndOfLine: true\nsource:\n  prompt: \"\"\n"), 0o600))

	code, stdout, _ := run(t, "5 5\n", "--config", confFile)
	require.Equal(t, root.ExitOK, code)
	require.Equal(t, "= 5.000000 5.000000\n=\n", stdout)
}

func TestUsageErrors(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{
			name:       "unknown_flag",
			args:       []string{"--wibble"},
			wantStderr: "unknown flag --wibble",
		},
		{
			name:       "invalid_source",
			args:       []string{"--source=readline"},
			wantStderr: "invalid source kind",
		},
		{
			name:       "invalid_override",
			args:       []string{"--set=calc.maxStackDepth=-5"},
			wantStderr: "maxStackDepth must not be negative",
		},
		{
			name:       "unknown_config_key",
			args:       []string{"--set=calc.wibble=true"},
			wantStderr: "Failed to load configuration",
		},
		{
			name:       "missing_config_file",
			args:       []string{"--config=does_not_exist.yaml"},
			wantStderr: "Failed to load configuration",
		},
		{
			name:       "invalid_color",
			args:       []string{"--color=sometimes"},
			wantStderr: "--color",
		},
		{
			name:       "liner_without_terminal",
			args:       []string{"--source=liner"},
			wantStderr: "Failed to open input",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := run(t, "1 2 +\n", tc.args...)

			require.Equal(t, root.ExitUsage, code)
			require.Empty(t, stdout)
			require.Contains(t, stderr, tc.wantStderr)
		})
	}
}

func TestVersion(t *testing.T) {
	code, stdout, _ := run(t, "", "--version")

	require.Equal(t, root.ExitOK, code)
	require.Contains(t, stdout, "Build commit")
}

func TestHelp(t *testing.T) {
	code, stdout, _ := run(t, "", "--help")

	require.Equal(t, root.ExitOK, code)
	require.Contains(t, stdout, "flushAtEndOfLine")
	require.Contains(t, stdout, "--set")
}
