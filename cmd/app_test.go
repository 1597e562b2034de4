package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	rustFile := filepath.Join(dir, "rust.txt")
	require.NoError(t, os.WriteFile(rustFile, []byte("rust rocks\nGo is fine\n"), 0o600))

	cases := []struct {
		name       string
		args       []string
		env        map[string]string
		stdin      string
		wantCode   int
		wantOut    string
		wantErrMsg string
	}{
		{
			name:     "Positive - stdin search",
			args:     []string{"body"},
			stdin:    "nobody\nfrog\nsomebody\nbody\nadult\n",
			wantCode: 0,
			wantOut:  "nobody\nsomebody\nbody\n",
		},
		{
			name:     "Positive - IGNORE_CASE with file",
			args:     []string{"RUST", rustFile},
			env:      map[string]string{"IGNORE_CASE": "0"},
			wantCode: 0,
			wantOut:  "rust rocks\n",
		},
		{
			name:     "Positive - case-sensitive by default",
			args:     []string{"RUST", rustFile},
			wantCode: 0,
			wantOut:  "",
		},
		{
			name:     "Positive - no matches exit 0",
			args:     []string{"xyz"},
			stdin:    "a\nb\nc",
			wantCode: 0,
			wantOut:  "",
		},
		{
			name:       "Negative - missing query",
			args:       []string{},
			wantCode:   1,
			wantErrMsg: "didn't get a query string",
		},
		{
			name:       "Negative - file not found",
			args:       []string{"a", filepath.Join(dir, "missing.txt")},
			wantCode:   1,
			wantErrMsg: "missing.txt",
		},
		{
			name:       "Negative - file not found with logging disabled",
			args:       []string{"a", filepath.Join(dir, "missing.txt")},
			env:        map[string]string{"MINIGREP_LOG_LEVEL": "disabled"},
			wantCode:   1,
			wantErrMsg: "missing.txt",
		},
		{
			name:       "Negative - missing query with fatal log level",
			args:       []string{},
			env:        map[string]string{"MINIGREP_LOG_LEVEL": "fatal"},
			wantCode:   1,
			wantErrMsg: "didn't get a query string",
		},
		{
			name:       "Negative - dash-prefixed query without terminator",
			args:       []string{"-x", "file.txt"},
			wantCode:   1,
			wantErrMsg: "flag provided but not defined",
		},
		{
			name:       "Negative - directory as file",
			args:       []string{"a", dir},
			wantCode:   1,
			wantErrMsg: "is a directory",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			lookupEnv := func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}

			code := run(tt.args, bytes.NewBufferString(tt.stdin), &stdout, &stderr, lookupEnv)

			require.Equal(t, tt.wantCode, code, "stderr: %s", stderr.String())
			require.Equal(t, tt.wantOut, stdout.String())
			if tt.wantErrMsg != "" {
				require.Contains(t, stderr.String(), tt.wantErrMsg)
			}
		})
	}
}
