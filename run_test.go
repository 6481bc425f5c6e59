package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	customerrors "climate-parser/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_DefaultInputs(t *testing.T) {
	stdout, stderr, err := executeRoot(t)

	require.Error(t, err)
	assert.ErrorIs(t, err, customerrors.ErrEmpty)
	assert.Equal(t, "Record { city: \"Hong Kong\", year: 1999, temperature: 25.7 }\n", stdout)
	assert.Contains(t, stderr, "Error: empty input\n")
}

func TestRoot_Inputs(t *testing.T) {
	tests := map[string]struct {
		args           []string
		expectedStdout string
		expectedStderr string
		expectedError  error
	}{
		"AllValid": {
			args:           []string{"Hong Kong,1999,25.7", "Oslo,2021,-12.5"},
			expectedStdout: "Record { city: \"Hong Kong\", year: 1999, temperature: 25.7 }\nRecord { city: \"Oslo\", year: 2021, temperature: -12.5 }\n",
		},
		"StopsAtFirstFailure": {
			args:           []string{"Hong Kong,1999,25.7", "City,nineteen,25.7", "Oslo,2021,-12.5"},
			expectedStdout: "Record { city: \"Hong Kong\", year: 1999, temperature: 25.7 }\n",
			expectedStderr: "Error: error parsing year: invalid digit found in string\n",
			expectedError:  customerrors.ErrInvalidYear,
		},
		"CSV": {
			args:           []string{"--format", "csv", "Hong Kong,1999,25.7"},
			expectedStdout: "City,Year,Temperature\nHong Kong,1999,25.7\n",
		},
		"WrongFieldCount": {
			args:           []string{"a,b"},
			expectedStderr: "Error: incorrect number of fields\n",
			expectedError:  customerrors.ErrWrongFieldCount,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stdout, stderr, err := executeRoot(t, tt.args...)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedStdout, stdout)
			assert.Equal(t, tt.expectedStderr, stderr)
		})
	}
}

func TestRoot_JSONError(t *testing.T) {
	_, stderr, err := executeRoot(t, "--format", "json", ",1999,25.7")
	require.Error(t, err)

	var reported *reportedError
	assert.ErrorAs(t, err, &reported)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(stderr), &decoded))
	assert.Equal(t, "no city name", decoded["error"])
	assert.Equal(t, "missing_identifier", decoded["kind"])
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: csv\ninputs:\n  - \"Lima,2000,19\"\n"), 0o600))

	stdout, _, err := executeRoot(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "City,Year,Temperature\nLima,2000,19\n", stdout)

	// Flags win over the file.
	stdout, _, err = executeRoot(t, "--config", path, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "Record { city: \"Lima\", year: 2000, temperature: 19 }\n", stdout)
}

func TestRoot_FlagsRepairInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: xml\n"), 0o600))

	_, _, err := executeRoot(t, "--config", path, "Lima,2000,19")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")

	stdout, _, err := executeRoot(t, "--config", path, "--format", "csv", "Lima,2000,19")
	require.NoError(t, err)
	assert.Equal(t, "City,Year,Temperature\nLima,2000,19\n", stdout)
}

func TestRoot_FlagsRepairInvalidEnv(t *testing.T) {
	t.Setenv("CLIMATE_OUTPUT_FORMAT", "yaml")

	_, _, err := executeRoot(t, "Lima,2000,19")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")

	stdout, _, err := executeRoot(t, "--format", "text", "Lima,2000,19")
	require.NoError(t, err)
	assert.Equal(t, "Record { city: \"Lima\", year: 2000, temperature: 19 }\n", stdout)
}

func TestRoot_DoubleDashInputs(t *testing.T) {
	stdout, stderr, err := executeRoot(t, "--", "-5,1999,1")
	require.NoError(t, err)
	assert.Equal(t, "Record { city: \"-5\", year: 1999, temperature: 1 }\n", stdout)
	assert.Empty(t, stderr)

	stdout, stderr, err = executeRoot(t, "--", "version")
	assert.ErrorIs(t, err, customerrors.ErrWrongFieldCount)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: incorrect number of fields\n", stderr)
}

func TestRoot_InvalidFlag(t *testing.T) {
	_, _, err := executeRoot(t, "--format", "xml", "a,1,2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")

	var reported *reportedError
	assert.False(t, errors.As(err, &reported))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "climate "+Version)
	assert.Contains(t, stdout, "Go Version:")
}

func TestParseInputs_Logs(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := parseInputs([]string{"Hong Kong,1999,25.7", "City,1999,hot"}, "text", io.Discard, io.Discard, logger)
	require.Error(t, err)

	assert.Contains(t, logs.String(), `"msg":"parsed record"`)
	assert.Contains(t, logs.String(), `"msg":"parse failed"`)
	assert.Contains(t, logs.String(), `"error_type":"invalid_measurement"`)
}
