package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-coremark/coremark"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunPerformanceProfile(t *testing.T) {
	out, err := execute(t, "--iterations", "1", "--workers", "2", "--min-duration", "1ns", "--log-level", "disabled")
	require.NoError(t, err)

	assert.Contains(t, out, "2K performance run parameters for coremark.")
	assert.Contains(t, out, "CoreMark Size    : 666\n")
	assert.Contains(t, out, "Parallel threads : 2\n")
	assert.Contains(t, out, "seedcrc          : 0xe9f5\n")
	assert.Contains(t, out, "[0]crclist       : 0xe714\n")
	assert.Contains(t, out, "[1]crcmatrix     : 0x1fd7\n")
	assert.Contains(t, out, "[1]crcstate      : 0x8e3a\n")
	assert.Contains(t, out, "Correct operation validated.")
	assert.Contains(t, out, "CoreMark 1.0 : ")
	assert.Contains(t, out, "Platform         : "+coremark.Platform()+"\n")
	if total := memory.TotalMemory(); total > 0 {
		assert.Contains(t, out, fmt.Sprintf("Total memory     : %d MiB\n", total>>20))
	}
}

func TestRunPositionalValidationProfile(t *testing.T) {
	out, err := execute(t, "--workers", "1", "--min-duration", "1ns", "--log-level", "disabled",
		"0x3415", "0x3415", "0x66", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "2K validation run parameters for coremark.")
	assert.Contains(t, out, "[0]crclist       : 0xe3c1\n")
	assert.NotContains(t, out, "CoreMark 1.0")
}

func TestRunShortRunReportsError(t *testing.T) {
	out, err := execute(t, "--iterations", "1", "--workers", "1", "--log-level", "disabled")
	require.NoError(t, err)
	assert.Contains(t, out, "ERROR! Must execute for at least 10s for a valid result!")
	assert.Contains(t, out, "Errors detected")

	_, err = execute(t, "--iterations", "1", "--workers", "1", "--log-level", "disabled", "--strict")
	assert.ErrorIs(t, err, errValidation)
}

func TestRunUnknownSeeds(t *testing.T) {
	out, err := execute(t, "--iterations", "1", "--workers", "1", "--min-duration", "1ns",
		"--log-level", "disabled", "--kernels", "list", "5", "6", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Cannot validate operation for these seed values")
	assert.NotContains(t, out, "crcmatrix")
	assert.Equal(t, 1, strings.Count(out, "crcfinal"))
}

func TestRunBadArguments(t *testing.T) {
	_, err := execute(t, "zz")
	assert.ErrorIs(t, err, errBadValue)

	_, err = execute(t, "--kernels", "fft")
	assert.Error(t, err)

	_, err = execute(t, "1", "2", "3", "4", "5", "6", "7", "8")
	assert.Error(t, err)
}

func TestNewLoggerPrecedence(t *testing.T) {
	t.Setenv(envLogLevel, "warn")

	logger, err := newLogger(&bytes.Buffer{}, "debug", "")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel(), "environment overrides the file")

	logger, err = newLogger(&bytes.Buffer{}, "debug", "error")
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel(), "flag overrides the environment")

	_, err = newLogger(&bytes.Buffer{}, "loud", "")
	assert.Error(t, err)
}

func TestLoggerOutput(t *testing.T) {
	t.Setenv(envLogNoColor, "true")
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "", "info")
	require.NoError(t, err)

	logger.Info().Int("workers", 3).Msg("starting")
	assert.Contains(t, buf.String(), "starting")
	assert.Contains(t, buf.String(), "app=coremark")
	assert.Contains(t, buf.String(), "workers=3")
}
