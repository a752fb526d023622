// Copyright 2025 go-coremark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment variables read by newLogger.
const (
	// envLogLevel overrides the configured log level.
	envLogLevel = "COREMARK_LOG_LEVEL"
	// envLogNoColor disables console colours when set to a true value.
	envLogNoColor = "COREMARK_LOG_NOCOLOR"
)

type logConfig struct {
	Level   zerolog.Level
	NoColor bool
}

func defaultLogConfig() logConfig {
	return logConfig{Level: zerolog.InfoLevel}
}

// applyEnvOverrides lets the environment override the file configuration.
func applyEnvOverrides(cfg *logConfig) {
	if lvl, ok := parseLevel(os.Getenv(envLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(envLogNoColor))); err == nil {
		cfg.NoColor = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

// newLogger builds the console logger. fileLevel comes from the config
// file and flagLevel from --log-level; the flag wins over the environment,
// which wins over the file.
func newLogger(out io.Writer, fileLevel, flagLevel string) (zerolog.Logger, error) {
	cfg := defaultLogConfig()
	if fileLevel != "" {
		lvl, ok := parseLevel(fileLevel)
		if !ok {
			return zerolog.Nop(), fmt.Errorf("unknown log level %q", fileLevel)
		}
		cfg.Level = lvl
	}
	applyEnvOverrides(&cfg)
	if flagLevel != "" {
		lvl, ok := parseLevel(flagLevel)
		if !ok {
			return zerolog.Nop(), fmt.Errorf("unknown log level %q", flagLevel)
		}
		cfg.Level = lvl
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    cfg.NoColor,
	}
	return zerolog.New(output).Level(cfg.Level).With().Timestamp().Str("app", "coremark").Logger(), nil
}
