// ScummBatch
// Copyright (c) 2026 The ScummBatch Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of ScummBatch.
//
// ScummBatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ScummBatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ScummBatch.  If not, see <http://www.gnu.org/licenses/>.

// ScummBatch generates one launcher script per game folder found under a
// root directory, each invoking ScummVM on that folder.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ScummBatchProject/scummbatch-core/internal/reporter"
	"github.com/ScummBatchProject/scummbatch-core/internal/telemetry"
	"github.com/ScummBatchProject/scummbatch-core/pkg/config"
	"github.com/ScummBatchProject/scummbatch-core/pkg/generator"
	"github.com/ScummBatchProject/scummbatch-core/pkg/helpers"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	exePath := flag.String(
		"exe",
		"",
		"path to the ScummVM executable",
	)
	rootFolder := flag.String(
		"root",
		"",
		"root folder containing one subdirectory per game",
	)
	version := flag.Bool(
		"version",
		false,
		"print version and exit",
	)
	debug := flag.Bool(
		"debug",
		false,
		"enable debug logging",
	)
	noReport := flag.Bool(
		"no-report",
		false,
		"disable diagnostic reporting for this run",
	)
	flag.Parse()

	if *version {
		_, _ = fmt.Printf("ScummBatch v%s (%s)\n", config.AppVersion, runtime.GOOS)
		os.Exit(0)
	}

	if *exePath == "" || *rootFolder == "" {
		_, _ = fmt.Fprint(os.Stderr, "Error: -exe and -root are required\n")
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(*exePath, *rootFolder, *debug, *noReport))
}

func run(exePath, rootFolder string, debug, noReport bool) (code int) {
	configDir := filepath.Join(xdg.ConfigHome, config.AppName)
	dataDir := filepath.Join(xdg.DataHome, config.AppName)

	transcript := helpers.NewTranscript(helpers.DefaultTranscriptLines)
	console := zerolog.ConsoleWriter{Out: os.Stderr}
	writers := []io.Writer{console, transcript}

	if err := helpers.InitLogging(filepath.Join(dataDir, "logs"), writers); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		return 1
	}

	cfg, err := config.NewConfig(configDir, config.BaseDefaults)
	if err != nil {
		log.Error().Err(err).Msg("error loading config")
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	if debug || cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if noReport {
		cfg.SetReportingEnabled(false)
	}

	if err := telemetry.Init(cfg.ReportingEnabled(), cfg.DeviceID(), writers); err != nil {
		log.Warn().Err(err).Msg("failed to initialize crash reporting")
	}
	defer telemetry.Close()

	rep := reporter.New(cfg, transcript)
	defer rep.Flush(reporter.FlushTimeout)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Msgf("unhandled fault: %v", rec)
			telemetry.CapturePanic(rec)
			rep.Send(fmt.Sprintf("unhandled fault: %v", rec), nil)
			_, _ = fmt.Fprintln(os.Stderr, "Error: an unexpected fault occurred, see log for details")
			code = 1
		}
	}()

	log.Info().Msgf("ScummBatch v%s starting", config.AppVersion)

	events := consoleEvents{}
	events.StatusChanged(generator.StatusReady)

	flow := generator.NewFlow(afero.NewOsFs(), cfg, rep, events)
	if _, err := flow.Run(exePath, rootFolder); err != nil {
		return 1
	}
	return 0
}

// consoleEvents renders status transitions and notices on the terminal.
type consoleEvents struct{}

func (consoleEvents) StatusChanged(status string) {
	_, _ = fmt.Println(status)
}

func (consoleEvents) SuccessNotice(message string) {
	_, _ = fmt.Println(message)
}

func (consoleEvents) ErrorNotice(message string) {
	_, _ = fmt.Fprintln(os.Stderr, "Error:", message)
}
