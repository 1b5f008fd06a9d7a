/*
 * apsieve - Main process.
 *
 * Copyright 2026, apsieve contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	getopt "github.com/pborman/getopt/v2"

	"github.com/cwhitfield/apsieve/config/searchconfig"
	"github.com/cwhitfield/apsieve/console"
	"github.com/cwhitfield/apsieve/report"
	"github.com/cwhitfield/apsieve/sieve"
	"github.com/cwhitfield/apsieve/util/logger"
	"github.com/cwhitfield/apsieve/util/progress"
)

var log *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Search configuration file")
	optKMin := getopt.Uint32Long("kmin", 0, 0, "Minimum K (multiplier of 2*23#)")
	optKMax := getopt.Uint32Long("kmax", 0, 0, "Maximum K (multiplier of 2*23#)")
	optShift := getopt.Uint32Long("shift", 0, 0, "Starting SHIFT value")
	optThreads := getopt.IntLong("threads", 't', 0, "Worker thread count (default: NumCPU)")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optResults := getopt.StringLong("results", 'r', "", "Results file (default: apsieve-results.txt)")
	optState := getopt.StringLong("state", 's', "", "State file prefix (default: apsieve-state)")
	optInteractive := getopt.BoolLong("interactive", 'i', "Start the interactive console")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		var err error
		file, err = os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "apsieve: cannot create log file:", err)
			os.Exit(1)
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	log = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, file == nil))
	slog.SetDefault(log)

	log.Info("apsieve started")

	cfg := &searchconfig.Config{}
	if *optConfig != "" {
		loaded, err := searchconfig.Load(*optConfig)
		if err != nil {
			log.Error("failed to load configuration", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if *optKMin != 0 || *optKMax != 0 {
		cfg.KMin, cfg.KMax = *optKMin, *optKMax
	}
	if !cfg.HasKRange() && cfg.KMax == 0 {
		log.Error("no K range configured", "error", searchconfig.ErrNoKRange)
		os.Exit(1)
	}
	if *optShift != 0 {
		cfg.Shift = *optShift
	}
	if *optThreads != 0 {
		cfg.Threads = *optThreads
	}
	if cfg.Threads == 0 {
		cfg.Threads = runtime.NumCPU()
	}
	if *optResults != "" {
		cfg.Results = *optResults
	}
	if cfg.Results == "" {
		cfg.Results = "apsieve-results.txt"
	}
	if *optState != "" {
		cfg.State = *optState
	}
	if cfg.State == "" {
		cfg.State = "apsieve-state"
	}

	resultsFile, err := report.OpenResultsFile(cfg.Results)
	if err != nil {
		log.Error("failed to open results file", "error", err)
		os.Exit(1)
	}
	defer resultsFile.Close()

	bar := progress.NewBar(fmt.Sprintf("K=%d..%d", cfg.KMin, cfg.KMax))
	reporter := &barReporter{
		inner: report.NewFileReporter(resultsFile, log),
		bar:   bar,
	}
	stateFile := report.NewStateFile(cfg.State)

	session, err := sieve.NewSession(sieve.Options{
		KMin:       cfg.KMin,
		KMax:       cfg.KMax,
		StartShift: cfg.Shift,
		Threads:    cfg.Threads,
		Reporter:   reporter,
		Primality:  sieve.NewDefaultPrimality(),
	})
	if err != nil {
		log.Error("failed to start session", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down on signal")
		cancel()
	}()

	checkpointInterval := time.Duration(cfg.Checkpoint) * time.Second
	if checkpointInterval == 0 {
		checkpointInterval = 5 * time.Minute
	}
	go runCheckpointLoop(ctx, session, stateFile, cfg, resultsFile, checkpointInterval)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("session run failed", "error", err)
		}
	}()

	if *optInteractive {
		console.Run(&sessionControl{session: session})
		cancel()
	}

	wg.Wait()
	bar.Finish()
	log.Info("apsieve stopped", "total_aps", session.TotalAPs())
}

// runCheckpointLoop periodically persists the outer K/SHIFT resumption
// point; it never captures in-flight shift-window sieve state.
func runCheckpointLoop(ctx context.Context, session *sieve.Session, stateFile *report.StateFile,
	cfg *searchconfig.Config, resultsFile *report.ResultsFile, interval time.Duration,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st := report.State{
				KMin:     cfg.KMin,
				KMax:     cfg.KMax,
				Shift:    cfg.Shift,
				Checksum: resultsFile.Checksum(),
				TotalAPs: session.TotalAPs(),
			}
			if err := stateFile.Save(st); err != nil {
				log.Error("failed to checkpoint state", "error", err)
			}
		}
	}
}

// barReporter forwards solutions to a report.FileReporter and mirrors
// progress fractions onto a terminal progress.Bar.
type barReporter struct {
	inner *report.FileReporter
	bar   *progress.Bar
}

func (b *barReporter) ReportSolution(k int, commonDiffK uint32, firstTerm uint64) {
	b.inner.ReportSolution(k, commonDiffK, firstTerm)
}

func (b *barReporter) Progress(fraction float64) {
	b.inner.Progress(fraction)
	b.bar.Update(fraction)
}

// sessionControl adapts a sieve.Session to console.Control.
type sessionControl struct {
	session *sieve.Session
}

func (c *sessionControl) Status() string {
	state := "running"
	if c.session.Paused() {
		state = "paused"
	}
	return fmt.Sprintf("%s, total arithmetic progressions found: %d", state, c.session.TotalAPs())
}

func (c *sessionControl) Pause()  { c.session.Pause() }
func (c *sessionControl) Resume() { c.session.Resume() }
