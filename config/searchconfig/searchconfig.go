/*
 * apsieve - Search configuration file parser.
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

// Package searchconfig parses the apsieve search configuration file.
//
// Configuration file format:
//
//	'#' indicates a comment, rest of line is ignored.
//	<line> := <key> '=' <value>
//	<key>  := 'kmin' | 'kmax' | 'shift' | 'threads' |
//	          'results' | 'state' | 'checkpoint'
//
// Blank lines are ignored. A key given more than once overwrites the
// earlier value. Unknown keys are a configuration error: the loader
// fails fast before any sieve work starts, per the core's "fail fast
// on invalid configuration" error-handling rule.
package searchconfig

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the directives recognized from a configuration file.
// Zero value fields mean "not set"; callers apply their own defaults.
type Config struct {
	KMin       uint32
	KMax       uint32
	Shift      uint32
	Threads    int
	Results    string
	State      string
	Checkpoint int // seconds between state-file checkpoints

	hasKMin, hasKMax bool
}

// HasKRange reports whether both kmin and kmax were set.
func (c *Config) HasKRange() bool {
	return c.hasKMin && c.hasKMax
}

type setter func(c *Config, value string, lineNumber int) error

var directives = map[string]setter{
	"kmin":       setKMin,
	"kmax":       setKMax,
	"shift":      setShift,
	"threads":    setThreads,
	"results":    setResults,
	"state":      setState,
	"checkpoint": setCheckpoint,
}

// Load reads and parses a configuration file.
func Load(name string) (*Config, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := &Config{}
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := parseLine(cfg, scanner.Text(), lineNumber); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseLine(cfg *Config, line string, lineNumber int) error {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return fmt.Errorf("searchconfig: line %d: expected key=value, got %q", lineNumber, line)
	}
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	set, ok := directives[key]
	if !ok {
		return fmt.Errorf("searchconfig: line %d: unknown directive %q", lineNumber, key)
	}
	return set(cfg, value, lineNumber)
}

func parseUint32(value string, lineNumber int, field string) (uint32, error) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("searchconfig: line %d: %s must be a non-negative integer: %w", lineNumber, field, err)
	}
	return uint32(n), nil
}

func setKMin(c *Config, value string, lineNumber int) error {
	n, err := parseUint32(value, lineNumber, "kmin")
	if err != nil {
		return err
	}
	c.KMin = n
	c.hasKMin = true
	return nil
}

func setKMax(c *Config, value string, lineNumber int) error {
	n, err := parseUint32(value, lineNumber, "kmax")
	if err != nil {
		return err
	}
	c.KMax = n
	c.hasKMax = true
	return nil
}

func setShift(c *Config, value string, lineNumber int) error {
	n, err := parseUint32(value, lineNumber, "shift")
	if err != nil {
		return err
	}
	c.Shift = n
	return nil
}

func setThreads(c *Config, value string, lineNumber int) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fmt.Errorf("searchconfig: line %d: threads must be a positive integer", lineNumber)
	}
	c.Threads = n
	return nil
}

func setResults(c *Config, value string, lineNumber int) error {
	if value == "" {
		return fmt.Errorf("searchconfig: line %d: results requires a path", lineNumber)
	}
	c.Results = value
	return nil
}

func setState(c *Config, value string, lineNumber int) error {
	if value == "" {
		return fmt.Errorf("searchconfig: line %d: state requires a path prefix", lineNumber)
	}
	c.State = value
	return nil
}

func setCheckpoint(c *Config, value string, lineNumber int) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fmt.Errorf("searchconfig: line %d: checkpoint must be a positive integer", lineNumber)
	}
	c.Checkpoint = n
	return nil
}

// ErrNoKRange is returned by callers that require kmin/kmax and find
// neither the config file nor command-line flags supplied them.
var ErrNoKRange = errors.New("searchconfig: no K range configured")
