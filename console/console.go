/*
 * apsieve - Interactive console.
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

// Package console implements an optional interactive command line for
// a running search, built the same way as a liner.NewLiner prompt loop
// dispatching through a prefix-matched command table.
package console

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/peterh/liner"
)

// Control is the set of operations the console can perform against a
// running search. main wires this to the running sieve.Session; tests
// can supply a fake.
type Control interface {
	Status() string
	Pause()
	Resume()
}

type cmd struct {
	name    string
	min     int
	process func(*Control) (bool, error)
}

var cmdList = []cmd{
	{name: "status", min: 2, process: statusCmd},
	{name: "pause", min: 2, process: pauseCmd},
	{name: "resume", min: 2, process: resumeCmd},
	{name: "quit", min: 1, process: quitCmd},
}

func statusCmd(c *Control) (bool, error) {
	fmt.Println((*c).Status())
	return false, nil
}

func pauseCmd(c *Control) (bool, error) {
	(*c).Pause()
	return false, nil
}

func resumeCmd(c *Control) (bool, error) {
	(*c).Resume()
	return false, nil
}

func quitCmd(*Control) (bool, error) {
	return true, nil
}

func matchCommand(m cmd, name string) bool {
	if len(name) > len(m.name) {
		return false
	}
	return strings.HasPrefix(m.name, name) && len(name) >= m.min
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var matches []cmd
	for _, m := range cmdList {
		if matchCommand(m, name) {
			matches = append(matches, m)
		}
	}
	return matches
}

func processCommand(line string, c Control) (bool, error) {
	name := strings.ToLower(strings.TrimSpace(line))
	matches := matchList(name)
	if len(matches) == 0 {
		return false, errors.New("command not found: " + name)
	}
	if len(matches) > 1 {
		return false, errors.New("ambiguous command: " + name)
	}
	return matches[0].process(&c)
}

// Run starts an interactive prompt loop against c, returning when the
// user quits or aborts the prompt (Ctrl-D/Ctrl-C).
func Run(c Control) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var out []string
		for _, m := range matchList(partial) {
			out = append(out, m.name)
		}
		return out
	})

	for {
		input, err := line.Prompt("apsieve> ")
		if err == nil {
			line.AppendHistory(input)
			quit, err := processCommand(input, c)
			if err != nil {
				fmt.Println("error: " + err.Error())
			}
			if quit {
				return
			}
			continue
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			return
		}
		slog.Error("console: error reading line", "error", err)
		return
	}
}
