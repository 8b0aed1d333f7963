// Copyright 2025 Naren Yellavula
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/cybrota/collisions/collision"
	"github.com/cybrota/collisions/index"
	"github.com/cybrota/collisions/report"
	"github.com/cybrota/collisions/store"
)

const (
	zipPrompt   = "Enter a zipcode ('quit' to exit): "
	startPrompt = "Enter start date (MM/DD/YYYY): "
	endPrompt   = "Enter end date (MM/DD/YYYY): "

	invalidZipMsg  = "Invalid zip code. Try again."
	invalidDateMsg = "Invalid date format. Try again."
)

var errQuit = errors.New("quit")

// prompter runs the interactive report loop over a loaded store.
type prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
	store  *store.Store
}

func newPrompter(in io.Reader, out, errOut io.Writer, s *store.Store) *prompter {
	return &prompter{
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
		store:  s,
	}
}

// run prompts until the user types quit or the input ends. Bad input is
// reported and the zip code prompt repeats.
func (p *prompter) run() error {
	for {
		err := p.query()
		switch {
		case err == nil:
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}
	}
}

// query handles one zip code prompt and the date prompts that follow it.
func (p *prompter) query() error {
	line, err := p.ask(zipPrompt)
	if err != nil {
		return err
	}

	if strings.EqualFold(line, "quit") {
		return errQuit
	}

	zip, start, end := line, "", ""
	if strings.ContainsAny(line, " \t") {
		// one-line form: <zip> <start> <end>
		words, err := shellwords.Parse(line)
		if err != nil || len(words) != 3 {
			p.fail(invalidZipMsg)
			return nil
		}
		zip, start, end = words[0], words[1], words[2]
	}

	if !index.ValidZone(zip) {
		p.fail(invalidZipMsg)
		return nil
	}

	if start == "" {
		if start, err = p.ask(startPrompt); err != nil {
			return err
		}
		if end, err = p.ask(endPrompt); err != nil {
			return err
		}
	}

	begin, finish, ok := parseRange(start, end)
	if !ok {
		p.fail(invalidDateMsg)
		return nil
	}

	summary, err := p.store.Report(zip, begin, finish)
	if err != nil {
		p.fail(err.Error())
		return nil
	}
	return report.Write(p.out, summary)
}

// parseRange parses both dates and requires begin not to be after end.
func parseRange(start, end string) (collision.Date, collision.Date, bool) {
	begin, err := collision.ParseDate(start)
	if err != nil {
		return collision.Date{}, collision.Date{}, false
	}
	finish, err := collision.ParseDate(end)
	if err != nil {
		return collision.Date{}, collision.Date{}, false
	}
	if begin.After(finish) {
		return collision.Date{}, collision.Date{}, false
	}
	return begin, finish, true
}

func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) fail(msg string) {
	fmt.Fprintf(p.errOut, "%s\n\n", errorStyle.Render(msg))
}
