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

package store

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/collisions/collision"
)

type LoadOptions struct {
	ShowProgress bool
	// Size is the input length in bytes; 0 shows a spinner instead of a bar.
	Size int64
	// ProgressWriter defaults to os.Stderr.
	ProgressWriter io.Writer
}

// LoadStats counts what happened to the lines of one input.
type LoadStats struct {
	Lines      int // data lines read, header and blank lines excluded
	Added      int
	Skipped    int // malformed lines
	Duplicates int
}

// Load reads a collisions CSV from r into s. The first line is a header and
// is ignored. Malformed lines are logged and skipped; only read errors
// abort the load.
func Load(r io.Reader, s *Store, opts LoadOptions) (LoadStats, error) {
	var stats LoadStats

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = newLoadBar(opts)
	}

	scanner := bufio.NewScanner(r)
	// Increase buffer size for better performance with large input files
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++
		if bar != nil {
			_ = bar.Add(len(line) + 1)
		}

		if lineNo == 1 || len(line) == 0 {
			continue
		}
		stats.Lines++

		rec, err := collision.FromFields(collision.SplitCSVLine(line))
		if err != nil {
			stats.Skipped++
			s.log.Debug().Int("line", lineNo).Err(err).Msg("skipping malformed line")
			continue
		}

		added, err := s.Add(rec)
		if err != nil {
			stats.Skipped++
			s.log.Debug().Int("line", lineNo).Err(err).Msg("skipping line")
			continue
		}
		if !added {
			stats.Duplicates++
			continue
		}
		stats.Added++
	}

	if bar != nil {
		_ = bar.Finish()
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read collisions at line %d: %w", lineNo, err)
	}

	s.log.Info().
		Int("lines", stats.Lines).
		Int("added", stats.Added).
		Int("skipped", stats.Skipped).
		Int("duplicates", stats.Duplicates).
		Msg("collisions loaded")
	return stats, nil
}

// LoadFile opens path and loads it into s. A missing file yields an error
// matching fs.ErrNotExist.
func LoadFile(path string, s *Store, opts LoadOptions) (LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadStats{}, fmt.Errorf("the file %s does not exist: %w", path, err)
		}
		return LoadStats{}, err
	}
	defer file.Close()

	if opts.Size == 0 {
		if stat, err := file.Stat(); err == nil {
			opts.Size = stat.Size()
		}
	}
	return Load(file, s, opts)
}

func newLoadBar(opts LoadOptions) *progressbar.ProgressBar {
	w := opts.ProgressWriter
	if w == nil {
		w = os.Stderr
	}
	size := opts.Size
	if size <= 0 {
		size = -1
	}
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Loading collisions..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}
