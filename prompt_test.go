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
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/collisions/collision"
	"github.com/cybrota/collisions/store"
)

func newPromptStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(store.DefaultOptions(), zerolog.Nop())

	rows := []struct {
		zone, date, key string
		persons         collision.Casualties
		pedestrians     collision.Casualties
	}{
		{"11201", "01/15/2020", "k1", collision.Casualties{Injured: 2}, collision.Casualties{Injured: 1}},
		{"11201", "03/02/2020", "k2", collision.Casualties{Injured: 1, Killed: 1}, collision.Casualties{Killed: 1}},
		{"11201", "09/09/2020", "k3", collision.Casualties{Injured: 4}, collision.Casualties{}},
		{"10001", "02/01/2020", "k4", collision.Casualties{Injured: 7}, collision.Casualties{}},
	}
	for _, row := range rows {
		r, err := collision.NewRecord(row.zone, collision.MustParseDate(row.date), row.key,
			row.persons, row.pedestrians, collision.Casualties{}, collision.Casualties{})
		require.NoError(t, err)
		added, err := s.Add(r)
		require.NoError(t, err)
		require.True(t, added)
	}
	return s
}

func runPrompter(t *testing.T, input string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	p := newPrompter(strings.NewReader(input), &out, &errOut, newPromptStore(t))
	require.NoError(t, p.run())
	return out.String(), errOut.String()
}

func expectedReport(t *testing.T, zone, start, end string) string {
	t.Helper()
	s := newPromptStore(t)
	summary, err := s.Report(zone, collision.MustParseDate(start), collision.MustParseDate(end))
	require.NoError(t, err)
	return summary.String() + "\n"
}

func TestPrompterReport(t *testing.T) {
	out, errOut := runPrompter(t, "11201\n01/01/2020\n06/30/2020\nquit\n")

	want := zipPrompt + startPrompt + endPrompt +
		expectedReport(t, "11201", "01/01/2020", "06/30/2020") +
		zipPrompt
	assert.Equal(t, want, out)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Total number of collisions: 2\n")
	assert.Contains(t, out, "Number of fatalities: 1\n")
	assert.Contains(t, out, "Number of injuries: 3\n")
}

func TestPrompterOneLineQuery(t *testing.T) {
	out, errOut := runPrompter(t, "11201 01/01/2020 12/31/2020\nQUIT\n")

	assert.Empty(t, errOut)
	assert.Equal(t, zipPrompt+expectedReport(t, "11201", "01/01/2020", "12/31/2020")+zipPrompt, out)
	assert.Contains(t, out, "Total number of collisions: 3\n")
}

func TestPrompterInvalidZip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too short", "1120\n"},
		{"letters", "abcde\n"},
		{"one-line wrong arity", "11201 01/01/2020\n"},
		{"one-line bad quoting", "11201 \"01/01/2020 12/31/2020\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := runPrompter(t, tt.input+"quit\n")
			assert.Contains(t, errOut, invalidZipMsg)
			assert.Equal(t, zipPrompt+zipPrompt, out)
		})
	}
}

func TestPrompterInvalidDates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad start", "11201\n2020-01-01\n06/30/2020\n"},
		{"bad end", "11201\n01/01/2020\n13/45/2020\n"},
		{"start after end", "11201\n06/30/2020\n01/01/2020\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := runPrompter(t, tt.input+"quit\n")
			assert.Contains(t, errOut, invalidDateMsg)
			assert.Equal(t, zipPrompt+startPrompt+endPrompt+zipPrompt, out)
		})
	}
}

func TestPrompterSingleDay(t *testing.T) {
	out, errOut := runPrompter(t, "11201\n03/02/2020\n03/02/2020\nquit\n")
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Total number of collisions: 1\n")
}

func TestPrompterUnknownZip(t *testing.T) {
	out, errOut := runPrompter(t, "99999\n01/01/2020\n12/31/2020\nquit\n")
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Motor Vehicle Collisions for zipcode 99999 (01/01/2020 - 12/31/2020)")
	assert.Contains(t, out, "Total number of collisions: 0\n")
}

func TestPrompterEOF(t *testing.T) {
	out, errOut := runPrompter(t, "")
	assert.Equal(t, zipPrompt+"\n", out)
	assert.Empty(t, errOut)

	// input ending between the date prompts is not an error
	out, _ = runPrompter(t, "11201\n01/01/2020\n")
	assert.Equal(t, zipPrompt+startPrompt+endPrompt+"\n", out)
}

func TestParseRange(t *testing.T) {
	begin, end, ok := parseRange("7/4/2020", "07/05/2020")
	require.True(t, ok)
	assert.Equal(t, "07/04/2020", begin.String())
	assert.Equal(t, "07/05/2020", end.String())

	_, _, ok = parseRange("07/05/2020", "07/04/2020")
	assert.False(t, ok)
	_, _, ok = parseRange("", "07/04/2020")
	assert.False(t, ok)
}
