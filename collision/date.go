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

// date.go
// The placeholder translation is adapted from https://github.com/metakeule/fmtdate by Marc René Arns

package collision

import (
	"fmt"
	"strings"
	"time"
)

/*
	Formats:

	M    - month (1)
	MM   - month (01)
	D    - day (2)
	DD   - day (02)
	YY   - year (06)
	YYYY - year (2006)
*/

type p struct{ find, subst string }

// Placeholder order matters: longer tokens are replaced before their prefixes.
var Placeholder = []p{
	{"MM", "01"},
	{"M", "1"},
	{"YYYY", "2006"},
	{"YY", "06"},
	{"DD", "02"},
	{"D", "2"},
}

var (
	DefaultDateFormat = "MM/DD/YYYY"
	// ShortDateFormat is tried when the padded layout fails, e.g. "1/5/2020".
	ShortDateFormat = "M/D/YYYY"
)

// Translate translates a memorable format to go library's syntax
func Translate(format string) string {
	out := format
	for _, ph := range Placeholder {
		out = strings.Replace(out, ph.find, ph.subst, -1)
	}
	return out
}

// Date is a calendar day. The zero value is not a valid date.
type Date struct {
	t time.Time
}

// NewDate returns the date for the given calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in DefaultDateFormat, falling back to ShortDateFormat.
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	t, err := time.Parse(Translate(DefaultDateFormat), value)
	if err != nil {
		var shortErr error
		t, shortErr = time.Parse(Translate(ShortDateFormat), value)
		if shortErr != nil {
			return Date{}, fmt.Errorf("invalid date %q: expected %s", value, DefaultDateFormat)
		}
	}
	return Date{t: t}, nil
}

// MustParseDate is like ParseDate but panics on malformed input.
func MustParseDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// String formats the date in DefaultDateFormat
func (d Date) String() string {
	return d.t.Format(Translate(DefaultDateFormat))
}
