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

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/collisions/collision"
)

const rule = "===================================================================="

// Totals sums one casualty category. int64 counters hold up to math.MaxInt64
// people per category, so no realistic dataset can overflow them.
type Totals struct {
	Injured int64
	Killed  int64
}

func (t *Totals) add(c collision.Casualties) {
	t.Injured += int64(c.Injured)
	t.Killed += int64(c.Killed)
}

// Summary is the aggregate of all collisions of one zip code in a date range.
type Summary struct {
	Zone  string
	Begin collision.Date
	End   collision.Date
	Count int

	Persons     Totals
	Pedestrians Totals
	Cyclists    Totals
	Motorists   Totals
}

// Aggregate folds records into a Summary. The input is not modified and its
// order does not matter.
func Aggregate(zone string, begin, end collision.Date, records []*collision.Record) Summary {
	s := Summary{Zone: zone, Begin: begin, End: end}
	for _, r := range records {
		if r == nil {
			continue
		}
		s.Count++
		s.Persons.add(r.Persons())
		s.Pedestrians.add(r.Pedestrians())
		s.Cyclists.add(r.Cyclists())
		s.Motorists.add(r.Motorists())
	}
	return s
}

// String renders the fixed-layout report. Fatality sub-labels are right
// aligned to 22 columns, injury sub-labels to 20.
func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nMotor Vehicle Collisions for zipcode %s (%s - %s)\n%s\n", s.Zone, s.Begin, s.End, rule)
	fmt.Fprintf(&sb, "Total number of collisions: %d\n", s.Count)

	fmt.Fprintf(&sb, "Number of fatalities: %d\n", s.Persons.Killed)
	fmt.Fprintf(&sb, "%22s%d\n", "pedestrians: ", s.Pedestrians.Killed)
	fmt.Fprintf(&sb, "%22s%d\n", "cyclists: ", s.Cyclists.Killed)
	fmt.Fprintf(&sb, "%22s%d\n", "motorists: ", s.Motorists.Killed)

	fmt.Fprintf(&sb, "Number of injuries: %d\n", s.Persons.Injured)
	fmt.Fprintf(&sb, "%20s%d\n", "pedestrians: ", s.Pedestrians.Injured)
	fmt.Fprintf(&sb, "%20s%d\n", "cyclists: ", s.Cyclists.Injured)
	fmt.Fprintf(&sb, "%20s%d", "motorists: ", s.Motorists.Injured)
	return sb.String()
}

// Write prints the report followed by a newline.
func Write(w io.Writer, s Summary) error {
	_, err := fmt.Fprintln(w, s.String())
	return err
}
