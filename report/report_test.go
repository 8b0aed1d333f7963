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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/collisions/collision"
)

func record(t *testing.T, key string, persons, pedestrians, cyclists, motorists collision.Casualties) *collision.Record {
	t.Helper()
	r, err := collision.NewRecord("10001", collision.MustParseDate("02/03/2020"), key, persons, pedestrians, cyclists, motorists)
	require.NoError(t, err)
	return r
}

var (
	begin = collision.MustParseDate("01/01/2020")
	end   = collision.MustParseDate("06/30/2020")
)

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate("10001", begin, end, nil)

	want := "\nMotor Vehicle Collisions for zipcode 10001 (01/01/2020 - 06/30/2020)\n" +
		"====================================================================\n" +
		"Total number of collisions: 0\n" +
		"Number of fatalities: 0\n" +
		"         pedestrians: 0\n" +
		"            cyclists: 0\n" +
		"           motorists: 0\n" +
		"Number of injuries: 0\n" +
		"       pedestrians: 0\n" +
		"          cyclists: 0\n" +
		"         motorists: 0"
	assert.Equal(t, want, s.String())
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, Totals{}, s.Persons)
}

func TestAggregateSums(t *testing.T) {
	records := []*collision.Record{
		record(t, "a",
			collision.Casualties{Injured: 3, Killed: 1},
			collision.Casualties{Injured: 1, Killed: 1},
			collision.Casualties{Injured: 1},
			collision.Casualties{Injured: 1}),
		record(t, "b",
			collision.Casualties{Injured: 12},
			collision.Casualties{},
			collision.Casualties{Injured: 2},
			collision.Casualties{Injured: 10}),
		nil,
		record(t, "c",
			collision.Casualties{Killed: 2},
			collision.Casualties{},
			collision.Casualties{Killed: 1},
			collision.Casualties{Killed: 1}),
	}

	s := Aggregate("10001", begin, end, records)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, Totals{Injured: 15, Killed: 3}, s.Persons)
	assert.Equal(t, Totals{Injured: 1, Killed: 1}, s.Pedestrians)
	assert.Equal(t, Totals{Injured: 3, Killed: 1}, s.Cyclists)
	assert.Equal(t, Totals{Injured: 11, Killed: 1}, s.Motorists)

	want := "\nMotor Vehicle Collisions for zipcode 10001 (01/01/2020 - 06/30/2020)\n" +
		"====================================================================\n" +
		"Total number of collisions: 3\n" +
		"Number of fatalities: 3\n" +
		"         pedestrians: 1\n" +
		"            cyclists: 1\n" +
		"           motorists: 1\n" +
		"Number of injuries: 15\n" +
		"       pedestrians: 1\n" +
		"          cyclists: 3\n" +
		"         motorists: 11"
	assert.Equal(t, want, s.String())

	// order independent
	reversed := []*collision.Record{records[3], records[1], records[0]}
	assert.Equal(t, s, Aggregate("10001", begin, end, reversed))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	s := Aggregate("11201", begin, end, nil)
	require.NoError(t, Write(&buf, s))
	assert.Equal(t, s.String()+"\n", buf.String())
}
