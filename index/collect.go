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

package index

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/cybrota/collisions/collision"
)

var zonePattern = regexp.MustCompile(`^\d{5}$`)

// ValidZone reports whether zone is a five digit zip code.
func ValidZone(zone string) bool {
	return zonePattern.MatchString(zone)
}

// Collect returns every record in zone whose date lies in [begin, end].
// The order of the result is unspecified.
func (tree *Tree) Collect(zone string, begin, end collision.Date) ([]*collision.Record, error) {
	if !ValidZone(zone) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidZone, zone)
	}
	target, err := strconv.Atoi(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidZone, zone, err)
	}

	var results []*collision.Record
	if begin.After(end) {
		return results, nil
	}
	collect(tree.root, target, begin, end, &results)
	return results, nil
}

// collect prunes on zip code only. Records of one zip are spread over both
// subtrees of any node in that zip, so a zip match always descends both ways.
func collect(n *node, target int, begin, end collision.Date, results *[]*collision.Record) {
	if n == nil {
		return
	}

	zone, err := strconv.Atoi(n.record.Zone())
	if err != nil {
		// unreachable for records built by collision.NewRecord
		collect(n.left, target, begin, end, results)
		collect(n.right, target, begin, end, results)
		return
	}

	switch {
	case zone > target:
		collect(n.left, target, begin, end, results)
	case zone < target:
		collect(n.right, target, begin, end, results)
	default:
		d := n.record.Date()
		if !d.Before(begin) && !d.After(end) {
			*results = append(*results, n.record)
		}
		collect(n.left, target, begin, end, results)
		collect(n.right, target, begin, end, results)
	}
}
