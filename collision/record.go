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

package collision

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Column layout of the NYC motor vehicle collisions dataset.
const (
	MinFields = 24
	MaxFields = 29

	colDate               = 0
	colZip                = 3
	colPersonsInjured     = 10
	colPersonsKilled      = 11
	colPedestriansInjured = 12
	colPedestriansKilled  = 13
	colCyclistsInjured    = 14
	colCyclistsKilled     = 15
	colMotoristsInjured   = 16
	colMotoristsKilled    = 17
	colKey                = 23
)

var recordValidate = validator.New()

// ValidationError reports why a record could not be built.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid collision record: " + e.Reason
	}
	return fmt.Sprintf("invalid collision record: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Casualties counts the injured and killed of one person category.
type Casualties struct {
	Injured int `validate:"gte=0"`
	Killed  int `validate:"gte=0"`
}

// Record is a single validated collision. Records are never mutated after construction.
type Record struct {
	zone        string
	date        Date
	key         string
	persons     Casualties
	pedestrians Casualties
	cyclists    Casualties
	motorists   Casualties
}

// recordInput mirrors Record with validation tags.
type recordInput struct {
	Zone        string `validate:"len=5,number"`
	Key         string `validate:"required"`
	Persons     Casualties
	Pedestrians Casualties
	Cyclists    Casualties
	Motorists   Casualties
}

// NewRecord validates its arguments and returns an immutable Record.
func NewRecord(zone string, date Date, key string, persons, pedestrians, cyclists, motorists Casualties) (*Record, error) {
	if date.IsZero() {
		return nil, &ValidationError{Field: "Date", Reason: "is required"}
	}
	in := recordInput{
		Zone:        zone,
		Key:         key,
		Persons:     persons,
		Pedestrians: pedestrians,
		Cyclists:    cyclists,
		Motorists:   motorists,
	}
	if err := recordValidate.Struct(in); err != nil {
		return nil, toValidationError(err)
	}
	return &Record{
		zone:        zone,
		date:        date,
		key:         key,
		persons:     persons,
		pedestrians: pedestrians,
		cyclists:    cyclists,
		motorists:   motorists,
	}, nil
}

func toValidationError(err error) *ValidationError {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{
			Field:  fe.Namespace(),
			Reason: fmt.Sprintf("failed %q check (value %v)", fe.Tag(), fe.Value()),
			Err:    err,
		}
	}
	return &ValidationError{Reason: err.Error(), Err: err}
}

// FromFields builds a record from the entries of one CSV row.
func FromFields(fields []string) (*Record, error) {
	if len(fields) < MinFields || len(fields) > MaxFields {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("expected %d to %d fields, got %d", MinFields, MaxFields, len(fields)),
		}
	}

	date, err := ParseDate(fields[colDate])
	if err != nil {
		return nil, &ValidationError{Field: "Date", Reason: "is malformed", Err: err}
	}

	counts := make([]int, 0, colMotoristsKilled-colPersonsInjured+1)
	for col := colPersonsInjured; col <= colMotoristsKilled; col++ {
		n, err := strconv.Atoi(fields[col])
		if err != nil {
			return nil, &ValidationError{
				Field:  fmt.Sprintf("column %d", col),
				Reason: fmt.Sprintf("is not an integer (%q)", fields[col]),
				Err:    err,
			}
		}
		counts = append(counts, n)
	}

	return NewRecord(
		fields[colZip],
		date,
		fields[colKey],
		Casualties{Injured: counts[0], Killed: counts[1]},
		Casualties{Injured: counts[2], Killed: counts[3]},
		Casualties{Injured: counts[4], Killed: counts[5]},
		Casualties{Injured: counts[6], Killed: counts[7]},
	)
}

func (r *Record) Zone() string { return r.zone }

func (r *Record) Date() Date { return r.date }

func (r *Record) Key() string { return r.key }

func (r *Record) Persons() Casualties { return r.persons }

func (r *Record) Pedestrians() Casualties { return r.pedestrians }

func (r *Record) Cyclists() Casualties { return r.cyclists }

func (r *Record) Motorists() Casualties { return r.motorists }

// Compare orders records by zone, then date, then key ignoring case.
func (r *Record) Compare(other *Record) int {
	if c := strings.Compare(r.zone, other.zone); c != 0 {
		return c
	}
	if c := r.date.Compare(other.date); c != 0 {
		return c
	}
	return compareFold(r.key, other.key)
}

// compareFold compares the lower-cased strings, so "KEY-1" and "key-1" are the same key.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func (r *Record) String() string {
	return fmt.Sprintf("%s %s %s", r.zone, r.date, r.key)
}
