/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is the canonical representation of a field violation reason.
type Reason string

// MinLength and MaxLength define the allowed length range for a non-empty
// reason. They mirror the limits google.rpc uses for ErrorInfo reasons.
const (
	// MinLength is the minimum length for a non-empty reason.
	MinLength = 2

	// MaxLength is the maximum length for a valid reason.
	MaxLength = 63
)

const (
	// reasonFmt is the canonical regular expression used to validate reasons.
	//
	//	^[A-Z]         - first character must be an uppercase ASCII letter;
	//	[A-Z0-9_]*     - uppercase letters, digits or underscore;
	//	[A-Z0-9]$      - must not end with an underscore.
	//
	// Length limits are checked separately in validate.
	reasonFmt = `^[A-Z][A-Z0-9_]*[A-Z0-9]$`
)

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason is not SCREAMING_SNAKE_CASE.
	ErrReasonInvalidFormat = errors.New("richerr: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or too long.
	ErrReasonInvalidLength = errors.New("richerr: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty is the zero-value reason, meaning "not provided".
var Empty Reason = ""

// Normalize brings an arbitrary string closer to the canonical form:
//
//   - trims surrounding spaces;
//   - upper-cases the value;
//   - replaces '-', '.', '/' and inner spaces with '_'.
//
// It does NOT guarantee validity; callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	return strings.NewReplacer("-", "_", ".", "_", "/", "_", " ", "_").Replace(s)
}

// Parse normalizes and validates s. The empty string yields Empty and no error.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is the panic-on-error variant of Parse, meant for package-level
// declarations. Unlike Parse it rejects the empty string.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("richerr: empty reason in MustParse")
	}
	return r
}

// Validate checks whether r is in canonical form. Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// String returns the reason as a plain string.
func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Whitespace-only input produces Empty.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
