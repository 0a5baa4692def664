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

package fieldpath

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Path is a dot-separated field path, e.g. "book.authors[0].name".
// Map entries are addressed with a quoted key: `labels["env"]`.
type Path string

// MaxLength bounds the length of a valid path.
const MaxLength = 1024

const (
	// pathFmt is the canonical regular expression used to validate paths.
	//
	//	ident     = [A-Za-z_][A-Za-z0-9_]*
	//	key       = '"' ( [^"\\] | '\\' any )* '"'
	//	subscript = "[" ( [0-9]+ | key ) "]"
	//	segment   = ident subscript*
	//	path      = segment ("." segment)*
	pathFmt = `^` + segmentFmt + `(\.` + segmentFmt + `)*$`

	segmentFmt   = `[A-Za-z_][A-Za-z0-9_]*` + `(` + subscriptFmt + `)*`
	subscriptFmt = `\[([0-9]+|"([^"\\]|\\.)*")\]`
)

var pathRe = regexp.MustCompile(pathFmt)

var (
	// ErrPathEmpty is returned when a path is empty.
	ErrPathEmpty = errors.New("richerr: empty field path")
	// ErrPathInvalid is returned when a path is malformed or too long.
	ErrPathInvalid = errors.New("richerr: invalid field path")
)

var (
	_ encoding.TextMarshaler   = (*Path)(nil)
	_ encoding.TextUnmarshaler = (*Path)(nil)
)

// Empty is the zero-value path.
var Empty Path = ""

// Parse normalizes and validates s.
func Parse(s string) (Path, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Path(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Normalize trims surrounding spaces and removes spaces around separators
// ("a . b" becomes "a.b"). Field names are case-sensitive and are left as is.
//
// It does NOT guarantee that the result is valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, " \t") {
		return s
	}
	segs := split(s)
	for i, seg := range segs {
		segs[i] = strings.TrimSpace(seg)
	}
	return strings.Join(segs, ".")
}

// Validate checks whether p is a well-formed path.
func Validate(p Path) error {
	return validate(string(p))
}

// Join appends child names to p. An empty p yields the joined children.
func Join(p Path, children ...string) Path {
	parts := make([]string, 0, len(children)+1)
	if p != Empty {
		parts = append(parts, string(p))
	}
	for _, c := range children {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return Path(strings.Join(parts, "."))
}

// Index appends an element subscript to p: Index("authors", 2) is "authors[2]".
func Index(p Path, i int) Path {
	return Path(string(p) + "[" + strconv.Itoa(i) + "]")
}

// Key appends a map-key subscript to p: Key("labels", "env") is `labels["env"]`.
// The key is quoted with strconv.Quote.
func Key(p Path, key string) Path {
	return Path(string(p) + "[" + strconv.Quote(key) + "]")
}

// Segments splits p on '.', keeping subscripts attached to their segment.
// Dots inside quoted map keys do not split. An empty path has no segments.
func (p Path) Segments() []string {
	if p == Empty {
		return nil
	}
	return split(string(p))
}

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func validate(s string) error {
	if s == "" {
		return ErrPathEmpty
	}
	if len(s) > MaxLength || !pathRe.MatchString(s) {
		return ErrPathInvalid
	}
	return nil
}

// split cuts s on every '.' that is not inside a quoted map key.
func split(s string) []string {
	var (
		segs    []string
		start   int
		quoted  bool
		escaped bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case quoted && c == '\\':
			escaped = true
		case c == '"':
			quoted = !quoted
		case !quoted && c == '.':
			segs = append(segs, s[start:i])
			start = i + 1
		}
	}
	return append(segs, s[start:])
}
