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
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  full_name  ", "full_name"},
		{"spaces around dots", "book . authors[0] . name", "book.authors[0].name"},
		{"case kept", "displayName", "displayName"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"full_name", "full_name"},
		{"email_addresses[1].email", "email_addresses[1].email"},
		{"book.authors[0].name", "book.authors[0].name"},
		{"matrix[1][2]", "matrix[1][2]"},
		{`labels["env"]`, `labels["env"]`},
		{`config.labels["env"].value`, `config.labels["env"].value`},
		{`labels["a\"b"]`, `labels["a\"b"]`},
		{` labels["a.b"] . value `, `labels["a.b"].value`},
		{"_private", "_private"},
		{" a . b ", "a.b"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrPathEmpty},
		{"spaces only", "   ", ErrPathEmpty},
		{"double dot", "a..b", ErrPathInvalid},
		{"trailing dot", "a.", ErrPathInvalid},
		{"leading digit", "1field", ErrPathInvalid},
		{"dash", "first-name", ErrPathInvalid},
		{"negative index", "items[-1]", ErrPathInvalid},
		{"unquoted map key", `labels[env]`, ErrPathInvalid},
		{"unterminated map key", `labels["env]`, ErrPathInvalid},
		{"empty subscript", `labels[]`, ErrPathInvalid},
		{"too long", strings.Repeat("a", MaxLength+1), ErrPathInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse must panic on invalid path")
		}
	}()
	_ = MustParse("a..b")
}

func TestJoinAndIndex(t *testing.T) {
	p := Join(Empty, "book")
	p = Join(Index(Join(p, "authors"), 2), "name")
	if p != "book.authors[2].name" {
		t.Fatalf("built path = %q, want %q", p, "book.authors[2].name")
	}
	if err := Validate(p); err != nil {
		t.Fatalf("Validate(%q) unexpected error: %v", p, err)
	}
	if got := Join("a", "", "b"); got != "a.b" {
		t.Fatalf("Join skips empty children: got %q", got)
	}
}

func TestKey(t *testing.T) {
	p := Join(Key(Join(Empty, "labels"), "env"), "value")
	if p != `labels["env"].value` {
		t.Fatalf("built path = %q, want %q", p, `labels["env"].value`)
	}
	if err := Validate(p); err != nil {
		t.Fatalf("Validate(%q) unexpected error: %v", p, err)
	}
	if err := Validate(Key("labels", `say "hi"`)); err != nil {
		t.Fatalf("Validate(quoted key) unexpected error: %v", err)
	}
}

func TestSegments(t *testing.T) {
	got := Path("book.authors[2].name").Segments()
	want := []string{"book", "authors[2]", "name"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segments = %v, want %v", got, want)
	}
	got = Path(`config.labels["a.b"].value`).Segments()
	want = []string{"config", `labels["a.b"]`, "value"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segments with dotted key = %v, want %v", got, want)
	}
	if segs := Empty.Segments(); segs != nil {
		t.Fatalf("Empty.Segments = %v, want nil", segs)
	}
}

func TestPath_Text(t *testing.T) {
	var p Path
	if err := p.UnmarshalText([]byte(" items[3].sku ")); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	text, err := p.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText unexpected error: %v", err)
	}
	if string(text) != "items[3].sku" {
		t.Fatalf("MarshalText = %q, want %q", text, "items[3].sku")
	}
	if _, err := Path("a..b").MarshalText(); err == nil {
		t.Fatalf("MarshalText on invalid path must return error")
	}
}
