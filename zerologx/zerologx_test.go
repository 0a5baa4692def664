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

package zerologx_test

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"dirpx.dev/richerr"
	"dirpx.dev/richerr/zerologx"
	"github.com/rs/zerolog"
)

func logLine(t *testing.T, fn func(zerolog.Logger)) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	fn(zerolog.New(&buf))
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	return got
}

func TestBadRequest(t *testing.T) {
	br := richerr.WithViolation("field_a", "description_a")
	br.Append(richerr.NewFieldViolation("email", "bad",
		richerr.WithReasonOption("INVALID_EMAIL_FORMAT"),
		richerr.WithLocalizedMessageOption("en", "bad email"),
	))

	got := logLine(t, func(l zerolog.Logger) {
		l.Info().Object("bad_request", zerologx.BadRequest(br)).Msg("rejected")
	})

	want := map[string]any{
		"count": float64(2),
		"field_violations": []any{
			map[string]any{"field": "field_a", "description": "description_a"},
			map[string]any{
				"field":             "email",
				"description":       "bad",
				"reason":            "INVALID_EMAIL_FORMAT",
				"localized_message": map[string]any{"locale": "en", "message": "bad email"},
			},
		},
	}
	if !reflect.DeepEqual(got["bad_request"], want) {
		t.Fatalf("bad_request = %#v\nwant %#v", got["bad_request"], want)
	}
	if got["message"] != "rejected" {
		t.Fatalf("message = %v", got["message"])
	}
}

func TestBadRequest_Empty(t *testing.T) {
	got := logLine(t, func(l zerolog.Logger) {
		l.Info().EmbedObject(zerologx.BadRequest(richerr.BadRequest{})).Msg("")
	})
	if got["count"] != float64(0) {
		t.Fatalf("count = %v", got["count"])
	}
	if fv, ok := got["field_violations"].([]any); !ok || len(fv) != 0 {
		t.Fatalf("field_violations = %#v", got["field_violations"])
	}
}

func TestViolation(t *testing.T) {
	got := logLine(t, func(l zerolog.Logger) {
		l.Info().EmbedObject(zerologx.Violation(richerr.FieldViolation{Field: "a", Description: "b"})).Msg("")
	})
	if got["field"] != "a" || got["description"] != "b" {
		t.Fatalf("violation = %#v", got)
	}
	if _, ok := got["reason"]; ok {
		t.Fatal("empty reason must be omitted")
	}
}
