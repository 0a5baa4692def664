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

// Package zerologx renders rich error details as zerolog objects.
//
//	logger.Warn().
//	    Object("bad_request", zerologx.BadRequest(br)).
//	    Msg("request rejected")
//
// A BadRequest is logged as:
//
//	{"count": 2, "field_violations": [{"field": "...", "description": "...",
//	  "reason": "...", "localized_message": {"locale": "...", "message": "..."}}]}
//
// reason and localized_message are omitted when unset.
package zerologx

import (
	"dirpx.dev/richerr"
	"github.com/rs/zerolog"
)

// BadRequest wraps b for Object() or EmbedObject().
func BadRequest(b richerr.BadRequest) zerolog.LogObjectMarshaler {
	return badRequestMarshaler{b: b}
}

// Violation wraps a single violation for Object() or EmbedObject().
func Violation(v richerr.FieldViolation) zerolog.LogObjectMarshaler {
	return violationMarshaler{v: v}
}

type badRequestMarshaler struct {
	b richerr.BadRequest
}

func (m badRequestMarshaler) MarshalZerologObject(e *zerolog.Event) {
	e.Int("count", len(m.b.FieldViolations))
	e.Array("field_violations", violationsMarshaler(m.b.FieldViolations))
}

type violationsMarshaler []richerr.FieldViolation

func (vs violationsMarshaler) MarshalZerologArray(a *zerolog.Array) {
	for _, v := range vs {
		a.Object(violationMarshaler{v: v})
	}
}

type violationMarshaler struct {
	v richerr.FieldViolation
}

func (m violationMarshaler) MarshalZerologObject(e *zerolog.Event) {
	e.Str("field", m.v.Field)
	e.Str("description", m.v.Description)
	if m.v.Reason != "" {
		e.Str("reason", m.v.Reason)
	}
	if lm := m.v.LocalizedMessage; lm != nil {
		e.Dict("localized_message", zerolog.Dict().
			Str("locale", lm.Locale).
			Str("message", lm.Message))
	}
}
