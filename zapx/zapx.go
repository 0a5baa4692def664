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

// Package zapx renders rich error details as zap fields.
//
//	logger.Warn("request rejected", zapx.BadRequest(br))
//
// The object layout matches package zerologx.
package zapx

import (
	"dirpx.dev/richerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BadRequest nests b under the "bad_request" key.
func BadRequest(b richerr.BadRequest) zap.Field {
	return zap.Object("bad_request", badRequestMarshaler{b: b})
}

// BadRequestInline expands b's fields at the top level of the entry.
func BadRequestInline(b richerr.BadRequest) zap.Field {
	return zap.Inline(badRequestMarshaler{b: b})
}

type badRequestMarshaler struct {
	b richerr.BadRequest
}

func (m badRequestMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("count", len(m.b.FieldViolations))
	return enc.AddArray("field_violations", violationsMarshaler(m.b.FieldViolations))
}

type violationsMarshaler []richerr.FieldViolation

func (vs violationsMarshaler) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, v := range vs {
		if err := enc.AppendObject(violationMarshaler{v: v}); err != nil {
			return err
		}
	}
	return nil
}

type violationMarshaler struct {
	v richerr.FieldViolation
}

func (m violationMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("field", m.v.Field)
	enc.AddString("description", m.v.Description)
	if m.v.Reason != "" {
		enc.AddString("reason", m.v.Reason)
	}
	if lm := m.v.LocalizedMessage; lm != nil {
		return enc.AddObject("localized_message", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
			enc.AddString("locale", lm.Locale)
			enc.AddString("message", lm.Message)
			return nil
		}))
	}
	return nil
}
