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

package richerr

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/richerr/apis"
	"dirpx.dev/richerr/fieldpath"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// TypeURLBadRequest is the type URL of the google.rpc.BadRequest message.
// Every envelope produced by BadRequest.IntoAny carries exactly this value.
const TypeURLBadRequest = "type.googleapis.com/google.rpc.BadRequest"

var (
	_ apis.Detail  = BadRequest{}
	_ apis.FromAny = (*BadRequest)(nil)
)

// BadRequest describes violations in a client request. It focuses on the
// syntactic aspects of the request.
//
// The zero value is an empty, valid BadRequest. Violations keep their
// insertion order through encode/decode; duplicates are allowed.
type BadRequest struct {
	// FieldViolations lists every field violation, in report order.
	FieldViolations []FieldViolation
}

// NewBadRequest wraps an already built list of violations. The slice is used
// as is, not copied.
func NewBadRequest(violations []FieldViolation) BadRequest {
	return BadRequest{FieldViolations: violations}
}

// WithViolation returns a BadRequest holding a single violation with an
// empty reason and no localized message.
func WithViolation(field, description string) BadRequest {
	return BadRequest{
		FieldViolations: []FieldViolation{{Field: field, Description: description}},
	}
}

// AddViolation appends a violation with an empty reason and no localized
// message, and returns b so calls can be chained:
//
//	br.AddViolation("a", "bad").AddViolation("b", "worse")
func (b *BadRequest) AddViolation(field, description string) *BadRequest {
	b.FieldViolations = append(b.FieldViolations, FieldViolation{Field: field, Description: description})
	return b
}

// AddViolationPath is AddViolation for a path built with package fieldpath.
func (b *BadRequest) AddViolationPath(p fieldpath.Path, description string) *BadRequest {
	return b.AddViolation(p.String(), description)
}

// Append appends fully built violations in order and returns b.
func (b *BadRequest) Append(vs ...FieldViolation) *BadRequest {
	b.FieldViolations = append(b.FieldViolations, vs...)
	return b
}

// IsEmpty reports whether b holds no violations.
func (b BadRequest) IsEmpty() bool {
	return len(b.FieldViolations) == 0
}

// Equal reports whether b and o hold equal violations in the same order.
// A nil and an empty list are equal.
func (b BadRequest) Equal(o BadRequest) bool {
	if len(b.FieldViolations) != len(o.FieldViolations) {
		return false
	}
	for i := range b.FieldViolations {
		if !b.FieldViolations[i].Equal(o.FieldViolations[i]) {
			return false
		}
	}
	return true
}

// Validate runs FieldViolation.Validate on every violation and joins the
// problems, each prefixed with its index.
func (b BadRequest) Validate() error {
	var errs []error
	for i, v := range b.FieldViolations {
		if err := v.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("field_violations[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// String renders b for logs and test failures.
func (b BadRequest) String() string {
	var sb strings.Builder
	sb.WriteString("BadRequest{FieldViolations: [")
	for i, v := range b.FieldViolations {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString("]}")
	return sb.String()
}

// TypeURL implements apis.Detail.
func (BadRequest) TypeURL() string { return TypeURLBadRequest }

// IntoAny implements apis.Detail. It never fails.
//
// b is received by value and mapped into freshly allocated wire messages, so
// the envelope shares nothing with the caller's value.
func (b BadRequest) IntoAny() *anypb.Any {
	// Strings are sanitized to valid UTF-8 by toProto, which is the only
	// reason proto.Marshal could reject this message.
	value, _ := proto.Marshal(b.toProto())
	return &anypb.Any{
		TypeUrl: TypeURLBadRequest,
		Value:   value,
	}
}

// FromAny implements apis.FromAny. It parses a's payload as a
// google.rpc.BadRequest without looking at a's type URL and replaces b's
// contents on success. Unknown fields are ignored.
func (b *BadRequest) FromAny(a *anypb.Any) error {
	if a == nil {
		return &DecodeError{TypeURL: TypeURLBadRequest, Err: ErrNilEnvelope}
	}
	var msg errdetails.BadRequest
	if err := proto.Unmarshal(a.GetValue(), &msg); err != nil {
		return &DecodeError{TypeURL: TypeURLBadRequest, Err: err}
	}
	*b = badRequestFromProto(&msg)
	return nil
}

// MarshalJSON encodes b as the canonical proto3 JSON of google.rpc.BadRequest.
// Every field is written, including reason and localized_message.
func (b BadRequest) MarshalJSON() ([]byte, error) {
	return protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(b.toProtoFull())
}

// UnmarshalJSON decodes the canonical proto3 JSON of google.rpc.BadRequest.
// Unknown fields are ignored.
func (b *BadRequest) UnmarshalJSON(data []byte) error {
	var msg errdetails.BadRequest
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(data, &msg); err != nil {
		return &DecodeError{TypeURL: TypeURLBadRequest, Err: err}
	}
	*b = badRequestFromProto(&msg)
	return nil
}

func (b BadRequest) toProto() *errdetails.BadRequest {
	msg := &errdetails.BadRequest{
		FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(b.FieldViolations)),
	}
	for _, v := range b.FieldViolations {
		msg.FieldViolations = append(msg.FieldViolations, v.toProto())
	}
	return msg
}

// toProtoFull is toProto without the envelope's field drop.
func (b BadRequest) toProtoFull() *errdetails.BadRequest {
	msg := &errdetails.BadRequest{
		FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(b.FieldViolations)),
	}
	for _, v := range b.FieldViolations {
		msg.FieldViolations = append(msg.FieldViolations, v.toProtoFull())
	}
	return msg
}

func badRequestFromProto(msg *errdetails.BadRequest) BadRequest {
	pbs := msg.GetFieldViolations()
	vs := make([]FieldViolation, 0, len(pbs))
	for _, pb := range pbs {
		vs = append(vs, fieldViolationFromProto(pb))
	}
	return BadRequest{FieldViolations: vs}
}
