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
	"unicode/utf8"

	"dirpx.dev/richerr/fieldpath"
	"dirpx.dev/richerr/reason"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

// FieldViolation describes a single malformed field of a client request.
//
// None of the fields are validated on construction; empty strings are legal.
// Call Validate to check them explicitly.
type FieldViolation struct {
	// Field is the path to the offending field in the request body, a
	// sequence of dot-separated protocol buffer field names, e.g.
	// "email_addresses[1].email". See package fieldpath.
	Field string

	// Description explains why the field is bad, in free text.
	Description string

	// Reason is a SCREAMING_SNAKE_CASE identifier from the domain of the
	// API service, e.g. "INVALID_EMAIL_FORMAT". May be empty.
	// See package reason.
	Reason string

	// LocalizedMessage is an optional translated variant of Description.
	LocalizedMessage *LocalizedMessage
}

// NewFieldViolation builds a violation for field with the given description
// and applies all options in order.
//
//	v := richerr.NewFieldViolation("email", "not an address",
//	    richerr.WithReasonOption("INVALID_EMAIL_FORMAT"),
//	    richerr.WithLocalizedMessageOption("de-DE", "keine Adresse"),
//	)
func NewFieldViolation(field, description string, opts ...ViolationOption) FieldViolation {
	v := FieldViolation{Field: field, Description: description}
	for _, opt := range opts {
		v = opt(v)
	}
	return v
}

// Equal reports whether v and o are structurally identical.
func (v FieldViolation) Equal(o FieldViolation) bool {
	return v.Field == o.Field &&
		v.Description == o.Description &&
		v.Reason == o.Reason &&
		v.LocalizedMessage.Equal(o.LocalizedMessage)
}

// Validate checks that Field is a well-formed field path and that Reason is
// either empty or SCREAMING_SNAKE_CASE. All problems are joined.
func (v FieldViolation) Validate() error {
	var errs []error
	if err := fieldpath.Validate(fieldpath.Path(v.Field)); err != nil {
		errs = append(errs, fmt.Errorf("field %q: %w", v.Field, err))
	}
	if err := reason.Validate(reason.Reason(v.Reason)); err != nil {
		errs = append(errs, fmt.Errorf("reason %q: %w", v.Reason, err))
	}
	return errors.Join(errs...)
}

// String renders v for logs and test failures.
func (v FieldViolation) String() string {
	lm := "nil"
	if v.LocalizedMessage != nil {
		lm = fmt.Sprintf("{Locale: %q, Message: %q}", v.LocalizedMessage.Locale, v.LocalizedMessage.Message)
	}
	return fmt.Sprintf("FieldViolation{Field: %q, Description: %q, Reason: %q, LocalizedMessage: %s}",
		v.Field, v.Description, v.Reason, lm)
}

// toProto maps v onto the wire schema.
//
// Only Field and Description are carried. Reason and LocalizedMessage stay
// on the typed side; decoding still restores them when a peer sends them.
func (v FieldViolation) toProto() *errdetails.BadRequest_FieldViolation {
	return &errdetails.BadRequest_FieldViolation{
		Field:       validUTF8(v.Field),
		Description: validUTF8(v.Description),
	}
}

// toProtoFull maps every field of v, for encodings that keep the whole model.
func (v FieldViolation) toProtoFull() *errdetails.BadRequest_FieldViolation {
	pb := v.toProto()
	pb.Reason = validUTF8(v.Reason)
	if lm := v.LocalizedMessage; lm != nil {
		pb.LocalizedMessage = &errdetails.LocalizedMessage{
			Locale:  validUTF8(lm.Locale),
			Message: validUTF8(lm.Message),
		}
	}
	return pb
}

func fieldViolationFromProto(pb *errdetails.BadRequest_FieldViolation) FieldViolation {
	return FieldViolation{
		Field:            pb.GetField(),
		Description:      pb.GetDescription(),
		Reason:           pb.GetReason(),
		LocalizedMessage: localizedMessageFromProto(pb.GetLocalizedMessage()),
	}
}

// validUTF8 replaces invalid byte sequences so proto3 string fields always
// marshal.
func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}
