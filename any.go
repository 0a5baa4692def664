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

	"dirpx.dev/richerr/apis"
	"google.golang.org/protobuf/types/known/anypb"
)

var (
	// ErrNilEnvelope is wrapped by a DecodeError when a nil envelope is
	// decoded. An absent detail is not the same as an empty one.
	ErrNilEnvelope = errors.New("richerr: nil envelope")

	// ErrUnknownType is returned by a Registry for a type URL it has no
	// decoder for.
	ErrUnknownType = errors.New("richerr: unknown detail type")
)

// DecodeError reports that an envelope payload could not be parsed as the
// expected detail kind. Err holds the parser's description of the problem.
//
// Decode errors are never retried or swallowed by this package: a malformed
// payload means wire corruption or a kind mismatch the caller has to handle.
type DecodeError struct {
	// TypeURL names the kind the payload was decoded as.
	TypeURL string

	// Err is the underlying parse failure.
	Err error
}

// Error implements the built-in error interface.
func (e *DecodeError) Error() string {
	if e.TypeURL == "" {
		return fmt.Sprintf("richerr: decode detail: %v", e.Err)
	}
	return fmt.Sprintf("richerr: decode %s: %v", e.TypeURL, e.Err)
}

// Unwrap returns the underlying parse failure.
func (e *DecodeError) Unwrap() error { return e.Err }

// Decode decodes a into a new T, for any detail kind whose pointer
// implements apis.FromAny:
//
//	br, err := richerr.Decode[richerr.BadRequest](a)
//
// Like FromAny it does not check a's type URL. On failure it returns the
// zero T and the error from FromAny.
func Decode[T any, PT interface {
	*T
	apis.FromAny
}](a *anypb.Any) (T, error) {
	var v T
	if err := PT(&v).FromAny(a); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// KindOf returns an apis.DecodeFunc that decodes envelopes into T.
func KindOf[T apis.Detail, PT interface {
	*T
	apis.FromAny
}]() apis.DecodeFunc {
	return func(a *anypb.Any) (apis.Detail, error) {
		v, err := Decode[T, PT](a)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
