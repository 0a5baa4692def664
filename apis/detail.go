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

package apis

import "google.golang.org/protobuf/types/known/anypb"

// Detail is a typed error detail that can be placed into an envelope.
type Detail interface {
	// TypeURL returns the constant type URL of the detail's wire schema,
	// e.g. "type.googleapis.com/google.rpc.BadRequest".
	TypeURL() string

	// IntoAny encodes the detail into a new envelope stamped with TypeURL.
	//
	// Encoding a well-formed detail never fails. Implementations MUST NOT
	// retain or mutate the receiver's data after returning: the envelope
	// owns a fresh copy.
	IntoAny() *anypb.Any
}

// FromAny is implemented by pointers to detail kinds that can be decoded
// from an envelope.
//
// FromAny decodes unconditionally: it does not compare the envelope's type
// URL with its own. Dispatching by type URL is the caller's job.
// Implementations return a *richerr.DecodeError when the payload cannot be
// parsed, and leave the receiver untouched in that case.
type FromAny interface {
	FromAny(a *anypb.Any) error
}

// DecodeFunc decodes an envelope into a Detail. Registries keep one per
// type URL.
type DecodeFunc func(a *anypb.Any) (Detail, error)
