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

// Package richerr converts strongly-typed RPC error details to and from the
// type-erased envelopes (google.protobuf.Any) a status carries on the wire.
//
// Application code builds plain Go values:
//
//	br := richerr.WithViolation("email", "must not be empty")
//	br.AddViolation("age", "must be positive").
//	    AddViolation("name", "too long")
//
// and turns them into envelopes when filling a status:
//
//	a := br.IntoAny() // TypeUrl == richerr.TypeURLBadRequest
//
// The receiving side decodes envelopes back into typed values, either
// directly when it already knows the kind:
//
//	br, err := richerr.Decode[richerr.BadRequest](a)
//
// or through a Registry that dispatches on the type URL:
//
//	d, err := richerr.DefaultRegistry().Decode(a)
//
// # Wire compatibility
//
// Each detail kind encodes exactly the protobuf message published in
// google/rpc/error_details.proto (via the generated errdetails package), so
// envelopes interoperate with any other gRPC implementation. Unknown fields
// are ignored on decode.
//
// # Errors
//
// Encoding and the builder methods never fail. Decoding returns a
// *DecodeError when the payload is not a valid message of the expected kind.
//
// # Concurrency
//
// Detail values are plain data; share them like any other Go value.
// A Registry is immutable after NewRegistry and safe for concurrent use.
package richerr
