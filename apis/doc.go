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

// Package apis defines the conversion contract shared by every rich error
// detail kind.
//
// On the wire a status carries its details as type-erased envelopes
// (google.protobuf.Any): a type URL naming the message schema plus the
// serialized bytes. Application code wants the opposite: plain Go structs it
// can build and inspect. Every detail kind bridges the two by implementing:
//
//   - Detail: report its type URL and encode itself into an envelope;
//   - FromAny: decode an envelope's payload into the receiver.
//
// Aggregators (status helpers, registries) only depend on these interfaces,
// so adding a detail kind never requires touching encode/decode plumbing.
//
// This package must remain lightweight: interfaces and function types only.
package apis
