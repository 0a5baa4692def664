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
	"dirpx.dev/richerr/apis"
)

// RegistryOption configures a Registry at build time.
// All options are applied to an internal builder and then frozen into an
// immutable Registry.
type RegistryOption func(*registryBuilder)

// WithDecoder registers fn for envelopes whose type URL equals typeURL.
// A later registration for the same type URL replaces an earlier one,
// including the library defaults.
func WithDecoder(typeURL string, fn apis.DecodeFunc) RegistryOption {
	return func(b *registryBuilder) {
		b.rules = append(b.rules, decoderRule{typeURL: typeURL, fn: fn})
	}
}

// WithKind registers the detail kind T under its own type URL:
//
//	reg, err := richerr.NewRegistry(richerr.WithKind[mypkg.RetryInfo]())
func WithKind[T apis.Detail, PT interface {
	*T
	apis.FromAny
}]() RegistryOption {
	var zero T
	return WithDecoder(zero.TypeURL(), KindOf[T, PT]())
}

// WithoutDefaults starts the registry empty instead of seeding it with the
// kinds this package ships.
func WithoutDefaults() RegistryOption {
	return func(b *registryBuilder) { b.skipDefaults = true }
}
