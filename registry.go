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
	"slices"
	"strings"

	"dirpx.dev/richerr/apis"
	"google.golang.org/protobuf/types/known/anypb"
)

// ErrInvalidTypeURL is returned by NewRegistry for a malformed type URL.
var ErrInvalidTypeURL = errors.New("richerr: invalid type URL")

// defaultKinds are seeded into every registry unless WithoutDefaults is used.
var defaultKinds = map[string]apis.DecodeFunc{
	TypeURLBadRequest: KindOf[BadRequest](),
}

type decoderRule struct {
	typeURL string
	fn      apis.DecodeFunc
}

type registryBuilder struct {
	// rules holds user registrations in option order.
	rules []decoderRule
	// skipDefaults drops defaultKinds.
	skipDefaults bool
}

// Registry maps type URLs to decoders. It is the dispatch an aggregator
// performs before decoding an envelope it received.
//
// A Registry is immutable and safe for concurrent use.
type Registry struct {
	decoders map[string]apis.DecodeFunc
}

// NewRegistry builds an immutable Registry.
//
// Build process:
//
//  1. Seed with the library defaults (unless WithoutDefaults).
//  2. Apply options in order; later registrations win.
//  3. Validate every type URL and decoder.
//  4. Freeze into a fresh map.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	b := &registryBuilder{}
	for _, opt := range opts {
		opt(b)
	}

	decoders := make(map[string]apis.DecodeFunc, len(defaultKinds)+len(b.rules))
	if !b.skipDefaults {
		for u, fn := range defaultKinds {
			decoders[u] = fn
		}
	}
	for _, r := range b.rules {
		if err := validateTypeURL(r.typeURL); err != nil {
			return nil, fmt.Errorf("registry: type URL %q: %w", r.typeURL, err)
		}
		if r.fn == nil {
			return nil, fmt.Errorf("registry: nil decoder for %q", r.typeURL)
		}
		decoders[r.typeURL] = r.fn
	}
	return &Registry{decoders: decoders}, nil
}

var defaultRegistry = func() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}()

// DefaultRegistry returns the shared registry holding the kinds this package
// ships.
func DefaultRegistry() *Registry { return defaultRegistry }

// Known reports whether r has a decoder for typeURL.
func (r *Registry) Known(typeURL string) bool {
	_, ok := r.decoders[typeURL]
	return ok
}

// TypeURLs returns the registered type URLs, sorted.
func (r *Registry) TypeURLs() []string {
	out := make([]string, 0, len(r.decoders))
	for u := range r.decoders {
		out = append(out, u)
	}
	slices.Sort(out)
	return out
}

// Decode picks the decoder for a's type URL and runs it.
//
// It returns an error wrapping ErrUnknownType when no decoder is registered
// and a *DecodeError when the payload is malformed.
func (r *Registry) Decode(a *anypb.Any) (apis.Detail, error) {
	if a == nil {
		return nil, &DecodeError{Err: ErrNilEnvelope}
	}
	fn, ok := r.decoders[a.GetTypeUrl()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, a.GetTypeUrl())
	}
	return fn(a)
}

// DecodeAll decodes every envelope in order.
//
// Envelopes with an unknown type URL are skipped so that peers can add new
// kinds without breaking older readers. Decode failures do not stop the
// loop: the successfully decoded details are returned together with all
// failures joined, each prefixed with the envelope's index.
func (r *Registry) DecodeAll(envelopes []*anypb.Any) ([]apis.Detail, error) {
	out := make([]apis.Detail, 0, len(envelopes))
	var errs []error
	for i, a := range envelopes {
		d, err := r.Decode(a)
		switch {
		case err == nil:
			out = append(out, d)
		case errors.Is(err, ErrUnknownType):
			continue
		default:
			errs = append(errs, fmt.Errorf("details[%d]: %w", i, err))
		}
	}
	return out, errors.Join(errs...)
}

// validateTypeURL requires a non-empty message name after the last '/'.
func validateTypeURL(u string) error {
	i := strings.LastIndexByte(u, '/')
	if i < 0 || i == len(u)-1 {
		return ErrInvalidTypeURL
	}
	return nil
}
