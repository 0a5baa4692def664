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
	"testing"

	"google.golang.org/protobuf/types/known/anypb"
)

func FuzzBadRequestFromAny(f *testing.F) {
	f.Add(goldenTwoViolations)
	f.Add([]byte{})
	f.Add([]byte{0xff})
	f.Add([]byte{0x0a, 0x05, 0x01})
	f.Add([]byte{0x0a, 0x03, 0x0a, 0x01, 0xff})

	f.Fuzz(func(t *testing.T, payload []byte) {
		var br BadRequest
		err := br.FromAny(&anypb.Any{TypeUrl: TypeURLBadRequest, Value: payload})
		if err != nil {
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("error %T is not a *DecodeError: %v", err, err)
			}
			return
		}

		// Whatever decoded must re-encode and decode to the same fields.
		again, err := Decode[BadRequest](br.IntoAny())
		if err != nil {
			t.Fatalf("re-decode: %v", err)
		}
		if len(again.FieldViolations) != len(br.FieldViolations) {
			t.Fatalf("violation count %d != %d", len(again.FieldViolations), len(br.FieldViolations))
		}
		for i, v := range br.FieldViolations {
			w := again.FieldViolations[i]
			if v.Field != w.Field || v.Description != w.Description {
				t.Fatalf("violation %d changed: %v -> %v", i, v, w)
			}
		}
	})
}
