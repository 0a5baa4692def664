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

// Package grpcx attaches typed rich error details to gRPC statuses and reads
// them back.
//
// All helpers work on status values only; they never touch a connection.
package grpcx

import (
	"dirpx.dev/richerr"
	"dirpx.dev/richerr/apis"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

// WithDetails returns a copy of st with every detail appended, in order, as
// an envelope. st itself is not modified. A nil st yields nil and nil
// details are skipped.
//
// Unlike (*status.Status).WithDetails this cannot fail: details encode
// themselves through apis.Detail.
func WithDetails(st *gstatus.Status, details ...apis.Detail) *gstatus.Status {
	if st == nil {
		return nil
	}
	p := st.Proto()
	for _, d := range details {
		if d == nil {
			continue
		}
		p.Details = append(p.Details, d.IntoAny())
	}
	return gstatus.FromProto(p)
}

// InvalidArgument returns a codes.InvalidArgument status error carrying b.
//
//	var br richerr.BadRequest
//	br.AddViolation("email", "must not be empty")
//	return nil, grpcx.InvalidArgument("invalid request", br)
func InvalidArgument(msg string, b richerr.BadRequest) error {
	return WithDetails(gstatus.New(gcodes.InvalidArgument, msg), b).Err()
}

// Details decodes every detail of the status carried by err through reg.
// A nil reg means richerr.DefaultRegistry().
//
// Errors that carry no status have no details. Unknown kinds are skipped;
// malformed ones are reported as in richerr.Registry.DecodeAll.
func Details(err error, reg *richerr.Registry) ([]apis.Detail, error) {
	if err == nil {
		return nil, nil
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, nil
	}
	if reg == nil {
		reg = richerr.DefaultRegistry()
	}
	return reg.DecodeAll(st.Proto().GetDetails())
}

// BadRequestFrom returns the first BadRequest detail of the status carried
// by err.
//
// found is false when err has no status or the status has no envelope
// tagged richerr.TypeURLBadRequest. A tagged envelope that fails to decode
// yields found == true and a *richerr.DecodeError.
func BadRequestFrom(err error) (b richerr.BadRequest, found bool, decodeErr error) {
	if err == nil {
		return richerr.BadRequest{}, false, nil
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return richerr.BadRequest{}, false, nil
	}
	for _, a := range st.Proto().GetDetails() {
		if a.GetTypeUrl() != richerr.TypeURLBadRequest {
			continue
		}
		b, decodeErr = richerr.Decode[richerr.BadRequest](a)
		return b, true, decodeErr
	}
	return richerr.BadRequest{}, false, nil
}
