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

import "google.golang.org/genproto/googleapis/rpc/errdetails"

// LocalizedMessage is a translated, user-facing variant of an error message.
type LocalizedMessage struct {
	// Locale is a BCP-47 locale tag, e.g. "en-US" or "fr-CH".
	Locale string

	// Message is the localized text.
	Message string
}

// Equal reports whether m and o hold the same locale and message.
// Two nil messages are equal.
func (m *LocalizedMessage) Equal(o *LocalizedMessage) bool {
	if m == nil || o == nil {
		return m == o
	}
	return *m == *o
}

func localizedMessageFromProto(pb *errdetails.LocalizedMessage) *LocalizedMessage {
	if pb == nil {
		return nil
	}
	return &LocalizedMessage{
		Locale:  pb.GetLocale(),
		Message: pb.GetMessage(),
	}
}
