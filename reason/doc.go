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

// Package reason defines the machine-readable cause attached to a single
// field violation.
//
// A violation reason is a SCREAMING_SNAKE_CASE identifier chosen from the
// domain of the API service, for example:
//
//   - "MISSING_FIELD"
//   - "INVALID_EMAIL_FORMAT"
//   - "VALUE_OUT_OF_RANGE"
//
// Reason is optional: the zero value ("") is allowed and means the service
// did not classify the violation beyond its human-readable description.
//
// Nothing in richerr validates reasons on construction. This package exists
// for callers that want to check or canonicalize their identifiers before
// putting them on the wire.
package reason
