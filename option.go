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

// ViolationOption is a functional option for constructing a FieldViolation.
// It takes a FieldViolation by value and returns the adjusted copy.
type ViolationOption func(FieldViolation) FieldViolation

// WithReasonOption sets the machine-readable reason of the violation.
// Intended to be used with NewFieldViolation(...).
func WithReasonOption(reason string) ViolationOption {
	return func(v FieldViolation) FieldViolation {
		v.Reason = reason
		return v
	}
}

// WithLocalizedMessageOption attaches a translated message to the violation.
// Intended to be used with NewFieldViolation(...).
func WithLocalizedMessageOption(locale, message string) ViolationOption {
	return func(v FieldViolation) FieldViolation {
		v.LocalizedMessage = &LocalizedMessage{Locale: locale, Message: message}
		return v
	}
}
