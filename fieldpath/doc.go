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

// Package fieldpath provides parsing, normalization and validation for the
// request field paths carried by field violations.
//
// A path is a sequence of dot-separated protocol buffer field names, where a
// repeated field may be followed by an integer subscript and a map field by a
// double-quoted key:
//
//   - "full_name"
//   - "email_addresses[1].email"
//   - "book.authors[0].name"
//   - `labels["env"].value`
//
// Field violations accept any string as their path. Use this package when
// building paths programmatically (Join, Index, Key) or when a service wants to
// check the paths it reports.
package fieldpath
