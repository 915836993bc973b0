// Copyright 2026 Filmdex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package search implements keyword search over the catalog.
//
// The Searcher type runs one search request end to end: it waits for an
// admission permit, scans the catalog with a case-insensitive keyword
// filter, ranks matches by popularity rating, and emits a single report
// block. A worker moves through the states waiting, admitted, searching,
// reporting, done; a Monitor can observe each transition.
package search
