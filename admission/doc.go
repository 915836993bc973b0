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


// Package admission provides the bounded permit pool that caps how many
// search workers may execute simultaneously.
//
// A Controller hands out permits up to its configured capacity; further
// Acquire calls block until a permit is released. Waiters are granted
// permits eventually but in no particular order. Callers must pair every
// successful Acquire with exactly one Release, deferred so the permit is
// returned on every exit path of the guarded section.
package admission
