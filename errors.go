// Copyright 2025 Naren Yellavula
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

package avlmap

import "errors"

// ErrInvalidPosition is returned by operations that take an externally
// held *Node when the handle is nil, belongs to a different tree, or
// refers to a node that has already been removed. The tree is left
// unchanged in every such case.
//
// A missing key is never an error: Search and Remove report absence
// through their boolean result instead.
var ErrInvalidPosition = errors.New("avlmap: invalid position")
