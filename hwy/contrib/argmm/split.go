// Copyright 2025 go-highway Authors
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

package argmm

// splitArray cuts s into a front remainder of len(s)%lanes elements and a body
// whose length is a multiple of lanes. An empty part is returned as nil, so
// both are nil only for an empty s.
func splitArray[T any](s []T, lanes int) (remainder, body []T) {
	n := len(s) % lanes
	if n > 0 {
		remainder = s[:n:n]
	}
	if len(s) > n {
		body = s[n:]
	}
	return remainder, body
}
