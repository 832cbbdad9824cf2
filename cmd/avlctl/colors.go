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

package main

// ANSI escapes for plain (non-TUI) command output. The explorer uses
// lipgloss styles instead; these are for one-shot prints only.
var (
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Red    = "\033[31m"
	Cyan   = "\033[36m"
	Reset  = "\033[0m"
)

// disableColors blanks every escape, for --no-color or dumb terminals.
func disableColors() {
	Green, Yellow, Red, Cyan, Reset = "", "", "", "", ""
}
