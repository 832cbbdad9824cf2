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

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFileMissing(t *testing.T) {
	config, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlctl.yaml")
	data := `
bench:
  inserts: 5000
  pattern: sorted
ui:
  color: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	config, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, config.Bench.Inserts)
	assert.Equal(t, "sorted", config.Bench.Pattern)
	assert.False(t, config.UI.Color)
	// Unset sections keep their defaults.
	assert.Equal(t, defaultConfig.Index, config.Index)
}

func TestLoadConfigFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avlctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bench: [not a map"), 0644))

	config, err := loadConfigFile(path)
	assert.Error(t, err)
	assert.Equal(t, defaultConfig, *config)
}
