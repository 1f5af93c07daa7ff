// Copyright 2015 Google Inc.
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

package ftd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedBuiltinsInstallsKernelComponents(t *testing.T) {
	b := NewBag()
	require.NoError(t, SeedBuiltins(b))

	for _, name := range []string{"ftd#row", "ftd#column", "ftd#text", "ftd#image", "ftd#null"} {
		thing, ok := b.Get(name)
		assert.Truef(t, ok, "kernel component %q missing from seeded bag", name)
		assert.Equal(t, ThingComponent, thing.Kind)
		assert.True(t, thing.Component.Kernel)
	}
}

func TestSeedBuiltinsInstallsRecordsAndVariables(t *testing.T) {
	b := NewBag()
	require.NoError(t, SeedBuiltins(b))

	thing, ok := b.Get("ftd#color")
	require.True(t, ok)
	assert.Equal(t, ThingRecord, thing.Kind)
	assert.ElementsMatch(t, []string{"light", "dark"}, thing.Record.Order())

	thing, ok = b.Get("ftd#dark-mode")
	require.True(t, ok)
	require.Equal(t, ThingVariable, thing.Kind)
	val, err := thing.Variable.ResolveValue(b)
	require.NoError(t, err)
	assert.False(t, val.Bool)

	thing, ok = b.Get("ftd#mobile-breakpoint")
	require.True(t, ok)
	val, err = thing.Variable.ResolveValue(b)
	require.NoError(t, err)
	assert.EqualValues(t, 768, val.Int)
}

func TestKernelComponentsShareCommonArgs(t *testing.T) {
	for _, c := range kernelComponents() {
		_, ok := c.Argument("width")
		assert.Truef(t, ok, "kernel component %q missing the common width argument", c.FullName)
	}
}
