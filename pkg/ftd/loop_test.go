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

func TestParseLoopHeader(t *testing.T) {
	lh, err := parseLoopHeader("$people as $person")
	require.NoError(t, err)
	assert.Equal(t, loopHeader{listRef: "people", iter: "person"}, lh)

	_, err = parseLoopHeader("people as person")
	assert.Error(t, err, "parseLoopHeader() without $ sigils should fail")

	_, err = parseLoopHeader("$people")
	assert.Error(t, err, "parseLoopHeader() with too few fields should fail")
}

func TestExpandLoop(t *testing.T) {
	listPV := ListValue(StringKind(), []PropertyValue{
		Lit(StringValue("a", SourceHeader)),
		Lit(StringValue("b", SourceHeader)),
	})
	res := fakeResolver{"m#names": listPV}
	scope := NewScope("m", res)

	sec := &Section{Name: "ftd#text", HasCaption: true, Caption: "item"}
	instr, err := ExpandLoop(textComponent(), sec, "$names as $name", scope, 0, res)
	require.NoError(t, err)
	require.Equal(t, IRecursiveChildComponent, instr.Kind)
	require.Len(t, instr.RecursiveChildren, 2)

	for i, cc := range instr.RecursiveChildren {
		assert.True(t, cc.IsRecursive, "child %d should be marked recursive", i)
		iterPV, ok := cc.Properties["name"]
		assert.True(t, ok, "child %d should carry its iterator value under the iterator name", i)
		assert.Equal(t, listPV.Elements[i].Literal.Text, iterPV.Literal.Text)
	}
}

func TestExpandLoopRequiresList(t *testing.T) {
	res := fakeResolver{"m#notalist": IntegerValue(1)}
	scope := NewScope("m", res)
	sec := &Section{Name: "ftd#text"}

	_, err := ExpandLoop(textComponent(), sec, "$notalist as $x", scope, 0, res)
	require.Error(t, err)
}
