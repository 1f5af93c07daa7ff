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

import "testing"

func textComponent() *Component {
	for _, c := range kernelComponents() {
		if c.FullName == "ftd#text" {
			return c
		}
	}
	panic("ftd#text not found in kernelComponents()")
}

func TestBuildChildComponentBindsCaption(t *testing.T) {
	sec := &Section{Name: "ftd#text", HasCaption: true, Caption: "hello world"}
	scope := NewScope("m", fakeResolver{})

	cc, callScope, err := BuildChildComponent(textComponent(), sec, scope, 0, fakeResolver{})
	if err != nil {
		t.Fatalf("BuildChildComponent() error = %v", err)
	}
	if cc.Root != "ftd#text" {
		t.Errorf("Root = %q, want ftd#text", cc.Root)
	}
	textPV, ok := cc.Properties["text"]
	if !ok || textPV.Literal.Text != "hello world" {
		t.Errorf("Properties[text] = %v, %v, want hello world, true", textPV, ok)
	}
	if callScope.Path() != "0" {
		t.Errorf("callScope.Path() = %q, want 0", callScope.Path())
	}
}

func TestBuildChildComponentUnknownArgumentFails(t *testing.T) {
	sec := &Section{Name: "ftd#text", Header: []Header{{Key: "not-an-arg", Value: "x", Line: 2}}}
	scope := NewScope("m", fakeResolver{})

	if _, _, err := BuildChildComponent(textComponent(), sec, scope, 0, fakeResolver{}); err == nil {
		t.Errorf("BuildChildComponent() with an unknown header succeeded, want error")
	}
}

func TestBuildChildComponentMissingRequiredArgumentFails(t *testing.T) {
	c := NewComponent("m#needs-name", "")
	c.AddArgument("name", StringKind())
	sec := &Section{Name: "m#needs-name"}
	scope := NewScope("m", fakeResolver{})

	if _, _, err := BuildChildComponent(c, sec, scope, 0, fakeResolver{}); err == nil {
		t.Errorf("BuildChildComponent() with a missing required argument succeeded, want error")
	}
}

func TestBuildChildComponentIfHeader(t *testing.T) {
	sec := &Section{
		Name:       "ftd#text",
		HasCaption: true,
		Caption:    "hi",
		Header:     []Header{{Key: "if", Value: "true", Line: 2}},
	}
	scope := NewScope("m", fakeResolver{})

	cc, _, err := BuildChildComponent(textComponent(), sec, scope, 0, fakeResolver{})
	if err != nil {
		t.Fatalf("BuildChildComponent() error = %v", err)
	}
	if !cc.HasCondition {
		t.Fatalf("HasCondition = false, want true")
	}
	ok, err := cc.Condition.Eval(fakeResolver{})
	if err != nil || !ok {
		t.Errorf("Condition.Eval() = %v, %v, want true, nil", ok, err)
	}
}

func TestBuildChildComponentOpenContainerAndID(t *testing.T) {
	sec := &Section{
		Name: "ftd#column",
		Header: []Header{
			{Key: "open", Value: "true"},
			{Key: "id", Value: "main"},
			{Key: "append-at", Value: "main"},
		},
	}
	var col *Component
	for _, c := range kernelComponents() {
		if c.FullName == "ftd#column" {
			col = c
		}
	}
	scope := NewScope("m", fakeResolver{})

	cc, _, err := BuildChildComponent(col, sec, scope, 0, fakeResolver{})
	if err != nil {
		t.Fatalf("BuildChildComponent() error = %v", err)
	}
	if !cc.OpenContainer || cc.ID != "main" || cc.AppendAt != "main" {
		t.Errorf("cc = %+v, want OpenContainer=true ID=main AppendAt=main", cc)
	}
}
