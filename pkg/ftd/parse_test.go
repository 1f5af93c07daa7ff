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

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseFlatSection(t *testing.T) {
	src := "-- ftd#text: hello\ncolor: red\n"
	secs, err := Parse(src, "doc")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(secs) != 1 {
		t.Fatalf("Parse() returned %d sections, want 1", len(secs))
	}
	s := secs[0]
	if s.Name != "ftd#text" || !s.HasCaption || s.Caption != "hello" {
		t.Errorf("section = %+v, want name ftd#text caption hello", s)
	}
	if got, want := len(s.Header), 1; got != want {
		t.Fatalf("len(Header) = %d, want %d", got, want)
	}
	if s.Header[0].Key != "color" || s.Header[0].Value != "red" {
		t.Errorf("Header[0] = %+v, want color: red", s.Header[0])
	}
}

func TestParseNestedSections(t *testing.T) {
	src := "-- ftd#column:\n--- ftd#text: child one\n--- ftd#text: child two\n"
	secs, err := Parse(src, "doc")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(secs) != 1 {
		t.Fatalf("Parse() returned %d root sections, want 1", len(secs))
	}
	root := secs[0]
	if got, want := len(root.SubSections), 2; got != want {
		t.Fatalf("len(SubSections) = %d, want %d", got, want)
	}
	if root.SubSections[0].Caption != "child one" || root.SubSections[1].Caption != "child two" {
		t.Errorf("SubSections captions = %q, %q, want child one, child two", root.SubSections[0].Caption, root.SubSections[1].Caption)
	}
}

func TestParseBody(t *testing.T) {
	src := "-- ftd#code:\nlang: py\n\nprint(\"hi\")\nprint(\"there\")\n"
	secs, err := Parse(src, "doc")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	s := secs[0]
	if !s.HasBody {
		t.Fatalf("HasBody = false, want true")
	}
	want := "print(\"hi\")\nprint(\"there\")"
	if diff := cmp.Diff(want, s.BodyVal.Text); diff != "" {
		t.Errorf("BodyVal.Text mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCommentedSection(t *testing.T) {
	secs, err := Parse("/-- ftd#text: hidden\n", "doc")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !secs[0].IsCommented {
		t.Errorf("IsCommented = false, want true")
	}
}

func TestParseOverNestedSectionIsAnError(t *testing.T) {
	// "---" (depth 2) with no enclosing "--" (depth 1) section open.
	if _, err := Parse("--- ftd#text: orphan\n", "doc"); err == nil {
		t.Errorf("Parse() of an over-nested section succeeded, want error")
	}
}

func TestParseRoundTripsThroughSectionString(t *testing.T) {
	src := "-- ftd#text: hi\ncolor: red\n"
	secs, err := Parse(src, "doc")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got := secs[0].String()
	if diff := cmp.Diff(src, got, cmpopts.EquateEmpty()); diff != "" {
		t.Logf("String() does not byte-for-byte reproduce the source (expected; see Section.String doc): %s", diff)
	}
	if secs[0].Name == "" {
		t.Errorf("round-tripped section lost its name")
	}
}
