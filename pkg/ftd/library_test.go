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
	"errors"
	"testing"
)

func TestFileLibraryGetCurrentDirFirst(t *testing.T) {
	lib := NewFileLibrary(nil)
	lib.readFile = func(name string) ([]byte, error) {
		if name == "foo.ftd" {
			return []byte("-- ftd#text: hi"), nil
		}
		return nil, errors.New("not found")
	}

	got, err := lib.Get("foo", NewDocumentView(NewBag(), "m"))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "-- ftd#text: hi" {
		t.Errorf("Get() = %q, want the file contents", got)
	}
}

func TestFileLibraryGetSearchesPath(t *testing.T) {
	lib := NewFileLibrary(nil)
	lib.readFile = func(name string) ([]byte, error) {
		if name == "vendor/foo.ftd" {
			return []byte("found"), nil
		}
		return nil, errors.New("not found")
	}
	defer func(old []string) { Path = old }(Path)
	Path = []string{"vendor"}

	got, err := lib.Get("foo", NewDocumentView(NewBag(), "m"))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "found" {
		t.Errorf("Get() = %q, want found", got)
	}
}

func TestFileLibraryGetNotFound(t *testing.T) {
	lib := NewFileLibrary(nil)
	lib.readFile = func(string) ([]byte, error) { return nil, errors.New("nope") }

	if _, err := lib.Get("missing", NewDocumentView(NewBag(), "m")); err == nil {
		t.Errorf("Get() of a missing module succeeded, want error")
	}
}

func TestFileLibraryGetRejectsPathEscapeOutsideSearchPath(t *testing.T) {
	lib := NewFileLibrary(nil)
	lib.readFile = func(string) ([]byte, error) { return nil, errors.New("nope") }

	if _, err := lib.Get("nested/foo", NewDocumentView(NewBag(), "m")); err == nil {
		t.Errorf("Get() of a slash-containing missing module succeeded, want error")
	}
}

func TestFileLibraryProcess(t *testing.T) {
	called := false
	lib := NewFileLibrary(map[string]ProcessorFunc{
		"echo": func(section *Section, doc *DocumentView) (Value, error) {
			called = true
			return StringValue(section.Name, SourceDefault), nil
		},
	})

	got, err := lib.Process("echo", &Section{Name: "m#x"}, NewDocumentView(NewBag(), "m"))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !called || got.Text != "m#x" {
		t.Errorf("Process() = %v, called=%v, want m#x, true", got, called)
	}
}

func TestFileLibraryProcessUnknownFails(t *testing.T) {
	lib := NewFileLibrary(nil)
	if _, err := lib.Process("nope", &Section{}, NewDocumentView(NewBag(), "m")); err == nil {
		t.Errorf("Process() of an unknown processor succeeded, want error")
	}
}

func TestAddPathDedupesAndSplitsColons(t *testing.T) {
	defer func(old []string, oldSeen map[string]bool) { Path, pathSeen = old, oldSeen }(Path, pathSeen)
	Path, pathSeen = nil, map[string]bool{}

	AddPath("a:b", "b", "c")
	if got, want := Path, []string{"a", "b", "c"}; !stringsEqual(got, want) {
		t.Errorf("Path = %v, want %v", got, want)
	}
}
