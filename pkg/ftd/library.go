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
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Library is the external collaborator the interpreter delegates source
// fetching and processor execution to. Both methods may suspend
// in an async host; FileLibrary's methods never do, since they run
// synchronously against the local filesystem.
type Library interface {
	// Get fetches the raw text of the module named sourceName, given the
	// current document's view, for an `import:` directive.
	Get(sourceName string, doc *DocumentView) (string, error)

	// Process runs the named processor selected by a section's
	// `$processor$` header and returns the Value it produced.
	Process(name string, section *Section, doc *DocumentView) (Value, error)
}

// Path is the list of directories FileLibrary.Get searches for .ftd files
// in, in addition to the current directory.
var Path []string

var pathSeen = map[string]bool{}

// AddPath adds the directories in paths (colon-separated, or one per
// argument) to Path, skipping ones already present.
func AddPath(paths ...string) {
	for _, p := range paths {
		for _, dir := range strings.Split(p, ":") {
			if dir == "" || pathSeen[dir] {
				continue
			}
			pathSeen[dir] = true
			Path = append(Path, dir)
		}
	}
}

// ProcessorFunc implements one named processor. section is the section
// being processed; doc is the requesting document's view.
type ProcessorFunc func(section *Section, doc *DocumentView) (Value, error)

// FileLibrary is the default Library: imports resolve to `.ftd` files on
// disk, and processors are looked up from a caller-supplied
// name→ProcessorFunc table.
type FileLibrary struct {
	Processors map[string]ProcessorFunc
	readFile   func(string) ([]byte, error) // overridden in tests
}

// NewFileLibrary returns a FileLibrary with the given processor table
// (nil is fine; Process will then reject any $processor$ reference).
func NewFileLibrary(processors map[string]ProcessorFunc) *FileLibrary {
	if processors == nil {
		processors = map[string]ProcessorFunc{}
	}
	return &FileLibrary{Processors: processors, readFile: os.ReadFile}
}

// Get implements Library by locating "<sourceName>.ftd" on disk, checking
// the current directory first and then Path. A sourceName containing "/"
// is looked up relative to the current directory only.
func (l *FileLibrary) Get(sourceName string, doc *DocumentView) (string, error) {
	name := sourceName
	if !strings.HasSuffix(name, ".ftd") {
		name += ".ftd"
	}

	if data, err := l.readFile(name); err == nil {
		AddPath(path.Dir(name))
		return string(data), nil
	}
	if strings.Contains(sourceName, "/") {
		return "", libraryErrorf("", 0, "no such module: %s", sourceName)
	}

	for _, dir := range Path {
		candidate := filepath.Join(dir, name)
		if data, err := l.readFile(candidate); err == nil {
			return string(data), nil
		}
	}
	return "", libraryErrorf("", 0, "no such module: %s", sourceName)
}

// Process implements Library by dispatching to the named entry of
// l.Processors.
func (l *FileLibrary) Process(name string, section *Section, doc *DocumentView) (Value, error) {
	fn, ok := l.Processors[name]
	if !ok {
		return Value{}, libraryErrorf(doc.Module(), section.LineNumber, "unknown processor %q", name)
	}
	return fn(section, doc)
}
