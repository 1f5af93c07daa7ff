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
	"strconv"
	"strings"
)

// A Scope resolves `$name` tokens encountered while parsing one component
// instance's headers into PropertyValues. Component instantiation is not
// lexical closure, it is positional template expansion, and every reference
// a template makes to its own arguments is rewritten at expansion time to
// the bag name `<module>#<arg>@<path>`.
type Scope struct {
	module string         // fully qualified module prefix, e.g. "foo/bar"
	path   []int          // positional path locating this instance in the rendered tree
	args   map[string]Kind // this component's own argument schema, by name
	parent *Scope         // lexically enclosing component instance, if any (nil at the root)
	bag    Resolver       // fallback resolver for names that are neither local args nor $loop$

	// loopKind, when non-nil, marks this scope as one allocated for a
	// $loop$ iteration, recording the bound element's Kind for Lookup's use.
	loopKind *Kind
}

// NewScope returns the root Scope for module, with no positional path and no
// local arguments (used when resolving top-level `-- var:`/`-- record:` etc.
// headers, which are never locally scoped).
func NewScope(module string, bag Resolver) *Scope {
	return &Scope{module: module, bag: bag, args: map[string]Kind{}}
}

// Child allocates a fresh positional path for one component call site,
// appending index to the parent's path: every call site gets its own path.
// args is the callee component's own argument schema, used to decide
// whether a `$name` reference inside the callee's template rewrites to a
// Variable at the new path or falls through to the enclosing scope.
func (s *Scope) Child(index int, args []Argument) *Scope {
	path := make([]int, len(s.path)+1)
	copy(path, s.path)
	path[len(path)-1] = index

	argKinds := make(map[string]Kind, len(args))
	for _, a := range args {
		argKinds[a.Name] = a.Kind
	}
	return &Scope{module: s.module, path: path, args: argKinds, parent: s, bag: s.bag}
}

// Path renders s's positional path in the "2,0,1" form used for bag names
// (empty at the root scope).
func (s *Scope) Path() string {
	parts := make([]string, len(s.path))
	for i, p := range s.path {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

// qualify appends s's positional path to name, producing the bag name a
// local Variable reference is stored/looked-up under: "<module>#<arg>@<path>".
func (s *Scope) qualify(name string) string {
	if len(s.path) == 0 {
		return name
	}
	if s.module != "" {
		name = s.module + "#" + name
	}
	return name + "@" + s.Path()
}

// Lookup resolves name — as it appeared after a `$` sigil, optionally with a
// dotted field-path suffix such as "rec.field" — into the PropertyValue a
// header reference to it should carry. The dotted suffix, if any, is kept
// verbatim on the returned PropertyValue's Name so that ResolveName can walk
// into the record/or-type field at render time.
func (s *Scope) Lookup(name string) (PropertyValue, error) {
	head, rest := name, ""
	if i := strings.IndexByte(name, '.'); i >= 0 {
		head, rest = name[:i], name[i:]
	}

	if head == "loop$" {
		kind, ok := s.loopIteratorKind()
		if !ok {
			return PropertyValue{}, nameErrorf("", 0, "$loop$ referenced outside a loop")
		}
		return Var(s.qualify("loop$")+rest, kind), nil
	}

	for sc := s; sc != nil; sc = sc.parent {
		if kind, ok := sc.args[head]; ok {
			return Var(sc.qualify(head)+rest, kind), nil
		}
	}

	// Not a local argument anywhere up the chain: a reference to a module-
	// or document-level name (global variable, record instance, ...).
	qualified := head
	if s.module != "" && !strings.Contains(head, "#") {
		qualified = s.module + "#" + head
	}
	kind := Kind{}
	if s.bag != nil {
		if v, err := s.bag.ResolveName(qualified, Kind{}); err == nil {
			kind = v.Kind
		}
	}
	return Ref(qualified+rest, kind), nil
}

// loopIteratorKind reports the Kind bound to $loop$ in the nearest enclosing
// loop scope, set by BindLoopIterator.
func (s *Scope) loopIteratorKind() (Kind, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if sc.loopKind != nil {
			return *sc.loopKind, true
		}
	}
	return Kind{}, false
}

// BindLoopIterator returns a child scope of s for one loop iteration at
// positional index i, with `$loop$` resolving to elemKind.
func (s *Scope) BindLoopIterator(i int, elemKind Kind) *Scope {
	child := s.Child(i, nil)
	k := elemKind
	child.loopKind = &k
	return child
}
