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

import "strings"

// Reorder takes the post-import section list and the bag as it stands so
// far, and produces a permutation that places every type declaration and
// component definition before its first use, preserving relative order
// among independent sections (a stable topological sort).
func Reorder(sections []*Section, bag *Bag) ([]*Section, map[string]Kind) {
	declaredBefore := map[string]int{} // name -> index into sections of its declaring section
	varTypes := map[string]Kind{}

	for i, s := range sections {
		if s.IsCommented {
			continue
		}
		if name, ok := declarationName(s); ok {
			declaredBefore[name] = i
		}
		if kind, ident, ok := s.KindAndIdent(); ok && !isDirective(kind) {
			varTypes[ident] = kindFromToken(kind)
		}
	}

	n := len(sections)
	indegree := make([]int, n)
	after := make([][]int, n) // after[d]: sections that must come after d

	for i, s := range sections {
		for _, dep := range dependencies(s) {
			d, ok := declaredBefore[dep]
			if !ok || d == i {
				continue
			}
			after[d] = append(after[d], i)
			indegree[i]++
		}
	}

	var order []int
	var ready []int
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			ready = append(ready, i)
		}
	}
	// A stable Kahn's-algorithm walk: always take the lowest-index ready
	// node next, so independent sections keep their original relative
	// order.
	inOrder := make([]bool, n)
	for len(order) < n {
		progressed := false
		for i := 0; i < n; i++ {
			if inOrder[i] || indegree[i] > 0 {
				continue
			}
			inOrder[i] = true
			order = append(order, i)
			for _, next := range after[i] {
				indegree[next]--
			}
			progressed = true
			break
		}
		if !progressed {
			// A dependency cycle: emit whatever remains in source order
			// rather than looping forever: reorder is purely syntactic
			// and never rejects a document on its own.
			for i := 0; i < n; i++ {
				if !inOrder[i] {
					inOrder[i] = true
					order = append(order, i)
				}
			}
		}
	}

	out := make([]*Section, n)
	for i, idx := range order {
		out[i] = sections[idx]
	}
	return out, varTypes
}

// declarationName returns the FQN-less name this section declares (a
// record/or-type/map name, or a component/variable ident), if any.
func declarationName(s *Section) (string, bool) {
	switch {
	case strings.HasPrefix(s.Name, "record "):
		return strings.TrimPrefix(s.Name, "record "), true
	case strings.HasPrefix(s.Name, "or-type "):
		return strings.TrimPrefix(s.Name, "or-type "), true
	case strings.HasPrefix(s.Name, "map "):
		return strings.TrimPrefix(s.Name, "map "), true
	}
	if _, ident, ok := s.KindAndIdent(); ok {
		return ident, true
	}
	return "", false
}

// dependencies returns the type/component names s's own declaration header
// refers to (its own "<Kind> <ident>" kind token, plus any record/list
// element kind named in a header value of the form "record <name>" or
// "list record <name>"), the only thing §4.2's purely syntactic pass
// inspects.
func dependencies(s *Section) []string {
	var deps []string
	if kind, _, ok := s.KindAndIdent(); ok {
		deps = append(deps, bareKindName(kind)...)
	}
	for _, h := range s.Header {
		deps = append(deps, bareKindName(h.Value)...)
	}
	return deps
}

// bareKindName extracts a record/or-type name from a kind token such as
// "record person", "list record person", or "ftd.column" (component
// reference), returning nil for primitive kinds that declare no
// dependency.
func bareKindName(token string) []string {
	fields := strings.Fields(token)
	for i, f := range fields {
		if (f == "record" || f == "or-type") && i+1 < len(fields) {
			return []string{fields[i+1]}
		}
	}
	if strings.HasPrefix(token, "ftd.") || strings.Contains(token, ".") {
		return []string{token}
	}
	return nil
}

func isDirective(kind string) bool {
	switch kind {
	case "import", "container":
		return true
	}
	return false
}

// kindFromToken maps a declaration's kind token to its Kind, for the
// var_types map §4.2 produces. Record/or-type/component tokens resolve to a
// placeholder Kind here; the classification step in interpreter.go re-reads
// the bag for their real schema once they're installed.
func kindFromToken(token string) Kind {
	fields := strings.Fields(token)
	if len(fields) == 0 {
		return StringKind()
	}
	switch fields[0] {
	case "string", "caption", "body":
		return StringKind()
	case "integer":
		return IntegerKind()
	case "decimal":
		return DecimalKind()
	case "boolean":
		return BooleanKind()
	case "record":
		if len(fields) > 1 {
			return RecordKind(fields[1])
		}
	case "or-type":
		if len(fields) > 1 {
			return OrTypeKind(fields[1])
		}
	case "list":
		if len(fields) > 1 {
			return ListKind(kindFromToken(strings.Join(fields[1:], " ")))
		}
	case "optional":
		if len(fields) > 1 {
			return kindFromToken(strings.Join(fields[1:], " ")).AsOptional()
		}
	}
	return UIKind()
}
