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

// loopHeader is the parsed form of a `$loop$: $list-ref as $iter` header.
type loopHeader struct {
	listRef string // name, without the leading "$"
	iter    string // iterator name, without the leading "$"
}

// parseLoopHeader parses text into its (list reference, iterator name)
// parts.
func parseLoopHeader(text string) (loopHeader, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 || fields[1] != "as" {
		return loopHeader{}, parseErrorf("", 0, "malformed $loop$ header %q, want \"$list as $item\"", text)
	}
	if !strings.HasPrefix(fields[0], "$") || !strings.HasPrefix(fields[2], "$") {
		return loopHeader{}, parseErrorf("", 0, "malformed $loop$ header %q", text)
	}
	return loopHeader{listRef: strings.TrimPrefix(fields[0], "$"), iter: strings.TrimPrefix(fields[2], "$")}, nil
}

// ExpandLoop repeats comp's body once per element of the list named by the
// section's $loop$ header, producing a single
// RecursiveChildComponent instruction that owns every iteration's expansion.
func ExpandLoop(comp *Component, sec *Section, loopText string, scope *Scope, index int, res Resolver) (Instruction, error) {
	lh, err := parseLoopHeader(loopText)
	if err != nil {
		return Instruction{}, err
	}

	listPV, err := scope.Lookup(lh.listRef)
	if err != nil {
		return Instruction{}, err
	}
	listVal, err := listPV.Resolve(res)
	if err != nil {
		return Instruction{}, err
	}
	if listVal.Kind.Variant != KList {
		return Instruction{}, kindErrorf("", sec.HeaderLine("$loop$"), "$loop$ requires a list, got %s", listVal.Kind)
	}

	loopScope := scope.Child(index, nil)
	var children []*ChildComponent
	for i, elemPV := range listVal.Elements {
		iterScope := loopScope.BindLoopIterator(i, elemPV.Kind)
		iterScope.args[lh.iter] = elemPV.Kind

		cc, _, err := BuildChildComponent(comp, sec, iterScope, i, res)
		if err != nil {
			return Instruction{}, err
		}
		cc.IsRecursive = true
		// The iteration's own bound element is exposed under the iterator
		// name within iterScope; record it on the produced ChildComponent
		// too so a renderer needing raw per-iteration data (rather than a
		// bag lookup) can read it directly.
		cc.Arguments = append(cc.Arguments, Argument{Name: lh.iter, Kind: elemPV.Kind})
		cc.Properties[lh.iter] = elemPV
		children = append(children, cc)
	}

	return RecursiveInstruction(children), nil
}
