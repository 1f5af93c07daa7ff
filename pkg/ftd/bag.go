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

// A Bag is the ordered map String→Thing covering the whole interpretation
// run. Names are fully qualified, e.g. "foo/bar#x" or "foo/bar#x@0,1,2" for
// a local variable instance.
type Bag struct {
	order   []string
	entries map[string]Thing
}

// NewBag returns an empty Bag.
func NewBag() *Bag {
	return &Bag{entries: map[string]Thing{}}
}

// Set inserts or replaces the entry named name. The first Set call for a
// given name fixes its position in Order.
func (b *Bag) Set(name string, t Thing) {
	if _, ok := b.entries[name]; !ok {
		b.order = append(b.order, name)
	}
	b.entries[name] = t
}

// Get returns the entry named name and whether it is present.
func (b *Bag) Get(name string) (Thing, bool) {
	t, ok := b.entries[name]
	return t, ok
}

// Order returns every entry name in insertion order.
func (b *Bag) Order() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Len returns the number of entries.
func (b *Bag) Len() int { return len(b.entries) }

// Delete removes the entry named name, if present. A full Bag is normally
// just discarded at the end of a run, but Delete lets callers prune
// eagerly, e.g. between REPL evaluations of the same document.
func (b *Bag) Delete(name string) {
	if _, ok := b.entries[name]; !ok {
		return
	}
	delete(b.entries, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// ResolveName implements Resolver. name may carry a dotted field-path
// suffix (e.g. "foo/bar#rec@2,0.field") appended by Scope.Lookup; ResolveName
// strips it after finding the base entry and walks into the named field.
func (b *Bag) ResolveName(name string, wantKind Kind) (Value, error) {
	base, path := splitFieldPath(name)

	t, ok := b.entries[base]
	if !ok {
		return Value{}, nameErrorf("", 0, "undefined name %q", base)
	}

	var v Value
	switch t.Kind {
	case ThingVariable:
		val, err := t.Variable.ResolveValue(b)
		if err != nil {
			return Value{}, err
		}
		v = val
	case ThingRecord, ThingOrType, ThingOrTypeWithVariant, ThingComponent:
		return Value{}, nameErrorf("", 0, "%q does not name a value", base)
	default:
		return Value{}, nameErrorf("", 0, "undefined name %q", base)
	}

	for _, field := range path {
		fields := v.Fields
		if v.Kind.Variant == KOptional && v.HasValue {
			fields = v.Inner.Fields
		}
		if fields == nil {
			return Value{}, kindErrorf("", 0, "%s has no field %q", v.Kind, field)
		}
		pv, ok := fields.Get(field)
		if !ok {
			return Value{}, nameErrorf("", 0, "%s has no field %q", v.Kind, field)
		}
		next, err := pv.Resolve(b)
		if err != nil {
			return Value{}, err
		}
		v = next
	}
	return v, nil
}

// splitFieldPath splits "base.field1.field2" into ("base", ["field1",
// "field2"]). A positional-path suffix ("@2,0") is part of base and is left
// untouched since it contains no '.'.
func splitFieldPath(name string) (string, []string) {
	parts := strings.Split(name, ".")
	return parts[0], parts[1:]
}

// A DocumentView is the read-only, per-document facade the interpreter
// exposes to Library.Process and to header/condition parsing. It layers a
// document's alias table and default module prefix over the shared Bag.
type DocumentView struct {
	bag     *Bag
	module  string            // this document's own fully qualified module path
	aliases map[string]string // alias → fully qualified module path
}

// NewDocumentView returns a DocumentView for module, backed by bag, with the
// built-in "ftd" alias preseeded.
func NewDocumentView(bag *Bag, module string) *DocumentView {
	return &DocumentView{
		bag:    bag,
		module: module,
		aliases: map[string]string{
			"ftd": "ftd",
		},
	}
}

// AddAlias records alias → target for this document only; import aliasing
// is per-document.
func (d *DocumentView) AddAlias(alias, target string) {
	d.aliases[alias] = target
}

// Alias resolves alias to its target module path, if declared.
func (d *DocumentView) Alias(alias string) (string, bool) {
	target, ok := d.aliases[alias]
	return target, ok
}

// Module returns the document's own fully qualified module path.
func (d *DocumentView) Module() string { return d.module }

// ResolveName implements Resolver by delegating to the shared Bag,
// qualifying a bare (alias-free) name with this document's module prefix
// first.
func (d *DocumentView) ResolveName(name string, wantKind Kind) (Value, error) {
	return d.bag.ResolveName(d.qualify(name), wantKind)
}

// qualify expands an "alias#local" or bare "local" name into a fully
// qualified bag name of the form "module#local".
func (d *DocumentView) qualify(name string) string {
	if strings.Contains(name, "#") {
		head, rest := name, ""
		if i := strings.IndexByte(name, '#'); i >= 0 {
			head, rest = name[:i], name[i:]
			if target, ok := d.aliases[head]; ok {
				return target + rest
			}
		}
		return head + rest
	}
	if d.module == "" {
		return name
	}
	return d.module + "#" + name
}
