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

// ThingKind classifies a bag entry: a Variable, Component, Record, OrType,
// or OrTypeWithVariant.
type ThingKind int

const (
	ThingVariable ThingKind = iota
	ThingComponent
	ThingRecord
	ThingOrType
	ThingOrTypeWithVariant
)

// String implements fmt.Stringer.
func (k ThingKind) String() string {
	switch k {
	case ThingVariable:
		return "variable"
	case ThingComponent:
		return "component"
	case ThingRecord:
		return "record"
	case ThingOrType:
		return "or-type"
	case ThingOrTypeWithVariant:
		return "or-type-variant"
	default:
		return "unknown"
	}
}

// A Thing is a single bag entry. Exactly one of the typed fields is
// populated, selected by Kind. ThingOrTypeWithVariant is a type-level marker
// consulted during resolution; variant *activation* produces a Variable
// whose Value is Value{Kind: KOrType}, not a separate bag entry.
type Thing struct {
	Kind ThingKind

	Variable       *Variable
	Component      *Component
	Record         *Record
	OrType         *OrType
	OrTypeVariant  *OrTypeWithVariant
}

// OrTypeWithVariant is the type-level marker for "OrType#variant", used only
// during name resolution (e.g. rejecting `lead.individual` as a bare
// variable read).
type OrTypeWithVariant struct {
	Parent  string // FQN of the owning OrType
	Variant string
}

// VariableThing wraps v as a Thing.
func VariableThing(v *Variable) Thing { return Thing{Kind: ThingVariable, Variable: v} }

// ComponentThing wraps c as a Thing.
func ComponentThing(c *Component) Thing { return Thing{Kind: ThingComponent, Component: c} }

// RecordThing wraps r as a Thing.
func RecordThing(r *Record) Thing { return Thing{Kind: ThingRecord, Record: r} }

// OrTypeThing wraps o as a Thing.
func OrTypeThing(o *OrType) Thing { return Thing{Kind: ThingOrType, OrType: o} }

// OrTypeVariantThing wraps a variant marker as a Thing.
func OrTypeVariantThing(v *OrTypeWithVariant) Thing {
	return Thing{Kind: ThingOrTypeWithVariant, OrTypeVariant: v}
}

// DeclaredKind returns the Kind a reference to this Thing must satisfy.
// Records/OrTypes/Components don't have a single
// "value kind" in the same sense a Variable does; callers resolving a
// PropertyValue should only call DeclaredKind on ThingVariable entries.
func (t Thing) DeclaredKind() (Kind, bool) {
	if t.Kind == ThingVariable && t.Variable != nil {
		return t.Variable.Value.Kind, true
	}
	return Kind{}, false
}
