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

import "fmt"

// PVVariant names one of PropertyValue's three indirection modes.
type PVVariant int

const (
	// PVLiteral holds a fully materialized Value.
	PVLiteral PVVariant = iota
	// PVReference reads a named bag entry at render time.
	PVReference
	// PVVariable is the same as PVReference, but the target is a local
	// argument (its Name carries the "@path" positional suffix).
	PVVariable
)

// A PropertyValue is a value slot that indirects into the bag rather than
// always holding data directly.
type PropertyValue struct {
	Variant PVVariant

	Literal Value

	// Name is the referenced bag entry's fully-qualified name, for
	// PVReference and PVVariable.
	Name string
	Kind Kind
}

// Lit wraps v as a literal PropertyValue.
func Lit(v Value) PropertyValue { return PropertyValue{Variant: PVLiteral, Literal: v, Kind: v.Kind} }

// Ref builds a PropertyValue::Reference(name, kind).
func Ref(name string, kind Kind) PropertyValue {
	return PropertyValue{Variant: PVReference, Name: name, Kind: kind}
}

// Var builds a PropertyValue::Variable(name, kind), i.e. a reference to a
// local component argument.
func Var(name string, kind Kind) PropertyValue {
	return PropertyValue{Variant: PVVariable, Name: name, Kind: kind}
}

// IsReference reports whether pv indirects through the bag (Reference or
// Variable), as opposed to being a Literal.
func (pv PropertyValue) IsReference() bool {
	return pv.Variant == PVReference || pv.Variant == PVVariable
}

// String renders pv for debug output.
func (pv PropertyValue) String() string {
	switch pv.Variant {
	case PVLiteral:
		return pv.Literal.String()
	case PVReference:
		return "$" + pv.Name
	case PVVariable:
		return "$" + pv.Name + " (local)"
	default:
		return fmt.Sprintf("pv-%d", int(pv.Variant))
	}
}

// Resolve follows pv through res until it reaches a Literal, returning the
// materialized Value: this is the render-time evaluation step that reads a
// referenced bag entry. Resolve does not itself evaluate Variable
// conditions beyond the first match — that is Variable.Resolve's job,
// called here for every indirection.
func (pv PropertyValue) Resolve(res Resolver) (Value, error) {
	switch pv.Variant {
	case PVLiteral:
		return pv.Literal, nil
	case PVReference, PVVariable:
		return res.ResolveName(pv.Name, pv.Kind)
	default:
		return Value{}, fmt.Errorf("unknown property value variant %d", pv.Variant)
	}
}

// Resolver is implemented by Bag/DocumentView: anything that can look up a
// named entry and evaluate it down to a Value.
type Resolver interface {
	ResolveName(name string, kind Kind) (Value, error)
}
