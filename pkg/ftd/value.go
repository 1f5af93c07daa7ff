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

// StringSource records which section position a String value was written
// from.
type StringSource int

// The possible sources of a String value.
const (
	SourceDefault StringSource = iota
	SourceCaption
	SourceHeader
	SourceBody
)

// A Value is fully materialized runtime data, as opposed to a PropertyValue
// which may still be an unresolved reference.
type Value struct {
	Kind Kind

	// String
	Text   string
	Source StringSource

	// Integer
	Int int64

	// Decimal
	Dec float64

	// Boolean
	Bool bool

	// Record / OrType
	RecordName string
	Variant    string // set only for OrType values
	Fields     *OrderedFields

	// List
	Elements []PropertyValue

	// Object
	Entries map[string]PropertyValue

	// Optional
	HasValue bool
	Inner    *Value

	// None-of-kind (Value.Kind is populated, nothing else is)
	IsNone bool
}

// OrderedFields is an insertion-ordered field→PropertyValue map, used by
// Record and OrType values so field order survives round-trips without
// relying on Go map iteration order.
type OrderedFields struct {
	order  []string
	values map[string]PropertyValue
}

// NewOrderedFields returns an empty OrderedFields.
func NewOrderedFields() *OrderedFields {
	return &OrderedFields{values: map[string]PropertyValue{}}
}

// Set inserts or replaces the field named name. The first Set call for a
// given name fixes its position in Order.
func (f *OrderedFields) Set(name string, pv PropertyValue) {
	if _, ok := f.values[name]; !ok {
		f.order = append(f.order, name)
	}
	f.values[name] = pv
}

// Get returns the field named name and whether it was present.
func (f *OrderedFields) Get(name string) (PropertyValue, bool) {
	pv, ok := f.values[name]
	return pv, ok
}

// Order returns the field names in declaration order.
func (f *OrderedFields) Order() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Len returns the number of fields.
func (f *OrderedFields) Len() int { return len(f.order) }

// StringValue builds a String Value.
func StringValue(text string, source StringSource) Value {
	return Value{Kind: StringKind(), Text: text, Source: source}
}

// IntegerValue builds an Integer Value.
func IntegerValue(n int64) Value { return Value{Kind: IntegerKind(), Int: n} }

// DecimalValue builds a Decimal Value.
func DecimalValue(n float64) Value { return Value{Kind: DecimalKind(), Dec: n} }

// BooleanValue builds a Boolean Value.
func BooleanValue(b bool) Value { return Value{Kind: BooleanKind(), Bool: b} }

// RecordValue builds a Record Value with the given fields.
func RecordValue(name string, fields *OrderedFields) Value {
	return Value{Kind: RecordKind(name), RecordName: name, Fields: fields}
}

// OrTypeValue builds an OrType Value activating the named variant.
func OrTypeValue(name, variant string, fields *OrderedFields) Value {
	return Value{Kind: OrTypeKind(name), RecordName: name, Variant: variant, Fields: fields}
}

// ListValue builds a List Value of the given element Kind.
func ListValue(of Kind, elements []PropertyValue) Value {
	return Value{Kind: ListKind(of), Elements: elements}
}

// ObjectValue builds an Object Value.
func ObjectValue(entries map[string]PropertyValue) Value {
	if entries == nil {
		entries = map[string]PropertyValue{}
	}
	return Value{Kind: ObjectKind(), Entries: entries}
}

// OptionalValue builds a present Optional Value wrapping inner.
func OptionalValue(of Kind, inner Value) Value {
	return Value{Kind: of.AsOptional(), HasValue: true, Inner: &inner}
}

// NoneValue builds an absent Optional{of} Value: an optional variable with
// no initializer yields this.
func NoneValue(of Kind) Value {
	return Value{Kind: of.AsOptional(), HasValue: false}
}

// None builds a None-of-kind Value (used for an empty list element slot or
// an uninitialized non-optional field during construction).
func None(k Kind) Value { return Value{Kind: k, IsNone: true} }

// IsEmpty reports whether v is an empty List, an empty-string String, or an
// absent Optional, the cases the `is empty`/`is not empty` predicates care
// about.
func (v Value) IsEmpty() bool {
	switch v.Kind.Variant {
	case KList:
		return len(v.Elements) == 0
	case KString:
		return v.Text == ""
	case KOptional:
		return !v.HasValue
	default:
		return false
	}
}

// IsNull reports whether v is an absent Optional.
func (v Value) IsNull() bool {
	return v.Kind.Variant == KOptional && !v.HasValue
}

// String implements fmt.Stringer for debug dumps.
func (v Value) String() string {
	switch v.Kind.Variant {
	case KString:
		return fmt.Sprintf("%q", v.Text)
	case KInteger:
		return fmt.Sprintf("%d", v.Int)
	case KDecimal:
		return fmt.Sprintf("%g", v.Dec)
	case KBoolean:
		return fmt.Sprintf("%t", v.Bool)
	case KRecord:
		return fmt.Sprintf("%s{...}", v.RecordName)
	case KOrType:
		return fmt.Sprintf("%s.%s{...}", v.RecordName, v.Variant)
	case KList:
		return fmt.Sprintf("list[%d]", len(v.Elements))
	case KObject:
		return fmt.Sprintf("object[%d]", len(v.Entries))
	case KOptional:
		if !v.HasValue {
			return "null"
		}
		return v.Inner.String()
	default:
		return "<none>"
	}
}
