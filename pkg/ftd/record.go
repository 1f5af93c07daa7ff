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

// A Field is one member of a Record, in declaration order.
type Field struct {
	Name    string
	Kind    Kind
	Default PropertyValue
	HasDefault bool
}

// A Record is a named product type declaration, with field ordering and
// field defaults preserved.
type Record struct {
	FullName string
	fields   []Field
	byName   map[string]int

	// instances holds documentation-style data-table rows appended by
	// sections named after the record (`-- person: first`).
	instances []*Value
}

// NewRecord returns an empty Record named fullName.
func NewRecord(fullName string) *Record {
	return &Record{FullName: fullName, byName: map[string]int{}}
}

// AddField appends f to r. Redeclaring a field name is a caller error:
// AddField does not check for it, and the interpreter rejects a record
// declaration that repeats a field name before calling AddField.
func (r *Record) AddField(f Field) {
	r.byName[f.Name] = len(r.fields)
	r.fields = append(r.fields, f)
}

// Field returns the field named name, and whether it exists.
func (r *Record) Field(name string) (Field, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Field{}, false
	}
	return r.fields[i], true
}

// Order returns field names in declaration order, exactly once each.
func (r *Record) Order() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Name
	}
	return out
}

// Fields returns the fields in declaration order.
func (r *Record) Fields() []Field { return r.fields }

// AddInstance appends a documentation-style instance row.
func (r *Record) AddInstance(v *Value) { r.instances = append(r.instances, v) }

// Instances returns the appended documentation rows, in append order.
func (r *Record) Instances() []*Value { return r.instances }

// Instantiate builds a Value{Kind: Record} from the given field values,
// filling in any missing fields from their declared defaults in
// declaration order (a field's $ref default may only reference an earlier
// field of the same record). given maps field name to an explicitly
// provided PropertyValue; fields absent from given fall back to
// Field.Default / Kind default.
func (r *Record) Instantiate(given map[string]PropertyValue, res Resolver) (Value, error) {
	fields := NewOrderedFields()
	resolved := map[string]PropertyValue{} // fields already placed, for $ref defaults

	for i, f := range r.fields {
		if pv, ok := given[f.Name]; ok {
			fields.Set(f.Name, pv)
			resolved[f.Name] = pv
			continue
		}
		if f.HasDefault {
			pv := f.Default
			if pv.IsReference() {
				if earlier, ok := resolved[pv.Name]; ok {
					pv = earlier
				} else if j, isField := r.byName[pv.Name]; isField && j >= i {
					return Value{}, kindErrorf("", 0, "record %s: default of field %q references field %q, which is not declared before it", r.FullName, f.Name, pv.Name)
				}
			}
			fields.Set(f.Name, pv)
			resolved[f.Name] = pv
			continue
		}
		if f.Kind.HasDefault {
			pv, err := kindDefaultPV(f.Kind)
			if err != nil {
				return Value{}, err
			}
			fields.Set(f.Name, pv)
			resolved[f.Name] = pv
			continue
		}
		if f.Kind.IsOptional() {
			fields.Set(f.Name, Lit(NoneValue(f.Kind.Unwrap())))
			continue
		}
		return Value{}, kindErrorf("", 0, "record %s: missing required field %q with no default", r.FullName, f.Name)
	}

	return RecordValue(r.FullName, fields), nil
}

// kindDefaultPV turns a Kind's literal/reference default into a
// PropertyValue.
func kindDefaultPV(k Kind) (PropertyValue, error) {
	if !k.HasDefault {
		return PropertyValue{}, fmt.Errorf("kind %s has no default", k)
	}
	if k.DefaultRef != "" {
		return Ref(k.DefaultRef, k), nil
	}
	v, err := ParseLiteral(k, k.DefaultLiteral, SourceDefault)
	if err != nil {
		return PropertyValue{}, err
	}
	return Lit(v), nil
}

// An OrType is a named sum type: a closed list of variant names, each
// optionally carrying its own field schema. FTD reuses Record for
// a variant's field schema.
type OrType struct {
	FullName string
	variants []string
	schema   map[string]*Record
}

// NewOrType returns an empty OrType named fullName.
func NewOrType(fullName string) *OrType {
	return &OrType{FullName: fullName, schema: map[string]*Record{}}
}

// AddVariant declares variant with the given field schema.
func (o *OrType) AddVariant(variant string, schema *Record) {
	o.variants = append(o.variants, variant)
	o.schema[variant] = schema
}

// HasVariant reports whether variant is declared on o.
func (o *OrType) HasVariant(variant string) bool {
	_, ok := o.schema[variant]
	return ok
}

// Variants returns the declared variant names in declaration order.
func (o *OrType) Variants() []string {
	out := make([]string, len(o.variants))
	copy(out, o.variants)
	return out
}

// Schema returns the field schema for variant, and whether it is declared.
func (o *OrType) Schema(variant string) (*Record, bool) {
	r, ok := o.schema[variant]
	return r, ok
}

// Activate builds a Value{Kind: OrType} for the named variant, validating
// the variant name against o's declared list first.
func (o *OrType) Activate(variant string, given map[string]PropertyValue, res Resolver) (Value, error) {
	schema, ok := o.Schema(variant)
	if !ok {
		return Value{}, nameErrorf("", 0, "%s has no variant %q", o.FullName, variant)
	}
	rv, err := schema.Instantiate(given, res)
	if err != nil {
		return Value{}, err
	}
	return OrTypeValue(o.FullName, variant, rv.Fields), nil
}
