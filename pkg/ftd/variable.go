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

// VariableFlags holds the boolean flags a Variable may carry.
type VariableFlags struct {
	// AlwaysInclude marks a variable (typically a list element) that must
	// survive container filtering even when otherwise unreferenced.
	AlwaysInclude bool
}

// A VariableCondition pairs a predicate with the PropertyValue to use when
// it holds. Conditions are evaluated in order; the first match wins at
// render time, otherwise the variable's base value is used.
type VariableCondition struct {
	Cond  Boolean
	Value PropertyValue
}

// A Variable is a named value plus conditional overrides and flags.
type Variable struct {
	Name       string
	Value      PropertyValue
	Conditions []VariableCondition
	Flags      VariableFlags
}

// NewVariable builds a Variable with no conditions.
func NewVariable(name string, value PropertyValue) *Variable {
	return &Variable{Name: name, Value: value}
}

// AddCondition appends a (Boolean, PropertyValue) pair to v's conditions;
// called when an update section carries an if: header.
func (v *Variable) AddCondition(cond Boolean, value PropertyValue) {
	v.Conditions = append(v.Conditions, VariableCondition{Cond: cond, Value: value})
}

// Resolve evaluates v's conditions in order against res and returns the
// first matching PropertyValue, or v.Value if none match.
func (v *Variable) Resolve(res Resolver) (PropertyValue, error) {
	for _, c := range v.Conditions {
		ok, err := c.Cond.Eval(res)
		if err != nil {
			return PropertyValue{}, err
		}
		if ok {
			return c.Value, nil
		}
	}
	return v.Value, nil
}

// ResolveValue resolves v fully down to a materialized Value, following its
// winning condition (or default value) through to a Literal.
func (v *Variable) ResolveValue(res Resolver) (Value, error) {
	pv, err := v.Resolve(res)
	if err != nil {
		return Value{}, err
	}
	return pv.Resolve(res)
}
