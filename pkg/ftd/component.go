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

// A PropertyCondition pairs a predicate with the PropertyValue a Property
// takes on when it holds, the same shape Variable uses for its
// own conditions.
type PropertyCondition struct {
	Cond  Boolean
	Value PropertyValue
}

// A Property is one bound argument of a component call site, or a
// component-level default binding.
type Property struct {
	Default          PropertyValue
	HasDefault       bool
	Conditions       []PropertyCondition
	NestedProperties map[string]*Property
}

// Resolve evaluates p's conditions in order and returns the first matching
// PropertyValue, falling back to Default.
func (p *Property) Resolve(res Resolver) (PropertyValue, bool, error) {
	for _, c := range p.Conditions {
		ok, err := c.Cond.Eval(res)
		if err != nil {
			return PropertyValue{}, false, err
		}
		if ok {
			return c.Value, true, nil
		}
	}
	if p.HasDefault {
		return p.Default, true, nil
	}
	return PropertyValue{}, false, nil
}

// An Argument is one named, typed argument of a Component's schema, kept in
// insertion order.
type Argument struct {
	Name string
	Kind Kind
}

// A Component is a reusable template: a root reference, typed
// arguments, property bindings, an inner instruction list, and attached
// events.
type Component struct {
	FullName   string
	Root       string // full name of the component this one is built from ("" for a kernel component with no root)
	Arguments  []Argument
	argIndex   map[string]int
	Properties map[string]*Property
	Instructions []Instruction
	Events     []Event
	Condition  *Boolean

	// Kernel marks a, hard-coded primitive builtin (ftd#row, ftd#text, ...).
	Kernel bool
}

// NewComponent returns an empty Component named fullName, built from root.
func NewComponent(fullName, root string) *Component {
	return &Component{
		FullName:   fullName,
		Root:       root,
		argIndex:   map[string]int{},
		Properties: map[string]*Property{},
	}
}

// AddArgument appends an argument to c's schema, in declaration order.
func (c *Component) AddArgument(name string, kind Kind) {
	c.argIndex[name] = len(c.Arguments)
	c.Arguments = append(c.Arguments, Argument{Name: name, Kind: kind})
}

// Argument returns the named argument's Kind, and whether it is declared.
func (c *Component) Argument(name string) (Kind, bool) {
	i, ok := c.argIndex[name]
	if !ok {
		return Kind{}, false
	}
	return c.Arguments[i].Kind, true
}

// CloneArguments returns a copy of c's argument schema.
func (c *Component) CloneArguments() []Argument {
	out := make([]Argument, len(c.Arguments))
	copy(out, c.Arguments)
	return out
}

// argIndexFromArguments rebuilds argIndex from c.Arguments, for callers that
// assign c.Arguments directly (e.g. cloning another component's schema when
// declaring a derived component).
func (c *Component) argIndexFromArguments() {
	c.argIndex = make(map[string]int, len(c.Arguments))
	for i, a := range c.Arguments {
		c.argIndex[a.Name] = i
	}
}
