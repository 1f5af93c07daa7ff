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

// A ChildComponent mirrors a Component call site: root reference,
// bound properties, optional condition, events, an argument snapshot
// visible to the caller, and whether it was produced by a $loop$.
type ChildComponent struct {
	Root        string
	Properties  map[string]PropertyValue
	HasCondition bool
	Condition   Boolean
	Events      []Event
	Arguments   []Argument
	IsRecursive bool

	// Path is the positional path (§4.5) allocated for this call site.
	Path string

	// Children holds sub-sections expanded in the caller's scope (§4.4),
	// when Root names a container-ish component with a body.
	Children []*ChildComponent

	// OpenContainer/AppendAt mirror the `open: true` / `append-at: <id>`
	// properties of a kernel container.
	OpenContainer bool
	AppendAt      string
	ID            string
}

// InstructionKind discriminates an Instruction's variant.
type InstructionKind int

const (
	IChildComponent InstructionKind = iota
	IComponent
	IChangeContainer
	IRecursiveChildComponent
)

// String implements fmt.Stringer.
func (k InstructionKind) String() string {
	switch k {
	case IChildComponent:
		return "ChildComponent"
	case IComponent:
		return "Component"
	case IChangeContainer:
		return "ChangeContainer"
	case IRecursiveChildComponent:
		return "RecursiveChildComponent"
	default:
		return "unknown"
	}
}

// An Instruction is one step in the materialization program the
// interpreter emits.
type Instruction struct {
	Kind InstructionKind

	// IChildComponent
	Child *ChildComponent

	// IComponent: a parent ChildComponent together with its expanded
	// children.
	Parent   *ChildComponent
	Children []*ChildComponent

	// IChangeContainer
	ContainerName string

	// IRecursiveChildComponent: every per-iteration expansion produced by
	// a $loop$.
	RecursiveChildren []*ChildComponent
}

// ChildInstruction wraps child as a plain ChildComponent instruction.
func ChildInstruction(child *ChildComponent) Instruction {
	return Instruction{Kind: IChildComponent, Child: child}
}

// ComponentInstruction wraps parent+children as a Component instruction.
func ComponentInstruction(parent *ChildComponent, children []*ChildComponent) Instruction {
	return Instruction{Kind: IComponent, Parent: parent, Children: children}
}

// ChangeContainerInstruction wraps a `-- container: <name>` directive.
func ChangeContainerInstruction(name string) Instruction {
	return Instruction{Kind: IChangeContainer, ContainerName: name}
}

// RecursiveInstruction wraps the expansions produced by a $loop$.
func RecursiveInstruction(children []*ChildComponent) Instruction {
	return Instruction{Kind: IRecursiveChildComponent, RecursiveChildren: children}
}
