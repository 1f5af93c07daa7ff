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

import "gopkg.in/yaml.v3"

// BagSnapshot is a YAML-friendly rendering of a Bag, for caching and
// debugging: every bag entry is serializable as a tagged union.
type BagSnapshot struct {
	Entries []ThingSnapshot `yaml:"entries"`
}

// ThingSnapshot is one Bag entry, tagged by kind.
type ThingSnapshot struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	Variable *VariableSnapshot `yaml:"variable,omitempty"`
	Record   *RecordSnapshot   `yaml:"record,omitempty"`
	OrType   *OrTypeSnapshot   `yaml:"or_type,omitempty"`
}

// VariableSnapshot renders a Variable's current resolved-free state: its
// literal value when it has one, and how many conditions it carries.
type VariableSnapshot struct {
	Value      string `yaml:"value"`
	Conditions int    `yaml:"conditions"`
}

// RecordSnapshot renders a Record's field schema.
type RecordSnapshot struct {
	Fields []string `yaml:"fields"`
}

// OrTypeSnapshot renders an OrType's variant list.
type OrTypeSnapshot struct {
	Variants []string `yaml:"variants"`
}

// Snapshot renders b into a BagSnapshot, in bag insertion order.
func Snapshot(b *Bag) BagSnapshot {
	var snap BagSnapshot
	for _, name := range b.Order() {
		t, _ := b.Get(name)
		entry := ThingSnapshot{Name: name, Kind: t.Kind.String()}
		switch t.Kind {
		case ThingVariable:
			entry.Variable = &VariableSnapshot{
				Value:      t.Variable.Value.String(),
				Conditions: len(t.Variable.Conditions),
			}
		case ThingRecord:
			entry.Record = &RecordSnapshot{Fields: t.Record.Order()}
		case ThingOrType:
			entry.OrType = &OrTypeSnapshot{Variants: t.OrType.Variants()}
		}
		snap.Entries = append(snap.Entries, entry)
	}
	return snap
}

// MarshalYAML renders b directly to YAML text, for debugging dumps and
// test golden files.
func MarshalYAML(b *Bag) ([]byte, error) {
	return yaml.Marshal(Snapshot(b))
}
