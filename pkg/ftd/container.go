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

// ContainerTracker resolves `-- container: <id>` directives and open
// containers against the instruction stream emitted so far: every
// ChangeContainer(name) must resolve to a container id observed with
// "open: true" so far. Whether that container is an ancestor of the
// current insertion point is not checked.
type ContainerTracker struct {
	// open maps a container id to the ChildComponent that declared it open
	// via "open: true" with an "append-at: <child-id>" property.
	open map[string]*ChildComponent

	// current is the id of the container new top-level instructions append
	// to; "" means the document root.
	current string
}

// NewContainerTracker returns a tracker with the document root as the
// current insertion point.
func NewContainerTracker() *ContainerTracker {
	return &ContainerTracker{open: map[string]*ChildComponent{}}
}

// Observe records cc as an emitted instruction, remembering it if it
// declared itself an open container.
func (t *ContainerTracker) Observe(cc *ChildComponent) {
	if cc.OpenContainer && cc.ID != "" {
		t.open[cc.ID] = cc
	}
}

// ObserveTree records cc and every descendant of cc (used once a full
// Component{parent, children} instruction has been built), so `-- container:`
// can later target a container nested arbitrarily deep in an already-emitted
// subtree.
func (t *ContainerTracker) ObserveTree(cc *ChildComponent) {
	t.Observe(cc)
	for _, child := range cc.Children {
		t.ObserveTree(child)
	}
}

// Switch resolves a `-- container: <id>` directive, moving the current
// insertion point to id. It fails with a ContainerError if id does not name
// an open container observed so far.
func (t *ContainerTracker) Switch(id string, line int) error {
	if _, ok := t.open[id]; !ok {
		return containerErrorf("", line, "container %q is not an open container in the instruction stream emitted so far", id)
	}
	t.current = id
	return nil
}

// Current returns the id of the container new instructions should append to
// ("" for the document root).
func (t *ContainerTracker) Current() string { return t.current }

// AppendAt returns the append point id's resolved target ChildComponent:
// downstream sub-sections whose id path matches an open container are
// placed at that append point.
func (t *ContainerTracker) AppendAt(id string) (*ChildComponent, bool) {
	cc, ok := t.open[id]
	return cc, ok
}
