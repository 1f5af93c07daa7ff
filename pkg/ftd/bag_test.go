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

import "testing"

func TestBagOrderPreservesInsertion(t *testing.T) {
	b := NewBag()
	b.Set("m#c", VariableThing(NewVariable("m#c", Lit(IntegerValue(3)))))
	b.Set("m#a", VariableThing(NewVariable("m#a", Lit(IntegerValue(1)))))
	b.Set("m#c", VariableThing(NewVariable("m#c", Lit(IntegerValue(30))))) // overwrite keeps position

	if got, want := b.Order(), []string{"m#c", "m#a"}; !stringsEqual(got, want) {
		t.Errorf("Order() = %v, want %v", got, want)
	}
	if got := b.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestBagDelete(t *testing.T) {
	b := NewBag()
	b.Set("m#a", VariableThing(NewVariable("m#a", Lit(IntegerValue(1)))))
	b.Delete("m#a")
	if _, ok := b.Get("m#a"); ok {
		t.Errorf("Get() after Delete() reported present")
	}
	if got := b.Order(); len(got) != 0 {
		t.Errorf("Order() after Delete() = %v, want empty", got)
	}
	b.Delete("m#never-existed") // no-op, must not panic
}

func TestBagResolveNameVariable(t *testing.T) {
	b := NewBag()
	b.Set("m#x", VariableThing(NewVariable("m#x", Lit(IntegerValue(7)))))

	got, err := b.ResolveName("m#x", IntegerKind())
	if err != nil || got.Int != 7 {
		t.Errorf("ResolveName() = %v, %v, want 7, nil", got, err)
	}
}

func TestBagResolveNameUndefined(t *testing.T) {
	b := NewBag()
	if _, err := b.ResolveName("m#missing", StringKind()); err == nil {
		t.Errorf("ResolveName() of an undefined name succeeded, want error")
	}
}

func TestBagResolveNameNonValueThingFails(t *testing.T) {
	b := NewBag()
	b.Set("m#person", RecordThing(NewRecord("m#person")))
	if _, err := b.ResolveName("m#person", RecordKind("m#person")); err == nil {
		t.Errorf("ResolveName() of a Record entry succeeded, want error (records aren't values)")
	}
}

func TestBagResolveNameFieldPath(t *testing.T) {
	b := NewBag()
	r := newPersonRecord()
	b.Set("m#person", RecordThing(r))
	rv, err := r.Instantiate(map[string]PropertyValue{"name": Lit(StringValue("Ava", SourceHeader))}, b)
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}
	b.Set("m#p1", VariableThing(NewVariable("m#p1", Lit(rv))))

	got, err := b.ResolveName("m#p1.name", StringKind())
	if err != nil || got.Text != "Ava" {
		t.Errorf("ResolveName(field path) = %v, %v, want Ava, nil", got, err)
	}

	if _, err := b.ResolveName("m#p1.nosuchfield", StringKind()); err == nil {
		t.Errorf("ResolveName() of an undeclared field succeeded, want error")
	}
}

func TestDocumentViewQualify(t *testing.T) {
	b := NewBag()
	b.Set("foo/bar#x", VariableThing(NewVariable("foo/bar#x", Lit(IntegerValue(5)))))
	d := NewDocumentView(b, "foo/bar")

	got, err := d.ResolveName("x", IntegerKind())
	if err != nil || got.Int != 5 {
		t.Errorf("ResolveName(bare name) = %v, %v, want 5, nil", got, err)
	}

	d.AddAlias("util", "foo/util")
	b.Set("foo/util#y", VariableThing(NewVariable("foo/util#y", Lit(IntegerValue(6)))))
	got, err = d.ResolveName("util#y", IntegerKind())
	if err != nil || got.Int != 6 {
		t.Errorf("ResolveName(aliased name) = %v, %v, want 6, nil", got, err)
	}

	target, ok := d.Alias("util")
	if !ok || target != "foo/util" {
		t.Errorf("Alias(%q) = %q, %v, want foo/util, true", "util", target, ok)
	}
	if _, ok := d.Alias("nope"); ok {
		t.Errorf("Alias(%q) reported present", "nope")
	}
	if got := d.Module(); got != "foo/bar" {
		t.Errorf("Module() = %q, want foo/bar", got)
	}
}

func TestDocumentViewBuiltinFtdAlias(t *testing.T) {
	b := NewBag()
	if err := SeedBuiltins(b); err != nil {
		t.Fatalf("SeedBuiltins() error = %v", err)
	}
	d := NewDocumentView(b, "m")
	target, ok := d.Alias("ftd")
	if !ok || target != "ftd" {
		t.Errorf("Alias(%q) = %q, %v, want ftd, true", "ftd", target, ok)
	}
}
