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

func TestKindString(t *testing.T) {
	tests := []struct {
		desc string
		in   Kind
		want string
	}{
		{desc: "string", in: StringKind(), want: "string"},
		{desc: "caption", in: Caption(), want: "caption"},
		{desc: "body", in: Body(), want: "body"},
		{desc: "caption or body", in: CaptionOrBody(), want: "caption or body"},
		{desc: "record", in: RecordKind("person"), want: "record person"},
		{desc: "or-type", in: OrTypeKind("lead"), want: "or-type lead"},
		{desc: "list", in: ListKind(IntegerKind()), want: "list integer"},
		{desc: "optional", in: IntegerKind().AsOptional(), want: "optional integer"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindEqual(t *testing.T) {
	tests := []struct {
		desc string
		a, b Kind
		want bool
	}{
		{desc: "same primitive", a: IntegerKind(), b: IntegerKind(), want: true},
		{desc: "different primitive", a: IntegerKind(), b: DecimalKind(), want: false},
		{desc: "caption vs body ignored", a: Caption(), b: Body(), want: true},
		{desc: "same record", a: RecordKind("person"), b: RecordKind("person"), want: true},
		{desc: "different record name", a: RecordKind("person"), b: RecordKind("lead"), want: false},
		{desc: "same list element", a: ListKind(StringKind()), b: ListKind(StringKind()), want: true},
		{desc: "different list element", a: ListKind(StringKind()), b: ListKind(IntegerKind()), want: false},
		{desc: "default ignored", a: IntegerKind().WithLiteralDefault("1"), b: IntegerKind(), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindUnwrapAsOptional(t *testing.T) {
	k := IntegerKind()
	opt := k.AsOptional()
	if !opt.IsOptional() {
		t.Fatalf("AsOptional() did not produce an Optional kind")
	}
	if got := opt.Unwrap(); !got.Equal(k) {
		t.Errorf("Unwrap() = %v, want %v", got, k)
	}
	// AsOptional is idempotent.
	if got := opt.AsOptional(); got.Variant != KOptional || got.Of.Variant == KOptional {
		t.Errorf("AsOptional() on an already-Optional kind double-wrapped: %v", got)
	}
	// Unwrap on a non-Optional is a no-op.
	if got := k.Unwrap(); !got.Equal(k) {
		t.Errorf("Unwrap() on non-optional = %v, want %v", got, k)
	}
}

func TestKindDefaults(t *testing.T) {
	k := IntegerKind().WithLiteralDefault("42")
	if !k.HasDefault || k.DefaultLiteral != "42" {
		t.Fatalf("WithLiteralDefault did not set literal default: %+v", k)
	}
	k2 := k.WithRefDefault("other")
	if k2.DefaultLiteral != "" || k2.DefaultRef != "other" {
		t.Errorf("WithRefDefault did not clear literal default: %+v", k2)
	}
}

func TestAssignable(t *testing.T) {
	tests := []struct {
		desc     string
		src, dst Kind
		want     bool
	}{
		{desc: "identical", src: IntegerKind(), dst: IntegerKind(), want: true},
		{desc: "non-optional to optional", src: IntegerKind(), dst: IntegerKind().AsOptional(), want: true},
		{desc: "mismatched kinds", src: IntegerKind(), dst: StringKind(), want: false},
		{desc: "optional to non-optional", src: IntegerKind().AsOptional(), dst: IntegerKind(), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := Assignable(tt.src, tt.dst); got != tt.want {
				t.Errorf("Assignable(%v, %v) = %v, want %v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}
