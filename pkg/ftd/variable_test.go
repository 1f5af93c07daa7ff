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

func TestVariableResolveFirstMatchWins(t *testing.T) {
	v := NewVariable("x", Lit(IntegerValue(1)))
	v.AddCondition(LiteralB(false), Lit(IntegerValue(2)))
	v.AddCondition(LiteralB(true), Lit(IntegerValue(3)))
	v.AddCondition(LiteralB(true), Lit(IntegerValue(4))) // never reached

	pv, err := v.Resolve(fakeResolver{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if pv.Literal.Int != 3 {
		t.Errorf("Resolve() = %v, want the first matching condition's value (3)", pv.Literal.Int)
	}
}

func TestVariableResolveNoConditionsMatch(t *testing.T) {
	v := NewVariable("x", Lit(IntegerValue(1)))
	v.AddCondition(LiteralB(false), Lit(IntegerValue(2)))

	pv, err := v.Resolve(fakeResolver{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if pv.Literal.Int != 1 {
		t.Errorf("Resolve() = %v, want the base value (1)", pv.Literal.Int)
	}
}

func TestVariableResolveValue(t *testing.T) {
	res := fakeResolver{"foo#y": IntegerValue(99)}
	v := NewVariable("x", Ref("foo#y", IntegerKind()))

	got, err := v.ResolveValue(res)
	if err != nil {
		t.Fatalf("ResolveValue() error = %v", err)
	}
	if got.Int != 99 {
		t.Errorf("ResolveValue() = %v, want 99", got.Int)
	}
}

func TestVariableResolvePropagatesConditionError(t *testing.T) {
	v := NewVariable("x", Lit(IntegerValue(1)))
	v.AddCondition(EqualPV(Lit(IntegerValue(1)), Lit(StringValue("x", SourceHeader))), Lit(IntegerValue(2)))

	if _, err := v.Resolve(fakeResolver{}); err == nil {
		t.Errorf("Resolve() with a mismatched-kind condition succeeded, want error")
	}
}
