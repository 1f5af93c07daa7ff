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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooleanEval(t *testing.T) {
	res := fakeResolver{
		"m#set":   StringValue("hi", SourceHeader),
		"m#unset": NoneValue(StringKind()),
		"m#empty": StringValue("", SourceHeader),
		"m#truthy": BooleanValue(true),
	}

	tests := []struct {
		desc string
		b    Boolean
		want bool
	}{
		{desc: "literal true", b: LiteralB(true), want: true},
		{desc: "not literal true", b: NotB(LiteralB(true)), want: false},
		{desc: "is null on set value", b: IsNullPV(Ref("m#set", StringKind())), want: false},
		{desc: "is null on unset optional", b: IsNullPV(Ref("m#unset", StringKind().AsOptional())), want: true},
		{desc: "is not null on set value", b: IsNotNullPV(Ref("m#set", StringKind())), want: true},
		{desc: "is empty on empty string", b: IsEmptyPV(Ref("m#empty", StringKind())), want: true},
		{desc: "is not empty on set value", b: IsNotEmptyPV(Ref("m#set", StringKind())), want: true},
		{desc: "equal strings", b: EqualPV(Lit(StringValue("a", SourceHeader)), Lit(StringValue("a", SourceHeader))), want: true},
		{desc: "unequal strings", b: EqualPV(Lit(StringValue("a", SourceHeader)), Lit(StringValue("b", SourceHeader))), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := tt.b.Eval(res)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBooleanEvalMismatchedKindsFails(t *testing.T) {
	b := EqualPV(Lit(IntegerValue(1)), Lit(StringValue("1", SourceHeader)))
	_, err := b.Eval(fakeResolver{})
	require.Error(t, err)
}

func TestParseBoolean(t *testing.T) {
	scope := NewScope("m", fakeResolver{"m#a": IntegerValue(1)})
	scope.args["x"] = StringKind().AsOptional()

	tests := []struct {
		desc string
		text string
	}{
		{desc: "is null", text: "$x is null"},
		{desc: "is not null", text: "$x is not null"},
		{desc: "is empty", text: "$x is empty"},
		{desc: "is not empty", text: "$x is not empty"},
		{desc: "not prefix", text: "not $x is null"},
		{desc: "equality with literal", text: "$x == \"hi\""},
		{desc: "bare truthiness", text: "$x"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if _, err := ParseBoolean(tt.text, scope); err != nil {
				t.Errorf("ParseBoolean(%q) error = %v", tt.text, err)
			}
		})
	}
}

func TestParseBooleanEmpty(t *testing.T) {
	scope := NewScope("m", fakeResolver{})
	if _, err := ParseBoolean("   ", scope); err == nil {
		t.Errorf("ParseBoolean(empty) succeeded, want error")
	}
}

func TestParseOperandLiteralKinds(t *testing.T) {
	scope := NewScope("m", fakeResolver{})
	tests := []struct {
		in       string
		wantKind KindVariant
	}{
		{"true", KBoolean},
		{"false", KBoolean},
		{"42", KInteger},
		{"3.5", KDecimal},
		{"\"hi\"", KString},
	}
	for _, tt := range tests {
		pv, err := parseOperand(tt.in, scope)
		require.NoError(t, err)
		assert.Equal(t, tt.wantKind, pv.Kind.Variant, "parseOperand(%q)", tt.in)
	}
}
