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
	"fmt"
	"strconv"
	"strings"
)

// BooleanOp names a Boolean expression node's operator.
type BooleanOp int

const (
	BIsNull BooleanOp = iota
	BIsNotNull
	BIsEmpty
	BIsNotEmpty
	BEqual
	BNot
	BLiteral
)

// Boolean is a small predicate expression tree over PropertyValues, parsed
// from `if:` headers.
type Boolean struct {
	Op    BooleanOp
	PV    PropertyValue // IsNull, IsNotNull, IsEmpty, IsNotEmpty
	Left  PropertyValue // Equal
	Right PropertyValue // Equal
	Inner *Boolean      // Not
	Lit   bool          // Literal
}

// IsNullPV builds `pv is not set`.
func IsNullPV(pv PropertyValue) Boolean { return Boolean{Op: BIsNull, PV: pv} }

// IsNotNullPV builds the negation of IsNullPV.
func IsNotNullPV(pv PropertyValue) Boolean { return Boolean{Op: BIsNotNull, PV: pv} }

// IsEmptyPV builds `pv is empty`.
func IsEmptyPV(pv PropertyValue) Boolean { return Boolean{Op: BIsEmpty, PV: pv} }

// IsNotEmptyPV builds `pv is not empty`.
func IsNotEmptyPV(pv PropertyValue) Boolean { return Boolean{Op: BIsNotEmpty, PV: pv} }

// EqualPV builds `left == right`.
func EqualPV(left, right PropertyValue) Boolean { return Boolean{Op: BEqual, Left: left, Right: right} }

// NotB builds the negation of b.
func NotB(b Boolean) Boolean { return Boolean{Op: BNot, Inner: &b} }

// LiteralB builds a constant true/false predicate.
func LiteralB(v bool) Boolean { return Boolean{Op: BLiteral, Lit: v} }

// Eval evaluates b against res, resolving any PropertyValues it contains.
func (b Boolean) Eval(res Resolver) (bool, error) {
	switch b.Op {
	case BLiteral:
		return b.Lit, nil
	case BNot:
		v, err := b.Inner.Eval(res)
		return !v, err
	case BIsNull, BIsNotNull:
		v, err := b.PV.Resolve(res)
		if err != nil {
			return false, err
		}
		null := v.IsNull()
		if b.Op == BIsNotNull {
			return !null, nil
		}
		return null, nil
	case BIsEmpty, BIsNotEmpty:
		v, err := b.PV.Resolve(res)
		if err != nil {
			return false, err
		}
		empty := v.IsEmpty()
		if b.Op == BIsNotEmpty {
			return !empty, nil
		}
		return empty, nil
	case BEqual:
		l, err := b.Left.Resolve(res)
		if err != nil {
			return false, err
		}
		r, err := b.Right.Resolve(res)
		if err != nil {
			return false, err
		}
		return equalValues(l, r)
	default:
		return false, fmt.Errorf("unknown boolean op %d", b.Op)
	}
}

// equalValues compares two Values for equality. Comparing mismatched kinds
// is a failure at evaluation time rather than always-false.
func equalValues(l, r Value) (bool, error) {
	lk, rk := l.Kind.Unwrap(), r.Kind.Unwrap()
	if !lk.Equal(rk) {
		return false, fmt.Errorf("cannot compare %s with %s", l.Kind, r.Kind)
	}
	switch lk.Variant {
	case KString:
		return l.Text == r.Text, nil
	case KInteger:
		return l.Int == r.Int, nil
	case KDecimal:
		return l.Dec == r.Dec, nil
	case KBoolean:
		return l.Bool == r.Bool, nil
	case KOrType:
		return l.Variant == r.Variant, nil
	default:
		return false, fmt.Errorf("%s is not comparable", lk)
	}
}

// ParseBoolean parses the textual form of an `if:` header value against the
// given scope (used to resolve `$name` references to Reference/Variable
// PropertyValues). The accepted grammar is intentionally small:
//
//	$a is not null / $a is null
//	$a is empty / $a is not empty
//	$a                      (shorthand for boolean truthiness: $a == true)
//	not $a
//	$a == $b / $a == <literal>
//	true / false            (constant)
func ParseBoolean(text string, scope *Scope) (Boolean, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Boolean{}, fmt.Errorf("empty condition")
	}
	if s == "true" || s == "false" {
		return LiteralB(s == "true"), nil
	}
	if strings.HasPrefix(s, "not ") {
		inner, err := ParseBoolean(s[4:], scope)
		if err != nil {
			return Boolean{}, err
		}
		return NotB(inner), nil
	}
	switch {
	case strings.HasSuffix(s, "is not null"):
		pv, err := resolveRefToken(strings.TrimSpace(strings.TrimSuffix(s, "is not null")), scope)
		if err != nil {
			return Boolean{}, err
		}
		return IsNotNullPV(pv), nil
	case strings.HasSuffix(s, "is null"):
		pv, err := resolveRefToken(strings.TrimSpace(strings.TrimSuffix(s, "is null")), scope)
		if err != nil {
			return Boolean{}, err
		}
		return IsNullPV(pv), nil
	case strings.HasSuffix(s, "is not empty"):
		pv, err := resolveRefToken(strings.TrimSpace(strings.TrimSuffix(s, "is not empty")), scope)
		if err != nil {
			return Boolean{}, err
		}
		return IsNotEmptyPV(pv), nil
	case strings.HasSuffix(s, "is empty"):
		pv, err := resolveRefToken(strings.TrimSpace(strings.TrimSuffix(s, "is empty")), scope)
		if err != nil {
			return Boolean{}, err
		}
		return IsEmptyPV(pv), nil
	}
	if idx := strings.Index(s, "=="); idx >= 0 {
		left := strings.TrimSpace(s[:idx])
		right := strings.TrimSpace(s[idx+2:])
		lpv, err := resolveRefToken(left, scope)
		if err != nil {
			return Boolean{}, err
		}
		rpv, err := parseOperand(right, scope)
		if err != nil {
			return Boolean{}, err
		}
		return EqualPV(lpv, rpv), nil
	}
	// Bare reference: truthiness check against boolean true.
	pv, err := resolveRefToken(s, scope)
	if err != nil {
		return Boolean{}, err
	}
	return EqualPV(pv, Lit(BooleanValue(true))), nil
}

// parseOperand parses the right-hand side of an `==` comparison, which may
// be a `$name` reference or a literal (boolean, integer, decimal, or
// quoted/bare string).
func parseOperand(s string, scope *Scope) (PropertyValue, error) {
	if strings.HasPrefix(s, "$") {
		return resolveRefToken(s, scope)
	}
	switch s {
	case "true":
		return Lit(BooleanValue(true)), nil
	case "false":
		return Lit(BooleanValue(false)), nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Lit(IntegerValue(n)), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Lit(DecimalValue(f)), nil
	}
	text := strings.Trim(s, "\"")
	return Lit(StringValue(text, SourceHeader)), nil
}

// resolveRefToken resolves a leading "$name" (optionally "$name.field",
// left unsplit here — field-path resolution happens in the Scope's lookup)
// token against scope into a Reference or Variable PropertyValue.
func resolveRefToken(s string, scope *Scope) (PropertyValue, error) {
	if !strings.HasPrefix(s, "$") {
		return PropertyValue{}, fmt.Errorf("expected $-reference, got %q", s)
	}
	return scope.Lookup(strings.TrimPrefix(s, "$"))
}
