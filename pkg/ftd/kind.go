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

import "fmt"

// This file implements the Kind lattice: ftd's type system, a small,
// closed set of variants, each able to carry a default either as a literal
// or as a reference to another bag entry.

// KindVariant names one of the closed set of type-lattice variants.
type KindVariant int

// The available kind variants.
const (
	KString KindVariant = iota
	KInteger
	KDecimal
	KBoolean
	KRecord
	KOrType
	KList
	KObject
	KUI
	KOptional
)

// String implements fmt.Stringer.
func (k KindVariant) String() string {
	switch k {
	case KString:
		return "string"
	case KInteger:
		return "integer"
	case KDecimal:
		return "decimal"
	case KBoolean:
		return "boolean"
	case KRecord:
		return "record"
	case KOrType:
		return "or-type"
	case KList:
		return "list"
	case KObject:
		return "object"
	case KUI:
		return "ui"
	case KOptional:
		return "optional"
	default:
		return fmt.Sprintf("kind-%d", int(k))
	}
}

// StringFlag marks which section position (a caption, a body, or either)
// implicitly fills a KString argument. A header naming the argument sets it
// whatever its flag.
type StringFlag int

const (
	// FlagNone: neither a caption nor a body fills the argument.
	FlagNone StringFlag = iota
	// FlagCaption: a section caption fills the argument.
	FlagCaption
	// FlagBody: a section body fills the argument.
	FlagBody
	// FlagCaptionOrBody: a section caption or body fills the argument.
	FlagCaptionOrBody
)

// A Kind is a node in ftd's type lattice. Kinds compose: Optional{List{Record{X}}}
// is legal and is built by nesting Of.
//
// Equality on Kind ignores Default.
type Kind struct {
	Variant KindVariant

	// StringFlag applies only when Variant == KString.
	StringFlag StringFlag

	// Name names the referenced Record or OrType when Variant is KRecord or
	// KOrType.
	Name string

	// Of is the element Kind for KList and KOptional.
	Of *Kind

	// Default is the kind's default value, if any. At most one of
	// DefaultLiteral/DefaultRef is set.
	DefaultLiteral string
	DefaultRef     string
	HasDefault     bool
}

// String returns a ftd header-style rendering of k, e.g. "string",
// "optional string", "list record person".
func (k Kind) String() string {
	switch k.Variant {
	case KString:
		switch k.StringFlag {
		case FlagCaption:
			return "caption"
		case FlagBody:
			return "body"
		case FlagCaptionOrBody:
			return "caption or body"
		default:
			return "string"
		}
	case KRecord:
		return "record " + k.Name
	case KOrType:
		return "or-type " + k.Name
	case KList:
		return "list " + k.Of.String()
	case KOptional:
		return "optional " + k.Of.String()
	default:
		return k.Variant.String()
	}
}

// Equal reports whether k and o describe the same type, ignoring defaults.
func (k Kind) Equal(o Kind) bool {
	if k.Variant != o.Variant {
		return false
	}
	switch k.Variant {
	case KString:
		return true // caption/body is a source-position restriction, not a distinct type
	case KRecord, KOrType:
		return k.Name == o.Name
	case KList, KOptional:
		if k.Of == nil || o.Of == nil {
			return k.Of == o.Of
		}
		return k.Of.Equal(*o.Of)
	default:
		return true
	}
}

// IsOptional reports whether k is Optional{...}.
func (k Kind) IsOptional() bool { return k.Variant == KOptional }

// Unwrap returns the element Kind of an Optional, or k itself otherwise.
func (k Kind) Unwrap() Kind {
	if k.Variant == KOptional && k.Of != nil {
		return *k.Of
	}
	return k
}

// AsOptional wraps k in an Optional Kind, unless it already is one.
func (k Kind) AsOptional() Kind {
	if k.Variant == KOptional {
		return k
	}
	cp := k
	return Kind{Variant: KOptional, Of: &cp}
}

// Constructors for the primitive Kinds.

// String returns the unrestricted string Kind.
func StringKind() Kind { return Kind{Variant: KString} }

// Caption returns the string Kind restricted to a section's caption.
func Caption() Kind { return Kind{Variant: KString, StringFlag: FlagCaption} }

// Body returns the string Kind restricted to a section's body.
func Body() Kind { return Kind{Variant: KString, StringFlag: FlagBody} }

// CaptionOrBody returns a String Kind permitting either source position.
func CaptionOrBody() Kind { return Kind{Variant: KString, StringFlag: FlagCaptionOrBody} }

// IntegerKind returns the Integer Kind.
func IntegerKind() Kind { return Kind{Variant: KInteger} }

// DecimalKind returns the Decimal Kind.
func DecimalKind() Kind { return Kind{Variant: KDecimal} }

// BooleanKind returns the Boolean Kind.
func BooleanKind() Kind { return Kind{Variant: KBoolean} }

// RecordKind returns a Kind referencing the record named name.
func RecordKind(name string) Kind { return Kind{Variant: KRecord, Name: name} }

// OrTypeKind returns a Kind referencing the or-type named name.
func OrTypeKind(name string) Kind { return Kind{Variant: KOrType, Name: name} }

// ListKind returns a Kind that is a list of of.
func ListKind(of Kind) Kind { return Kind{Variant: KList, Of: &of} }

// ObjectKind returns the opaque Object Kind.
func ObjectKind() Kind { return Kind{Variant: KObject} }

// UIKind returns the Kind held by a component's root/child reference.
func UIKind() Kind { return Kind{Variant: KUI} }

// WithLiteralDefault returns a copy of k carrying a literal textual default.
func (k Kind) WithLiteralDefault(lit string) Kind {
	k.HasDefault = true
	k.DefaultLiteral = lit
	k.DefaultRef = ""
	return k
}

// WithRefDefault returns a copy of k whose default is `$name`, a reference
// to another bag entry.
func (k Kind) WithRefDefault(name string) Kind {
	k.HasDefault = true
	k.DefaultRef = name
	k.DefaultLiteral = ""
	return k
}

// Assignable reports whether a value of Kind src may be used where dst is
// required: identical kinds are always assignable, and a non-optional src
// is assignable to an Optional{src} dst.
func Assignable(src, dst Kind) bool {
	if src.Equal(dst) {
		return true
	}
	if dst.Variant == KOptional && dst.Of != nil {
		return Assignable(src, *dst.Of)
	}
	return false
}
