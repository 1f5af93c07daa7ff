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

import "strconv"

// ParseLiteral parses text — taken from a section's caption, a header
// value, or its body, as recorded by source — into a Value of kind k (spec
// §4.1.e: "parse literal from caption/header/body"). Record, OrType, List
// and Object kinds have no literal textual form; they are only ever built
// by Record.Instantiate/OrType.Activate or list/object header syntax, so
// ParseLiteral rejects them.
func ParseLiteral(k Kind, text string, source StringSource) (Value, error) {
	switch k.Variant {
	case KString:
		return StringValue(text, source), nil
	case KInteger:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, kindErrorf("", 0, "cannot parse %q as integer", text)
		}
		return IntegerValue(n), nil
	case KDecimal:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, kindErrorf("", 0, "cannot parse %q as decimal", text)
		}
		return DecimalValue(f), nil
	case KBoolean:
		switch text {
		case "true":
			return BooleanValue(true), nil
		case "false":
			return BooleanValue(false), nil
		default:
			return Value{}, kindErrorf("", 0, "cannot parse %q as boolean", text)
		}
	case KOptional:
		if text == "" {
			return NoneValue(*k.Of), nil
		}
		inner, err := ParseLiteral(*k.Of, text, source)
		if err != nil {
			return Value{}, err
		}
		return OptionalValue(*k.Of, inner), nil
	default:
		return Value{}, kindErrorf("", 0, "%s has no literal textual form", k)
	}
}
