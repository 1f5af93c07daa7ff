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

import "strings"

// BuildChildComponent runs the ChildComponent construction pipeline of spec
// §4.3 for a section naming a known Component. scope is the caller's scope
// (its own arguments and positional path); index allocates this call site's
// fresh positional path (§4.5 step "every call site allocates a fresh
// <path>").
func BuildChildComponent(comp *Component, sec *Section, scope *Scope, index int, res Resolver) (*ChildComponent, *Scope, error) {
	callScope := scope.Child(index, comp.CloneArguments())

	cc := &ChildComponent{
		Root:       comp.FullName,
		Properties: map[string]PropertyValue{},
		Path:       callScope.Path(),
	}

	given := map[string]PropertyValue{}
	var ifHeader *Header
	var events []Event

	for i := range sec.Header {
		h := &sec.Header[i]
		switch {
		case h.Key == "if":
			ifHeader = h
		case strings.HasPrefix(h.Key, "$on-") && strings.HasSuffix(h.Key, "$"):
			ev, err := ParseEvent(h.Key, h.Value, callScope)
			if err != nil {
				return nil, nil, err
			}
			events = append(events, ev)
		case h.Key == "$loop$", h.Key == "open", h.Key == "append-at", h.Key == "inherit", h.Key == "id", h.Key == "$processor$":
			// Handled by the interpreter/loop machinery, not a component argument.
		default:
			kind, ok := comp.Argument(h.Key)
			if !ok {
				return nil, nil, argumentErrorf("", h.Line, "component %s has no argument %q", comp.FullName, h.Key)
			}
			pv, err := parseHeaderValue(kind, h.Value, callScope)
			if err != nil {
				return nil, nil, err
			}
			given[h.Key] = pv
		}
	}

	if sec.HasCaption {
		if err := bindImplicit(comp, given, sec.Caption, SourceCaption); err != nil {
			return nil, nil, err
		}
	}
	if sec.HasBody {
		if err := bindImplicit(comp, given, sec.BodyVal.Text, SourceBody); err != nil {
			return nil, nil, err
		}
	}

	for _, arg := range comp.Arguments {
		if pv, ok := given[arg.Name]; ok {
			cc.Properties[arg.Name] = pv
			cc.Arguments = append(cc.Arguments, arg)
			continue
		}
		if prop, ok := comp.Properties[arg.Name]; ok {
			pv, ok, err := prop.Resolve(res)
			if err != nil {
				return nil, nil, err
			}
			if ok {
				// A default naming another of comp's own arguments is
				// rebound to that argument at this call site's path.
				if pv.Variant == PVVariable {
					if local, err := callScope.Lookup(pv.Name); err == nil {
						pv = local
					}
				}
				cc.Properties[arg.Name] = pv
				cc.Arguments = append(cc.Arguments, arg)
				continue
			}
		}
		if arg.Kind.HasDefault {
			pv, err := kindDefaultPV(arg.Kind)
			if err != nil {
				return nil, nil, err
			}
			cc.Properties[arg.Name] = pv
			cc.Arguments = append(cc.Arguments, arg)
			continue
		}
		if arg.Kind.IsOptional() {
			cc.Properties[arg.Name] = Lit(NoneValue(arg.Kind.Unwrap()))
			cc.Arguments = append(cc.Arguments, arg)
			continue
		}
		return nil, nil, argumentErrorf("", sec.LineNumber, "component %s: argument %q has no value and no default", comp.FullName, arg.Name)
	}

	if ifHeader != nil {
		cond, err := ParseBoolean(ifHeader.Value, callScope)
		if err != nil {
			return nil, nil, conditionErrorf("", ifHeader.Line, "bad if: condition: %v", err)
		}
		cc.HasCondition = true
		cc.Condition = cond
	}
	cc.Events = events

	if open, ok := sec.HeaderValue("open"); ok && open == "true" {
		cc.OpenContainer = true
	}
	if at, ok := sec.HeaderValue("append-at"); ok {
		cc.AppendAt = at
	}
	if id, ok := sec.HeaderValue("id"); ok {
		cc.ID = id
	}

	return cc, callScope, nil
}

// bindImplicit assigns text to the component's caption-or-body/caption/body
// argument, if it declares one.
func bindImplicit(comp *Component, given map[string]PropertyValue, text string, source StringSource) error {
	want := FlagCaption
	if source == SourceBody {
		want = FlagBody
	}
	for _, arg := range comp.Arguments {
		if arg.Kind.Variant != KString {
			continue
		}
		if arg.Kind.StringFlag == want || arg.Kind.StringFlag == FlagCaptionOrBody {
			if _, already := given[arg.Name]; !already {
				given[arg.Name] = Lit(StringValue(text, source))
			}
			return nil
		}
	}
	return nil
}

// parseHeaderValue parses a header's raw value v into a PropertyValue of
// kind, resolving any leading "$name" reference against scope.
func parseHeaderValue(kind Kind, v string, scope *Scope) (PropertyValue, error) {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "$") {
		return scope.Lookup(strings.TrimPrefix(v, "$"))
	}
	val, err := ParseLiteral(kind, v, SourceHeader)
	if err != nil {
		return PropertyValue{}, err
	}
	return Lit(val), nil
}
