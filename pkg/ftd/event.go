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

// Trigger names the DOM-ish event a handler fires on.
type Trigger string

// The supported triggers.
const (
	OnClick       Trigger = "onclick"
	OnMouseEnter  Trigger = "onmouseenter"
	OnMouseLeave  Trigger = "onmouseleave"
	OnChange      Trigger = "onchange"
)

// ActionKind names one of the closed set of Event actions.
type ActionKind string

// The supported action kinds.
const (
	ActionToggle          ActionKind = "toggle"
	ActionIncrement       ActionKind = "increment"
	ActionDecrement       ActionKind = "decrement"
	ActionSetValue        ActionKind = "set-value"
	ActionMessageHost     ActionKind = "message-host"
	ActionStopPropagation ActionKind = "stop-propagation"
)

// ParameterData is one parameter value attached to an Action, optionally
// carrying the reference it came from.
type ParameterData struct {
	Value     PropertyValue
	Reference string // non-empty if Value was written as a $reference
}

// Action is the parsed handler descriptor attached to an Event.
type Action struct {
	Kind       ActionKind
	Target     PropertyValue
	Parameters map[string][]ParameterData
}

// Event binds a Trigger to an Action.
type Event struct {
	Trigger Trigger
	Action  Action
}

// ParseEvent parses a `$on-<event>$: <action>` header.
// The trigger comes from the header key; text is the header value, e.g.:
//
//	toggle $show
//	increment $count by 2 clamp 2 10
//	set-value $name to $input
//	message-host save-draft
//	stop-propagation
func ParseEvent(headerKey, text string, scope *Scope) (Event, error) {
	trig, err := parseTrigger(headerKey)
	if err != nil {
		return Event{}, err
	}
	action, err := ParseAction(text, scope)
	if err != nil {
		return Event{}, err
	}
	return Event{Trigger: trig, Action: action}, nil
}

func parseTrigger(headerKey string) (Trigger, error) {
	name := "on" + strings.TrimSuffix(strings.TrimPrefix(headerKey, "$on-"), "$")
	switch Trigger(name) {
	case OnClick, OnMouseEnter, OnMouseLeave, OnChange:
		return Trigger(name), nil
	default:
		return "", parseErrorf("", 0, "unknown event trigger %q", headerKey)
	}
}

// ParseAction parses the textual action form described above.
func ParseAction(text string, scope *Scope) (Action, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return Action{}, parseErrorf("", 0, "empty action")
	}

	first := fields[0]
	switch {
	case first == "stop-propagation":
		return Action{Kind: ActionStopPropagation, Parameters: map[string][]ParameterData{}}, nil
	case first == "message-host":
		params := map[string][]ParameterData{}
		if len(fields) > 1 {
			params["message"] = []ParameterData{{Value: Lit(StringValue(strings.Join(fields[1:], " "), SourceHeader))}}
		}
		return Action{Kind: ActionMessageHost, Parameters: params}, nil
	case first == "toggle", first == "increment", first == "decrement":
		if len(fields) < 2 {
			return Action{}, argumentErrorf("", 0, "%s requires a target", first)
		}
		target, err := resolveRefToken(fields[1], scope)
		if err != nil {
			return Action{}, err
		}
		params, err := parseActionParameters(fields[2:], scope)
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: ActionKind(first), Target: target, Parameters: params}, nil
	case first == "set-value":
		// set-value $target to $value|literal
		if len(fields) < 2 {
			return Action{}, argumentErrorf("", 0, "set-value requires a target")
		}
		target, err := resolveRefToken(fields[1], scope)
		if err != nil {
			return Action{}, err
		}
		params := map[string][]ParameterData{}
		if len(fields) >= 4 && fields[2] == "to" {
			pv, err := parseActionOperand(fields[3], scope)
			if err != nil {
				return Action{}, err
			}
			pd := ParameterData{Value: pv}
			if strings.HasPrefix(fields[3], "$") {
				pd.Reference = strings.TrimPrefix(fields[3], "$")
			}
			params["value"] = []ParameterData{pd}
		}
		return Action{Kind: ActionSetValue, Target: target, Parameters: params}, nil
	default:
		return Action{}, parseErrorf("", 0, "unknown action %q", first)
	}
}

// parseActionParameters parses the " by <n> clamp <lo> <hi>" tail of an
// increment/decrement action.
func parseActionParameters(fields []string, scope *Scope) (map[string][]ParameterData, error) {
	params := map[string][]ParameterData{}
	i := 0
	for i < len(fields) {
		switch fields[i] {
		case "by":
			if i+1 >= len(fields) {
				return nil, argumentErrorf("", 0, "by requires a value")
			}
			pv, err := parseActionOperand(fields[i+1], scope)
			if err != nil {
				return nil, err
			}
			params["by"] = []ParameterData{{Value: pv}}
			i += 2
		case "clamp":
			if i+2 >= len(fields) {
				return nil, argumentErrorf("", 0, "clamp requires two values")
			}
			lo, err := parseActionOperand(fields[i+1], scope)
			if err != nil {
				return nil, err
			}
			hi, err := parseActionOperand(fields[i+2], scope)
			if err != nil {
				return nil, err
			}
			params["clamp"] = []ParameterData{{Value: lo}, {Value: hi}}
			i += 3
		default:
			return nil, parseErrorf("", 0, "unexpected action parameter %q", fields[i])
		}
	}
	return params, nil
}

func parseActionOperand(s string, scope *Scope) (PropertyValue, error) {
	if strings.HasPrefix(s, "$") {
		return resolveRefToken(s, scope)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Lit(IntegerValue(n)), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Lit(DecimalValue(f)), nil
	}
	return Lit(StringValue(s, SourceHeader)), nil
}

// String renders e for debug dumps.
func (e Event) String() string {
	return fmt.Sprintf("$on-%s$: %s %s", e.Trigger, e.Action.Kind, e.Action.Target)
}
