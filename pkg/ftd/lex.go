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

// This file implements the lexical classification of a single line of FTD
// source. A "state" here is simply which kind of line we're looking at,
// since FTD's surface syntax is line-oriented rather than brace-delimited.

import (
	"regexp"
	"strings"
)

var (
	sectionLineRE = regexp.MustCompile(`^(/?)(-{2,})\s+(.*)$`)
	headerLineRE  = regexp.MustCompile(`^([A-Za-z0-9_$.\-/]+)\s*:\s*(.*)$`)
)

// lineKind classifies one line of FTD source.
type lineKind int

const (
	lineBlank lineKind = iota
	lineSection
	lineHeader
	lineOther
)

// classifiedLine is one physical line of source, annotated with what kind
// of token it begins.
type classifiedLine struct {
	kind        lineKind
	lineNo      int
	raw         string
	commented   bool
	depth       int    // valid when kind == lineSection
	nameCaption string // valid when kind == lineSection: "name: caption" remainder
	key         string // valid when kind == lineHeader
	value       string // valid when kind == lineHeader
}

// classify splits input into classified lines, 1-indexed.
func classify(input string) []classifiedLine {
	rawLines := strings.Split(input, "\n")
	out := make([]classifiedLine, 0, len(rawLines))
	for i, raw := range rawLines {
		lineNo := i + 1
		trimmed := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(trimmed) == "" {
			out = append(out, classifiedLine{kind: lineBlank, lineNo: lineNo, raw: trimmed})
			continue
		}
		if m := sectionLineRE.FindStringSubmatch(trimmed); m != nil {
			out = append(out, classifiedLine{
				kind:        lineSection,
				lineNo:      lineNo,
				raw:         trimmed,
				commented:   m[1] == "/",
				depth:       len(m[2]) - 1,
				nameCaption: m[3],
			})
			continue
		}
		if m := headerLineRE.FindStringSubmatch(trimmed); m != nil {
			out = append(out, classifiedLine{
				kind:   lineHeader,
				lineNo: lineNo,
				raw:    trimmed,
				key:    m[1],
				value:  m[2],
			})
			continue
		}
		out = append(out, classifiedLine{kind: lineOther, lineNo: lineNo, raw: trimmed})
	}
	return out
}

// splitNameCaption splits a section marker's remainder ("name: caption" or
// just "name") into its name and optional caption.
func splitNameCaption(s string) (name string, caption string, hasCaption bool) {
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return strings.TrimSpace(s), "", false
	}
	name = strings.TrimSpace(s[:idx])
	rest := strings.TrimSpace(s[idx+1:])
	return name, rest, rest != ""
}
