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
	"strings"
)

// This file defines Section, the pre-parsed record the interpreter consumes.
// Sections nest through a repeated "--" marker whose dash count encodes
// depth ("-- child:" / "--- child:" and so on).
//
// The section tokenizer itself (lex.go/parse.go) is an external
// collaborator: the interpreter only needs the Section shape below. A
// reference tokenizer is still provided (as opposed to only a stubbed
// interface) so the interpreter is exercisable end to end; a host is free
// to swap in its own by constructing []*Section directly.

// Header is one `key: value` line in a section's header block.
type Header struct {
	Line  int
	Key   string
	Value string
}

// Body is a section's free-form body text, along with the line it started
// on.
type Body struct {
	Line int
	Text string
}

// A Section is a single `-- name: caption` block together with its headers,
// optional body, and nested sub-sections.
type Section struct {
	Name        string
	HasCaption  bool
	Caption     string
	Header      []Header
	HasBody     bool
	BodyVal     Body
	SubSections []*Section
	IsCommented bool
	LineNumber  int

	// Depth is the section's nesting depth as encoded by its "--" marker
	// (1 for "-- ", 2 for "--- ", ...). It is auxiliary tokenizer state,
	// kept around by the reference tokenizer to re-derive nesting without
	// re-scanning dash counts.
	Depth int
}

// HeaderValue returns the value of the first header named key, and whether
// it was present.
func (s *Section) HeaderValue(key string) (string, bool) {
	for _, h := range s.Header {
		if h.Key == key {
			return h.Value, true
		}
	}
	return "", false
}

// HeaderLine returns the line number of the first header named key, or 0.
func (s *Section) HeaderLine(key string) int {
	for _, h := range s.Header {
		if h.Key == key {
			return h.Line
		}
	}
	return 0
}

// HasHeader reports whether key appears in s.Header.
func (s *Section) HasHeader(key string) bool {
	_, ok := s.HeaderValue(key)
	return ok
}

// KindAndIdent splits a section name of the form "<Kind> <ident>" (e.g.
// "ftd.column foo" or "integer x") into its two parts. If name has no
// space, ident is "" and ok is false.
func (s *Section) KindAndIdent() (kind, ident string, ok bool) {
	i := strings.LastIndexByte(s.Name, ' ')
	if i < 0 {
		return s.Name, "", false
	}
	return s.Name[:i], s.Name[i+1:], true
}

// String renders s (and its sub-sections) back out in FTD section syntax,
// for debug dumps. It is intended to display the contents of Section, not
// necessarily to byte-for-byte reproduce the original source.
func (s *Section) String() string {
	var b strings.Builder
	s.write(&b, 1)
	return b.String()
}

func (s *Section) write(b *strings.Builder, depth int) {
	dashes := strings.Repeat("-", depth+1)
	fmt.Fprintf(b, "%s %s:", dashes, s.Name)
	if s.HasCaption {
		fmt.Fprintf(b, " %s", s.Caption)
	}
	b.WriteByte('\n')
	for _, h := range s.Header {
		fmt.Fprintf(b, "%s: %s\n", h.Key, h.Value)
	}
	if s.HasBody {
		b.WriteString(s.BodyVal.Text)
		b.WriteByte('\n')
	}
	for _, ss := range s.SubSections {
		ss.write(b, depth+1)
	}
}
