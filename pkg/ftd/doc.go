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

// Package ftd implements the core interpreter for the FTD declarative
// document/UI language: it ingests a tokenized document (a sequence of
// Sections), resolves imports, reorders declarations to honor type
// dependencies, and produces a Bag (symbol table) of declared entities plus
// an ordered list of Instructions describing how to materialize a UI tree.
//
// The final render pass that turns Instructions into concrete, styled
// elements, the Markdown/syntax-highlighting helpers, and the public CLI
// are external collaborators and are not implemented here; only their
// interfaces (Library, DocumentView) are defined.
package ftd
