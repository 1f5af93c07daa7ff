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

// ErrorKind classifies an *Error.
type ErrorKind int

// The available error kinds.
const (
	ParseError ErrorKind = iota
	NameError
	KindError
	ArgumentError
	ConditionError
	ContainerError
	LibraryError
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case NameError:
		return "NameError"
	case KindError:
		return "KindError"
	case ArgumentError:
		return "ArgumentError"
	case ConditionError:
		return "ConditionError"
	case ContainerError:
		return "ContainerError"
	case LibraryError:
		return "LibraryError"
	default:
		return fmt.Sprintf("error-%d", int(k))
	}
}

// Error carries a message, document name, and line number. Every Error is
// fatal to the current interpretation; there is no local recovery.
type Error struct {
	Kind     ErrorKind
	Message  string
	Document string
	Line     int

	// Wrapped, if set, is the underlying cause (e.g. a LibraryError
	// propagated from a Library.Get/Process call).
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil ftd error>"
	}
	loc := "unknown"
	switch {
	case e.Document != "" && e.Line > 0:
		loc = fmt.Sprintf("%s:%d", e.Document, e.Line)
	case e.Document != "":
		loc = e.Document
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %s: %v", loc, e.Kind, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s: %s", loc, e.Kind, e.Message)
}

// Unwrap supports errors.As/errors.Is against a wrapped Library error.
func (e *Error) Unwrap() error { return e.Wrapped }

// newError builds an *Error of kind k at doc:line with a formatted message.
func newError(k ErrorKind, doc string, line int, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...), Document: doc, Line: line}
}

func parseErrorf(doc string, line int, format string, args ...interface{}) *Error {
	return newError(ParseError, doc, line, format, args...)
}

func nameErrorf(doc string, line int, format string, args ...interface{}) *Error {
	return newError(NameError, doc, line, format, args...)
}

func kindErrorf(doc string, line int, format string, args ...interface{}) *Error {
	return newError(KindError, doc, line, format, args...)
}

func argumentErrorf(doc string, line int, format string, args ...interface{}) *Error {
	return newError(ArgumentError, doc, line, format, args...)
}

func conditionErrorf(doc string, line int, format string, args ...interface{}) *Error {
	return newError(ConditionError, doc, line, format, args...)
}

func containerErrorf(doc string, line int, format string, args ...interface{}) *Error {
	return newError(ContainerError, doc, line, format, args...)
}

// libraryError wraps an error returned by a Library call.
func libraryError(doc string, line int, cause error) *Error {
	e := newError(LibraryError, doc, line, "library call failed: %v", cause)
	e.Wrapped = cause
	return e
}

func libraryErrorf(doc string, line int, format string, args ...interface{}) *Error {
	return newError(LibraryError, doc, line, format, args...)
}
