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

// Options defines the options that should be used when running the
// interpreter.
type Options struct {
	// Async selects between the synchronous and cooperative-suspending
	// execution mode; ftd's single-threaded interpret loop behaves
	// identically either way, so Async only documents the host's intent
	// for callers that care.
	Async bool

	// EnableTiming is carried for the host; the Interpreter does not read
	// it and accumulates LibraryTime/ProcessorTime on every run whether or
	// not it is set.
	EnableTiming bool

	// Metrics receives library-fetch/processor counters and durations, if
	// set. A nil Metrics is replaced by noopMetrics.
	Metrics Metrics

	// Reporter receives fatal interpretation errors, if set. A nil
	// Reporter is replaced by noopReporter.
	Reporter ErrorReporter
}

// DefaultOptions returns the zero-value Options with its interface fields
// filled in with no-op implementations.
func DefaultOptions() Options {
	return Options{Metrics: noopMetrics{}, Reporter: noopReporter{}}
}

// NewInterpreterWithOptions is NewInterpreter generalized to accept an
// Options value; NewInterpreter builds the same Interpreter with
// DefaultOptions().
func NewInterpreterWithOptions(lib Library, opts Options) (*Interpreter, error) {
	if opts.Metrics == nil {
		opts.Metrics = noopMetrics{}
	}
	if opts.Reporter == nil {
		opts.Reporter = noopReporter{}
	}
	bag := NewBag()
	if err := SeedBuiltins(bag); err != nil {
		return nil, err
	}
	return &Interpreter{
		Bag:        bag,
		Library:    lib,
		parsedLibs: map[string]bool{},
		containers: NewContainerTracker(),
		options:    opts,
	}, nil
}
