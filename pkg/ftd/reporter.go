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

import "github.com/getsentry/sentry-go"

// ErrorReporter receives fatal interpretation errors, for a host that wants
// to send them to a crash-reporting backend.
type ErrorReporter interface {
	Report(err error)
}

// noopReporter discards every error; it is the default so embedding the
// interpreter never requires a configured Sentry DSN.
type noopReporter struct{}

func (noopReporter) Report(error) {}

// sentryReporter reports fatal errors to Sentry via
// github.com/getsentry/sentry-go.
type sentryReporter struct {
	hub *sentry.Hub
}

// NewSentryReporter returns an ErrorReporter that forwards to hub. Pass
// sentry.CurrentHub() for the process-wide default hub.
func NewSentryReporter(hub *sentry.Hub) ErrorReporter {
	return &sentryReporter{hub: hub}
}

// Report implements ErrorReporter.
func (r *sentryReporter) Report(err error) {
	if err == nil {
		return
	}
	r.hub.WithScope(func(scope *sentry.Scope) {
		if fe, ok := err.(*Error); ok {
			scope.SetTag("ftd.error_kind", fe.Kind.String())
			scope.SetTag("ftd.document", fe.Document)
			scope.SetExtra("ftd.line", fe.Line)
		}
		r.hub.CaptureException(err)
	})
}
