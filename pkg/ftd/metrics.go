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
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments an Interpreter run: library-fetch and processor-call
// durations plus section/import counters, exposed as named
// counters/histograms a host can scrape.
type Metrics interface {
	ObserveLibraryFetch(d time.Duration, ok bool)
	ObserveProcessorCall(d time.Duration, ok bool)
	IncSectionsProcessed()
	IncImportsResolved()
}

// noopMetrics discards every observation; it is the default so embedding
// the interpreter never requires a running Prometheus registry.
type noopMetrics struct{}

func (noopMetrics) ObserveLibraryFetch(time.Duration, bool)  {}
func (noopMetrics) ObserveProcessorCall(time.Duration, bool) {}
func (noopMetrics) IncSectionsProcessed()                    {}
func (noopMetrics) IncImportsResolved()                      {}

// PrometheusMetrics is a Metrics backed by github.com/prometheus/client_golang:
// one histogram per timed operation, one counter per tallied event.
type PrometheusMetrics struct {
	libraryFetch     prometheus.Histogram
	processorCall    prometheus.Histogram
	sectionsTotal    prometheus.Counter
	importsTotal     prometheus.Counter
	libraryErrors    prometheus.Counter
	processorErrors  prometheus.Counter
}

// NewPrometheusMetrics builds a PrometheusMetrics and registers its
// collectors against reg. Passing prometheus.DefaultRegisterer matches the
// common case of a process-wide registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		libraryFetch: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ftd",
			Subsystem: "interpreter",
			Name:      "library_fetch_seconds",
			Help:      "Time spent in Library.Get calls.",
		}),
		processorCall: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ftd",
			Subsystem: "interpreter",
			Name:      "processor_call_seconds",
			Help:      "Time spent in Library.Process calls.",
		}),
		sectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ftd",
			Subsystem: "interpreter",
			Name:      "sections_processed_total",
			Help:      "Sections classified and dispatched.",
		}),
		importsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ftd",
			Subsystem: "interpreter",
			Name:      "imports_resolved_total",
			Help:      "Distinct imported modules parsed.",
		}),
		libraryErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ftd",
			Subsystem: "interpreter",
			Name:      "library_fetch_errors_total",
			Help:      "Library.Get calls that returned an error.",
		}),
		processorErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ftd",
			Subsystem: "interpreter",
			Name:      "processor_call_errors_total",
			Help:      "Library.Process calls that returned an error.",
		}),
	}
	reg.MustRegister(m.libraryFetch, m.processorCall, m.sectionsTotal, m.importsTotal, m.libraryErrors, m.processorErrors)
	return m
}

// ObserveLibraryFetch implements Metrics.
func (m *PrometheusMetrics) ObserveLibraryFetch(d time.Duration, ok bool) {
	m.libraryFetch.Observe(d.Seconds())
	if !ok {
		m.libraryErrors.Inc()
	}
}

// ObserveProcessorCall implements Metrics.
func (m *PrometheusMetrics) ObserveProcessorCall(d time.Duration, ok bool) {
	m.processorCall.Observe(d.Seconds())
	if !ok {
		m.processorErrors.Inc()
	}
}

// IncSectionsProcessed implements Metrics.
func (m *PrometheusMetrics) IncSectionsProcessed() { m.sectionsTotal.Inc() }

// IncImportsResolved implements Metrics.
func (m *PrometheusMetrics) IncImportsResolved() { m.importsTotal.Inc() }
