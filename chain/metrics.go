// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/rightsvm/vmerrs"
)

type metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calls",
				Help:      "Number of executed calls by result",
			},
			[]string{"call", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "call_duration",
				Help:      "Time spent executing calls in nanoseconds",
				Buckets: []float64{
					float64(100 * time.Microsecond),
					float64(time.Millisecond),
					float64(10 * time.Millisecond),
					float64(100 * time.Millisecond),
					float64(time.Second),
					// anything larger than a second will be bucketed together
				},
			},
			[]string{"call"},
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.calls),
		registerer.Register(m.duration),
	)
	return m, errs.Err
}

func (m *metrics) observe(call string, err error, duration time.Duration) {
	m.calls.With(prometheus.Labels{
		"call":   call,
		"result": vmerrs.Label(err),
	}).Inc()
	m.duration.With(prometheus.Labels{
		"call": call,
	}).Observe(float64(duration))
}
