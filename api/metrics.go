// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/rpc/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/rightsvm/vmerrs"
)

type contextKey int

const requestTimestampKey contextKey = iota

// metrics records the latency of every API request and counts failed
// requests by the category of their error.
type metrics struct {
	requestDuration *prometheus.HistogramVec
	requestErrors   *prometheus.CounterVec
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "time spent serving API requests",
				Buckets: []float64{
					.005,
					.025,
					.1,
					.5,
					1,
					5,
					// anything larger than 5 seconds will be bucketed together
				},
			},
			[]string{"method"},
		),
		requestErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_request_errors",
				Help:      "number of API requests that returned an error",
			},
			[]string{"method", "category"},
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.requestDuration),
		registerer.Register(m.requestErrors),
	)
	return m, errs.Err
}

func (*metrics) InterceptRequest(i *rpc.RequestInfo) *http.Request {
	ctx := i.Request.Context()
	ctx = context.WithValue(ctx, requestTimestampKey, time.Now())
	return i.Request.WithContext(ctx)
}

func (m *metrics) AfterRequest(i *rpc.RequestInfo) {
	timestamp, ok := i.Request.Context().Value(requestTimestampKey).(time.Time)
	if !ok {
		return
	}

	m.requestDuration.With(prometheus.Labels{
		"method": i.Method,
	}).Observe(time.Since(timestamp).Seconds())

	if i.Error != nil {
		m.requestErrors.With(prometheus.Labels{
			"method":   i.Method,
			"category": vmerrs.Label(i.Error),
		}).Inc()
	}
}
