// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package health periodically runs the registered checks of a node and serves
// their latest results.
package health

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/utils/logging"
)

var (
	errDuplicateCheck = errors.New("duplicated check")

	notYetRunResult = Result{
		Error: &errNotYetRun,
	}
	errNotYetRun = "not yet run"
)

// Checker can have its health checked
type Checker interface {
	// HealthCheck returns health check results and, if not healthy, a non-nil
	// error.
	HealthCheck(context.Context) (interface{}, error)
}

type CheckerFunc func(context.Context) (interface{}, error)

func (f CheckerFunc) HealthCheck(ctx context.Context) (interface{}, error) {
	return f(ctx)
}

// Result is the latest outcome of a single check.
type Result struct {
	// Details of the HealthCheck.
	Details interface{} `json:"message,omitempty"`

	// Error is the string representation of the error returned by the failing
	// HealthCheck. The value is nil if the check passed.
	Error *string `json:"error,omitempty"`

	// Timestamp of the last HealthCheck.
	Timestamp time.Time `json:"timestamp,omitempty"`

	// Duration is the amount of time this HealthCheck last took to evaluate.
	Duration time.Duration `json:"duration"`

	// ContiguousFailures the HealthCheck has returned.
	ContiguousFailures int64 `json:"contiguousFailures,omitempty"`

	// TimeOfFirstFailure of the HealthCheck,
	TimeOfFirstFailure *time.Time `json:"timeOfFirstFailure,omitempty"`
}

type Health struct {
	log           logging.Logger
	failingChecks prometheus.Gauge

	checksLock sync.RWMutex
	checks     map[string]Checker

	resultsLock sync.RWMutex
	results     map[string]Result

	startOnce sync.Once
	closeOnce sync.Once
	closer    chan struct{}
	done      sync.WaitGroup
}

func New(log logging.Logger, namespace string, registerer prometheus.Registerer) (*Health, error) {
	failingChecks := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "health_checks_failing",
		Help:      "number of currently failing health checks",
	})
	return &Health{
		log:           log,
		failingChecks: failingChecks,
		checks:        make(map[string]Checker),
		results:       make(map[string]Result),
		closer:        make(chan struct{}),
	}, registerer.Register(failingChecks)
}

// RegisterCheck adds [checker] under [name]. The check fails until it has run
// once.
func (h *Health) RegisterCheck(name string, checker Checker) error {
	h.checksLock.Lock()
	defer h.checksLock.Unlock()

	if _, ok := h.checks[name]; ok {
		return fmt.Errorf("%w: %q", errDuplicateCheck, name)
	}

	h.resultsLock.Lock()
	defer h.resultsLock.Unlock()

	h.checks[name] = checker
	h.results[name] = notYetRunResult

	// Whenever a new check is added - it is failing
	h.failingChecks.Inc()
	return nil
}

// Results returns the latest result of every check, and whether all of them
// passed.
func (h *Health) Results() (map[string]Result, bool) {
	h.resultsLock.RLock()
	defer h.resultsLock.RUnlock()

	results := make(map[string]Result, len(h.results))
	healthy := true
	for name, result := range h.results {
		results[name] = result
		healthy = healthy && result.Error == nil
	}
	if !healthy {
		h.log.Warn("failing health check",
			zap.Reflect("reason", results),
		)
	}
	return results, healthy
}

// Start runs the checks immediately and then every [freq] until Stop is
// called.
func (h *Health) Start(ctx context.Context, freq time.Duration) {
	h.startOnce.Do(func() {
		h.done.Add(1)
		go func() {
			defer h.done.Done()

			ticker := time.NewTicker(freq)
			defer ticker.Stop()

			h.runChecks(ctx)
			for {
				select {
				case <-ticker.C:
					h.runChecks(ctx)
				case <-h.closer:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	})
}

// Stop waits for the running checks to finish.
func (h *Health) Stop() {
	h.closeOnce.Do(func() {
		close(h.closer)
	})
	h.done.Wait()
}

func (h *Health) runChecks(ctx context.Context) {
	h.checksLock.RLock()
	// Checks registered while this round runs are picked up by the next one.
	checks := make(map[string]Checker, len(h.checks))
	for name, checker := range h.checks {
		checks[name] = checker
	}
	h.checksLock.RUnlock()

	var wg sync.WaitGroup
	wg.Add(len(checks))
	for name, check := range checks {
		go h.runCheck(ctx, &wg, name, check)
	}
	wg.Wait()
}

func (h *Health) runCheck(ctx context.Context, wg *sync.WaitGroup, name string, check Checker) {
	defer wg.Done()

	start := time.Now()

	// No locks are held while the check runs, so a check may register more
	// checks.
	details, err := check.HealthCheck(ctx)
	end := time.Now()

	result := Result{
		Details:   details,
		Timestamp: end,
		Duration:  end.Sub(start),
	}

	h.resultsLock.Lock()
	defer h.resultsLock.Unlock()
	prevResult := h.results[name]
	if err != nil {
		errString := err.Error()
		result.Error = &errString

		result.ContiguousFailures = prevResult.ContiguousFailures + 1
		if prevResult.ContiguousFailures > 0 {
			result.TimeOfFirstFailure = prevResult.TimeOfFirstFailure
		} else {
			result.TimeOfFirstFailure = &end
		}

		if prevResult.Error == nil {
			h.failingChecks.Inc()
		}
	} else if prevResult.Error != nil {
		h.failingChecks.Dec()
	}
	h.results[name] = result
}
