// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chain serializes every call against the ledger. Each call runs on
// its own [versiondb.Database] layered on the persistent database and is only
// committed if it returns without error, so a failing call leaves no trace.
package chain

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/timer/mockable"

	"github.com/ava-labs/rightsvm/genesis"
	"github.com/ava-labs/rightsvm/state"

	rtrace "github.com/ava-labs/rightsvm/trace"
)

var errMissingGenesis = errors.New("uninitialized database requires a genesis")

type Config struct {
	Log logging.Logger
	DB  database.Database
	// Genesis is only applied if DB wasn't initialized yet.
	Genesis    *genesis.Genesis
	Tracer     trace.Tracer
	Registerer prometheus.Registerer
	Namespace  string
}

type Chain struct {
	log     logging.Logger
	tracer  trace.Tracer
	metrics *metrics
	clock   mockable.Clock

	// lock serializes every access to db
	lock sync.Mutex
	db   database.Database
}

func New(config Config) (*Chain, error) {
	if config.Log == nil {
		config.Log = logging.NoLog{}
	}
	if config.Tracer == nil {
		config.Tracer = rtrace.Noop()
	}
	if config.Registerer == nil {
		config.Registerer = prometheus.NewRegistry()
	}
	m, err := newMetrics(config.Namespace, config.Registerer)
	if err != nil {
		return nil, err
	}

	c := &Chain{
		log:     config.Log,
		tracer:  config.Tracer,
		metrics: m,
		db:      config.DB,
	}

	initialized, err := state.IsInitialized(c.db)
	if err != nil {
		return nil, err
	}
	if initialized {
		return c, nil
	}
	if config.Genesis == nil {
		return nil, errMissingGenesis
	}
	if err := config.Genesis.Verify(); err != nil {
		return nil, err
	}
	err = c.Execute(context.Background(), "genesis", func(ctx *Context) error {
		deployment, err := initialize(ctx, config.Genesis)
		if err != nil {
			return err
		}
		c.log.Info("initialized chain",
			zap.Stringer("admin", config.Genesis.Admin),
			zap.Stringer("orchestrator", deployment.Orchestrator),
			zap.Stringer("fRightRegistry", deployment.FRightRegistry),
			zap.Stringer("iRightRegistry", deployment.IRightRegistry),
			zap.Int("numCollections", len(deployment.Collections)),
		)
		return nil
	})
	return c, err
}

// Clock is the source of the time calls are executed at.
func (c *Chain) Clock() *mockable.Clock {
	return &c.clock
}

// Execute runs [f] as a single indivisible call named [name]. Everything [f]
// writes is committed if it returns nil and discarded otherwise.
func (c *Chain) Execute(ctx context.Context, name string, f func(*Context) error) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	ctx, span := c.tracer.Start(ctx, name)
	defer span.End()

	start := time.Now()
	db := versiondb.New(c.db)
	callCtx := c.newContext(ctx, db)
	err := f(callCtx)
	outcome := err
	if outcome == nil {
		outcome = callCtx.outcome
	}
	c.metrics.observe(name, outcome, time.Since(start))
	if err != nil {
		db.Abort()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.Debug("aborted call",
			zap.String("call", name),
			zap.Error(err),
		)
		return err
	}
	span.SetAttributes(attribute.Bool("committed", true))
	if callCtx.outcome != nil {
		span.SetStatus(codes.Error, callCtx.outcome.Error())
	}
	return db.Commit()
}

// View runs [f] against the committed state. Writes made by [f] are dropped.
func (c *Chain) View(ctx context.Context, f func(*Context) error) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	db := versiondb.New(c.db)
	defer db.Abort()
	return f(c.newContext(ctx, db))
}

// Deployment returns the addresses of the contracts created at genesis.
func (c *Chain) Deployment() (*state.Deployment, error) {
	var deployment *state.Deployment
	err := c.View(context.Background(), func(ctx *Context) error {
		var err error
		deployment, err = state.GetDeployment(ctx.DB)
		return err
	})
	return deployment, err
}

func (c *Chain) newContext(ctx context.Context, db database.Database) *Context {
	return &Context{
		Context: ctx,
		DB:      db,
		Time:    c.clock.Time(),
		Log:     c.log,
	}
}
