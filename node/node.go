// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package node wires a rights chain to its persistent database and serves it
// over HTTP.
package node

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/database/prefixdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/rightsvm"
	"github.com/ava-labs/rightsvm/api"
	"github.com/ava-labs/rightsvm/api/health"
	"github.com/ava-labs/rightsvm/api/server"
	"github.com/ava-labs/rightsvm/chain"
	"github.com/ava-labs/rightsvm/config"
	"github.com/ava-labs/rightsvm/trace"
)

const (
	metricsEndpoint = "metrics"
	healthEndpoint  = "health"
)

var (
	genesisHashKey = []byte("genesisID")
	chainPrefix    = []byte(rightsvm.Name)

	errGenesisMismatch = errors.New("db contains a different genesis")
)

// Node is a single rights chain served over HTTP.
type Node struct {
	Log        logging.Logger
	LogFactory logging.Factory
	Config     config.Config

	DB       database.Database
	Registry *prometheus.Registry
	Tracer   trace.Tracer
	Chain    *chain.Chain
	Health   *health.Health
	Server   *server.Server

	shutdownOnce sync.Once
}

// New initializes every component of the node. Requests are only served once
// [Node.Dispatch] is called.
func New(config config.Config) (*Node, error) {
	logFactory := logging.NewFactory(logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   8, // MB
			MaxFiles:  7,
			MaxAge:    0,
			Directory: config.Logging.Dir,
		},
		LogLevel:     config.Logging.Level,
		DisplayLevel: config.Logging.DisplayLevel,
		LogFormat:    config.Logging.Format,
	})
	log, err := logFactory.Make(rightsvm.Name)
	if err != nil {
		logFactory.Close()
		return nil, err
	}

	n := &Node{
		Log:        log,
		LogFactory: logFactory,
		Config:     config,
		Registry:   prometheus.NewRegistry(),
	}
	if err := n.initialize(); err != nil {
		log.Error("failed to initialize node",
			zap.Error(err),
		)
		_ = n.Shutdown()
		return nil, err
	}
	return n, nil
}

func (n *Node) initialize() error {
	n.Log.Info("initializing node",
		zap.Stringer("version", rightsvm.Version),
		zap.Reflect("config", n.Config),
	)

	if err := n.initMetrics(); err != nil {
		return fmt.Errorf("couldn't initialize metrics: %w", err)
	}
	if err := n.initDatabase(); err != nil {
		return fmt.Errorf("couldn't initialize database: %w", err)
	}
	if err := n.initTracer(); err != nil {
		return fmt.Errorf("couldn't initialize tracer: %w", err)
	}
	if err := n.initChain(); err != nil {
		return fmt.Errorf("couldn't initialize chain: %w", err)
	}
	if err := n.initHealth(); err != nil {
		return fmt.Errorf("couldn't initialize health: %w", err)
	}
	if err := n.initAPIServer(); err != nil {
		return fmt.Errorf("couldn't initialize API server: %w", err)
	}
	return nil
}

func (n *Node) initMetrics() error {
	errs := wrappers.Errs{}
	errs.Add(
		n.Registry.Register(collectors.NewGoCollector()),
		n.Registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})),
	)
	return errs.Err
}

func (n *Node) initDatabase() error {
	var err error
	switch n.Config.Database.Type {
	case leveldb.Name:
		n.DB, err = leveldb.New(
			n.Config.Database.Dir,
			nil,
			n.Log,
			prometheus.WrapRegistererWithPrefix(n.Config.MetricsNamespace+"_db_", n.Registry),
		)
	default:
		n.DB = memdb.New()
	}
	if err != nil {
		return err
	}

	genesisBytes, err := n.Config.Genesis.Bytes()
	if err != nil {
		return err
	}
	expectedGenesisHash := ids.ID(hashing.ComputeHash256Array(genesisBytes))

	rawGenesisHash, err := n.DB.Get(genesisHashKey)
	if err == database.ErrNotFound {
		rawGenesisHash = expectedGenesisHash[:]
		err = n.DB.Put(genesisHashKey, rawGenesisHash)
	}
	if err != nil {
		return err
	}

	genesisHash, err := ids.ToID(rawGenesisHash)
	if err != nil {
		return err
	}
	if genesisHash != expectedGenesisHash {
		return fmt.Errorf("%w: DB genesis %s, configured genesis %s",
			errGenesisMismatch,
			genesisHash,
			expectedGenesisHash,
		)
	}
	return nil
}

func (n *Node) initTracer() error {
	var err error
	n.Tracer, err = trace.New(n.Config.Trace)
	return err
}

func (n *Node) initChain() error {
	var err error
	n.Chain, err = chain.New(chain.Config{
		Log:        n.Log,
		DB:         prefixdb.New(chainPrefix, n.DB),
		Genesis:    n.Config.Genesis,
		Tracer:     n.Tracer,
		Registerer: n.Registry,
		Namespace:  n.Config.MetricsNamespace,
	})
	return err
}

func (n *Node) initHealth() error {
	var err error
	n.Health, err = health.New(n.Log, n.Config.MetricsNamespace, n.Registry)
	if err != nil {
		return err
	}

	errs := wrappers.Errs{}
	errs.Add(
		n.Health.RegisterCheck("database", health.CheckerFunc(n.DB.HealthCheck)),
		n.Health.RegisterCheck("chain", health.CheckerFunc(func(context.Context) (interface{}, error) {
			return n.Chain.Deployment()
		})),
	)
	if errs.Errored() {
		return errs.Err
	}

	n.Health.Start(context.Background(), n.Config.HealthCheckFreq)
	return nil
}

func (n *Node) initAPIServer() error {
	var err error
	n.Server, err = server.New(n.Log, server.Config{
		Host:           n.Config.HTTP.Host,
		Port:           n.Config.HTTP.Port,
		AllowedOrigins: n.Config.HTTP.AllowedOrigins,
		ReadTimeout:    n.Config.HTTP.ReadTimeout,
		WriteTimeout:   n.Config.HTTP.WriteTimeout,
	})
	if err != nil {
		return err
	}

	rightsHandler, err := api.NewHandler(n.Log, n.Chain, n.Config.MetricsNamespace, n.Registry)
	if err != nil {
		return err
	}
	metricsHandler := promhttp.InstrumentMetricHandler(
		n.Registry,
		promhttp.HandlerFor(n.Registry, promhttp.HandlerOpts{}),
	)

	errs := wrappers.Errs{}
	errs.Add(
		n.Server.AddRoute(rightsHandler, api.ServiceName),
		n.Server.AddRoute(metricsHandler, metricsEndpoint),
		n.Server.AddRoute(health.NewGetHandler(n.Health), healthEndpoint),
	)
	return errs.Err
}

// URI is the base URI the API is served at
func (n *Node) URI() string {
	return "http://" + n.Server.Addr().String()
}

// Dispatch serves API requests until the node is shut down
func (n *Node) Dispatch() error {
	return n.Server.Dispatch()
}

// Shutdown stops serving requests and releases every resource of the node. It
// is safe to call multiple times.
func (n *Node) Shutdown() error {
	errs := wrappers.Errs{}
	n.shutdownOnce.Do(func() {
		n.Log.Info("shutting down the node")
		if n.Server != nil {
			errs.Add(n.Server.Shutdown())
		}
		if n.Health != nil {
			n.Health.Stop()
		}
		if n.Tracer != nil {
			errs.Add(n.Tracer.Close())
		}
		if n.DB != nil {
			errs.Add(n.DB.Close())
		}
		n.Log.Stop()
		n.LogFactory.Close()
	})
	return errs.Err
}
