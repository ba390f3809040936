// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/rightsvm/config"
	"github.com/ava-labs/rightsvm/node"
)

var _ App = (*app)(nil)

type App interface {
	// Start kicks off the application and returns immediately
	Start() error

	// Stop notifies the application to exit and returns immediately
	Stop() error

	// ExitCode should only be called after [Start] returns with no error. It
	// should block until the application finishes
	ExitCode() (int, error)
}

// New returns an App running a node built from [config].
func New(config config.Config) App {
	return &app{
		config: config,
	}
}

// Run starts [app] and blocks until it exits, stopping it on SIGINT or
// SIGTERM.
func Run(app App) int {
	// starting running the application
	if err := app.Start(); err != nil {
		return 1
	}

	// register signals to kill the application
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT)
	signal.Notify(signals, syscall.SIGTERM)

	// start up a new go routine to handle attempts to kill the application
	var eg errgroup.Group
	eg.Go(func() error {
		for range signals {
			return app.Stop()
		}
		return nil
	})

	// wait for the app to exit and get the exit code response
	exitCode, err := app.ExitCode()

	// shut down the signal go routine
	signal.Stop(signals)
	close(signals)

	// if there was an error closing the application, report that error
	if err := eg.Wait(); err != nil {
		return 1
	}

	// if there was an error running the application, report that error
	if err != nil {
		return 1
	}

	// return the exit code that the application reported
	return exitCode
}

type app struct {
	config config.Config
	node   *node.Node

	exitWG sync.WaitGroup
	err    error
}

func (a *app) Start() error {
	n, err := node.New(a.config)
	if err != nil {
		return err
	}
	a.node = n

	n.Log.Info("serving rights API",
		zap.String("uri", n.URI()),
	)

	a.exitWG.Add(1)
	go func() {
		defer a.exitWG.Done()

		err := n.Dispatch()
		if err != nil {
			n.Log.Error("API server stopped unexpectedly",
				zap.Error(err),
			)
		}
		// Releases the database even if the server failed on its own.
		if shutdownErr := n.Shutdown(); err == nil {
			err = shutdownErr
		}
		a.err = err
	}()
	return nil
}

func (a *app) Stop() error {
	return a.node.Shutdown()
}

func (a *app) ExitCode() (int, error) {
	a.exitWG.Wait()
	if a.err != nil {
		return 1, a.err
	}
	return 0, nil
}
