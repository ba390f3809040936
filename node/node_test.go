// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package node

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/rightsvm/api"
	"github.com/ava-labs/rightsvm/config"
	"github.com/ava-labs/rightsvm/genesis"
)

func newTestConfig(t *testing.T, dbDir string, args ...string) config.Config {
	require := require.New(t)

	args = append([]string{
		"--" + config.HTTPPortKey + "=0",
		"--" + config.LogDirKey + "=" + t.TempDir(),
		"--" + config.LogLevelKey + "=off",
		"--" + config.DBTypeKey + "=leveldb",
		"--" + config.DBDirKey + "=" + dbDir,
	}, args...)
	v, err := config.BuildViper(config.BuildFlagSet(), args)
	require.NoError(err)
	c, err := config.GetConfig(v)
	require.NoError(err)
	return c
}

func TestNodeServesChain(t *testing.T) {
	require := require.New(t)
	dbDir := t.TempDir()

	n, err := New(newTestConfig(t, dbDir))
	require.NoError(err)

	dispatched := make(chan error, 1)
	go func() {
		dispatched <- n.Dispatch()
	}()

	client := api.NewClient(n.URI())
	deployment, err := client.Deployment(context.Background())
	require.NoError(err)

	o, err := client.GetOrchestrator(context.Background(), deployment.Orchestrator)
	require.NoError(err)
	require.Equal(genesis.EWOQKey.Address(), o.Admin)

	resp, err := http.Get(n.URI() + "/ext/metrics")
	require.NoError(err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(err)
	require.NoError(resp.Body.Close())
	require.Contains(string(body), "rightsvm_calls")
	require.Contains(string(body), "rightsvm_api_request_duration_seconds")
	require.Contains(string(body), "rightsvm_health_checks_failing")

	// The first round of health checks runs in the background.
	require.Eventually(func() bool {
		resp, err := http.Get(n.URI() + "/ext/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(n.Shutdown())
	require.NoError(<-dispatched)

	// The chain is reloaded from the database rather than from genesis.
	n, err = New(newTestConfig(t, dbDir))
	require.NoError(err)
	reloaded, err := n.Chain.Deployment()
	require.NoError(err)
	require.Equal(deployment, reloaded)
	require.NoError(n.Shutdown())
}

func TestNodeRejectsDifferentGenesis(t *testing.T) {
	require := require.New(t)
	dbDir := t.TempDir()

	n, err := New(newTestConfig(t, dbDir))
	require.NoError(err)
	require.NoError(n.Shutdown())

	_, err = New(newTestConfig(t, dbDir, "--"+config.GenesisNumAssetsKey+"=3"))
	require.ErrorIs(err, errGenesisMismatch)
}
