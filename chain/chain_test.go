// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/genesis"
	"github.com/ava-labs/rightsvm/orchestrator"
	"github.com/ava-labs/rightsvm/state"
)

var errTest = errors.New("non-nil error")

func TestNewAppliesGenesis(t *testing.T) {
	require := require.New(t)
	db := memdb.New()
	admin := ids.GenerateTestShortID()
	whitelisted := ids.GenerateTestShortID()
	g := genesis.Default(admin, 2)
	g.Whitelist = []ids.ShortID{whitelisted}
	g.FreezeGateActive = true
	g.FRightBaseURL = "https://rights.example/f/"

	c, err := New(Config{
		DB:      db,
		Genesis: g,
	})
	require.NoError(err)

	deployment, err := c.Deployment()
	require.NoError(err)
	require.Len(deployment.Collections, 1)

	require.NoError(c.View(context.Background(), func(ctx *Context) error {
		o, ok, err := ctx.GetOrchestrator(deployment.Orchestrator)
		require.NoError(err)
		require.True(ok)

		gotAdmin, err := o.Admin()
		require.NoError(err)
		require.Equal(admin, gotAdmin)

		binding, err := o.Binding(orchestrator.FRight)
		require.NoError(err)
		require.Equal(deployment.FRightRegistry, binding)

		binding, err = o.Binding(orchestrator.IRight)
		require.NoError(err)
		require.Equal(deployment.IRightRegistry, binding)

		isWhitelisted, err := o.IsWhitelisted(whitelisted)
		require.NoError(err)
		require.True(isWhitelisted)

		active, err := o.IsFreezeGateActive()
		require.NoError(err)
		require.True(active)

		fRegistry, ok, err := ctx.GetFRightRegistry(deployment.FRightRegistry)
		require.NoError(err)
		require.True(ok)

		owner, err := fRegistry.Owner()
		require.NoError(err)
		require.Equal(deployment.Orchestrator, owner)

		baseURL, err := fRegistry.APIBaseURL()
		require.NoError(err)
		require.Equal(g.FRightBaseURL, baseURL)

		proxyRegistry, err := fRegistry.ProxyRegistryAddress()
		require.NoError(err)
		require.Equal(deployment.ProxyRegistry, proxyRegistry)

		ledger, ok, err := ctx.GetAssetLedger(deployment.Collections[0])
		require.NoError(err)
		require.True(ok)

		assetOwner, err := ledger.OwnerOf(2)
		require.NoError(err)
		require.Equal(admin, assetOwner)
		return nil
	}))

	// Reopening an initialized database ignores the genesis.
	_, err = New(Config{DB: db})
	require.NoError(err)
}

func TestNewRequiresGenesis(t *testing.T) {
	_, err := New(Config{DB: memdb.New()})
	require.ErrorIs(t, err, errMissingGenesis)
}

func TestExecuteAtomicity(t *testing.T) {
	require := require.New(t)
	admin := ids.GenerateTestShortID()
	alice := ids.GenerateTestShortID()

	c, err := New(Config{
		DB:      memdb.New(),
		Genesis: genesis.Default(admin, 0),
	})
	require.NoError(err)
	deployment, err := c.Deployment()
	require.NoError(err)

	err = c.Execute(context.Background(), "whitelist", func(ctx *Context) error {
		o, _, err := ctx.GetOrchestrator(deployment.Orchestrator)
		require.NoError(err)
		require.NoError(o.SetWhitelistStatus(admin, alice, true))
		require.NoError(o.ActivateFreezeGate(admin))
		return errTest
	})
	require.ErrorIs(err, errTest)

	require.NoError(c.View(context.Background(), func(ctx *Context) error {
		o, _, err := ctx.GetOrchestrator(deployment.Orchestrator)
		require.NoError(err)

		whitelisted, err := o.IsWhitelisted(alice)
		require.NoError(err)
		require.False(whitelisted)

		active, err := o.IsFreezeGateActive()
		require.NoError(err)
		require.False(active)

		// Writes made while viewing are dropped too.
		return o.SetWhitelistStatus(admin, alice, true)
	}))

	require.NoError(c.Execute(context.Background(), "whitelist", func(ctx *Context) error {
		o, _, err := ctx.GetOrchestrator(deployment.Orchestrator)
		require.NoError(err)

		whitelisted, err := o.IsWhitelisted(alice)
		require.NoError(err)
		require.False(whitelisted)
		return o.SetWhitelistStatus(admin, alice, true)
	}))

	require.NoError(c.View(context.Background(), func(ctx *Context) error {
		whitelisted, err := state.IsWhitelisted(ctx.DB, deployment.Orchestrator, alice)
		require.NoError(err)
		require.True(whitelisted)
		return nil
	}))
}

func TestNested(t *testing.T) {
	require := require.New(t)
	db := memdb.New()
	ctx := &Context{DB: db}
	addr := ids.GenerateTestShortID()

	nested, nestedDB := ctx.Nested()
	require.NoError(state.SetNonce(nested.DB, addr, 5))
	nestedDB.Abort()

	nonce, err := state.GetNonce(db, addr)
	require.NoError(err)
	require.Zero(nonce)

	nested, nestedDB = ctx.Nested()
	require.NoError(state.SetNonce(nested.DB, addr, 5))
	require.NoError(nestedDB.Commit())

	nonce, err = state.GetNonce(db, addr)
	require.NoError(err)
	require.Equal(uint64(5), nonce)
}

func TestDirectory(t *testing.T) {
	require := require.New(t)
	ctx := &Context{DB: memdb.New()}
	deployer := ids.GenerateTestShortID()

	collection, err := ctx.Deploy(deployer, state.CollectionContract, "c")
	require.NoError(err)
	orchestratorAddr, err := ctx.Deploy(deployer, state.OrchestratorContract, "o")
	require.NoError(err)
	proxyAddr, err := ctx.Deploy(deployer, state.ProxyContract, "p")
	require.NoError(err)

	_, err = ctx.Deploy(deployer, state.NoContract, "n")
	require.Error(err)

	_, ok, err := ctx.FRightRegistry(collection)
	require.NoError(err)
	require.False(ok)

	ledger, ok, err := ctx.AssetLedger(collection)
	require.NoError(err)
	require.True(ok)
	require.NotNil(ledger)

	_, ok, err = ctx.Receiver(collection)
	require.NoError(err)
	require.False(ok)

	_, ok, err = ctx.Receiver(orchestratorAddr)
	require.NoError(err)
	require.True(ok)

	_, ok, err = ctx.ProxyRegistry(proxyAddr)
	require.NoError(err)
	require.True(ok)

	isContract, err := ctx.IsContract(deployer)
	require.NoError(err)
	require.False(isContract)

	c, ok, err := ctx.GetCollection(collection)
	require.NoError(err)
	require.True(ok)

	name, err := c.Name()
	require.NoError(err)
	require.Equal("c", name)
}

func TestMetricsRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := newMetrics("", registry)
	require.NoError(t, err)

	_, err = newMetrics("", registry)
	require.Error(t, err)
}
