// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/rightsvm/genesis"
	"github.com/ava-labs/rightsvm/orchestrator"
	"github.com/ava-labs/rightsvm/state"
)

// initialize deploys the orchestrator, both registries and a proxy registry on
// behalf of the genesis admin, hands the registries over to the orchestrator
// and creates the genesis collections.
func initialize(ctx *Context, g *genesis.Genesis) (*state.Deployment, error) {
	admin := g.Admin
	deployment := &state.Deployment{}

	var err error
	deployment.Orchestrator, err = ctx.Deploy(admin, state.OrchestratorContract, "orchestrator")
	if err != nil {
		return nil, err
	}
	deployment.FRightRegistry, err = ctx.Deploy(admin, state.FRightContract, "fRight")
	if err != nil {
		return nil, err
	}
	deployment.IRightRegistry, err = ctx.Deploy(admin, state.IRightContract, "iRight")
	if err != nil {
		return nil, err
	}
	deployment.ProxyRegistry, err = ctx.Deploy(admin, state.ProxyContract, "proxy")
	if err != nil {
		return nil, err
	}

	fRegistry, _, err := ctx.GetFRightRegistry(deployment.FRightRegistry)
	if err != nil {
		return nil, err
	}
	iRegistry, _, err := ctx.GetIRightRegistry(deployment.IRightRegistry)
	if err != nil {
		return nil, err
	}
	registries := []struct {
		registry orchestrator.RightRegistry
		baseURL  string
	}{
		{registry: fRegistry, baseURL: g.FRightBaseURL},
		{registry: iRegistry, baseURL: g.IRightBaseURL},
	}
	for _, r := range registries {
		if err := r.registry.SetAPIBaseURL(admin, r.baseURL); err != nil {
			return nil, err
		}
		if err := r.registry.SetProxyRegistryAddress(admin, deployment.ProxyRegistry); err != nil {
			return nil, err
		}
		if err := r.registry.TransferOwnership(admin, deployment.Orchestrator); err != nil {
			return nil, err
		}
	}

	o, _, err := ctx.GetOrchestrator(deployment.Orchestrator)
	if err != nil {
		return nil, err
	}
	if err := o.BindRegistry(admin, orchestrator.FRight, deployment.FRightRegistry); err != nil {
		return nil, err
	}
	if err := o.BindRegistry(admin, orchestrator.IRight, deployment.IRightRegistry); err != nil {
		return nil, err
	}
	for _, addr := range g.Whitelist {
		if err := o.SetWhitelistStatus(admin, addr, true); err != nil {
			return nil, err
		}
	}
	if g.FreezeGateActive {
		if err := o.ActivateFreezeGate(admin); err != nil {
			return nil, err
		}
	}

	for _, collection := range g.Collections {
		address, err := ctx.Deploy(collection.Owner, state.CollectionContract, collection.Name)
		if err != nil {
			return nil, err
		}
		ledger, _, err := ctx.GetAssetLedger(address)
		if err != nil {
			return nil, err
		}
		for _, a := range collection.Assets {
			if err := ledger.Mint(collection.Owner, a.Owner, a.ID); err != nil {
				return nil, err
			}
		}
		deployment.Collections = append(deployment.Collections, address)
	}

	if err := state.SetDeployment(ctx.DB, deployment); err != nil {
		return nil, err
	}
	return deployment, state.SetInitialized(ctx.DB)
}
