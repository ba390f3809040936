// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/rightsvm/contracts/asset"
	"github.com/ava-labs/rightsvm/contracts/fright"
	"github.com/ava-labs/rightsvm/contracts/iright"
	"github.com/ava-labs/rightsvm/contracts/nft"
	"github.com/ava-labs/rightsvm/contracts/proxy"
	"github.com/ava-labs/rightsvm/orchestrator"
	"github.com/ava-labs/rightsvm/state"
)

var (
	_ nft.Env                = (*Context)(nil)
	_ orchestrator.Directory = (*Context)(nil)
)

// Context is the environment of a single call. Every contract handle it
// returns reads and writes through DB.
type Context struct {
	Context context.Context
	DB      database.Database
	Time    time.Time
	Log     logging.Logger

	outcome error
}

// Fail marks the call as failed without discarding its writes. This lets a
// call persist a record of a failed operation while still being reported as
// a failure.
func (c *Context) Fail(err error) {
	c.outcome = err
}

// Nested returns a context whose writes can be committed into, or dropped
// from, this one independently.
func (c *Context) Nested() (*Context, *versiondb.Database) {
	db := versiondb.New(c.DB)
	return &Context{
		Context: c.Context,
		DB:      db,
		Time:    c.Time,
		Log:     c.Log,
	}, db
}

// Deploy creates a contract of [contractType] administered by [deployer].
func (c *Context) Deploy(deployer ids.ShortID, contractType state.ContractType, name string) (ids.ShortID, error) {
	if err := contractType.Verify(); err != nil {
		return ids.ShortEmpty, err
	}
	address, err := state.NextContractAddress(c.DB, deployer)
	if err != nil {
		return ids.ShortEmpty, err
	}
	if err := state.SetContractType(c.DB, address, contractType); err != nil {
		return ids.ShortEmpty, err
	}

	switch contractType {
	case state.OrchestratorContract:
		err = orchestrator.Initialize(c.DB, address, deployer)
	case state.ProxyContract:
	default:
		err = state.SetContractOwner(c.DB, address, deployer)
		if err == nil {
			err = state.SetContractName(c.DB, address, name)
		}
	}
	return address, err
}

func (c *Context) ContractType(address ids.ShortID) (state.ContractType, error) {
	return state.GetContractType(c.DB, address)
}

func (c *Context) is(address ids.ShortID, contractType state.ContractType) (bool, error) {
	deployed, err := c.ContractType(address)
	return deployed == contractType, err
}

// GetCollection returns the token bookkeeping of any token contract deployed
// at [address].
func (c *Context) GetCollection(address ids.ShortID) (*nft.Collection, bool, error) {
	contractType, err := c.ContractType(address)
	if err != nil {
		return nil, false, err
	}
	switch contractType {
	case state.CollectionContract, state.FRightContract, state.IRightContract:
		return nft.New(c.DB, address, c), true, nil
	default:
		return nil, false, nil
	}
}

func (c *Context) GetAssetLedger(address ids.ShortID) (*asset.Ledger, bool, error) {
	ok, err := c.is(address, state.CollectionContract)
	if err != nil || !ok {
		return nil, false, err
	}
	return asset.New(c.DB, address, c), true, nil
}

func (c *Context) GetFRightRegistry(address ids.ShortID) (*fright.Registry, bool, error) {
	ok, err := c.is(address, state.FRightContract)
	if err != nil || !ok {
		return nil, false, err
	}
	return fright.New(c.DB, address, c), true, nil
}

func (c *Context) GetIRightRegistry(address ids.ShortID) (*iright.Registry, bool, error) {
	ok, err := c.is(address, state.IRightContract)
	if err != nil || !ok {
		return nil, false, err
	}
	return iright.New(c.DB, address, c), true, nil
}

func (c *Context) GetProxyRegistry(address ids.ShortID) (*proxy.Registry, bool, error) {
	ok, err := c.is(address, state.ProxyContract)
	if err != nil || !ok {
		return nil, false, err
	}
	return proxy.New(c.DB, address), true, nil
}

func (c *Context) GetOrchestrator(address ids.ShortID) (*orchestrator.Orchestrator, bool, error) {
	ok, err := c.is(address, state.OrchestratorContract)
	if err != nil || !ok {
		return nil, false, err
	}
	return orchestrator.New(c.DB, address, c, c.Time, c.Log), true, nil
}

// nft.Env

func (c *Context) IsContract(address ids.ShortID) (bool, error) {
	contractType, err := c.ContractType(address)
	return contractType != state.NoContract, err
}

func (c *Context) Receiver(address ids.ShortID) (nft.Receiver, bool, error) {
	o, ok, err := c.GetOrchestrator(address)
	if err != nil || !ok {
		return nil, false, err
	}
	return o, true, nil
}

func (c *Context) ProxyRegistry(address ids.ShortID) (nft.ProxyRegistry, bool, error) {
	r, ok, err := c.GetProxyRegistry(address)
	if err != nil || !ok {
		return nil, false, err
	}
	return r, true, nil
}

// orchestrator.Directory

func (c *Context) FRightRegistry(address ids.ShortID) (orchestrator.FRightRegistry, bool, error) {
	r, ok, err := c.GetFRightRegistry(address)
	if err != nil || !ok {
		return nil, false, err
	}
	return r, true, nil
}

func (c *Context) IRightRegistry(address ids.ShortID) (orchestrator.IRightRegistry, bool, error) {
	r, ok, err := c.GetIRightRegistry(address)
	if err != nil || !ok {
		return nil, false, err
	}
	return r, true, nil
}

func (c *Context) AssetLedger(address ids.ShortID) (orchestrator.AssetLedger, bool, error) {
	l, ok, err := c.GetAssetLedger(address)
	if err != nil || !ok {
		return nil, false, err
	}
	return l, true, nil
}
