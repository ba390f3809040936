// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package proxy implements a proxy registry: every account may register one
// proxy that is then treated as an operator of all its tokens by collections
// pointing at the registry.
package proxy

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/state"
	"github.com/ava-labs/rightsvm/vmerrs"
)

var ErrProxyIsCaller = vmerrs.Invalid("proxy is the caller")

type Registry struct {
	DB      database.KeyValueReaderWriterDeleter
	Address ids.ShortID
}

func New(db database.KeyValueReaderWriterDeleter, address ids.ShortID) *Registry {
	return &Registry{
		DB:      db,
		Address: address,
	}
}

// Register sets the proxy of [caller]. Registering [ids.ShortEmpty] removes
// the current proxy.
func (r *Registry) Register(caller ids.ShortID, proxy ids.ShortID) error {
	if proxy == caller {
		return ErrProxyIsCaller
	}
	return state.SetProxy(r.DB, r.Address, caller, proxy)
}

func (r *Registry) Proxy(owner ids.ShortID) (ids.ShortID, error) {
	return state.GetProxy(r.DB, r.Address, owner)
}
