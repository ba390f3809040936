// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package asset implements the base asset ledger: collections of
// non-fungible assets that can be locked into custody by the orchestrator.
package asset

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/contracts/nft"
)

// Ledger is a collection of base assets. Only the administrator of the
// collection may mint new assets; asset IDs are chosen by the minter.
type Ledger struct {
	*nft.Collection
}

func New(db database.KeyValueReaderWriterDeleter, address ids.ShortID, env nft.Env) *Ledger {
	return &Ledger{
		Collection: nft.New(db, address, env),
	}
}

func (l *Ledger) Mint(caller, to ids.ShortID, assetID uint64) error {
	if err := l.OnlyOwner(caller); err != nil {
		return err
	}
	return l.Collection.Mint(to, assetID)
}
