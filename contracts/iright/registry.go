// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package iright implements the I-right registry. Every I-right is a time
// bounded usage token drawn against a live F-right.
package iright

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/contracts/nft"
	"github.com/ava-labs/rightsvm/state"
	"github.com/ava-labs/rightsvm/vmerrs"
)

var (
	ErrNotRightOwner    = vmerrs.Unauthorized("caller is not the iRight owner")
	ErrInvalidBaseAsset = vmerrs.Invalid("invalid base asset address")
	ErrInvalidParent    = vmerrs.Invalid("invalid fRight parent")
	ErrRightNotFound    = vmerrs.Inconsistent("iRight does not exist")
)

// Registry is a handle onto the I-right registry deployed at Address. Issuing
// and revoking require the caller to administer the registry.
type Registry struct {
	*nft.Collection
}

func New(db database.KeyValueReaderWriterDeleter, address ids.ShortID, env nft.Env) *Registry {
	return &Registry{
		Collection: nft.New(db, address, env),
	}
}

// Issue mints a new I-right to [to], drawn against [parentID]. IDs come from a
// single counter shared by every issuance of the registry.
func (r *Registry) Issue(
	caller ids.ShortID,
	to ids.ShortID,
	baseAsset ids.ShortID,
	exclusive bool,
	parentID uint64,
	expiry uint64,
	assetID uint64,
	version uint64,
) (uint64, error) {
	if err := r.OnlyOwner(caller); err != nil {
		return 0, err
	}
	switch {
	case baseAsset == ids.ShortEmpty:
		return 0, ErrInvalidBaseAsset
	case parentID == 0:
		return 0, ErrInvalidParent
	}

	iRightID, err := r.MintNext(to)
	if err != nil {
		return 0, err
	}
	return iRightID, state.SetIRight(r.DB, r.Address, iRightID, &state.IRight{
		ParentID:  parentID,
		BaseAsset: baseAsset,
		AssetID:   assetID,
		Expiry:    expiry,
		Exclusive: exclusive,
		Version:   version,
	})
}

// Get returns the live record of [iRightID].
func (r *Registry) Get(iRightID uint64) (*state.IRight, error) {
	record, err := state.GetIRight(r.DB, r.Address, iRightID)
	if err == database.ErrNotFound {
		return nil, fmt.Errorf("%w: %d", ErrRightNotFound, iRightID)
	}
	return record, err
}

func (r *Registry) ParentID(iRightID uint64) (uint64, error) {
	record, err := r.Get(iRightID)
	if err != nil {
		return 0, err
	}
	return record.ParentID, nil
}

func (r *Registry) BaseAsset(iRightID uint64) (ids.ShortID, uint64, error) {
	record, err := r.Get(iRightID)
	if err != nil {
		return ids.ShortEmpty, 0, err
	}
	return record.BaseAsset, record.AssetID, nil
}

// Revoke burns [iRightID], held by [from].
func (r *Registry) Revoke(caller ids.ShortID, from ids.ShortID, iRightID uint64) error {
	if err := r.OnlyOwner(caller); err != nil {
		return err
	}
	if _, err := r.Get(iRightID); err != nil {
		return err
	}
	owner, err := r.OwnerOf(iRightID)
	if err != nil {
		return err
	}
	if owner != from {
		return ErrNotRightOwner
	}
	if err := state.DeleteIRight(r.DB, r.Address, iRightID); err != nil {
		return err
	}
	return r.Burn(iRightID)
}
