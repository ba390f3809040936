// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fright implements the F-right registry. Every F-right is a token
// claiming custody of exactly one frozen base asset, together with the policy
// governing how many I-rights may be drawn against it.
package fright

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/contracts/nft"
	"github.com/ava-labs/rightsvm/state"
	"github.com/ava-labs/rightsvm/vmerrs"
)

var (
	ErrNotRightOwner     = vmerrs.Unauthorized("caller is not the fRight owner")
	ErrInvalidBaseAsset  = vmerrs.Invalid("invalid base asset address")
	ErrInvalidMaxISupply = vmerrs.Invalid("invalid maximum I supply")
	ErrInvalidAmount     = vmerrs.Invalid("invalid amount")
	ErrAlreadyFrozen     = vmerrs.Inconsistent("asset is already frozen")
	ErrRightNotFound     = vmerrs.Inconsistent("fRight does not exist")
	ErrSupplyCapExceeded = vmerrs.Inconsistent("circulating I supply cannot exceed maximum supply")
	ErrSupplyUnderflow   = vmerrs.Inconsistent("circulating I supply cannot be negative")
	ErrNotUnfreezable    = vmerrs.Inconsistent("fRight has I-rights in circulation")
)

// Registry is a handle onto the F-right registry deployed at Address. Every
// mutating call requires the caller to administer the registry; in a wired
// chain that is the orchestrator.
type Registry struct {
	*nft.Collection
}

func New(db database.KeyValueReaderWriterDeleter, address ids.ShortID, env nft.Env) *Registry {
	return &Registry{
		Collection: nft.New(db, address, env),
	}
}

// Freeze mints a new F-right to [to] for [assetID] of [baseAsset]. The new
// record starts with a circulating I supply of 1, accounting for the initial
// I-right issued alongside it.
func (r *Registry) Freeze(
	caller ids.ShortID,
	to ids.ShortID,
	baseAsset ids.ShortID,
	exclusive bool,
	expiry uint64,
	assetID uint64,
	maxISupply uint64,
	version uint64,
) (uint64, error) {
	if err := r.OnlyOwner(caller); err != nil {
		return 0, err
	}
	switch {
	case baseAsset == ids.ShortEmpty:
		return 0, ErrInvalidBaseAsset
	case maxISupply == 0:
		return 0, ErrInvalidMaxISupply
	}

	isFrozen, err := r.IsFrozen(baseAsset, assetID)
	if err != nil {
		return 0, err
	}
	if isFrozen {
		return 0, fmt.Errorf("%w: %s#%d", ErrAlreadyFrozen, baseAsset, assetID)
	}

	fRightID, err := r.MintNext(to)
	if err != nil {
		return 0, err
	}
	err = state.SetFRight(r.DB, r.Address, fRightID, &state.FRight{
		BaseAsset:          baseAsset,
		AssetID:            assetID,
		Expiry:             expiry,
		Exclusive:          exclusive,
		MaxISupply:         maxISupply,
		CirculatingISupply: 1,
		Version:            version,
	})
	if err != nil {
		return 0, err
	}
	return fRightID, state.SetFrozen(r.DB, r.Address, baseAsset, assetID, fRightID)
}

// Get returns the live record of [fRightID].
func (r *Registry) Get(fRightID uint64) (*state.FRight, error) {
	record, err := state.GetFRight(r.DB, r.Address, fRightID)
	if err == database.ErrNotFound {
		return nil, fmt.Errorf("%w: %d", ErrRightNotFound, fRightID)
	}
	return record, err
}

// IsIMintable reports whether another I-right may be drawn against
// [fRightID]. Exclusive F-rights are never mintable: their only slot is taken
// by the I-right issued at freeze time.
func (r *Registry) IsIMintable(fRightID uint64) (bool, error) {
	record, err := state.GetFRight(r.DB, r.Address, fRightID)
	switch {
	case err == database.ErrNotFound:
		return false, nil
	case err != nil:
		return false, err
	}
	return !record.Exclusive, nil
}

func (r *Registry) EndTimeAndMaxSupply(fRightID uint64) (uint64, uint64, error) {
	record, err := r.Get(fRightID)
	if err != nil {
		return 0, 0, err
	}
	return record.Expiry, record.MaxISupply, nil
}

func (r *Registry) BaseAsset(fRightID uint64) (ids.ShortID, uint64, error) {
	record, err := r.Get(fRightID)
	if err != nil {
		return ids.ShortEmpty, 0, err
	}
	return record.BaseAsset, record.AssetID, nil
}

func (r *Registry) IncrementCirculatingISupply(caller ids.ShortID, fRightID uint64, amount uint64) error {
	if err := r.OnlyOwner(caller); err != nil {
		return err
	}
	if amount == 0 {
		return ErrInvalidAmount
	}
	record, err := r.Get(fRightID)
	if err != nil {
		return err
	}
	if amount > record.MaxISupply-record.CirculatingISupply {
		return fmt.Errorf("%w: %d + %d > %d",
			ErrSupplyCapExceeded,
			record.CirculatingISupply,
			amount,
			record.MaxISupply,
		)
	}
	record.CirculatingISupply += amount
	return state.SetFRight(r.DB, r.Address, fRightID, record)
}

func (r *Registry) DecrementCirculatingISupply(caller ids.ShortID, fRightID uint64, amount uint64) error {
	if err := r.OnlyOwner(caller); err != nil {
		return err
	}
	if amount == 0 {
		return ErrInvalidAmount
	}
	record, err := r.Get(fRightID)
	if err != nil {
		return err
	}
	if amount > record.CirculatingISupply {
		return ErrSupplyUnderflow
	}
	record.CirculatingISupply -= amount
	return state.SetFRight(r.DB, r.Address, fRightID, record)
}

func (r *Registry) IsFrozen(baseAsset ids.ShortID, assetID uint64) (bool, error) {
	fRightID, err := r.FrozenBy(baseAsset, assetID)
	return fRightID != 0, err
}

// FrozenBy returns the live F-right holding [assetID] of [baseAsset], or 0.
func (r *Registry) FrozenBy(baseAsset ids.ShortID, assetID uint64) (uint64, error) {
	return state.GetFrozen(r.DB, r.Address, baseAsset, assetID)
}

// IsUnfreezable reports whether [fRightID] is live and has no I-rights left in
// circulation.
func (r *Registry) IsUnfreezable(fRightID uint64) (bool, error) {
	record, err := state.GetFRight(r.DB, r.Address, fRightID)
	switch {
	case err == database.ErrNotFound:
		return false, nil
	case err != nil:
		return false, err
	}
	return record.CirculatingISupply == 0, nil
}

// Unfreeze burns [fRightID], held by [from], and releases the frozen marker
// of its base asset.
func (r *Registry) Unfreeze(caller ids.ShortID, from ids.ShortID, fRightID uint64) error {
	if err := r.OnlyOwner(caller); err != nil {
		return err
	}
	record, err := r.Get(fRightID)
	if err != nil {
		return err
	}
	owner, err := r.OwnerOf(fRightID)
	if err != nil {
		return err
	}
	if owner != from {
		return ErrNotRightOwner
	}
	if record.CirculatingISupply != 0 {
		return fmt.Errorf("%w: %d", ErrNotUnfreezable, record.CirculatingISupply)
	}

	if err := state.DeleteFRight(r.DB, r.Address, fRightID); err != nil {
		return err
	}
	if err := state.SetFrozen(r.DB, r.Address, record.BaseAsset, record.AssetID, 0); err != nil {
		return err
	}
	return r.Burn(fRightID)
}
