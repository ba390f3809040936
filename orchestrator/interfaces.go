// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package orchestrator

import "github.com/ava-labs/avalanchego/ids"

// RightRegistry is the part of a rights registry the orchestrator drives
// regardless of its kind. Every mutating call takes the address of the caller
// as its first argument; registries only accept calls from their owner.
type RightRegistry interface {
	OwnerOf(tokenID uint64) (ids.ShortID, error)
	BaseAsset(tokenID uint64) (ids.ShortID, uint64, error)
	SetAPIBaseURL(caller ids.ShortID, url string) error
	SetProxyRegistryAddress(caller, registry ids.ShortID) error
	TransferOwnership(caller, to ids.ShortID) error
}

type FRightRegistry interface {
	RightRegistry

	Freeze(
		caller ids.ShortID,
		to ids.ShortID,
		baseAsset ids.ShortID,
		exclusive bool,
		expiry uint64,
		assetID uint64,
		maxISupply uint64,
		version uint64,
	) (uint64, error)
	IsIMintable(fRightID uint64) (bool, error)
	EndTimeAndMaxSupply(fRightID uint64) (uint64, uint64, error)
	IncrementCirculatingISupply(caller ids.ShortID, fRightID uint64, amount uint64) error
	DecrementCirculatingISupply(caller ids.ShortID, fRightID uint64, amount uint64) error
	IsFrozen(baseAsset ids.ShortID, assetID uint64) (bool, error)
	IsUnfreezable(fRightID uint64) (bool, error)
	Unfreeze(caller ids.ShortID, from ids.ShortID, fRightID uint64) error
}

type IRightRegistry interface {
	RightRegistry

	Issue(
		caller ids.ShortID,
		to ids.ShortID,
		baseAsset ids.ShortID,
		exclusive bool,
		parentID uint64,
		expiry uint64,
		assetID uint64,
		version uint64,
	) (uint64, error)
	ParentID(iRightID uint64) (uint64, error)
	Revoke(caller ids.ShortID, from ids.ShortID, iRightID uint64) error
}

// AssetLedger moves base assets in and out of custody.
type AssetLedger interface {
	SafeTransferFrom(caller, from, to ids.ShortID, assetID uint64, data []byte) error
	TransferFrom(caller, from, to ids.ShortID, assetID uint64) error
}

// Directory resolves addresses to the contracts deployed at them. The boolean
// is false when nothing of the requested type is deployed at the address.
type Directory interface {
	FRightRegistry(address ids.ShortID) (FRightRegistry, bool, error)
	IRightRegistry(address ids.ShortID) (IRightRegistry, bool, error)
	AssetLedger(address ids.ShortID) (AssetLedger, bool, error)
}
