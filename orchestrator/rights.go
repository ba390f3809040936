// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package orchestrator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/ids"
)

// Freeze locks [assetID] of [baseAsset] into the custody of the orchestrator.
// The caller receives a new F-right and the initial I-right drawn against it,
// whose IDs are returned.
//
// The caller must have approved the orchestrator to move the asset.
func (o *Orchestrator) Freeze(
	caller ids.ShortID,
	baseAsset ids.ShortID,
	assetID uint64,
	expiry uint64,
	exclusive bool,
	maxISupply uint64,
	fVersion uint64,
	iVersion uint64,
) (uint64, uint64, error) {
	gateActive, err := o.IsFreezeGateActive()
	if err != nil {
		return 0, 0, err
	}
	if gateActive {
		whitelisted, err := o.IsWhitelisted(caller)
		if err != nil {
			return 0, 0, err
		}
		if !whitelisted {
			return 0, 0, ErrNotWhitelisted
		}
	}
	if maxISupply == 0 {
		return 0, 0, ErrInvalidMaxISupply
	}
	if !o.isFuture(expiry) {
		return 0, 0, ErrExpiryInPast
	}
	if err := o.verifyVersion(FRight, fVersion, ErrInvalidFVersion); err != nil {
		return 0, 0, err
	}
	if err := o.verifyVersion(IRight, iVersion, ErrInvalidIVersion); err != nil {
		return 0, 0, err
	}

	fRegistry, err := o.fRegistry()
	if err != nil {
		return 0, 0, err
	}
	iRegistry, err := o.iRegistry()
	if err != nil {
		return 0, 0, err
	}
	ledger, err := o.ledger(baseAsset)
	if err != nil {
		return 0, 0, err
	}

	fRightID, err := fRegistry.Freeze(o.address, caller, baseAsset, exclusive, expiry, assetID, maxISupply, fVersion)
	if err != nil {
		return 0, 0, err
	}
	if fRightID == 0 {
		return 0, 0, ErrFreezeUnsuccessful
	}
	iRightID, err := iRegistry.Issue(o.address, caller, baseAsset, exclusive, fRightID, expiry, assetID, iVersion)
	if err != nil {
		return 0, 0, err
	}

	// Custody moves last so the records already exist if the ledger calls
	// back into the orchestrator.
	if err := ledger.SafeTransferFrom(o.address, caller, o.address, assetID, nil); err != nil {
		return 0, 0, err
	}

	o.log.Debug("froze asset",
		zap.Stringer("owner", caller),
		zap.Stringer("baseAsset", baseAsset),
		zap.Uint64("assetID", assetID),
		zap.Uint64("fRightID", fRightID),
		zap.Uint64("iRightID", iRightID),
		zap.Bool("exclusive", exclusive),
	)
	return fRightID, iRightID, nil
}

// IssueI draws another, non-exclusive, I-right against [fRightID] for its
// owner.
func (o *Orchestrator) IssueI(
	caller ids.ShortID,
	fRightID uint64,
	expiry uint64,
	iVersion uint64,
) (uint64, error) {
	if !o.isFuture(expiry) {
		return 0, ErrExpiryInPast
	}
	if err := o.verifyVersion(IRight, iVersion, ErrInvalidIVersion); err != nil {
		return 0, err
	}

	fRegistry, err := o.fRegistry()
	if err != nil {
		return 0, err
	}
	mintable, err := fRegistry.IsIMintable(fRightID)
	if err != nil {
		return 0, err
	}
	if !mintable {
		return 0, fmt.Errorf("%w: %d", ErrNotIMintable, fRightID)
	}
	owner, err := fRegistry.OwnerOf(fRightID)
	if err != nil {
		return 0, err
	}
	if owner != caller {
		return 0, ErrNotFRightOwner
	}
	endTime, maxISupply, err := fRegistry.EndTimeAndMaxSupply(fRightID)
	if err != nil {
		return 0, err
	}
	if maxISupply == 0 {
		return 0, ErrInvalidMaxISupply
	}
	if expiry > endTime {
		return 0, fmt.Errorf("%w: %d > %d", ErrExpiryExceedsParent, expiry, endTime)
	}

	iRegistry, err := o.iRegistry()
	if err != nil {
		return 0, err
	}
	baseAsset, assetID, err := fRegistry.BaseAsset(fRightID)
	if err != nil {
		return 0, err
	}
	iRightID, err := iRegistry.Issue(o.address, caller, baseAsset, false, fRightID, expiry, assetID, iVersion)
	if err != nil {
		return 0, err
	}
	if err := fRegistry.IncrementCirculatingISupply(o.address, fRightID, 1); err != nil {
		return 0, err
	}

	o.log.Debug("issued iRight",
		zap.Stringer("owner", caller),
		zap.Uint64("fRightID", fRightID),
		zap.Uint64("iRightID", iRightID),
	)
	return iRightID, nil
}

// RevokeI burns [iRightID]. While its base asset is still frozen, the supply
// of the parent F-right is released too.
func (o *Orchestrator) RevokeI(caller ids.ShortID, iRightID uint64) error {
	iRegistry, err := o.iRegistry()
	if err != nil {
		return err
	}
	owner, err := iRegistry.OwnerOf(iRightID)
	if err != nil {
		return err
	}
	if owner != caller {
		return ErrNotIRightOwner
	}

	fRegistry, err := o.fRegistry()
	if err != nil {
		return err
	}
	baseAsset, assetID, err := iRegistry.BaseAsset(iRightID)
	if err != nil {
		return err
	}
	frozen, err := fRegistry.IsFrozen(baseAsset, assetID)
	if err != nil {
		return err
	}
	if frozen {
		parentID, err := iRegistry.ParentID(iRightID)
		if err != nil {
			return err
		}
		if parentID == 0 {
			return ErrInvalidParent
		}
		if err := fRegistry.DecrementCirculatingISupply(o.address, parentID, 1); err != nil {
			return err
		}
	}
	if err := iRegistry.Revoke(o.address, caller, iRightID); err != nil {
		return err
	}

	o.log.Debug("revoked iRight",
		zap.Stringer("owner", caller),
		zap.Uint64("iRightID", iRightID),
		zap.Bool("frozen", frozen),
	)
	return nil
}

// Unfreeze burns [fRightID] and returns its base asset to the caller. Every
// I-right drawn against it must have been revoked.
func (o *Orchestrator) Unfreeze(caller ids.ShortID, fRightID uint64) error {
	fRegistry, err := o.fRegistry()
	if err != nil {
		return err
	}
	unfreezable, err := fRegistry.IsUnfreezable(fRightID)
	if err != nil {
		return err
	}
	if !unfreezable {
		return fmt.Errorf("%w: %d", ErrNotUnfreezable, fRightID)
	}

	baseAsset, assetID, err := fRegistry.BaseAsset(fRightID)
	if err != nil {
		return err
	}
	ledger, err := o.ledger(baseAsset)
	if err != nil {
		return err
	}
	if err := fRegistry.Unfreeze(o.address, caller, fRightID); err != nil {
		return err
	}
	if err := ledger.TransferFrom(o.address, o.address, caller, assetID); err != nil {
		return err
	}

	o.log.Debug("unfroze asset",
		zap.Stringer("owner", caller),
		zap.Stringer("baseAsset", baseAsset),
		zap.Uint64("assetID", assetID),
		zap.Uint64("fRightID", fRightID),
	)
	return nil
}
