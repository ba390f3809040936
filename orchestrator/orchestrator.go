// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package orchestrator implements the rights orchestrator: the only entry point
// allowed to freeze base assets into custody, issue and revoke I-rights against
// the resulting F-rights, and release assets again.
//
// The orchestrator owns its registry bindings, the per kind version counters,
// the freeze whitelist and the freeze gate. The rights records themselves are
// owned by the bound registries, which the orchestrator administers.
//
// An Orchestrator doesn't provide atomicity on its own. Every call is expected
// to run against a database that is discarded if the call returns an error.
package orchestrator

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/rightsvm/state"
)

type Orchestrator struct {
	db        database.KeyValueReaderWriterDeleter
	address   ids.ShortID
	directory Directory
	now       time.Time
	log       logging.Logger
}

// New returns a handle onto the orchestrator deployed at [address]. [now] is
// the time every expiry is compared against.
func New(
	db database.KeyValueReaderWriterDeleter,
	address ids.ShortID,
	directory Directory,
	now time.Time,
	log logging.Logger,
) *Orchestrator {
	return &Orchestrator{
		db:        db,
		address:   address,
		directory: directory,
		now:       now,
		log:       log,
	}
}

// Initialize sets the administrator of a freshly deployed orchestrator.
func Initialize(db database.KeyValueWriterDeleter, address ids.ShortID, admin ids.ShortID) error {
	if admin == ids.ShortEmpty {
		return ErrInvalidAddress
	}
	return state.SetAdmin(db, address, admin)
}

func (o *Orchestrator) Address() ids.ShortID {
	return o.address
}

func (o *Orchestrator) Admin() (ids.ShortID, error) {
	return state.GetAdmin(o.db, o.address)
}

// Binding returns the registry bound to [kind], or [ids.ShortEmpty].
func (o *Orchestrator) Binding(kind RightKind) (ids.ShortID, error) {
	if err := kind.Verify(); err != nil {
		return ids.ShortEmpty, err
	}
	return state.GetBinding(o.db, o.address, byte(kind))
}

func (o *Orchestrator) Version(kind RightKind) (uint64, error) {
	if err := kind.Verify(); err != nil {
		return 0, err
	}
	return state.GetVersion(o.db, o.address, byte(kind))
}

func (o *Orchestrator) IsWhitelisted(address ids.ShortID) (bool, error) {
	return state.IsWhitelisted(o.db, o.address, address)
}

func (o *Orchestrator) IsFreezeGateActive() (bool, error) {
	return state.IsFreezeGateActive(o.db, o.address)
}

// OnTokenReceived accepts every asset transferred into custody.
func (*Orchestrator) OnTokenReceived(_, _, _ ids.ShortID, _ uint64, _ []byte) error {
	return nil
}

func (o *Orchestrator) onlyAdmin(caller ids.ShortID) error {
	admin, err := o.Admin()
	if err != nil {
		return err
	}
	if caller != admin {
		return ErrNotAdmin
	}
	return nil
}

func (o *Orchestrator) isFuture(expiry uint64) bool {
	// Times before the epoch compare as 0.
	now := max(o.now.Unix(), 0)
	return expiry > uint64(now)
}

func (o *Orchestrator) verifyVersion(kind RightKind, version uint64, invalidErr error) error {
	current, err := state.GetVersion(o.db, o.address, byte(kind))
	if err != nil {
		return err
	}
	if version == 0 || version > current {
		return fmt.Errorf("%w: %d not in [1, %d]", invalidErr, version, current)
	}
	return nil
}

func (o *Orchestrator) bound(kind RightKind) (ids.ShortID, error) {
	address, err := state.GetBinding(o.db, o.address, byte(kind))
	if err != nil {
		return ids.ShortEmpty, err
	}
	if address == ids.ShortEmpty {
		return ids.ShortEmpty, fmt.Errorf("%w: %s", ErrRegistryNotBound, kind)
	}
	return address, nil
}

func (o *Orchestrator) fRegistry() (FRightRegistry, error) {
	address, err := o.bound(FRight)
	if err != nil {
		return nil, err
	}
	registry, ok, err := o.directory.FRightRegistry(address)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContractAddress, address)
	}
	return registry, nil
}

func (o *Orchestrator) iRegistry() (IRightRegistry, error) {
	address, err := o.bound(IRight)
	if err != nil {
		return nil, err
	}
	registry, ok, err := o.directory.IRightRegistry(address)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContractAddress, address)
	}
	return registry, nil
}

func (o *Orchestrator) registry(kind RightKind) (RightRegistry, error) {
	if kind == FRight {
		return o.fRegistry()
	}
	return o.iRegistry()
}

func (o *Orchestrator) ledger(baseAsset ids.ShortID) (AssetLedger, error) {
	if baseAsset == ids.ShortEmpty {
		return nil, ErrInvalidBaseAsset
	}
	ledger, ok, err := o.directory.AssetLedger(baseAsset)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBaseAsset, baseAsset)
	}
	return ledger, nil
}

func (o *Orchestrator) logAdmin(msg string, caller ids.ShortID, fields ...zap.Field) {
	o.log.Info(msg, append([]zap.Field{
		zap.Stringer("orchestrator", o.address),
		zap.Stringer("admin", caller),
	}, fields...)...)
}
