// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package orchestrator

import (
	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/state"
)

// TransferOwnership hands the administration of the orchestrator to [to].
func (o *Orchestrator) TransferOwnership(caller ids.ShortID, to ids.ShortID) error {
	if err := o.onlyAdmin(caller); err != nil {
		return err
	}
	if to == ids.ShortEmpty {
		return ErrInvalidAddress
	}
	o.logAdmin("transferring administration", caller,
		zap.Stringer("to", to),
	)
	return state.SetAdmin(o.db, o.address, to)
}

// BindRegistry points [kind] at the registry deployed at [address], replacing
// any previous binding.
func (o *Orchestrator) BindRegistry(caller ids.ShortID, kind RightKind, address ids.ShortID) error {
	if err := o.onlyAdmin(caller); err != nil {
		return err
	}
	if err := kind.Verify(); err != nil {
		return err
	}
	if address == ids.ShortEmpty {
		return ErrInvalidAddress
	}

	var (
		ok  bool
		err error
	)
	if kind == FRight {
		_, ok, err = o.directory.FRightRegistry(address)
	} else {
		_, ok, err = o.directory.IRightRegistry(address)
	}
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidContractAddress
	}

	o.logAdmin("binding registry", caller,
		zap.Stringer("kind", kind),
		zap.Stringer("registry", address),
	)
	return state.SetBinding(o.db, o.address, byte(kind), address)
}

// TransferRegistryOwnership gives up the administration of the registry bound
// to [kind]. The orchestrator can't drive that registry anymore afterwards.
func (o *Orchestrator) TransferRegistryOwnership(caller ids.ShortID, kind RightKind, to ids.ShortID) error {
	if err := o.onlyAdmin(caller); err != nil {
		return err
	}
	if err := kind.Verify(); err != nil {
		return err
	}
	if to == ids.ShortEmpty {
		return ErrInvalidAddress
	}
	registry, err := o.registry(kind)
	if err != nil {
		return err
	}
	o.logAdmin("transferring registry ownership", caller,
		zap.Stringer("kind", kind),
		zap.Stringer("to", to),
	)
	return registry.TransferOwnership(o.address, to)
}

func (o *Orchestrator) SetRegistryProxy(caller ids.ShortID, kind RightKind, proxy ids.ShortID) error {
	if err := o.onlyAdmin(caller); err != nil {
		return err
	}
	if err := kind.Verify(); err != nil {
		return err
	}
	registry, err := o.registry(kind)
	if err != nil {
		return err
	}
	return registry.SetProxyRegistryAddress(o.address, proxy)
}

func (o *Orchestrator) SetRegistryMetadataBaseURL(caller ids.ShortID, kind RightKind, url string) error {
	if err := o.onlyAdmin(caller); err != nil {
		return err
	}
	if err := kind.Verify(); err != nil {
		return err
	}
	registry, err := o.registry(kind)
	if err != nil {
		return err
	}
	return registry.SetAPIBaseURL(o.address, url)
}

// IncrementVersion bumps the version counter of [kind] and returns the new
// value.
func (o *Orchestrator) IncrementVersion(caller ids.ShortID, kind RightKind) (uint64, error) {
	if err := o.onlyAdmin(caller); err != nil {
		return 0, err
	}
	if err := kind.Verify(); err != nil {
		return 0, err
	}
	version, err := state.GetVersion(o.db, o.address, byte(kind))
	if err != nil {
		return 0, err
	}
	version++
	o.logAdmin("incrementing version", caller,
		zap.Stringer("kind", kind),
		zap.Uint64("version", version),
	)
	return version, state.SetVersion(o.db, o.address, byte(kind), version)
}

func (o *Orchestrator) SetWhitelistStatus(caller ids.ShortID, address ids.ShortID, included bool) error {
	if err := o.onlyAdmin(caller); err != nil {
		return err
	}
	if address == ids.ShortEmpty {
		return ErrInvalidAddress
	}
	return state.SetWhitelisted(o.db, o.address, address, included)
}

func (o *Orchestrator) ActivateFreezeGate(caller ids.ShortID) error {
	return o.setFreezeGate(caller, true)
}

func (o *Orchestrator) DeactivateFreezeGate(caller ids.ShortID) error {
	return o.setFreezeGate(caller, false)
}

func (o *Orchestrator) setFreezeGate(caller ids.ShortID, active bool) error {
	if err := o.onlyAdmin(caller); err != nil {
		return err
	}
	current, err := o.IsFreezeGateActive()
	if err != nil {
		return err
	}
	switch {
	case current && active:
		return ErrAlreadyActivated
	case !current && !active:
		return ErrAlreadyDeactivated
	}
	o.logAdmin("toggling freeze gate", caller,
		zap.Bool("active", active),
	)
	return state.SetFreezeGateActive(o.db, o.address, active)
}
