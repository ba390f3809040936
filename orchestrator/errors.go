// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package orchestrator

import "github.com/ava-labs/rightsvm/vmerrs"

var (
	ErrNotAdmin               = vmerrs.Unauthorized("caller is not the administrator")
	ErrNotFRightOwner         = vmerrs.Unauthorized("caller is not the fRight owner")
	ErrNotIRightOwner         = vmerrs.Unauthorized("caller is not the iRight owner")
	ErrInvalidKind            = vmerrs.Invalid("invalid contract type")
	ErrInvalidAddress         = vmerrs.Invalid("invalid address")
	ErrInvalidContractAddress = vmerrs.Invalid("invalid contract address")
	ErrInvalidBaseAsset       = vmerrs.Invalid("invalid base asset address")
	ErrInvalidMaxISupply      = vmerrs.Invalid("invalid maximum I supply")
	ErrExpiryInPast           = vmerrs.Invalid("expiry should be in the future")
	ErrExpiryExceedsParent    = vmerrs.Invalid("expiry exceeds fRight expiry")
	ErrInvalidFVersion        = vmerrs.Invalid("invalid f version")
	ErrInvalidIVersion        = vmerrs.Invalid("invalid i version")
	ErrNotWhitelisted         = vmerrs.Forbidden("sender is not whitelisted")
	ErrNotIMintable           = vmerrs.Forbidden("fRight is not I-mintable")
	ErrAlreadyActivated       = vmerrs.Forbidden("already activated")
	ErrAlreadyDeactivated     = vmerrs.Forbidden("already deactivated")
	ErrFreezeUnsuccessful     = vmerrs.Inconsistent("freeze unsuccessful")
	ErrInvalidParent          = vmerrs.Inconsistent("invalid fRight parent")
	ErrNotUnfreezable         = vmerrs.Inconsistent("fRight is not unfreezable")
	ErrRegistryNotBound       = vmerrs.Inconsistent("registry is not bound")
)
