// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package nft implements the non-fungible token bookkeeping shared by the base
// asset collections and both rights registries: ownership, balances,
// approvals and custody transfers, plus the administrator of the contract.
package nft

import (
	"fmt"
	"strconv"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/state"
	"github.com/ava-labs/rightsvm/vmerrs"
)

var (
	ErrNotContractOwner  = vmerrs.Unauthorized("caller is not the contract owner")
	ErrNotApproved       = vmerrs.Unauthorized("caller is not owner nor approved")
	ErrWrongFrom         = vmerrs.Unauthorized("transfer of token that is not own")
	ErrApproveToOwner    = vmerrs.Invalid("approval to current owner")
	ErrApproveToCaller   = vmerrs.Invalid("approve to caller")
	ErrZeroAddress       = vmerrs.Invalid("invalid address")
	ErrInvalidTokenID    = vmerrs.Invalid("invalid token id")
	ErrTokenNotFound     = vmerrs.Inconsistent("token does not exist")
	ErrTokenExists       = vmerrs.Inconsistent("token already minted")
	ErrNonReceiver       = vmerrs.Inconsistent("transfer to non receiver implementer")
	ErrReceiverRejected  = vmerrs.Inconsistent("receiver rejected the transfer")
	ErrBalanceUnderflow  = vmerrs.Inconsistent("balance underflow")
	errUnexpectedBalance = vmerrs.Inconsistent("unexpected balance")
)

// Receiver is implemented by contracts that accept tokens through
// SafeTransferFrom.
type Receiver interface {
	OnTokenReceived(collection, operator, from ids.ShortID, tokenID uint64, data []byte) error
}

// ProxyRegistry maps token holders to the proxy that may move tokens on their
// behalf.
type ProxyRegistry interface {
	Proxy(owner ids.ShortID) (ids.ShortID, error)
}

// Env exposes the parts of the surrounding chain a collection interacts with.
type Env interface {
	IsContract(address ids.ShortID) (bool, error)
	// Receiver returns the receiver hook deployed at [address], if any.
	Receiver(address ids.ShortID) (Receiver, bool, error)
	// ProxyRegistry returns the proxy registry deployed at [address], if any.
	ProxyRegistry(address ids.ShortID) (ProxyRegistry, bool, error)
}

// Collection is a handle onto the tokens of the contract deployed at Address.
// A Collection doesn't cache anything, so it's only valid for as long as the
// database it was created with.
type Collection struct {
	DB      database.KeyValueReaderWriterDeleter
	Address ids.ShortID
	Env     Env
}

func New(db database.KeyValueReaderWriterDeleter, address ids.ShortID, env Env) *Collection {
	return &Collection{
		DB:      db,
		Address: address,
		Env:     env,
	}
}

// Contract administration

func (c *Collection) Owner() (ids.ShortID, error) {
	return state.GetContractOwner(c.DB, c.Address)
}

// OnlyOwner returns an error unless [caller] administers this contract.
func (c *Collection) OnlyOwner(caller ids.ShortID) error {
	owner, err := c.Owner()
	if err != nil {
		return err
	}
	if owner == ids.ShortEmpty || caller != owner {
		return ErrNotContractOwner
	}
	return nil
}

func (c *Collection) TransferOwnership(caller, to ids.ShortID) error {
	if err := c.OnlyOwner(caller); err != nil {
		return err
	}
	if to == ids.ShortEmpty {
		return ErrZeroAddress
	}
	return state.SetContractOwner(c.DB, c.Address, to)
}

func (c *Collection) Name() (string, error) {
	return state.GetContractName(c.DB, c.Address)
}

func (c *Collection) APIBaseURL() (string, error) {
	return state.GetBaseURL(c.DB, c.Address)
}

func (c *Collection) SetAPIBaseURL(caller ids.ShortID, url string) error {
	if err := c.OnlyOwner(caller); err != nil {
		return err
	}
	return state.SetBaseURL(c.DB, c.Address, url)
}

func (c *Collection) ProxyRegistryAddress() (ids.ShortID, error) {
	return state.GetProxyRegistry(c.DB, c.Address)
}

func (c *Collection) SetProxyRegistryAddress(caller, registry ids.ShortID) error {
	if err := c.OnlyOwner(caller); err != nil {
		return err
	}
	return state.SetProxyRegistry(c.DB, c.Address, registry)
}

// TokenURI returns the metadata location of [tokenID]. Collections without a
// base URL return the empty string.
func (c *Collection) TokenURI(tokenID uint64) (string, error) {
	if _, err := c.OwnerOf(tokenID); err != nil {
		return "", err
	}
	baseURL, err := c.APIBaseURL()
	if err != nil || baseURL == "" {
		return "", err
	}
	return baseURL + strconv.FormatUint(tokenID, 10), nil
}

// Token queries

func (c *Collection) Exists(tokenID uint64) (bool, error) {
	owner, err := state.GetTokenOwner(c.DB, c.Address, tokenID)
	return owner != ids.ShortEmpty, err
}

func (c *Collection) OwnerOf(tokenID uint64) (ids.ShortID, error) {
	owner, err := state.GetTokenOwner(c.DB, c.Address, tokenID)
	if err != nil {
		return ids.ShortEmpty, err
	}
	if owner == ids.ShortEmpty {
		return ids.ShortEmpty, fmt.Errorf("%w: %d", ErrTokenNotFound, tokenID)
	}
	return owner, nil
}

func (c *Collection) BalanceOf(owner ids.ShortID) (uint64, error) {
	if owner == ids.ShortEmpty {
		return 0, ErrZeroAddress
	}
	return state.GetBalance(c.DB, c.Address, owner)
}

// LastTokenID returns the ID of the most recent sequentially minted token.
func (c *Collection) LastTokenID() (uint64, error) {
	return state.GetLastTokenID(c.DB, c.Address)
}

func (c *Collection) GetApproved(tokenID uint64) (ids.ShortID, error) {
	if _, err := c.OwnerOf(tokenID); err != nil {
		return ids.ShortEmpty, err
	}
	return state.GetApproval(c.DB, c.Address, tokenID)
}

// IsApprovedForAll reports whether [operator] may move every token of
// [owner]. Operators registered as the owner's proxy in the configured proxy
// registry are always approved.
func (c *Collection) IsApprovedForAll(owner, operator ids.ShortID) (bool, error) {
	registryAddress, err := c.ProxyRegistryAddress()
	if err != nil {
		return false, err
	}
	if registryAddress != ids.ShortEmpty {
		registry, ok, err := c.Env.ProxyRegistry(registryAddress)
		if err != nil {
			return false, err
		}
		if ok {
			proxy, err := registry.Proxy(owner)
			if err != nil {
				return false, err
			}
			if proxy != ids.ShortEmpty && proxy == operator {
				return true, nil
			}
		}
	}
	return state.IsOperator(c.DB, c.Address, owner, operator)
}

func (c *Collection) isApprovedOrOwner(spender ids.ShortID, tokenID uint64) (bool, error) {
	owner, err := c.OwnerOf(tokenID)
	if err != nil {
		return false, err
	}
	if spender == owner {
		return true, nil
	}
	approved, err := state.GetApproval(c.DB, c.Address, tokenID)
	if err != nil {
		return false, err
	}
	if approved == spender {
		return true, nil
	}
	return c.IsApprovedForAll(owner, spender)
}

// Approvals

func (c *Collection) Approve(caller, to ids.ShortID, tokenID uint64) error {
	owner, err := c.OwnerOf(tokenID)
	if err != nil {
		return err
	}
	if to == owner {
		return ErrApproveToOwner
	}
	if caller != owner {
		isOperator, err := c.IsApprovedForAll(owner, caller)
		if err != nil {
			return err
		}
		if !isOperator {
			return ErrNotApproved
		}
	}
	return state.SetApproval(c.DB, c.Address, tokenID, to)
}

func (c *Collection) SetApprovalForAll(caller, operator ids.ShortID, approved bool) error {
	if operator == caller {
		return ErrApproveToCaller
	}
	if operator == ids.ShortEmpty {
		return ErrZeroAddress
	}
	return state.SetOperator(c.DB, c.Address, caller, operator, approved)
}

// Transfers

// TransferFrom moves [tokenID] from [from] to [to] on behalf of [caller]
// without notifying the recipient.
func (c *Collection) TransferFrom(caller, from, to ids.ShortID, tokenID uint64) error {
	ok, err := c.isApprovedOrOwner(caller, tokenID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotApproved
	}

	owner, err := c.OwnerOf(tokenID)
	if err != nil {
		return err
	}
	if owner != from {
		return ErrWrongFrom
	}
	if to == ids.ShortEmpty {
		return ErrZeroAddress
	}

	if err := state.SetApproval(c.DB, c.Address, tokenID, ids.ShortEmpty); err != nil {
		return err
	}
	if err := c.decreaseBalance(from); err != nil {
		return err
	}
	if err := c.increaseBalance(to); err != nil {
		return err
	}
	return state.SetTokenOwner(c.DB, c.Address, tokenID, to)
}

// SafeTransferFrom moves [tokenID] like TransferFrom, but requires contract
// recipients to acknowledge the transfer through their receiver hook.
// The transfer is written before the hook runs; callers must discard their
// writes when an error is returned.
func (c *Collection) SafeTransferFrom(caller, from, to ids.ShortID, tokenID uint64, data []byte) error {
	if err := c.TransferFrom(caller, from, to, tokenID); err != nil {
		return err
	}
	return c.checkOnReceived(caller, from, to, tokenID, data)
}

func (c *Collection) checkOnReceived(operator, from, to ids.ShortID, tokenID uint64, data []byte) error {
	receiver, ok, err := c.Env.Receiver(to)
	if err != nil {
		return err
	}
	if ok {
		if err := receiver.OnTokenReceived(c.Address, operator, from, tokenID, data); err != nil {
			return fmt.Errorf("%w: %w", ErrReceiverRejected, err)
		}
		return nil
	}

	isContract, err := c.Env.IsContract(to)
	if err != nil {
		return err
	}
	if isContract {
		return ErrNonReceiver
	}
	return nil
}

// Minting and burning. Callers are responsible for authorizing these.

// Mint creates [tokenID] and assigns it to [to].
func (c *Collection) Mint(to ids.ShortID, tokenID uint64) error {
	switch {
	case to == ids.ShortEmpty:
		return ErrZeroAddress
	case tokenID == 0:
		return ErrInvalidTokenID
	}

	exists, err := c.Exists(tokenID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %d", ErrTokenExists, tokenID)
	}

	if err := c.increaseBalance(to); err != nil {
		return err
	}
	return state.SetTokenOwner(c.DB, c.Address, tokenID, to)
}

// MintNext creates the next sequential token and assigns it to [to]. IDs start
// at 1 and are never reused.
func (c *Collection) MintNext(to ids.ShortID) (uint64, error) {
	lastTokenID, err := c.LastTokenID()
	if err != nil {
		return 0, err
	}
	tokenID := lastTokenID + 1
	if err := state.SetLastTokenID(c.DB, c.Address, tokenID); err != nil {
		return 0, err
	}
	return tokenID, c.Mint(to, tokenID)
}

func (c *Collection) Burn(tokenID uint64) error {
	owner, err := c.OwnerOf(tokenID)
	if err != nil {
		return err
	}
	if err := state.SetApproval(c.DB, c.Address, tokenID, ids.ShortEmpty); err != nil {
		return err
	}
	if err := c.decreaseBalance(owner); err != nil {
		return err
	}
	return state.SetTokenOwner(c.DB, c.Address, tokenID, ids.ShortEmpty)
}

func (c *Collection) increaseBalance(owner ids.ShortID) error {
	balance, err := state.GetBalance(c.DB, c.Address, owner)
	if err != nil {
		return err
	}
	if balance == ^uint64(0) {
		return errUnexpectedBalance
	}
	return state.SetBalance(c.DB, c.Address, owner, balance+1)
}

func (c *Collection) decreaseBalance(owner ids.ShortID) error {
	balance, err := state.GetBalance(c.DB, c.Address, owner)
	if err != nil {
		return err
	}
	if balance == 0 {
		return ErrBalanceUnderflow
	}
	return state.SetBalance(c.DB, c.Address, owner, balance-1)
}
