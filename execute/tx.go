// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package execute

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/chain"
	"github.com/ava-labs/rightsvm/contracts/nft"
	"github.com/ava-labs/rightsvm/orchestrator"
	"github.com/ava-labs/rightsvm/state"
	"github.com/ava-labs/rightsvm/tx"
	"github.com/ava-labs/rightsvm/vmerrs"
)

var (
	_ tx.Visitor = (*Tx)(nil)

	ErrUnknownContract = vmerrs.Invalid("no such contract")
)

// Result carries the values a transaction produced.
type Result struct {
	FRightID uint64      `json:"fRightID,omitempty"`
	IRightID uint64      `json:"iRightID,omitempty"`
	Version  uint64      `json:"version,omitempty"`
	Address  ids.ShortID `json:"address"`
}

// Tx executes the visited transaction on behalf of Sender. Every method
// consumes the sender's nonce before touching any contract.
type Tx struct {
	Context *chain.Context
	TxID    ids.ID
	Sender  ids.ShortID
	Result  Result
}

func (t *Tx) Freeze(f *tx.Freeze) error {
	o, err := t.orchestrator(f.Nonce, f.Orchestrator)
	if err != nil {
		return err
	}
	t.Result.FRightID, t.Result.IRightID, err = o.Freeze(
		t.Sender,
		f.Collection,
		f.AssetID,
		f.Expiry,
		f.Exclusive,
		f.MaxISupply,
		f.FVersion,
		f.IVersion,
	)
	return err
}

func (t *Tx) IssueI(i *tx.IssueI) error {
	o, err := t.orchestrator(i.Nonce, i.Orchestrator)
	if err != nil {
		return err
	}
	t.Result.IRightID, err = o.IssueI(t.Sender, i.FRightID, i.Expiry, i.IVersion)
	return err
}

func (t *Tx) RevokeI(r *tx.RevokeI) error {
	o, err := t.orchestrator(r.Nonce, r.Orchestrator)
	if err != nil {
		return err
	}
	return o.RevokeI(t.Sender, r.IRightID)
}

func (t *Tx) Unfreeze(u *tx.Unfreeze) error {
	o, err := t.orchestrator(u.Nonce, u.Orchestrator)
	if err != nil {
		return err
	}
	return o.Unfreeze(t.Sender, u.FRightID)
}

func (t *Tx) BindRegistry(b *tx.BindRegistry) error {
	o, err := t.orchestrator(b.Nonce, b.Orchestrator)
	if err != nil {
		return err
	}
	return o.BindRegistry(t.Sender, b.Kind, b.Registry)
}

func (t *Tx) TransferRegistryOwnership(tr *tx.TransferRegistryOwnership) error {
	o, err := t.orchestrator(tr.Nonce, tr.Orchestrator)
	if err != nil {
		return err
	}
	return o.TransferRegistryOwnership(t.Sender, tr.Kind, tr.To)
}

func (t *Tx) SetRegistryProxy(s *tx.SetRegistryProxy) error {
	o, err := t.orchestrator(s.Nonce, s.Orchestrator)
	if err != nil {
		return err
	}
	return o.SetRegistryProxy(t.Sender, s.Kind, s.Proxy)
}

func (t *Tx) SetRegistryMetadataBaseURL(s *tx.SetRegistryMetadataBaseURL) error {
	o, err := t.orchestrator(s.Nonce, s.Orchestrator)
	if err != nil {
		return err
	}
	return o.SetRegistryMetadataBaseURL(t.Sender, s.Kind, s.URL)
}

func (t *Tx) IncrementVersion(i *tx.IncrementVersion) error {
	o, err := t.orchestrator(i.Nonce, i.Orchestrator)
	if err != nil {
		return err
	}
	t.Result.Version, err = o.IncrementVersion(t.Sender, i.Kind)
	return err
}

func (t *Tx) SetWhitelistStatus(s *tx.SetWhitelistStatus) error {
	o, err := t.orchestrator(s.Nonce, s.Orchestrator)
	if err != nil {
		return err
	}
	return o.SetWhitelistStatus(t.Sender, s.Address, s.Included)
}

func (t *Tx) SetFreezeGate(s *tx.SetFreezeGate) error {
	o, err := t.orchestrator(s.Nonce, s.Orchestrator)
	if err != nil {
		return err
	}
	if s.Active {
		return o.ActivateFreezeGate(t.Sender)
	}
	return o.DeactivateFreezeGate(t.Sender)
}

func (t *Tx) TransferAdmin(tr *tx.TransferAdmin) error {
	o, err := t.orchestrator(tr.Nonce, tr.Orchestrator)
	if err != nil {
		return err
	}
	return o.TransferOwnership(t.Sender, tr.To)
}

func (t *Tx) Deploy(d *tx.Deploy) error {
	if err := t.incrementNonce(d.Nonce); err != nil {
		return err
	}
	var err error
	t.Result.Address, err = t.Context.Deploy(t.Sender, d.ContractType, d.Name)
	return err
}

func (t *Tx) MintAsset(m *tx.MintAsset) error {
	if err := t.incrementNonce(m.Nonce); err != nil {
		return err
	}
	ledger, ok, err := t.Context.GetAssetLedger(m.Collection)
	if err = found(m.Collection, ok, err); err != nil {
		return err
	}
	return ledger.Mint(t.Sender, m.To, m.AssetID)
}

func (t *Tx) TransferToken(tr *tx.TransferToken) error {
	c, err := t.collection(tr.Nonce, tr.Contract)
	if err != nil {
		return err
	}
	if tr.Safe {
		return c.SafeTransferFrom(t.Sender, tr.From, tr.To, tr.TokenID, tr.Data)
	}
	return c.TransferFrom(t.Sender, tr.From, tr.To, tr.TokenID)
}

func (t *Tx) Approve(a *tx.Approve) error {
	c, err := t.collection(a.Nonce, a.Contract)
	if err != nil {
		return err
	}
	return c.Approve(t.Sender, a.To, a.TokenID)
}

func (t *Tx) SetApprovalForAll(s *tx.SetApprovalForAll) error {
	c, err := t.collection(s.Nonce, s.Contract)
	if err != nil {
		return err
	}
	return c.SetApprovalForAll(t.Sender, s.Operator, s.Approved)
}

func (t *Tx) TransferContractOwnership(tr *tx.TransferContractOwnership) error {
	c, err := t.collection(tr.Nonce, tr.Contract)
	if err != nil {
		return err
	}
	return c.TransferOwnership(t.Sender, tr.To)
}

func (t *Tx) RegisterProxy(r *tx.RegisterProxy) error {
	if err := t.incrementNonce(r.Nonce); err != nil {
		return err
	}
	registry, ok, err := t.Context.GetProxyRegistry(r.Registry)
	if err = found(r.Registry, ok, err); err != nil {
		return err
	}
	return registry.Register(t.Sender, r.Proxy)
}

func (t *Tx) incrementNonce(nonce uint64) error {
	return state.IncrementNonce(t.Context.DB, t.Sender, nonce)
}

func (t *Tx) orchestrator(nonce uint64, address ids.ShortID) (*orchestrator.Orchestrator, error) {
	if err := t.incrementNonce(nonce); err != nil {
		return nil, err
	}
	o, ok, err := t.Context.GetOrchestrator(address)
	return o, found(address, ok, err)
}

func (t *Tx) collection(nonce uint64, address ids.ShortID) (*nft.Collection, error) {
	if err := t.incrementNonce(nonce); err != nil {
		return nil, err
	}
	c, ok, err := t.Context.GetCollection(address)
	return c, found(address, ok, err)
}

func found(address ids.ShortID, ok bool, err error) error {
	switch {
	case err != nil:
		return err
	case !ok:
		return fmt.Errorf("%w: %s", ErrUnknownContract, address)
	default:
		return nil
	}
}
