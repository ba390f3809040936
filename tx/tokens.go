// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/state"
)

var (
	_ Unsigned = (*Deploy)(nil)
	_ Unsigned = (*MintAsset)(nil)
	_ Unsigned = (*TransferToken)(nil)
	_ Unsigned = (*Approve)(nil)
	_ Unsigned = (*SetApprovalForAll)(nil)
	_ Unsigned = (*TransferContractOwnership)(nil)
	_ Unsigned = (*RegisterProxy)(nil)
)

// Deploy creates a new contract administered by the sender.
type Deploy struct {
	Nonce        uint64             `serialize:"true" json:"nonce"`
	ContractType state.ContractType `serialize:"true" json:"contractType"`
	Name         string             `serialize:"true" json:"name"`
}

func (d *Deploy) Visit(v Visitor) error {
	return v.Deploy(d)
}

type MintAsset struct {
	Nonce      uint64      `serialize:"true" json:"nonce"`
	Collection ids.ShortID `serialize:"true" json:"collection"`
	To         ids.ShortID `serialize:"true" json:"to"`
	AssetID    uint64      `serialize:"true" json:"assetID"`
}

func (m *MintAsset) Visit(v Visitor) error {
	return v.MintAsset(m)
}

// TransferToken moves a token of any token contract. Safe transfers require
// contract recipients to acknowledge the token.
type TransferToken struct {
	Nonce    uint64      `serialize:"true" json:"nonce"`
	Contract ids.ShortID `serialize:"true" json:"contract"`
	From     ids.ShortID `serialize:"true" json:"from"`
	To       ids.ShortID `serialize:"true" json:"to"`
	TokenID  uint64      `serialize:"true" json:"tokenID"`
	Safe     bool        `serialize:"true" json:"safe"`
	Data     []byte      `serialize:"true" json:"data"`
}

func (t *TransferToken) Visit(v Visitor) error {
	return v.TransferToken(t)
}

type Approve struct {
	Nonce    uint64      `serialize:"true" json:"nonce"`
	Contract ids.ShortID `serialize:"true" json:"contract"`
	To       ids.ShortID `serialize:"true" json:"to"`
	TokenID  uint64      `serialize:"true" json:"tokenID"`
}

func (a *Approve) Visit(v Visitor) error {
	return v.Approve(a)
}

type SetApprovalForAll struct {
	Nonce    uint64      `serialize:"true" json:"nonce"`
	Contract ids.ShortID `serialize:"true" json:"contract"`
	Operator ids.ShortID `serialize:"true" json:"operator"`
	Approved bool        `serialize:"true" json:"approved"`
}

func (s *SetApprovalForAll) Visit(v Visitor) error {
	return v.SetApprovalForAll(s)
}

type TransferContractOwnership struct {
	Nonce    uint64      `serialize:"true" json:"nonce"`
	Contract ids.ShortID `serialize:"true" json:"contract"`
	To       ids.ShortID `serialize:"true" json:"to"`
}

func (t *TransferContractOwnership) Visit(v Visitor) error {
	return v.TransferContractOwnership(t)
}

type RegisterProxy struct {
	Nonce    uint64      `serialize:"true" json:"nonce"`
	Registry ids.ShortID `serialize:"true" json:"registry"`
	Proxy    ids.ShortID `serialize:"true" json:"proxy"`
}

func (r *RegisterProxy) Visit(v Visitor) error {
	return v.RegisterProxy(r)
}
