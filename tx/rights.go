// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import "github.com/ava-labs/avalanchego/ids"

var (
	_ Unsigned = (*Freeze)(nil)
	_ Unsigned = (*IssueI)(nil)
	_ Unsigned = (*RevokeI)(nil)
	_ Unsigned = (*Unfreeze)(nil)
)

type Freeze struct {
	// Nonce provides internal chain replay protection
	Nonce        uint64      `serialize:"true" json:"nonce"`
	Orchestrator ids.ShortID `serialize:"true" json:"orchestrator"`
	Collection   ids.ShortID `serialize:"true" json:"collection"`
	AssetID      uint64      `serialize:"true" json:"assetID"`
	Expiry       uint64      `serialize:"true" json:"expiry"`
	Exclusive    bool        `serialize:"true" json:"exclusive"`
	MaxISupply   uint64      `serialize:"true" json:"maxISupply"`
	FVersion     uint64      `serialize:"true" json:"fVersion"`
	IVersion     uint64      `serialize:"true" json:"iVersion"`
}

func (f *Freeze) Visit(v Visitor) error {
	return v.Freeze(f)
}

type IssueI struct {
	Nonce        uint64      `serialize:"true" json:"nonce"`
	Orchestrator ids.ShortID `serialize:"true" json:"orchestrator"`
	FRightID     uint64      `serialize:"true" json:"fRightID"`
	Expiry       uint64      `serialize:"true" json:"expiry"`
	IVersion     uint64      `serialize:"true" json:"iVersion"`
}

func (i *IssueI) Visit(v Visitor) error {
	return v.IssueI(i)
}

type RevokeI struct {
	Nonce        uint64      `serialize:"true" json:"nonce"`
	Orchestrator ids.ShortID `serialize:"true" json:"orchestrator"`
	IRightID     uint64      `serialize:"true" json:"iRightID"`
}

func (r *RevokeI) Visit(v Visitor) error {
	return v.RevokeI(r)
}

type Unfreeze struct {
	Nonce        uint64      `serialize:"true" json:"nonce"`
	Orchestrator ids.ShortID `serialize:"true" json:"orchestrator"`
	FRightID     uint64      `serialize:"true" json:"fRightID"`
}

func (u *Unfreeze) Visit(v Visitor) error {
	return v.Unfreeze(u)
}
