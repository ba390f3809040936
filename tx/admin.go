// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/orchestrator"
)

var (
	_ Unsigned = (*BindRegistry)(nil)
	_ Unsigned = (*TransferRegistryOwnership)(nil)
	_ Unsigned = (*SetRegistryProxy)(nil)
	_ Unsigned = (*SetRegistryMetadataBaseURL)(nil)
	_ Unsigned = (*IncrementVersion)(nil)
	_ Unsigned = (*SetWhitelistStatus)(nil)
	_ Unsigned = (*SetFreezeGate)(nil)
	_ Unsigned = (*TransferAdmin)(nil)
)

type BindRegistry struct {
	Nonce        uint64                 `serialize:"true" json:"nonce"`
	Orchestrator ids.ShortID            `serialize:"true" json:"orchestrator"`
	Kind         orchestrator.RightKind `serialize:"true" json:"kind"`
	Registry     ids.ShortID            `serialize:"true" json:"registry"`
}

func (b *BindRegistry) Visit(v Visitor) error {
	return v.BindRegistry(b)
}

type TransferRegistryOwnership struct {
	Nonce        uint64                 `serialize:"true" json:"nonce"`
	Orchestrator ids.ShortID            `serialize:"true" json:"orchestrator"`
	Kind         orchestrator.RightKind `serialize:"true" json:"kind"`
	To           ids.ShortID            `serialize:"true" json:"to"`
}

func (t *TransferRegistryOwnership) Visit(v Visitor) error {
	return v.TransferRegistryOwnership(t)
}

type SetRegistryProxy struct {
	Nonce        uint64                 `serialize:"true" json:"nonce"`
	Orchestrator ids.ShortID            `serialize:"true" json:"orchestrator"`
	Kind         orchestrator.RightKind `serialize:"true" json:"kind"`
	Proxy        ids.ShortID            `serialize:"true" json:"proxy"`
}

func (s *SetRegistryProxy) Visit(v Visitor) error {
	return v.SetRegistryProxy(s)
}

type SetRegistryMetadataBaseURL struct {
	Nonce        uint64                 `serialize:"true" json:"nonce"`
	Orchestrator ids.ShortID            `serialize:"true" json:"orchestrator"`
	Kind         orchestrator.RightKind `serialize:"true" json:"kind"`
	URL          string                 `serialize:"true" json:"url"`
}

func (s *SetRegistryMetadataBaseURL) Visit(v Visitor) error {
	return v.SetRegistryMetadataBaseURL(s)
}

type IncrementVersion struct {
	Nonce        uint64                 `serialize:"true" json:"nonce"`
	Orchestrator ids.ShortID            `serialize:"true" json:"orchestrator"`
	Kind         orchestrator.RightKind `serialize:"true" json:"kind"`
}

func (i *IncrementVersion) Visit(v Visitor) error {
	return v.IncrementVersion(i)
}

type SetWhitelistStatus struct {
	Nonce        uint64      `serialize:"true" json:"nonce"`
	Orchestrator ids.ShortID `serialize:"true" json:"orchestrator"`
	Address      ids.ShortID `serialize:"true" json:"address"`
	Included     bool        `serialize:"true" json:"included"`
}

func (s *SetWhitelistStatus) Visit(v Visitor) error {
	return v.SetWhitelistStatus(s)
}

// SetFreezeGate activates the freeze gate if Active is set and deactivates it
// otherwise.
type SetFreezeGate struct {
	Nonce        uint64      `serialize:"true" json:"nonce"`
	Orchestrator ids.ShortID `serialize:"true" json:"orchestrator"`
	Active       bool        `serialize:"true" json:"active"`
}

func (s *SetFreezeGate) Visit(v Visitor) error {
	return v.SetFreezeGate(s)
}

type TransferAdmin struct {
	Nonce        uint64      `serialize:"true" json:"nonce"`
	Orchestrator ids.ShortID `serialize:"true" json:"orchestrator"`
	To           ids.ShortID `serialize:"true" json:"to"`
}

func (t *TransferAdmin) Visit(v Visitor) error {
	return v.TransferAdmin(t)
}
