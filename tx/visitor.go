// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tx

type Visitor interface {
	Freeze(*Freeze) error
	IssueI(*IssueI) error
	RevokeI(*RevokeI) error
	Unfreeze(*Unfreeze) error

	BindRegistry(*BindRegistry) error
	TransferRegistryOwnership(*TransferRegistryOwnership) error
	SetRegistryProxy(*SetRegistryProxy) error
	SetRegistryMetadataBaseURL(*SetRegistryMetadataBaseURL) error
	IncrementVersion(*IncrementVersion) error
	SetWhitelistStatus(*SetWhitelistStatus) error
	SetFreezeGate(*SetFreezeGate) error
	TransferAdmin(*TransferAdmin) error

	Deploy(*Deploy) error
	MintAsset(*MintAsset) error
	TransferToken(*TransferToken) error
	Approve(*Approve) error
	SetApprovalForAll(*SetApprovalForAll) error
	TransferContractOwnership(*TransferContractOwnership) error
	RegisterProxy(*RegisterProxy) error
}
