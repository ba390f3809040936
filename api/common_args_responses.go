// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/execute"
	"github.com/ava-labs/rightsvm/state"

	avajson "github.com/ava-labs/avalanchego/utils/json"
)

// This file contains structs used in arguments and responses in services

// EmptyArgs is used by calls that take no arguments
type EmptyArgs struct{}

type IssueTxArgs struct {
	Tx []byte `json:"tx"`
}

type IssueTxReply struct {
	TxID   ids.ID         `json:"txID"`
	Result execute.Result `json:"result"`
}

type GetTxArgs struct {
	TxID ids.ID `json:"txID"`
}

type GetTxReply struct {
	Tx       []byte `json:"tx"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

type AddressArgs struct {
	Address ids.ShortID `json:"address"`
}

type NonceReply struct {
	Nonce avajson.Uint64 `json:"nonce"`
}

type DeploymentReply struct {
	state.Deployment
}

// OrchestratorArgs selects an orchestrator. The genesis orchestrator is used
// if none is given.
type OrchestratorArgs struct {
	Orchestrator ids.ShortID `json:"orchestrator"`
}

type GetOrchestratorReply struct {
	Admin            ids.ShortID    `json:"admin"`
	FRightRegistry   ids.ShortID    `json:"fRightRegistry"`
	IRightRegistry   ids.ShortID    `json:"iRightRegistry"`
	FVersion         avajson.Uint64 `json:"fVersion"`
	IVersion         avajson.Uint64 `json:"iVersion"`
	FreezeGateActive bool           `json:"freezeGateActive"`
}

type IsWhitelistedArgs struct {
	OrchestratorArgs
	Address ids.ShortID `json:"address"`
}

type IsWhitelistedReply struct {
	Whitelisted bool `json:"whitelisted"`
}

// RightArgs selects a right of a registry. The registry bound to the genesis
// orchestrator is used if none is given.
type RightArgs struct {
	Registry ids.ShortID    `json:"registry"`
	ID       avajson.Uint64 `json:"id"`
}

type GetFRightReply struct {
	Owner    ids.ShortID  `json:"owner"`
	TokenURI string       `json:"tokenURI"`
	Right    state.FRight `json:"right"`
	Mintable bool         `json:"mintable"`
}

type GetIRightReply struct {
	Owner    ids.ShortID  `json:"owner"`
	TokenURI string       `json:"tokenURI"`
	Right    state.IRight `json:"right"`
}

type IsFrozenArgs struct {
	Registry  ids.ShortID    `json:"registry"`
	BaseAsset ids.ShortID    `json:"baseAsset"`
	AssetID   avajson.Uint64 `json:"assetID"`
}

type IsFrozenReply struct {
	Frozen   bool           `json:"frozen"`
	FRightID avajson.Uint64 `json:"fRightID"`
}

type TokenArgs struct {
	Contract ids.ShortID    `json:"contract"`
	TokenID  avajson.Uint64 `json:"tokenID"`
}

type GetTokenReply struct {
	Owner    ids.ShortID `json:"owner"`
	Approved ids.ShortID `json:"approved"`
	TokenURI string      `json:"tokenURI"`
}

type BalanceArgs struct {
	Contract ids.ShortID `json:"contract"`
	Owner    ids.ShortID `json:"owner"`
}

type BalanceReply struct {
	Balance avajson.Uint64 `json:"balance"`
}

type GetContractReply struct {
	Type    string      `json:"type"`
	Name    string      `json:"name,omitempty"`
	Owner   ids.ShortID `json:"owner"`
	BaseURL string      `json:"baseURL,omitempty"`
}
