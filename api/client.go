// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"

	"github.com/ava-labs/rightsvm/execute"
	"github.com/ava-labs/rightsvm/state"
	"github.com/ava-labs/rightsvm/tx"

	avajson "github.com/ava-labs/avalanchego/utils/json"
)

var _ Client = (*client)(nil)

// Client for the rights API endpoint
type Client interface {
	IssueTx(ctx context.Context, newTx *tx.Tx, options ...rpc.Option) (ids.ID, *execute.Result, error)
	GetTx(ctx context.Context, txID ids.ID, options ...rpc.Option) (*GetTxReply, error)
	Nonce(ctx context.Context, address ids.ShortID, options ...rpc.Option) (uint64, error)
	Deployment(ctx context.Context, options ...rpc.Option) (*state.Deployment, error)
	GetOrchestrator(ctx context.Context, orchestrator ids.ShortID, options ...rpc.Option) (*GetOrchestratorReply, error)
	IsWhitelisted(ctx context.Context, orchestrator ids.ShortID, address ids.ShortID, options ...rpc.Option) (bool, error)
	GetFRight(ctx context.Context, registry ids.ShortID, fRightID uint64, options ...rpc.Option) (*GetFRightReply, error)
	GetIRight(ctx context.Context, registry ids.ShortID, iRightID uint64, options ...rpc.Option) (*GetIRightReply, error)
	IsFrozen(ctx context.Context, registry ids.ShortID, baseAsset ids.ShortID, assetID uint64, options ...rpc.Option) (uint64, bool, error)
	GetToken(ctx context.Context, contract ids.ShortID, tokenID uint64, options ...rpc.Option) (*GetTokenReply, error)
	BalanceOf(ctx context.Context, contract ids.ShortID, owner ids.ShortID, options ...rpc.Option) (uint64, error)
	GetContract(ctx context.Context, address ids.ShortID, options ...rpc.Option) (*GetContractReply, error)
}

type client struct {
	requester rpc.EndpointRequester
}

// NewClient returns a client of the rights service served by the node at
// [uri].
func NewClient(uri string) Client {
	return &client{
		requester: rpc.NewEndpointRequester(uri + Endpoint),
	}
}

func (c *client) IssueTx(ctx context.Context, newTx *tx.Tx, options ...rpc.Option) (ids.ID, *execute.Result, error) {
	txBytes, err := newTx.Bytes()
	if err != nil {
		return ids.Empty, nil, err
	}

	resp := &IssueTxReply{}
	err = c.requester.SendRequest(ctx, ServiceName+".issueTx", &IssueTxArgs{
		Tx: txBytes,
	}, resp, options...)
	return resp.TxID, &resp.Result, err
}

func (c *client) GetTx(ctx context.Context, txID ids.ID, options ...rpc.Option) (*GetTxReply, error) {
	resp := &GetTxReply{}
	err := c.requester.SendRequest(ctx, ServiceName+".getTx", &GetTxArgs{
		TxID: txID,
	}, resp, options...)
	return resp, err
}

func (c *client) Nonce(ctx context.Context, address ids.ShortID, options ...rpc.Option) (uint64, error) {
	resp := &NonceReply{}
	err := c.requester.SendRequest(ctx, ServiceName+".nonce", &AddressArgs{
		Address: address,
	}, resp, options...)
	return uint64(resp.Nonce), err
}

func (c *client) Deployment(ctx context.Context, options ...rpc.Option) (*state.Deployment, error) {
	resp := &DeploymentReply{}
	err := c.requester.SendRequest(ctx, ServiceName+".deployment", &EmptyArgs{}, resp, options...)
	return &resp.Deployment, err
}

func (c *client) GetOrchestrator(ctx context.Context, orchestrator ids.ShortID, options ...rpc.Option) (*GetOrchestratorReply, error) {
	resp := &GetOrchestratorReply{}
	err := c.requester.SendRequest(ctx, ServiceName+".getOrchestrator", &OrchestratorArgs{
		Orchestrator: orchestrator,
	}, resp, options...)
	return resp, err
}

func (c *client) IsWhitelisted(ctx context.Context, orchestrator ids.ShortID, address ids.ShortID, options ...rpc.Option) (bool, error) {
	resp := &IsWhitelistedReply{}
	err := c.requester.SendRequest(ctx, ServiceName+".isWhitelisted", &IsWhitelistedArgs{
		OrchestratorArgs: OrchestratorArgs{
			Orchestrator: orchestrator,
		},
		Address: address,
	}, resp, options...)
	return resp.Whitelisted, err
}

func (c *client) GetFRight(ctx context.Context, registry ids.ShortID, fRightID uint64, options ...rpc.Option) (*GetFRightReply, error) {
	resp := &GetFRightReply{}
	err := c.requester.SendRequest(ctx, ServiceName+".getFRight", &RightArgs{
		Registry: registry,
		ID:       avajson.Uint64(fRightID),
	}, resp, options...)
	return resp, err
}

func (c *client) GetIRight(ctx context.Context, registry ids.ShortID, iRightID uint64, options ...rpc.Option) (*GetIRightReply, error) {
	resp := &GetIRightReply{}
	err := c.requester.SendRequest(ctx, ServiceName+".getIRight", &RightArgs{
		Registry: registry,
		ID:       avajson.Uint64(iRightID),
	}, resp, options...)
	return resp, err
}

func (c *client) IsFrozen(ctx context.Context, registry ids.ShortID, baseAsset ids.ShortID, assetID uint64, options ...rpc.Option) (uint64, bool, error) {
	resp := &IsFrozenReply{}
	err := c.requester.SendRequest(ctx, ServiceName+".isFrozen", &IsFrozenArgs{
		Registry:  registry,
		BaseAsset: baseAsset,
		AssetID:   avajson.Uint64(assetID),
	}, resp, options...)
	return uint64(resp.FRightID), resp.Frozen, err
}

func (c *client) GetToken(ctx context.Context, contract ids.ShortID, tokenID uint64, options ...rpc.Option) (*GetTokenReply, error) {
	resp := &GetTokenReply{}
	err := c.requester.SendRequest(ctx, ServiceName+".getToken", &TokenArgs{
		Contract: contract,
		TokenID:  avajson.Uint64(tokenID),
	}, resp, options...)
	return resp, err
}

func (c *client) BalanceOf(ctx context.Context, contract ids.ShortID, owner ids.ShortID, options ...rpc.Option) (uint64, error) {
	resp := &BalanceReply{}
	err := c.requester.SendRequest(ctx, ServiceName+".balanceOf", &BalanceArgs{
		Contract: contract,
		Owner:    owner,
	}, resp, options...)
	return uint64(resp.Balance), err
}

func (c *client) GetContract(ctx context.Context, address ids.ShortID, options ...rpc.Option) (*GetContractReply, error) {
	resp := &GetContractReply{}
	err := c.requester.SendRequest(ctx, ServiceName+".getContract", &AddressArgs{
		Address: address,
	}, resp, options...)
	return resp, err
}
