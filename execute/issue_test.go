// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package execute

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/crypto/secp256k1"

	"github.com/ava-labs/rightsvm/chain"
	"github.com/ava-labs/rightsvm/contracts/fright"
	"github.com/ava-labs/rightsvm/genesis"
	"github.com/ava-labs/rightsvm/orchestrator"
	"github.com/ava-labs/rightsvm/state"
	"github.com/ava-labs/rightsvm/tx"
	"github.com/ava-labs/rightsvm/vmerrs"
)

type testChain struct {
	chain      *chain.Chain
	deployment *state.Deployment
	adminKey   *secp256k1.PrivateKey
	aliceKey   *secp256k1.PrivateKey
}

func newTestChain(t *testing.T) *testChain {
	require := require.New(t)

	adminKey, err := secp256k1.NewPrivateKey()
	require.NoError(err)
	aliceKey, err := secp256k1.NewPrivateKey()
	require.NoError(err)

	c, err := chain.New(chain.Config{
		DB: memdb.New(),
		Genesis: &genesis.Genesis{
			Admin: adminKey.Address(),
			Collections: []genesis.Collection{{
				Name:  "A",
				Owner: adminKey.Address(),
				Assets: []genesis.Asset{
					{ID: 1, Owner: aliceKey.Address()},
				},
			}},
		},
	})
	require.NoError(err)
	c.Clock().Set(time.Unix(1_000, 0))

	deployment, err := c.Deployment()
	require.NoError(err)
	return &testChain{
		chain:      c,
		deployment: deployment,
		adminKey:   adminKey,
		aliceKey:   aliceKey,
	}
}

func (c *testChain) issue(t *testing.T, key *secp256k1.PrivateKey, utx tx.Unsigned) (ids.ID, *Result, error) {
	stx, err := tx.Sign(utx, key)
	require.NoError(t, err)
	return Issue(context.Background(), c.chain, stx)
}

func (c *testChain) nonce(t *testing.T, address ids.ShortID) uint64 {
	var nonce uint64
	require.NoError(t, c.chain.View(context.Background(), func(ctx *chain.Context) error {
		var err error
		nonce, err = state.GetNonce(ctx.DB, address)
		return err
	}))
	return nonce
}

func (c *testChain) record(t *testing.T, txID ids.ID) *state.TxRecord {
	var record *state.TxRecord
	require.NoError(t, c.chain.View(context.Background(), func(ctx *chain.Context) error {
		var err error
		record, err = state.GetTx(ctx.DB, txID)
		return err
	}))
	return record
}

func TestIssueRightsLifecycle(t *testing.T) {
	require := require.New(t)
	c := newTestChain(t)
	o := c.deployment.Orchestrator

	_, _, err := c.issue(t, c.aliceKey, &tx.SetApprovalForAll{
		Nonce:    0,
		Contract: c.deployment.Collections[0],
		Operator: o,
		Approved: true,
	})
	require.NoError(err)

	freezeID, result, err := c.issue(t, c.aliceKey, &tx.Freeze{
		Nonce:        1,
		Orchestrator: o,
		Collection:   c.deployment.Collections[0],
		AssetID:      1,
		Expiry:       2_000,
		MaxISupply:   2,
		FVersion:     1,
		IVersion:     1,
	})
	require.NoError(err)
	require.Equal(&Result{FRightID: 1, IRightID: 1}, result)
	require.True(c.record(t, freezeID).Accepted)

	// The initial I-right is still circulating.
	unfreezeID, _, err := c.issue(t, c.aliceKey, &tx.Unfreeze{
		Nonce:        2,
		Orchestrator: o,
		FRightID:     1,
	})
	require.ErrorIs(err, orchestrator.ErrNotUnfreezable)
	record := c.record(t, unfreezeID)
	require.False(record.Accepted)
	require.Equal(err.Error(), record.Reason)
	require.Equal(uint64(2), c.nonce(t, c.aliceKey.Address()))

	_, _, err = c.issue(t, c.aliceKey, &tx.RevokeI{
		Nonce:        2,
		Orchestrator: o,
		IRightID:     1,
	})
	require.NoError(err)

	txID, _, err := c.issue(t, c.aliceKey, &tx.Unfreeze{
		Nonce:        3,
		Orchestrator: o,
		FRightID:     1,
	})
	require.NoError(err)
	require.True(c.record(t, txID).Accepted)

	require.NoError(c.chain.View(context.Background(), func(ctx *chain.Context) error {
		registry, _, err := ctx.GetFRightRegistry(c.deployment.FRightRegistry)
		require.NoError(err)
		_, err = registry.Get(1)
		require.ErrorIs(err, fright.ErrRightNotFound)

		ledger, _, err := ctx.GetCollection(c.deployment.Collections[0])
		require.NoError(err)
		owner, err := ledger.OwnerOf(1)
		require.NoError(err)
		require.Equal(c.aliceKey.Address(), owner)
		return nil
	}))
}

func TestIssueRejectsAcceptedDuplicate(t *testing.T) {
	require := require.New(t)
	c := newTestChain(t)

	stx, err := tx.Sign(&tx.SetWhitelistStatus{
		Nonce:        0,
		Orchestrator: c.deployment.Orchestrator,
		Address:      c.aliceKey.Address(),
		Included:     true,
	}, c.adminKey)
	require.NoError(err)

	_, _, err = Issue(context.Background(), c.chain, stx)
	require.NoError(err)
	_, _, err = Issue(context.Background(), c.chain, stx)
	require.ErrorIs(err, ErrDuplicateTx)
}

func TestIssueAdmin(t *testing.T) {
	require := require.New(t)
	c := newTestChain(t)
	o := c.deployment.Orchestrator

	_, _, err := c.issue(t, c.aliceKey, &tx.IncrementVersion{
		Nonce:        0,
		Orchestrator: o,
		Kind:         orchestrator.FRight,
	})
	require.ErrorIs(err, vmerrs.ErrAuthorization)
	require.Zero(c.nonce(t, c.aliceKey.Address()))

	_, result, err := c.issue(t, c.adminKey, &tx.IncrementVersion{
		Nonce:        0,
		Orchestrator: o,
		Kind:         orchestrator.FRight,
	})
	require.NoError(err)
	require.Equal(uint64(2), result.Version)

	_, _, err = c.issue(t, c.adminKey, &tx.SetFreezeGate{
		Nonce:        1,
		Orchestrator: o,
		Active:       true,
	})
	require.NoError(err)
	_, _, err = c.issue(t, c.adminKey, &tx.SetFreezeGate{
		Nonce:        2,
		Orchestrator: o,
		Active:       true,
	})
	require.ErrorIs(err, orchestrator.ErrAlreadyActivated)
}

func TestIssueDeploy(t *testing.T) {
	require := require.New(t)
	c := newTestChain(t)
	alice := c.aliceKey.Address()

	_, result, err := c.issue(t, c.aliceKey, &tx.Deploy{
		Nonce:        0,
		ContractType: state.CollectionContract,
		Name:         "B",
	})
	require.NoError(err)
	collection := result.Address
	require.NotEqual(ids.ShortEmpty, collection)

	_, _, err = c.issue(t, c.aliceKey, &tx.MintAsset{
		Nonce:      1,
		Collection: collection,
		To:         alice,
		AssetID:    9,
	})
	require.NoError(err)

	_, _, err = c.issue(t, c.adminKey, &tx.MintAsset{
		Nonce:      0,
		Collection: collection,
		To:         alice,
		AssetID:    10,
	})
	require.ErrorIs(err, vmerrs.ErrAuthorization)

	_, _, err = c.issue(t, c.aliceKey, &tx.TransferToken{
		Nonce:    2,
		Contract: collection,
		From:     alice,
		To:       c.adminKey.Address(),
		TokenID:  9,
	})
	require.NoError(err)
}

func TestIssueUnknownContract(t *testing.T) {
	require := require.New(t)
	c := newTestChain(t)

	_, _, err := c.issue(t, c.aliceKey, &tx.RevokeI{
		Nonce:        0,
		Orchestrator: c.deployment.Collections[0],
		IRightID:     1,
	})
	require.ErrorIs(err, ErrUnknownContract)
}

func TestIssueWrongNonce(t *testing.T) {
	require := require.New(t)
	c := newTestChain(t)

	_, _, err := c.issue(t, c.adminKey, &tx.SetWhitelistStatus{
		Nonce:        1,
		Orchestrator: c.deployment.Orchestrator,
		Address:      c.aliceKey.Address(),
		Included:     true,
	})
	require.ErrorIs(err, state.ErrWrongNonce)
	require.Zero(c.nonce(t, c.adminKey.Address()))
}

func TestName(t *testing.T) {
	require := require.New(t)

	require.Equal("freeze", Name(&tx.Freeze{}))
	require.Equal("issueI", Name(&tx.IssueI{}))
	require.Equal("setRegistryMetadataBaseURL", Name(&tx.SetRegistryMetadataBaseURL{}))
}
