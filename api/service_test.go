// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/crypto/secp256k1"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/rightsvm/chain"
	"github.com/ava-labs/rightsvm/genesis"
	"github.com/ava-labs/rightsvm/state"
	"github.com/ava-labs/rightsvm/tx"
)

type testService struct {
	client     Client
	registry   *prometheus.Registry
	deployment *state.Deployment
	adminKey   *secp256k1.PrivateKey
	aliceKey   *secp256k1.PrivateKey
}

func newTestService(t *testing.T) *testService {
	require := require.New(t)

	adminKey, err := secp256k1.NewPrivateKey()
	require.NoError(err)
	aliceKey, err := secp256k1.NewPrivateKey()
	require.NoError(err)

	c, err := chain.New(chain.Config{
		DB: memdb.New(),
		Genesis: &genesis.Genesis{
			Admin:         adminKey.Address(),
			FRightBaseURL: "https://rights.example/f/",
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

	registry := prometheus.NewRegistry()
	handler, err := NewHandler(logging.NoLog{}, c, "rights", registry)
	require.NoError(err)

	router := mux.NewRouter()
	router.Handle(Endpoint, handler)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	deployment, err := c.Deployment()
	require.NoError(err)
	return &testService{
		client:     NewClient(server.URL),
		registry:   registry,
		deployment: deployment,
		adminKey:   adminKey,
		aliceKey:   aliceKey,
	}
}

func (s *testService) issue(t *testing.T, key *secp256k1.PrivateKey, utx tx.Unsigned) (*tx.Tx, error) {
	stx, err := tx.Sign(utx, key)
	require.NoError(t, err)
	_, _, err = s.client.IssueTx(context.Background(), stx)
	return stx, err
}

func TestFreezeAndQuery(t *testing.T) {
	require := require.New(t)
	s := newTestService(t)
	ctx := context.Background()
	alice := s.aliceKey.Address()
	collection := s.deployment.Collections[0]

	deployment, err := s.client.Deployment(ctx)
	require.NoError(err)
	require.Equal(s.deployment, deployment)

	_, err = s.issue(t, s.aliceKey, &tx.SetApprovalForAll{
		Nonce:    0,
		Contract: collection,
		Operator: s.deployment.Orchestrator,
		Approved: true,
	})
	require.NoError(err)

	stx, err := tx.Sign(&tx.Freeze{
		Nonce:        1,
		Orchestrator: s.deployment.Orchestrator,
		Collection:   collection,
		AssetID:      1,
		Expiry:       2_000,
		MaxISupply:   3,
		FVersion:     1,
		IVersion:     1,
	}, s.aliceKey)
	require.NoError(err)
	txID, result, err := s.client.IssueTx(ctx, stx)
	require.NoError(err)
	require.Equal(uint64(1), result.FRightID)
	require.Equal(uint64(1), result.IRightID)

	record, err := s.client.GetTx(ctx, txID)
	require.NoError(err)
	require.True(record.Accepted)

	nonce, err := s.client.Nonce(ctx, alice)
	require.NoError(err)
	require.Equal(uint64(2), nonce)

	fRight, err := s.client.GetFRight(ctx, ids.ShortEmpty, 1)
	require.NoError(err)
	require.Equal(alice, fRight.Owner)
	require.Equal("https://rights.example/f/1", fRight.TokenURI)
	require.Equal(collection, fRight.Right.BaseAsset)
	require.Equal(uint64(1), fRight.Right.CirculatingISupply)
	require.True(fRight.Mintable)

	iRight, err := s.client.GetIRight(ctx, ids.ShortEmpty, 1)
	require.NoError(err)
	require.Equal(alice, iRight.Owner)
	require.Equal(uint64(1), iRight.Right.ParentID)
	require.Empty(iRight.TokenURI)

	fRightID, frozen, err := s.client.IsFrozen(ctx, ids.ShortEmpty, collection, 1)
	require.NoError(err)
	require.True(frozen)
	require.Equal(uint64(1), fRightID)

	asset, err := s.client.GetToken(ctx, collection, 1)
	require.NoError(err)
	require.Equal(s.deployment.Orchestrator, asset.Owner)

	balance, err := s.client.BalanceOf(ctx, collection, alice)
	require.NoError(err)
	require.Zero(balance)

	o, err := s.client.GetOrchestrator(ctx, ids.ShortEmpty)
	require.NoError(err)
	require.Equal(s.adminKey.Address(), o.Admin)
	require.Equal(s.deployment.FRightRegistry, o.FRightRegistry)
	require.Equal(s.deployment.IRightRegistry, o.IRightRegistry)
	require.Equal(uint64(1), uint64(o.FVersion))
	require.False(o.FreezeGateActive)

	contract, err := s.client.GetContract(ctx, s.deployment.FRightRegistry)
	require.NoError(err)
	require.Equal(state.FRightContract.String(), contract.Type)
	require.Equal(s.deployment.Orchestrator, contract.Owner)
	require.Equal("https://rights.example/f/", contract.BaseURL)
}

func TestRejectedTxIsRecorded(t *testing.T) {
	require := require.New(t)
	s := newTestService(t)
	ctx := context.Background()

	stx, err := s.issue(t, s.aliceKey, &tx.SetWhitelistStatus{
		Nonce:        0,
		Orchestrator: s.deployment.Orchestrator,
		Address:      s.aliceKey.Address(),
		Included:     true,
	})
	require.Error(err) //nolint:forbidigo // errors are returned as strings over the wire

	txID, err := stx.ID()
	require.NoError(err)
	record, err := s.client.GetTx(ctx, txID)
	require.NoError(err)
	require.False(record.Accepted)
	require.NotEmpty(record.Reason)

	whitelisted, err := s.client.IsWhitelisted(ctx, ids.ShortEmpty, s.aliceKey.Address())
	require.NoError(err)
	require.False(whitelisted)

	count, err := testutil.GatherAndCount(s.registry, "rights_api_request_errors")
	require.NoError(err)
	require.Equal(1, count)
}
