// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package orchestrator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/chain"
	"github.com/ava-labs/rightsvm/contracts/fright"
	"github.com/ava-labs/rightsvm/contracts/nft"
	"github.com/ava-labs/rightsvm/genesis"
	"github.com/ava-labs/rightsvm/orchestrator"
	"github.com/ava-labs/rightsvm/state"
)

// rightsChain runs the orchestrator against the real registries and ledger.
// Alice owns assets 1 and 2 of the collection, Bob owns asset 3.
type rightsChain struct {
	t          *testing.T
	chain      *chain.Chain
	deployment *state.Deployment
	collection ids.ShortID
	admin      ids.ShortID
	alice      ids.ShortID
	bob        ids.ShortID
}

func newRightsChain(t *testing.T) *rightsChain {
	require := require.New(t)
	r := &rightsChain{
		t:     t,
		admin: ids.GenerateTestShortID(),
		alice: ids.GenerateTestShortID(),
		bob:   ids.GenerateTestShortID(),
	}

	c, err := chain.New(chain.Config{
		DB: memdb.New(),
		Genesis: &genesis.Genesis{
			Admin: r.admin,
			Collections: []genesis.Collection{{
				Name:  "A",
				Owner: r.admin,
				Assets: []genesis.Asset{
					{ID: 1, Owner: r.alice},
					{ID: 2, Owner: r.alice},
					{ID: 3, Owner: r.bob},
				},
			}},
		},
	})
	require.NoError(err)
	c.Clock().Set(now)

	r.chain = c
	r.deployment, err = c.Deployment()
	require.NoError(err)
	r.collection = r.deployment.Collections[0]

	for _, holder := range []ids.ShortID{r.alice, r.bob} {
		require.NoError(r.ledger(func(l *nft.Collection) error {
			return l.SetApprovalForAll(holder, r.deployment.Orchestrator, true)
		}))
	}
	return r
}

func (r *rightsChain) call(f func(*orchestrator.Orchestrator) error) error {
	return r.chain.Execute(context.Background(), "test", func(ctx *chain.Context) error {
		o, _, err := ctx.GetOrchestrator(r.deployment.Orchestrator)
		if err != nil {
			return err
		}
		return f(o)
	})
}

func (r *rightsChain) ledger(f func(*nft.Collection) error) error {
	return r.chain.Execute(context.Background(), "ledger", func(ctx *chain.Context) error {
		l, _, err := ctx.GetCollection(r.collection)
		if err != nil {
			return err
		}
		return f(l)
	})
}

func (r *rightsChain) freeze(caller ids.ShortID, assetID uint64, exclusive bool, maxISupply uint64) (uint64, uint64, error) {
	var fRightID, iRightID uint64
	err := r.call(func(o *orchestrator.Orchestrator) error {
		var err error
		fRightID, iRightID, err = o.Freeze(caller, r.collection, assetID, future, exclusive, maxISupply, 1, 1)
		return err
	})
	return fRightID, iRightID, err
}

func (r *rightsChain) issueI(caller ids.ShortID, fRightID uint64, expiry uint64) (uint64, error) {
	var iRightID uint64
	err := r.call(func(o *orchestrator.Orchestrator) error {
		var err error
		iRightID, err = o.IssueI(caller, fRightID, expiry, 1)
		return err
	})
	return iRightID, err
}

func (r *rightsChain) revokeI(caller ids.ShortID, iRightID uint64) error {
	return r.call(func(o *orchestrator.Orchestrator) error {
		return o.RevokeI(caller, iRightID)
	})
}

func (r *rightsChain) unfreeze(caller ids.ShortID, fRightID uint64) error {
	return r.call(func(o *orchestrator.Orchestrator) error {
		return o.Unfreeze(caller, fRightID)
	})
}

// fRight returns the live record of [fRightID], or nil.
func (r *rightsChain) fRight(fRightID uint64) *state.FRight {
	var record *state.FRight
	require.NoError(r.t, r.chain.View(context.Background(), func(ctx *chain.Context) error {
		registry, _, err := ctx.GetFRightRegistry(r.deployment.FRightRegistry)
		if err != nil {
			return err
		}
		record, err = registry.Get(fRightID)
		if errors.Is(err, fright.ErrRightNotFound) {
			return nil
		}
		return err
	}))
	return record
}

func (r *rightsChain) assetOwner(assetID uint64) ids.ShortID {
	var owner ids.ShortID
	require.NoError(r.t, r.chain.View(context.Background(), func(ctx *chain.Context) error {
		l, _, err := ctx.GetCollection(r.collection)
		if err != nil {
			return err
		}
		owner, err = l.OwnerOf(assetID)
		return err
	}))
	return owner
}

func (r *rightsChain) requireSupply(fRightID uint64, expected uint64) {
	record := r.fRight(fRightID)
	require.NotNil(r.t, record)
	require.Equal(r.t, expected, record.CirculatingISupply)
	require.LessOrEqual(r.t, record.CirculatingISupply, record.MaxISupply)
}

func TestScenario(t *testing.T) {
	require := require.New(t)
	r := newRightsChain(t)

	// Exclusive freeze of A#1 succeeds exactly once.
	fRightID, iRightID, err := r.freeze(r.alice, 1, true, 1)
	require.NoError(err)
	require.Equal(uint64(1), fRightID)
	require.Equal(uint64(1), iRightID)
	require.Equal(r.deployment.Orchestrator, r.assetOwner(1))

	_, _, err = r.freeze(r.alice, 1, true, 1)
	require.ErrorIs(err, fright.ErrAlreadyFrozen)

	// A#2 allows three I-rights, the initial grant included.
	sharedID, initialID, err := r.freeze(r.alice, 2, false, 3)
	require.NoError(err)
	r.requireSupply(sharedID, 1)

	first, err := r.issueI(r.alice, sharedID, future-10)
	require.NoError(err)
	second, err := r.issueI(r.alice, sharedID, future-10)
	require.NoError(err)
	require.Equal(first+1, second)
	r.requireSupply(sharedID, 3)

	_, err = r.issueI(r.alice, sharedID, future-10)
	require.ErrorIs(err, fright.ErrSupplyCapExceeded)
	r.requireSupply(sharedID, 3)

	require.ErrorIs(r.revokeI(r.bob, first), orchestrator.ErrNotIRightOwner)
	require.NoError(r.revokeI(r.alice, first))
	r.requireSupply(sharedID, 2)

	require.ErrorIs(r.unfreeze(r.alice, sharedID), orchestrator.ErrNotUnfreezable)

	require.NoError(r.revokeI(r.alice, second))
	require.NoError(r.revokeI(r.alice, initialID))
	r.requireSupply(sharedID, 0)

	require.NoError(r.unfreeze(r.alice, sharedID))
	require.Equal(r.alice, r.assetOwner(2))
	require.Nil(r.fRight(sharedID))

	require.ErrorIs(r.unfreeze(r.alice, sharedID), orchestrator.ErrNotUnfreezable)
}

func TestExclusiveRightIsNeverReissued(t *testing.T) {
	require := require.New(t)
	r := newRightsChain(t)

	fRightID, iRightID, err := r.freeze(r.alice, 1, true, 5)
	require.NoError(err)

	_, err = r.issueI(r.alice, fRightID, future)
	require.ErrorIs(err, orchestrator.ErrNotIMintable)

	require.NoError(r.revokeI(r.alice, iRightID))
	r.requireSupply(fRightID, 0)

	_, err = r.issueI(r.alice, fRightID, future)
	require.ErrorIs(err, orchestrator.ErrNotIMintable)
}

func TestNonOwnersAreRejected(t *testing.T) {
	require := require.New(t)
	r := newRightsChain(t)

	fRightID, iRightID, err := r.freeze(r.alice, 1, false, 2)
	require.NoError(err)

	_, err = r.issueI(r.bob, fRightID, future)
	require.ErrorIs(err, orchestrator.ErrNotFRightOwner)

	require.ErrorIs(r.revokeI(r.bob, iRightID), orchestrator.ErrNotIRightOwner)
	require.NoError(r.revokeI(r.alice, iRightID))

	require.ErrorIs(r.unfreeze(r.bob, fRightID), fright.ErrNotRightOwner)
	require.Equal(r.deployment.Orchestrator, r.assetOwner(1))
	require.NotNil(r.fRight(fRightID))
}

func TestRightsFollowTheirHolder(t *testing.T) {
	require := require.New(t)
	r := newRightsChain(t)

	fRightID, iRightID, err := r.freeze(r.alice, 1, false, 2)
	require.NoError(err)

	require.NoError(r.chain.Execute(context.Background(), "transfer", func(ctx *chain.Context) error {
		iRegistry, _, err := ctx.GetCollection(r.deployment.IRightRegistry)
		require.NoError(err)
		require.NoError(iRegistry.TransferFrom(r.alice, r.alice, r.bob, iRightID))

		fRegistry, _, err := ctx.GetCollection(r.deployment.FRightRegistry)
		require.NoError(err)
		return fRegistry.TransferFrom(r.alice, r.alice, r.bob, fRightID)
	}))

	require.ErrorIs(r.revokeI(r.alice, iRightID), orchestrator.ErrNotIRightOwner)
	require.NoError(r.revokeI(r.bob, iRightID))

	require.NoError(r.unfreeze(r.bob, fRightID))
	require.Equal(r.bob, r.assetOwner(1))
}

func TestIssueIExpiryBounds(t *testing.T) {
	require := require.New(t)
	r := newRightsChain(t)

	fRightID, _, err := r.freeze(r.alice, 1, false, 3)
	require.NoError(err)

	_, err = r.issueI(r.alice, fRightID, future+1)
	require.ErrorIs(err, orchestrator.ErrExpiryExceedsParent)

	_, err = r.issueI(r.alice, fRightID, uint64(now.Unix()))
	require.ErrorIs(err, orchestrator.ErrExpiryInPast)

	_, err = r.issueI(r.alice, fRightID, future)
	require.NoError(err)
}

func TestVersionBounds(t *testing.T) {
	require := require.New(t)
	r := newRightsChain(t)

	err := r.call(func(o *orchestrator.Orchestrator) error {
		_, _, err := o.Freeze(r.alice, r.collection, 1, future, false, 1, 2, 1)
		return err
	})
	require.ErrorIs(err, orchestrator.ErrInvalidFVersion)

	require.NoError(r.call(func(o *orchestrator.Orchestrator) error {
		_, err := o.IncrementVersion(r.admin, orchestrator.FRight)
		return err
	}))

	require.NoError(r.call(func(o *orchestrator.Orchestrator) error {
		fRightID, _, err := o.Freeze(r.alice, r.collection, 1, future, false, 1, 2, 1)
		require.Equal(uint64(1), fRightID)
		return err
	}))
	require.Equal(uint64(2), r.fRight(1).Version)
}

func TestFreezeIsAtomic(t *testing.T) {
	require := require.New(t)
	r := newRightsChain(t)

	require.NoError(r.ledger(func(l *nft.Collection) error {
		return l.SetApprovalForAll(r.bob, r.deployment.Orchestrator, false)
	}))

	// Both records are created before the custody transfer fails.
	_, _, err := r.freeze(r.bob, 3, false, 1)
	require.ErrorIs(err, nft.ErrNotApproved)

	require.Nil(r.fRight(1))
	require.Equal(r.bob, r.assetOwner(3))
	require.NoError(r.chain.View(context.Background(), func(ctx *chain.Context) error {
		iRegistry, _, err := ctx.GetCollection(r.deployment.IRightRegistry)
		require.NoError(err)

		lastTokenID, err := iRegistry.LastTokenID()
		require.NoError(err)
		require.Zero(lastTokenID)
		return nil
	}))

	// Somebody else's asset can't be frozen.
	require.NoError(r.ledger(func(l *nft.Collection) error {
		return l.SetApprovalForAll(r.bob, r.deployment.Orchestrator, true)
	}))
	_, _, err = r.freeze(r.alice, 3, false, 1)
	require.ErrorIs(err, nft.ErrWrongFrom)
}

func TestFreezeGateOnChain(t *testing.T) {
	require := require.New(t)
	r := newRightsChain(t)

	require.NoError(r.call(func(o *orchestrator.Orchestrator) error {
		require.NoError(o.ActivateFreezeGate(r.admin))
		return o.SetWhitelistStatus(r.admin, r.bob, true)
	}))

	_, _, err := r.freeze(r.alice, 1, false, 1)
	require.ErrorIs(err, orchestrator.ErrNotWhitelisted)

	_, _, err = r.freeze(r.bob, 3, false, 1)
	require.NoError(err)
}

func TestFreezeUnknownBaseAsset(t *testing.T) {
	require := require.New(t)
	r := newRightsChain(t)

	err := r.call(func(o *orchestrator.Orchestrator) error {
		_, _, err := o.Freeze(r.alice, r.deployment.FRightRegistry, 1, future, false, 1, 1, 1)
		return err
	})
	require.ErrorIs(err, orchestrator.ErrInvalidBaseAsset)
}
