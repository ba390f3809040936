// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package orchestrator_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/orchestrator"
	"github.com/ava-labs/rightsvm/vmerrs"
)

func TestAdminOnly(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	env := newEnvironment(t, ctrl)
	o := env.orchestrator
	stranger := ids.GenerateTestShortID()
	other := ids.GenerateTestShortID()

	_, err := o.IncrementVersion(stranger, orchestrator.FRight)
	for _, err := range []error{
		err,
		o.TransferOwnership(stranger, other),
		o.BindRegistry(stranger, orchestrator.FRight, other),
		o.TransferRegistryOwnership(stranger, orchestrator.FRight, other),
		o.SetRegistryProxy(stranger, orchestrator.IRight, other),
		o.SetRegistryMetadataBaseURL(stranger, orchestrator.IRight, "url"),
		o.SetWhitelistStatus(stranger, other, true),
		o.ActivateFreezeGate(stranger),
		o.DeactivateFreezeGate(stranger),
	} {
		require.ErrorIs(err, orchestrator.ErrNotAdmin)
		require.ErrorIs(err, vmerrs.ErrAuthorization)
	}
}

func TestInvalidKind(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	env := newEnvironment(t, ctrl)
	o := env.orchestrator
	kind := orchestrator.RightKind(2)
	other := ids.GenerateTestShortID()

	_, err := o.IncrementVersion(env.admin, kind)
	for _, err := range []error{
		err,
		o.BindRegistry(env.admin, kind, other),
		o.TransferRegistryOwnership(env.admin, kind, other),
		o.SetRegistryProxy(env.admin, kind, other),
		o.SetRegistryMetadataBaseURL(env.admin, kind, "url"),
	} {
		require.ErrorIs(err, orchestrator.ErrInvalidKind)
		require.ErrorIs(err, vmerrs.ErrValidation)
	}

	_, err = o.Version(kind)
	require.ErrorIs(err, orchestrator.ErrInvalidKind)
}

func TestBindRegistry(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	env := newEnvironment(t, ctrl)
	o := env.orchestrator
	replacement := ids.GenerateTestShortID()
	notARegistry := ids.GenerateTestShortID()

	env.directory.EXPECT().IRightRegistry(notARegistry).Return(nil, false, nil)
	env.directory.EXPECT().FRightRegistry(replacement).Return(env.fRegistry, true, nil)

	require.ErrorIs(o.BindRegistry(env.admin, orchestrator.IRight, ids.ShortEmpty), orchestrator.ErrInvalidAddress)
	require.ErrorIs(o.BindRegistry(env.admin, orchestrator.IRight, notARegistry), orchestrator.ErrInvalidContractAddress)

	// Rebinding overwrites the previous registry.
	require.NoError(o.BindRegistry(env.admin, orchestrator.FRight, replacement))
	bound, err := o.Binding(orchestrator.FRight)
	require.NoError(err)
	require.Equal(replacement, bound)

	bound, err = o.Binding(orchestrator.IRight)
	require.NoError(err)
	require.Equal(env.iAddress, bound)
}

func TestRegistryForwarding(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	env := newEnvironment(t, ctrl)
	o := env.orchestrator
	to := ids.GenerateTestShortID()
	proxy := ids.GenerateTestShortID()

	gomock.InOrder(
		env.fRegistry.EXPECT().SetProxyRegistryAddress(env.address, proxy).Return(nil),
		env.iRegistry.EXPECT().SetAPIBaseURL(env.address, "https://rights.example/i/").Return(nil),
		env.iRegistry.EXPECT().TransferOwnership(env.address, to).Return(nil),
	)

	require.NoError(o.SetRegistryProxy(env.admin, orchestrator.FRight, proxy))
	require.NoError(o.SetRegistryMetadataBaseURL(env.admin, orchestrator.IRight, "https://rights.example/i/"))
	require.ErrorIs(o.TransferRegistryOwnership(env.admin, orchestrator.IRight, ids.ShortEmpty), orchestrator.ErrInvalidAddress)
	require.NoError(o.TransferRegistryOwnership(env.admin, orchestrator.IRight, to))
}

func TestIncrementVersion(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	env := newEnvironment(t, ctrl)
	o := env.orchestrator

	version, err := o.Version(orchestrator.FRight)
	require.NoError(err)
	require.Equal(uint64(1), version)

	for expected := uint64(2); expected <= 4; expected++ {
		version, err = o.IncrementVersion(env.admin, orchestrator.FRight)
		require.NoError(err)
		require.Equal(expected, version)
	}

	version, err = o.Version(orchestrator.IRight)
	require.NoError(err)
	require.Equal(uint64(1), version)
}

func TestFreezeGate(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	env := newEnvironment(t, ctrl)
	o := env.orchestrator

	err := o.DeactivateFreezeGate(env.admin)
	require.ErrorIs(err, orchestrator.ErrAlreadyDeactivated)
	require.ErrorIs(err, vmerrs.ErrPolicy)

	require.NoError(o.ActivateFreezeGate(env.admin))
	require.ErrorIs(o.ActivateFreezeGate(env.admin), orchestrator.ErrAlreadyActivated)

	active, err := o.IsFreezeGateActive()
	require.NoError(err)
	require.True(active)

	require.NoError(o.DeactivateFreezeGate(env.admin))
}

func TestWhitelist(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	env := newEnvironment(t, ctrl)
	o := env.orchestrator
	alice := ids.GenerateTestShortID()

	require.ErrorIs(o.SetWhitelistStatus(env.admin, ids.ShortEmpty, true), orchestrator.ErrInvalidAddress)
	require.NoError(o.SetWhitelistStatus(env.admin, alice, true))

	whitelisted, err := o.IsWhitelisted(alice)
	require.NoError(err)
	require.True(whitelisted)

	require.NoError(o.SetWhitelistStatus(env.admin, alice, false))
	whitelisted, err = o.IsWhitelisted(alice)
	require.NoError(err)
	require.False(whitelisted)
}

func TestTransferOwnership(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	env := newEnvironment(t, ctrl)
	o := env.orchestrator
	alice := ids.GenerateTestShortID()

	require.ErrorIs(o.TransferOwnership(env.admin, ids.ShortEmpty), orchestrator.ErrInvalidAddress)
	require.NoError(o.TransferOwnership(env.admin, alice))

	admin, err := o.Admin()
	require.NoError(err)
	require.Equal(alice, admin)
	require.ErrorIs(o.ActivateFreezeGate(env.admin), orchestrator.ErrNotAdmin)
}

func TestKindFromString(t *testing.T) {
	require := require.New(t)

	for _, kind := range []orchestrator.RightKind{orchestrator.FRight, orchestrator.IRight} {
		parsed, err := orchestrator.KindFromString(kind.String())
		require.NoError(err)
		require.Equal(kind, parsed)
	}
	_, err := orchestrator.KindFromString("x")
	require.ErrorIs(err, orchestrator.ErrInvalidKind)
}
