// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proxy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
)

func TestRegister(t *testing.T) {
	require := require.New(t)
	r := New(memdb.New(), ids.GenerateTestShortID())
	alice := ids.GenerateTestShortID()
	proxy := ids.GenerateTestShortID()

	got, err := r.Proxy(alice)
	require.NoError(err)
	require.Equal(ids.ShortEmpty, got)

	require.ErrorIs(r.Register(alice, alice), ErrProxyIsCaller)
	require.NoError(r.Register(alice, proxy))

	got, err = r.Proxy(alice)
	require.NoError(err)
	require.Equal(proxy, got)

	require.NoError(r.Register(alice, ids.ShortEmpty))
	got, err = r.Proxy(alice)
	require.NoError(err)
	require.Equal(ids.ShortEmpty, got)
}
