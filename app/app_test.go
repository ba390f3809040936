// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/rightsvm/config"
)

func TestAppLifecycle(t *testing.T) {
	require := require.New(t)

	v, err := config.BuildViper(config.BuildFlagSet(), []string{
		"--" + config.HTTPPortKey + "=0",
		"--" + config.LogDirKey + "=" + t.TempDir(),
		"--" + config.LogLevelKey + "=off",
		"--" + config.DBTypeKey + "=memdb",
	})
	require.NoError(err)
	c, err := config.GetConfig(v)
	require.NoError(err)

	a := New(c)
	require.NoError(a.Start())
	require.NoError(a.Stop())

	exitCode, err := a.ExitCode()
	require.NoError(err)
	require.Zero(exitCode)
}
