// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package admin

import (
	"github.com/spf13/pflag"

	"github.com/ava-labs/rightsvm/orchestrator"
)

const (
	KindKey     = "kind"
	RegistryKey = "registry"
	ToKey       = "to"
	ProxyKey    = "proxy"
	URLKey      = "url"
	AddressKey  = "address"
	IncludedKey = "included"
)

func addKindFlag(flags *pflag.FlagSet) {
	flags.String(KindKey, orchestrator.FRight.String(), "Registry to operate on: fRight or iRight")
}
