// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

var (
	initializedKey = []byte{}

	addressPrefix      = []byte{0x00}
	contractPrefix     = []byte{0x01}
	txPrefix           = []byte{0x02}
	tokenPrefix        = []byte{0x03}
	fRightPrefix       = []byte{0x04}
	frozenPrefix       = []byte{0x05}
	iRightPrefix       = []byte{0x06}
	orchestratorPrefix = []byte{0x07}
	proxyPrefix        = []byte{0x08}

	// Chain wide counters
	deployNonceKey = []byte{0x09}
	deploymentKey  = []byte{0x0a}

	// Token sub-prefixes, scoped by the contract address
	contractOwnerKey = []byte{0x00}
	lastTokenIDKey   = []byte{0x01}
	tokenOwnerKey    = []byte{0x02}
	balanceKey       = []byte{0x03}
	approvalKey      = []byte{0x04}
	operatorKey      = []byte{0x05}
	baseURLKey       = []byte{0x06}
	proxyRegistryKey = []byte{0x07}
	nameKey          = []byte{0x08}

	// Orchestrator sub-prefixes, scoped by the orchestrator address
	adminKey      = []byte{0x00}
	bindingKey    = []byte{0x01}
	versionKey    = []byte{0x02}
	whitelistKey  = []byte{0x03}
	freezeGateKey = []byte{0x04}
)

func Flatten[T any](slices ...[]T) []T {
	var size int
	for _, slice := range slices {
		size += len(slice)
	}

	result := make([]T, 0, size)
	for _, slice := range slices {
		result = append(result, slice...)
	}
	return result
}
