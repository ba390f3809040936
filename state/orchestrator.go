// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
)

// InitialVersion is the value every version counter starts at.
const InitialVersion = 1

func orchestratorKey(orchestrator ids.ShortID, subKey []byte, suffixes ...[]byte) []byte {
	return Flatten(append([][]byte{orchestratorPrefix, orchestrator[:], subKey}, suffixes...)...)
}

func GetAdmin(db database.KeyValueReader, orchestrator ids.ShortID) (ids.ShortID, error) {
	key := orchestratorKey(orchestrator, adminKey)
	return database.WithDefault(getAddress, db, key, ids.ShortEmpty)
}

func SetAdmin(db database.KeyValueWriterDeleter, orchestrator ids.ShortID, admin ids.ShortID) error {
	key := orchestratorKey(orchestrator, adminKey)
	return putAddress(db, key, admin)
}

// GetBinding returns the registry bound to [kind], or [ids.ShortEmpty] if
// nothing was bound yet.
func GetBinding(db database.KeyValueReader, orchestrator ids.ShortID, kind byte) (ids.ShortID, error) {
	key := orchestratorKey(orchestrator, bindingKey, []byte{kind})
	return database.WithDefault(getAddress, db, key, ids.ShortEmpty)
}

func SetBinding(db database.KeyValueWriterDeleter, orchestrator ids.ShortID, kind byte, registry ids.ShortID) error {
	key := orchestratorKey(orchestrator, bindingKey, []byte{kind})
	return putAddress(db, key, registry)
}

func GetVersion(db database.KeyValueReader, orchestrator ids.ShortID, kind byte) (uint64, error) {
	key := orchestratorKey(orchestrator, versionKey, []byte{kind})
	return database.WithDefault(database.GetUInt64, db, key, InitialVersion)
}

func SetVersion(db database.KeyValueWriter, orchestrator ids.ShortID, kind byte, version uint64) error {
	key := orchestratorKey(orchestrator, versionKey, []byte{kind})
	return database.PutUInt64(db, key, version)
}

func IsWhitelisted(db database.KeyValueReader, orchestrator ids.ShortID, address ids.ShortID) (bool, error) {
	key := orchestratorKey(orchestrator, whitelistKey, address[:])
	return db.Has(key)
}

func SetWhitelisted(db database.KeyValueWriterDeleter, orchestrator ids.ShortID, address ids.ShortID, included bool) error {
	key := orchestratorKey(orchestrator, whitelistKey, address[:])
	if !included {
		return db.Delete(key)
	}
	return db.Put(key, nil)
}

func IsFreezeGateActive(db database.KeyValueReader, orchestrator ids.ShortID) (bool, error) {
	key := orchestratorKey(orchestrator, freezeGateKey)
	return database.WithDefault(database.GetBool, db, key, false)
}

func SetFreezeGateActive(db database.KeyValueWriter, orchestrator ids.ShortID, active bool) error {
	key := orchestratorKey(orchestrator, freezeGateKey)
	return database.PutBool(db, key, active)
}
