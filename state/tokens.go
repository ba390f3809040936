// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
)

func tokenKey(contract ids.ShortID, subKey []byte, suffixes ...[]byte) []byte {
	return Flatten(append([][]byte{tokenPrefix, contract[:], subKey}, suffixes...)...)
}

func getAddress(db database.KeyValueReader, key []byte) (ids.ShortID, error) {
	b, err := db.Get(key)
	if err != nil {
		return ids.ShortEmpty, err
	}
	return ids.ToShortID(b)
}

func putAddress(db database.KeyValueWriterDeleter, key []byte, address ids.ShortID) error {
	if address == ids.ShortEmpty {
		return db.Delete(key)
	}
	return db.Put(key, address[:])
}

// GetContractOwner returns the administrator of [contract]. Contracts without
// an administrator report [ids.ShortEmpty].
func GetContractOwner(db database.KeyValueReader, contract ids.ShortID) (ids.ShortID, error) {
	key := tokenKey(contract, contractOwnerKey)
	return database.WithDefault(getAddress, db, key, ids.ShortEmpty)
}

func SetContractOwner(db database.KeyValueWriterDeleter, contract ids.ShortID, owner ids.ShortID) error {
	key := tokenKey(contract, contractOwnerKey)
	return putAddress(db, key, owner)
}

func GetContractName(db database.KeyValueReader, contract ids.ShortID) (string, error) {
	key := tokenKey(contract, nameKey)
	b, err := db.Get(key)
	if err == database.ErrNotFound {
		return "", nil
	}
	return string(b), err
}

func SetContractName(db database.KeyValueWriter, contract ids.ShortID, name string) error {
	key := tokenKey(contract, nameKey)
	return db.Put(key, []byte(name))
}

// GetLastTokenID returns the most recently minted sequential token ID of
// [contract], or 0 if nothing was minted yet.
func GetLastTokenID(db database.KeyValueReader, contract ids.ShortID) (uint64, error) {
	key := tokenKey(contract, lastTokenIDKey)
	return database.WithDefault(database.GetUInt64, db, key, 0)
}

func SetLastTokenID(db database.KeyValueWriter, contract ids.ShortID, tokenID uint64) error {
	key := tokenKey(contract, lastTokenIDKey)
	return database.PutUInt64(db, key, tokenID)
}

// GetTokenOwner returns the holder of [tokenID], or [ids.ShortEmpty] if the
// token doesn't exist.
func GetTokenOwner(db database.KeyValueReader, contract ids.ShortID, tokenID uint64) (ids.ShortID, error) {
	key := tokenKey(contract, tokenOwnerKey, database.PackUInt64(tokenID))
	return database.WithDefault(getAddress, db, key, ids.ShortEmpty)
}

func SetTokenOwner(db database.KeyValueWriterDeleter, contract ids.ShortID, tokenID uint64, owner ids.ShortID) error {
	key := tokenKey(contract, tokenOwnerKey, database.PackUInt64(tokenID))
	return putAddress(db, key, owner)
}

func GetBalance(db database.KeyValueReader, contract ids.ShortID, owner ids.ShortID) (uint64, error) {
	key := tokenKey(contract, balanceKey, owner[:])
	return database.WithDefault(database.GetUInt64, db, key, 0)
}

func SetBalance(db database.KeyValueWriterDeleter, contract ids.ShortID, owner ids.ShortID, balance uint64) error {
	key := tokenKey(contract, balanceKey, owner[:])
	if balance == 0 {
		return db.Delete(key)
	}
	return database.PutUInt64(db, key, balance)
}

func GetApproval(db database.KeyValueReader, contract ids.ShortID, tokenID uint64) (ids.ShortID, error) {
	key := tokenKey(contract, approvalKey, database.PackUInt64(tokenID))
	return database.WithDefault(getAddress, db, key, ids.ShortEmpty)
}

func SetApproval(db database.KeyValueWriterDeleter, contract ids.ShortID, tokenID uint64, approved ids.ShortID) error {
	key := tokenKey(contract, approvalKey, database.PackUInt64(tokenID))
	return putAddress(db, key, approved)
}

func IsOperator(db database.KeyValueReader, contract ids.ShortID, owner ids.ShortID, operator ids.ShortID) (bool, error) {
	key := tokenKey(contract, operatorKey, owner[:], operator[:])
	return db.Has(key)
}

func SetOperator(db database.KeyValueWriterDeleter, contract ids.ShortID, owner ids.ShortID, operator ids.ShortID, approved bool) error {
	key := tokenKey(contract, operatorKey, owner[:], operator[:])
	if !approved {
		return db.Delete(key)
	}
	return db.Put(key, nil)
}

func GetBaseURL(db database.KeyValueReader, contract ids.ShortID) (string, error) {
	key := tokenKey(contract, baseURLKey)
	b, err := db.Get(key)
	if err == database.ErrNotFound {
		return "", nil
	}
	return string(b), err
}

func SetBaseURL(db database.KeyValueWriterDeleter, contract ids.ShortID, url string) error {
	key := tokenKey(contract, baseURLKey)
	if url == "" {
		return db.Delete(key)
	}
	return db.Put(key, []byte(url))
}

func GetProxyRegistry(db database.KeyValueReader, contract ids.ShortID) (ids.ShortID, error) {
	key := tokenKey(contract, proxyRegistryKey)
	return database.WithDefault(getAddress, db, key, ids.ShortEmpty)
}

func SetProxyRegistry(db database.KeyValueWriterDeleter, contract ids.ShortID, registry ids.ShortID) error {
	key := tokenKey(contract, proxyRegistryKey)
	return putAddress(db, key, registry)
}

// Proxy registry state

func GetProxy(db database.KeyValueReader, registry ids.ShortID, owner ids.ShortID) (ids.ShortID, error) {
	key := Flatten(proxyPrefix, registry[:], owner[:])
	return database.WithDefault(getAddress, db, key, ids.ShortEmpty)
}

func SetProxy(db database.KeyValueWriterDeleter, registry ids.ShortID, owner ids.ShortID, proxy ids.ShortID) error {
	key := Flatten(proxyPrefix, registry[:], owner[:])
	return putAddress(db, key, proxy)
}
