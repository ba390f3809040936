// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
)

// FRight is the custody record kept for a frozen base asset. The holder of the
// record is tracked by the registry's token bookkeeping.
type FRight struct {
	BaseAsset          ids.ShortID `serialize:"true" json:"baseAsset"`
	AssetID            uint64      `serialize:"true" json:"assetID"`
	Expiry             uint64      `serialize:"true" json:"expiry"`
	Exclusive          bool        `serialize:"true" json:"exclusive"`
	MaxISupply         uint64      `serialize:"true" json:"maxISupply"`
	CirculatingISupply uint64      `serialize:"true" json:"circulatingISupply"`
	Version            uint64      `serialize:"true" json:"version"`
}

// IRight is the usage record drawn against a live FRight.
type IRight struct {
	ParentID  uint64      `serialize:"true" json:"parentID"`
	BaseAsset ids.ShortID `serialize:"true" json:"baseAsset"`
	AssetID   uint64      `serialize:"true" json:"assetID"`
	Expiry    uint64      `serialize:"true" json:"expiry"`
	Exclusive bool        `serialize:"true" json:"exclusive"`
	Version   uint64      `serialize:"true" json:"version"`
}

// FRight state

func GetFRight(db database.KeyValueReader, registry ids.ShortID, fRightID uint64) (*FRight, error) {
	key := Flatten(fRightPrefix, registry[:], database.PackUInt64(fRightID))
	bytes, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	record := &FRight{}
	_, err = Codec.Unmarshal(bytes, record)
	return record, err
}

func SetFRight(db database.KeyValueWriter, registry ids.ShortID, fRightID uint64, record *FRight) error {
	key := Flatten(fRightPrefix, registry[:], database.PackUInt64(fRightID))
	bytes, err := Codec.Marshal(CodecVersion, record)
	if err != nil {
		return err
	}
	return db.Put(key, bytes)
}

func DeleteFRight(db database.KeyValueDeleter, registry ids.ShortID, fRightID uint64) error {
	key := Flatten(fRightPrefix, registry[:], database.PackUInt64(fRightID))
	return db.Delete(key)
}

// GetFrozen returns the live fRightID holding [assetID] of [collection] in
// custody, or 0 if the asset isn't frozen in [registry].
func GetFrozen(db database.KeyValueReader, registry ids.ShortID, collection ids.ShortID, assetID uint64) (uint64, error) {
	key := Flatten(frozenPrefix, registry[:], collection[:], database.PackUInt64(assetID))
	return database.WithDefault(database.GetUInt64, db, key, 0)
}

func SetFrozen(db database.KeyValueWriterDeleter, registry ids.ShortID, collection ids.ShortID, assetID uint64, fRightID uint64) error {
	key := Flatten(frozenPrefix, registry[:], collection[:], database.PackUInt64(assetID))
	if fRightID == 0 {
		return db.Delete(key)
	}
	return database.PutUInt64(db, key, fRightID)
}

// IRight state

func GetIRight(db database.KeyValueReader, registry ids.ShortID, iRightID uint64) (*IRight, error) {
	key := Flatten(iRightPrefix, registry[:], database.PackUInt64(iRightID))
	bytes, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	record := &IRight{}
	_, err = Codec.Unmarshal(bytes, record)
	return record, err
}

func SetIRight(db database.KeyValueWriter, registry ids.ShortID, iRightID uint64, record *IRight) error {
	key := Flatten(iRightPrefix, registry[:], database.PackUInt64(iRightID))
	bytes, err := Codec.Marshal(CodecVersion, record)
	if err != nil {
		return err
	}
	return db.Put(key, bytes)
}

func DeleteIRight(db database.KeyValueDeleter, registry ids.ShortID, iRightID uint64) error {
	key := Flatten(iRightPrefix, registry[:], database.PackUInt64(iRightID))
	return db.Delete(key)
}
