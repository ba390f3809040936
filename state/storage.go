// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
)

var (
	ErrWrongNonce          = errors.New("wrong nonce")
	errUnknownContractType = errors.New("unknown contract type")
	errAlreadyDeployed     = errors.New("contract already deployed")
)

/*
 * VMDB
 * |-- initializedKey -> nil
 * |-- deployNonceKey -> nonce
 * |-. addresses
 * | '-- address -> nonce
 * |-. contracts
 * | '-- address -> contract type
 * |-. txs
 * | '-- txID -> tx bytes
 * |-. tokens
 * | '-- contract + sub-key -> token bookkeeping
 * |-. fRights
 * | '-- registry + fRightID -> FRight
 * |-. frozen
 * | '-- registry + collection + assetID -> fRightID
 * |-. iRights
 * | '-- registry + iRightID -> IRight
 * |-. orchestrator
 * | '-- orchestrator + sub-key -> orchestrator state
 * '-. proxies
 *   '-- registry + owner -> proxy
 */

// ContractType identifies what is deployed at an address.
type ContractType byte

const (
	NoContract ContractType = iota
	CollectionContract
	FRightContract
	IRightContract
	ProxyContract
	OrchestratorContract
)

func (t ContractType) Verify() error {
	switch t {
	case CollectionContract, FRightContract, IRightContract, ProxyContract, OrchestratorContract:
		return nil
	default:
		return fmt.Errorf("%w: %d", errUnknownContractType, t)
	}
}

func (t ContractType) String() string {
	switch t {
	case NoContract:
		return "none"
	case CollectionContract:
		return "collection"
	case FRightContract:
		return "fRight"
	case IRightContract:
		return "iRight"
	case ProxyContract:
		return "proxy"
	case OrchestratorContract:
		return "orchestrator"
	default:
		return "unknown"
	}
}

// ContractTypeFromString parses the names returned by [ContractType.String].
// The empty type is not accepted.
func ContractTypeFromString(s string) (ContractType, error) {
	for t := CollectionContract; t <= OrchestratorContract; t++ {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return NoContract, fmt.Errorf("%w: %q", errUnknownContractType, s)
}

// Chain state

func IsInitialized(db database.KeyValueReader) (bool, error) {
	return db.Has(initializedKey)
}

func SetInitialized(db database.KeyValueWriter) error {
	return db.Put(initializedKey, nil)
}

// Address state

func GetNonce(db database.KeyValueReader, address ids.ShortID) (uint64, error) {
	key := Flatten(addressPrefix, address[:])
	return database.WithDefault(database.GetUInt64, db, key, 0)
}

func SetNonce(db database.KeyValueWriter, address ids.ShortID, nonce uint64) error {
	key := Flatten(addressPrefix, address[:])
	return database.PutUInt64(db, key, nonce)
}

func IncrementNonce(db database.KeyValueReaderWriter, address ids.ShortID, nonce uint64) error {
	expectedNonce, err := GetNonce(db, address)
	if err != nil {
		return err
	}
	if nonce != expectedNonce {
		return fmt.Errorf("%w: expected %d but got %d", ErrWrongNonce, expectedNonce, nonce)
	}
	return SetNonce(db, address, nonce+1)
}

// Contract state

func GetContractType(db database.KeyValueReader, address ids.ShortID) (ContractType, error) {
	key := Flatten(contractPrefix, address[:])
	b, err := db.Get(key)
	switch {
	case err == database.ErrNotFound:
		return NoContract, nil
	case err != nil:
		return NoContract, err
	case len(b) != 1:
		return NoContract, fmt.Errorf("%w: %x", errUnknownContractType, b)
	}
	return ContractType(b[0]), nil
}

func SetContractType(db database.KeyValueWriter, address ids.ShortID, contractType ContractType) error {
	key := Flatten(contractPrefix, address[:])
	return db.Put(key, []byte{byte(contractType)})
}

// NextContractAddress derives a fresh address for a contract deployed by
// [deployer] and bumps the chain wide deployment nonce.
func NextContractAddress(db database.KeyValueReaderWriter, deployer ids.ShortID) (ids.ShortID, error) {
	nonce, err := database.WithDefault(database.GetUInt64, db, deployNonceKey, 0)
	if err != nil {
		return ids.ShortEmpty, err
	}
	if err := database.PutUInt64(db, deployNonceKey, nonce+1); err != nil {
		return ids.ShortEmpty, err
	}

	address := ids.ShortID(hashing.ComputeHash160Array(
		Flatten(deployer[:], database.PackUInt64(nonce)),
	))
	contractType, err := GetContractType(db, address)
	if err != nil {
		return ids.ShortEmpty, err
	}
	if contractType != NoContract {
		return ids.ShortEmpty, fmt.Errorf("%w at %s", errAlreadyDeployed, address)
	}
	return address, nil
}

// Tx state

// TxRecord is kept for every issued transaction, whether or not it executed
// successfully.
type TxRecord struct {
	Bytes    []byte `serialize:"true" json:"bytes"`
	Accepted bool   `serialize:"true" json:"accepted"`
	Reason   string `serialize:"true" json:"reason"`
}

func GetTx(db database.KeyValueReader, txID ids.ID) (*TxRecord, error) {
	key := Flatten(txPrefix, txID[:])
	bytes, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	record := &TxRecord{}
	_, err = Codec.Unmarshal(bytes, record)
	return record, err
}

func HasTx(db database.KeyValueReader, txID ids.ID) (bool, error) {
	key := Flatten(txPrefix, txID[:])
	return db.Has(key)
}

func AddTx(db database.KeyValueWriter, txID ids.ID, record *TxRecord) error {
	key := Flatten(txPrefix, txID[:])
	bytes, err := Codec.Marshal(CodecVersion, record)
	if err != nil {
		return err
	}
	return db.Put(key, bytes)
}

// Deployment state

// Deployment lists the contracts created at genesis.
type Deployment struct {
	Orchestrator   ids.ShortID   `serialize:"true" json:"orchestrator"`
	FRightRegistry ids.ShortID   `serialize:"true" json:"fRightRegistry"`
	IRightRegistry ids.ShortID   `serialize:"true" json:"iRightRegistry"`
	ProxyRegistry  ids.ShortID   `serialize:"true" json:"proxyRegistry"`
	Collections    []ids.ShortID `serialize:"true" json:"collections"`
}

func GetDeployment(db database.KeyValueReader) (*Deployment, error) {
	bytes, err := db.Get(deploymentKey)
	if err != nil {
		return nil, err
	}
	deployment := &Deployment{}
	_, err = Codec.Unmarshal(bytes, deployment)
	return deployment, err
}

func SetDeployment(db database.KeyValueWriter, deployment *Deployment) error {
	bytes, err := Codec.Marshal(CodecVersion, deployment)
	if err != nil {
		return err
	}
	return db.Put(deploymentKey, bytes)
}
