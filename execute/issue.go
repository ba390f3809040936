// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package execute

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/rightsvm/chain"
	"github.com/ava-labs/rightsvm/state"
	"github.com/ava-labs/rightsvm/tx"
)

var ErrDuplicateTx = errors.New("tx was already accepted")

// Issue executes [stx] as one indivisible call on [c].
//
// A tx that fails leaves no trace of its execution, not even a consumed
// nonce, but its failure is recorded under the returned ID so it can be
// queried later. A tx that was rejected may be issued again.
func Issue(ctx context.Context, c *chain.Chain, stx *tx.Tx) (ids.ID, *Result, error) {
	txBytes, err := stx.Bytes()
	if err != nil {
		return ids.Empty, nil, err
	}
	txID, err := stx.ID()
	if err != nil {
		return ids.Empty, nil, err
	}
	sender, err := stx.SenderID()
	if err != nil {
		return txID, nil, err
	}

	var (
		executor = &Tx{
			TxID:   txID,
			Sender: sender,
		}
		txErr error
	)
	err = c.Execute(ctx, Name(stx.Unsigned), func(callCtx *chain.Context) error {
		previous, err := state.GetTx(callCtx.DB, txID)
		switch {
		case err == nil && previous.Accepted:
			return ErrDuplicateTx
		case err != nil && err != database.ErrNotFound:
			return err
		}

		txCtx, txDB := callCtx.Nested()
		executor.Context = txCtx
		txErr = stx.Unsigned.Visit(executor)

		record := &state.TxRecord{
			Bytes:    txBytes,
			Accepted: txErr == nil,
		}
		if txErr != nil {
			txDB.Abort()
			record.Reason = txErr.Error()
			callCtx.Fail(txErr)
			callCtx.Log.Debug("rejected tx",
				zap.Stringer("txID", txID),
				zap.Stringer("sender", sender),
				zap.Error(txErr),
			)
		} else if err := txDB.Commit(); err != nil {
			return err
		}
		return state.AddTx(callCtx.DB, txID, record)
	})
	if err != nil {
		return txID, nil, err
	}
	if txErr != nil {
		return txID, nil, txErr
	}
	return txID, &executor.Result, nil
}

// Name returns the name [utx] is reported under, e.g. "freeze" or "issueI".
func Name(utx tx.Unsigned) string {
	t := reflect.TypeOf(utx)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return "unknown"
	}
	return strings.ToLower(name[:1]) + name[1:]
}
