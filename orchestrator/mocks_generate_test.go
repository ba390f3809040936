// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package orchestrator

//go:generate mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/f_right_registry.go -mock_names=FRightRegistry=FRightRegistry . FRightRegistry
//go:generate mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/i_right_registry.go -mock_names=IRightRegistry=IRightRegistry . IRightRegistry
//go:generate mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/asset_ledger.go -mock_names=AssetLedger=AssetLedger . AssetLedger
//go:generate mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/directory.go -mock_names=Directory=Directory . Directory
