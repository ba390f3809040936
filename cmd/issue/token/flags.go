// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

const (
	ContractKey     = "contract"
	ContractTypeKey = "type"
	NameKey         = "name"
	FromKey         = "from"
	ToKey           = "to"
	TokenIDKey      = "token-id"
	SafeKey         = "safe"
	DataKey         = "data"
	OperatorKey     = "operator"
	ApprovedKey     = "approved"
	ProxyKey        = "proxy"
)
