/*
SPDX-License-Identifier: Apache-2.0
*/

package chaincode

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// World state key prefixes
const (
	ownerKey          = "OWNER"
	tokenNameKey      = "TOKEN_NAME"
	tokenSymbolKey    = "TOKEN_SYMBOL"
	harvestCounterKey = "HARVEST_COUNTER"

	cooperativePrefix  = "COOP_"
	farmerPrefix       = "FARMER_"
	harvestPrefix      = "HARVEST_"
	tokenOwnerPrefix   = "TOKEN_OWNER_"
	tokenBalancePrefix = "TOKEN_BALANCE_"
)

// ledger is the part of shim.ChaincodeStubInterface the registry needs.
// Fabric does not let a transaction read its own writes, so no operation
// reads a key after writing it.
type ledger interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	SetEvent(name string, payload []byte) error
	GetTxID() string
}

func tokenKey(prefix string, id uint64) string {
	return prefix + strconv.FormatUint(id, 10)
}

// readState unmarshals the value at key into v. It reports false, leaving v
// untouched, when the key has never been written.
func readState(l ledger, key string, v interface{}) (bool, error) {
	b, err := l.GetState(key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %v", key, err)
	}
	if b == nil {
		return false, nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %v", key, err)
	}
	return true, nil
}

func writeState(l ledger, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %v", key, err)
	}
	if err := l.PutState(key, b); err != nil {
		return fmt.Errorf("failed to write %s: %v", key, err)
	}
	return nil
}

func emitEvent(l ledger, name string, payload interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %v", name, err)
	}
	if err := l.SetEvent(name, b); err != nil {
		return fmt.Errorf("failed to set %s event: %v", name, err)
	}
	return nil
}
