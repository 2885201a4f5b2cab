/*
SPDX-License-Identifier: Apache-2.0
*/

package chaincode

import "fmt"

// HarvestToken tracks which wallet holds each harvest token id, in the
// manner of an ERC-721 collection without approvals.
type HarvestToken struct{}

func (t *HarvestToken) setMetadata(l ledger, name, symbol string) error {
	if err := writeState(l, tokenNameKey, name); err != nil {
		return err
	}
	return writeState(l, tokenSymbolKey, symbol)
}

// Name returns the collection name given to InitLedger.
func (t *HarvestToken) Name(l ledger) (string, error) {
	var name string
	_, err := readState(l, tokenNameKey, &name)
	return name, err
}

// Symbol returns the collection symbol given to InitLedger.
func (t *HarvestToken) Symbol(l ledger) (string, error) {
	var symbol string
	_, err := readState(l, tokenSymbolKey, &symbol)
	return symbol, err
}

// issue binds a fresh token id to owner.
func (t *HarvestToken) issue(l ledger, owner string, id uint64) error {
	if owner == NullAddress {
		return fmt.Errorf("%w: cannot issue token %d to the null address", ErrInvalidAddress, id)
	}
	current, err := t.ownerOf(l, id)
	if err != nil {
		return err
	}
	if current != NullAddress {
		return fmt.Errorf("%w: %d", ErrTokenAlreadyIssued, id)
	}
	balance, err := t.BalanceOf(l, owner)
	if err != nil {
		return err
	}

	if err := writeState(l, tokenKey(tokenOwnerPrefix, id), owner); err != nil {
		return err
	}
	return writeState(l, tokenBalancePrefix+owner, balance+1)
}

// OwnerOf returns the wallet currently holding id.
func (t *HarvestToken) OwnerOf(l ledger, id uint64) (string, error) {
	owner, err := t.ownerOf(l, id)
	if err != nil {
		return NullAddress, err
	}
	if owner == NullAddress {
		return NullAddress, fmt.Errorf("%w: %d", ErrTokenNotFound, id)
	}
	return owner, nil
}

func (t *HarvestToken) ownerOf(l ledger, id uint64) (string, error) {
	var owner string
	if _, err := readState(l, tokenKey(tokenOwnerPrefix, id), &owner); err != nil {
		return NullAddress, err
	}
	return owner, nil
}

// BalanceOf counts the tokens held by owner.
func (t *HarvestToken) BalanceOf(l ledger, owner string) (uint64, error) {
	if owner == NullAddress {
		return 0, fmt.Errorf("%w: balance query for the null address", ErrInvalidAddress)
	}
	var balance uint64
	if _, err := readState(l, tokenBalancePrefix+owner, &balance); err != nil {
		return 0, err
	}
	return balance, nil
}

// Transfer moves id from its current holder to another wallet. Only the
// holder may move it.
func (t *HarvestToken) Transfer(l ledger, caller, from, to string, id uint64) error {
	owner, err := t.OwnerOf(l, id)
	if err != nil {
		return err
	}
	if caller != owner {
		return fmt.Errorf("%w: %s does not hold token %d", ErrUnauthorized, caller, id)
	}
	if from != owner {
		return fmt.Errorf("%w: token %d is not held by %s", ErrUnauthorized, id, from)
	}
	if to == NullAddress {
		return fmt.Errorf("%w: cannot transfer token %d to the null address", ErrInvalidAddress, id)
	}

	if from != to {
		fromBalance, err := t.BalanceOf(l, from)
		if err != nil {
			return err
		}
		toBalance, err := t.BalanceOf(l, to)
		if err != nil {
			return err
		}
		if err := writeState(l, tokenBalancePrefix+from, fromBalance-1); err != nil {
			return err
		}
		if err := writeState(l, tokenBalancePrefix+to, toBalance+1); err != nil {
			return err
		}
		if err := writeState(l, tokenKey(tokenOwnerPrefix, id), to); err != nil {
			return err
		}
	}
	return emitEvent(l, EventTransfer, Transfer{From: from, To: to, TokenID: id})
}
