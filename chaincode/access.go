/*
SPDX-License-Identifier: Apache-2.0
*/

package chaincode

import "fmt"

// AccessController holds the owning authority and the set of authorized
// cooperatives. The farmer directory and harvest catalog are given one and
// call requireCooperative before any write.
type AccessController struct{}

// Owner returns the authority address, or NullAddress before InitLedger.
func (a *AccessController) Owner(l ledger) (string, error) {
	var owner string
	if _, err := readState(l, ownerKey, &owner); err != nil {
		return NullAddress, err
	}
	return owner, nil
}

func (a *AccessController) initialize(l ledger, caller string) error {
	owner, err := a.Owner(l)
	if err != nil {
		return err
	}
	if owner != NullAddress {
		return ErrAlreadyInitialized
	}
	if caller == NullAddress {
		return fmt.Errorf("%w: caller has no identity", ErrInvalidAddress)
	}
	return a.setOwner(l, NullAddress, caller)
}

// TransferOwnership hands the authority role to newOwner.
func (a *AccessController) TransferOwnership(l ledger, caller, newOwner string) error {
	owner, err := a.requireOwner(l, caller)
	if err != nil {
		return err
	}
	if newOwner == NullAddress {
		return fmt.Errorf("%w: new owner must not be empty", ErrInvalidAddress)
	}
	return a.setOwner(l, owner, newOwner)
}

func (a *AccessController) setOwner(l ledger, previous, next string) error {
	if err := writeState(l, ownerKey, next); err != nil {
		return err
	}
	return emitEvent(l, EventOwnershipTransferred, OwnershipTransferred{PreviousOwner: previous, NewOwner: next})
}

// AddCooperative authorizes address. Adding a current member is not an error.
func (a *AccessController) AddCooperative(l ledger, caller, address string) error {
	if _, err := a.requireOwner(l, caller); err != nil {
		return err
	}
	if address == NullAddress {
		return fmt.Errorf("%w: cooperative must not be empty", ErrInvalidAddress)
	}
	if err := writeState(l, cooperativePrefix+address, true); err != nil {
		return err
	}
	return emitEvent(l, EventCooperativeAdded, CooperativeChanged{Address: address})
}

// RemoveCooperative revokes address whether or not it was a member.
func (a *AccessController) RemoveCooperative(l ledger, caller, address string) error {
	if _, err := a.requireOwner(l, caller); err != nil {
		return err
	}
	if err := writeState(l, cooperativePrefix+address, false); err != nil {
		return err
	}
	return emitEvent(l, EventCooperativeRemoved, CooperativeChanged{Address: address})
}

// IsCooperative reports whether address is currently authorized.
func (a *AccessController) IsCooperative(l ledger, address string) (bool, error) {
	var member bool
	if _, err := readState(l, cooperativePrefix+address, &member); err != nil {
		return false, err
	}
	return member, nil
}

func (a *AccessController) requireOwner(l ledger, caller string) (string, error) {
	owner, err := a.Owner(l)
	if err != nil {
		return NullAddress, err
	}
	if owner == NullAddress || caller != owner {
		return owner, fmt.Errorf("%w: %s is not the owner", ErrUnauthorized, caller)
	}
	return owner, nil
}

func (a *AccessController) requireCooperative(l ledger, caller string) error {
	member, err := a.IsCooperative(l, caller)
	if err != nil {
		return err
	}
	if !member {
		return fmt.Errorf("%w: %s is not a cooperative", ErrUnauthorized, caller)
	}
	return nil
}
