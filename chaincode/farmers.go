/*
SPDX-License-Identifier: Apache-2.0
*/

package chaincode

import "fmt"

// FarmerDirectory maps national identifiers to wallets. Records are append
// only: nothing updates or deletes a registered farmer.
type FarmerDirectory struct {
	access *AccessController
}

// Register stores a new farmer on behalf of a cooperative.
func (d *FarmerDirectory) Register(l ledger, caller, nationalID, wallet string) (*Farmer, error) {
	if err := d.access.requireCooperative(l, caller); err != nil {
		return nil, err
	}

	existing, err := d.Get(l, nationalID)
	if err != nil {
		return nil, err
	}
	if existing.Registered {
		return nil, fmt.Errorf("%w: farmer %s", ErrAlreadyRegistered, nationalID)
	}
	if wallet == NullAddress {
		return nil, fmt.Errorf("%w: invalid wallet for farmer %s", ErrInvalidAddress, nationalID)
	}

	farmer := &Farmer{NationalID: nationalID, Wallet: wallet, Registered: true}
	if err := writeState(l, farmerPrefix+nationalID, farmer); err != nil {
		return nil, err
	}
	if err := emitEvent(l, EventFarmerRegistered, FarmerRegistered{NationalID: nationalID, Wallet: wallet}); err != nil {
		return nil, err
	}
	return farmer, nil
}

// Get returns the farmer record. An unknown identifier yields an
// unregistered record with a null wallet, not an error.
func (d *FarmerDirectory) Get(l ledger, nationalID string) (*Farmer, error) {
	var farmer Farmer
	if _, err := readState(l, farmerPrefix+nationalID, &farmer); err != nil {
		return nil, fmt.Errorf("failed to read farmer %s: %v", nationalID, err)
	}
	farmer.NationalID = nationalID
	return &farmer, nil
}

func (d *FarmerDirectory) requireRegistered(l ledger, nationalID string) (*Farmer, error) {
	farmer, err := d.Get(l, nationalID)
	if err != nil {
		return nil, err
	}
	if !farmer.Registered {
		return nil, fmt.Errorf("%w: %s", ErrFarmerNotRegistered, nationalID)
	}
	return farmer, nil
}
