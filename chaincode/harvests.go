/*
SPDX-License-Identifier: Apache-2.0
*/

package chaincode

import "fmt"

// HarvestCatalog mints harvest tokens and keeps their metadata. Token ids
// start at 1 and follow a single counter, so ids are never skipped or reused.
type HarvestCatalog struct {
	access  *AccessController
	farmers *FarmerDirectory
	tokens  *HarvestToken
}

// Mint records harvest for a registered farmer and issues the new token to
// the farmer's wallet. It returns the token id.
func (c *HarvestCatalog) Mint(l ledger, caller string, harvest Harvest) (uint64, error) {
	if err := c.access.requireCooperative(l, caller); err != nil {
		return 0, err
	}
	farmer, err := c.farmers.requireRegistered(l, harvest.NationalID)
	if err != nil {
		return 0, err
	}
	total, err := c.Total(l)
	if err != nil {
		return 0, err
	}

	id := total + 1
	if err := c.tokens.issue(l, farmer.Wallet, id); err != nil {
		return 0, err
	}
	if err := writeState(l, tokenKey(harvestPrefix, id), harvest); err != nil {
		return 0, err
	}
	if err := writeState(l, harvestCounterKey, id); err != nil {
		return 0, err
	}

	minted := HarvestMinted{
		TokenID:      id,
		NationalID:   harvest.NationalID,
		QuantityKg:   harvest.QuantityKg,
		QualityGrade: harvest.QualityGrade,
	}
	if err := emitEvent(l, EventHarvestMinted, minted); err != nil {
		return 0, err
	}
	return id, nil
}

// Get returns the metadata of token id, or a zero Harvest when id was never
// minted.
func (c *HarvestCatalog) Get(l ledger, id uint64) (*Harvest, error) {
	var harvest Harvest
	if _, err := readState(l, tokenKey(harvestPrefix, id), &harvest); err != nil {
		return nil, fmt.Errorf("failed to read harvest %d: %v", id, err)
	}
	return &harvest, nil
}

// Total is the number of harvest tokens minted so far, which is also the
// highest token id.
func (c *HarvestCatalog) Total(l ledger) (uint64, error) {
	var total uint64
	if _, err := readState(l, harvestCounterKey, &total); err != nil {
		return 0, err
	}
	return total, nil
}

// ForFarmer lists, in ascending order, the tokens currently held by the
// farmer's stored wallet. It walks every token ever minted.
func (c *HarvestCatalog) ForFarmer(l ledger, nationalID string) ([]uint64, error) {
	farmer, err := c.farmers.requireRegistered(l, nationalID)
	if err != nil {
		return nil, err
	}
	total, err := c.Total(l)
	if err != nil {
		return nil, err
	}

	ids := []uint64{}
	for id := uint64(1); id <= total; id++ {
		owner, err := c.tokens.OwnerOf(l, id)
		if err != nil {
			return nil, err
		}
		if owner == farmer.Wallet {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
