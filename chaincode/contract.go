/*
SPDX-License-Identifier: Apache-2.0
*/

// Package chaincode implements the coffee harvest registry: cooperatives,
// appointed by a single owner, register farmers and mint one token per
// harvest batch to the farmer's wallet.
package chaincode

import (
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"go.uber.org/zap"
)

// SmartContract provides functions for managing the coffee harvest registry
type SmartContract struct {
	contractapi.Contract

	logger   *zap.Logger
	access   *AccessController
	farmers  *FarmerDirectory
	harvests *HarvestCatalog
	tokens   *HarvestToken
}

// NewSmartContract wires the registry components together. A nil logger
// disables logging.
func NewSmartContract(logger *zap.Logger) *SmartContract {
	if logger == nil {
		logger = zap.NewNop()
	}
	access := &AccessController{}
	farmers := &FarmerDirectory{access: access}
	tokens := &HarvestToken{}
	return &SmartContract{
		logger:   logger,
		access:   access,
		farmers:  farmers,
		tokens:   tokens,
		harvests: &HarvestCatalog{access: access, farmers: farmers, tokens: tokens},
	}
}

// InitLedger makes the caller the owner and names the token collection. It
// can run only once, so it must be the first invoke after deployment.
func (s *SmartContract) InitLedger(ctx contractapi.TransactionContextInterface, name, symbol string) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	stub := ctx.GetStub()
	if err := s.access.initialize(stub, caller); err != nil {
		return err
	}
	if err := s.tokens.setMetadata(stub, name, symbol); err != nil {
		return err
	}
	s.logger.Info("ledger initialized",
		zap.String("txId", stub.GetTxID()),
		zap.String("owner", caller),
		zap.String("name", name),
		zap.String("symbol", symbol))
	return nil
}

// Owner returns the account allowed to manage cooperatives
func (s *SmartContract) Owner(ctx contractapi.TransactionContextInterface) (string, error) {
	return s.access.Owner(ctx.GetStub())
}

// TransferOwnership allows the owner to hand over cooperative management
func (s *SmartContract) TransferOwnership(ctx contractapi.TransactionContextInterface, newOwner string) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	stub := ctx.GetStub()
	if err := s.access.TransferOwnership(stub, caller, newOwner); err != nil {
		return err
	}
	s.logger.Info("ownership transferred",
		zap.String("txId", stub.GetTxID()),
		zap.String("previousOwner", caller),
		zap.String("newOwner", newOwner))
	return nil
}

// AddCooperative allows the owner to authorize a cooperative
func (s *SmartContract) AddCooperative(ctx contractapi.TransactionContextInterface, address string) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	stub := ctx.GetStub()
	if err := s.access.AddCooperative(stub, caller, address); err != nil {
		return err
	}
	s.logger.Info("cooperative added", zap.String("txId", stub.GetTxID()), zap.String("address", address))
	return nil
}

// RemoveCooperative allows the owner to revoke a cooperative
func (s *SmartContract) RemoveCooperative(ctx contractapi.TransactionContextInterface, address string) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	stub := ctx.GetStub()
	if err := s.access.RemoveCooperative(stub, caller, address); err != nil {
		return err
	}
	s.logger.Info("cooperative removed", zap.String("txId", stub.GetTxID()), zap.String("address", address))
	return nil
}

// IsCooperative checks whether an address is an authorized cooperative
func (s *SmartContract) IsCooperative(ctx contractapi.TransactionContextInterface, address string) (bool, error) {
	return s.access.IsCooperative(ctx.GetStub(), address)
}

// RegisterFarmer allows a cooperative to register a farmer by national id
func (s *SmartContract) RegisterFarmer(ctx contractapi.TransactionContextInterface, nationalId, wallet string) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	stub := ctx.GetStub()
	if _, err := s.farmers.Register(stub, caller, nationalId, wallet); err != nil {
		return err
	}
	s.logger.Info("farmer registered",
		zap.String("txId", stub.GetTxID()),
		zap.String("nationalId", nationalId),
		zap.String("wallet", wallet),
		zap.String("cooperative", caller))
	return nil
}

// GetFarmer retrieves a farmer by national id. Unknown ids come back
// unregistered.
func (s *SmartContract) GetFarmer(ctx contractapi.TransactionContextInterface, nationalId string) (*Farmer, error) {
	return s.farmers.Get(ctx.GetStub(), nationalId)
}

// MintHarvest allows a cooperative to record a harvest batch for a
// registered farmer and returns the new token id
func (s *SmartContract) MintHarvest(ctx contractapi.TransactionContextInterface, nationalId string, quantityKg uint64, qualityGrade, harvestDate, fertilizerUsed, certifications string) (uint64, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return 0, err
	}
	harvest := Harvest{
		NationalID:     nationalId,
		QuantityKg:     quantityKg,
		QualityGrade:   qualityGrade,
		HarvestDate:    harvestDate,
		FertilizerUsed: fertilizerUsed,
		Certifications: certifications,
	}

	stub := ctx.GetStub()
	id, err := s.harvests.Mint(stub, caller, harvest)
	if err != nil {
		return 0, err
	}
	s.logger.Info("harvest minted",
		zap.String("txId", stub.GetTxID()),
		zap.Uint64("tokenId", id),
		zap.String("nationalId", nationalId),
		zap.Uint64("quantityKg", quantityKg),
		zap.String("qualityGrade", qualityGrade))
	return id, nil
}

// GetHarvest retrieves the metadata of a harvest token
func (s *SmartContract) GetHarvest(ctx contractapi.TransactionContextInterface, tokenId uint64) (*Harvest, error) {
	return s.harvests.Get(ctx.GetStub(), tokenId)
}

// GetFarmerHarvests lists the harvest tokens currently held by a farmer's wallet
func (s *SmartContract) GetFarmerHarvests(ctx contractapi.TransactionContextInterface, nationalId string) ([]uint64, error) {
	return s.harvests.ForFarmer(ctx.GetStub(), nationalId)
}

// TotalHarvests returns the number of harvest tokens minted
func (s *SmartContract) TotalHarvests(ctx contractapi.TransactionContextInterface) (uint64, error) {
	return s.harvests.Total(ctx.GetStub())
}

// OwnerOf returns the wallet holding a harvest token
func (s *SmartContract) OwnerOf(ctx contractapi.TransactionContextInterface, tokenId uint64) (string, error) {
	return s.tokens.OwnerOf(ctx.GetStub(), tokenId)
}

// BalanceOf counts the harvest tokens held by a wallet
func (s *SmartContract) BalanceOf(ctx contractapi.TransactionContextInterface, owner string) (uint64, error) {
	return s.tokens.BalanceOf(ctx.GetStub(), owner)
}

// TransferFrom allows the holder of a harvest token to move it to another wallet
func (s *SmartContract) TransferFrom(ctx contractapi.TransactionContextInterface, from, to string, tokenId uint64) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}
	stub := ctx.GetStub()
	if err := s.tokens.Transfer(stub, caller, from, to, tokenId); err != nil {
		return err
	}
	s.logger.Info("harvest token transferred",
		zap.String("txId", stub.GetTxID()),
		zap.Uint64("tokenId", tokenId),
		zap.String("from", from),
		zap.String("to", to))
	return nil
}

// TokenName returns the harvest token collection name
func (s *SmartContract) TokenName(ctx contractapi.TransactionContextInterface) (string, error) {
	return s.tokens.Name(ctx.GetStub())
}

// TokenSymbol returns the harvest token collection symbol
func (s *SmartContract) TokenSymbol(ctx contractapi.TransactionContextInterface) (string, error) {
	return s.tokens.Symbol(ctx.GetStub())
}

// ClientAccountID returns the address of the calling identity
func (s *SmartContract) ClientAccountID(ctx contractapi.TransactionContextInterface) (string, error) {
	return s.caller(ctx)
}

// caller returns the address of the submitting client
func (s *SmartContract) caller(ctx contractapi.TransactionContextInterface) (string, error) {
	id, err := ctx.GetClientIdentity().GetID()
	if err != nil {
		return NullAddress, fmt.Errorf("failed to read client identity: %v", err)
	}
	return id, nil
}
