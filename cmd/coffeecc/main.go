/*
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"os"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"go.uber.org/zap"

	"coffee-harvest-chaincode/chaincode"
	"coffee-harvest-chaincode/internal/config"
	"coffee-harvest-chaincode/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv("COFFEECC_CONFIG"))
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Error("chaincode stopped", zap.Error(err))
		os.Exit(1)
	}
}

// newChaincode builds the registry chaincode and stamps its metadata
func newChaincode(cfg config.Config, logger *zap.Logger) (*contractapi.ContractChaincode, error) {
	cc, err := contractapi.NewChaincode(chaincode.NewSmartContract(logger))
	if err != nil {
		return nil, fmt.Errorf("error creating chaincode: %v", err)
	}
	cc.Info.Title = cfg.Info.Title
	cc.Info.Version = cfg.Info.Version
	return cc, nil
}

func run(cfg config.Config, logger *zap.Logger) error {
	cc, err := newChaincode(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Server.Address == "" {
		logger.Info("starting chaincode", zap.String("mode", "peer"))
		return cc.Start()
	}

	tlsProps, err := tlsProperties(cfg.Server.TLS)
	if err != nil {
		return err
	}
	server := &shim.ChaincodeServer{
		CCID:     cfg.Server.CCID,
		Address:  cfg.Server.Address,
		CC:       cc,
		TLSProps: tlsProps,
	}
	logger.Info("starting chaincode",
		zap.String("mode", "server"),
		zap.String("address", cfg.Server.Address),
		zap.Bool("tls", !cfg.Server.TLS.Disabled))
	return server.Start()
}

func tlsProperties(c config.TLS) (shim.TLSProperties, error) {
	props := shim.TLSProperties{Disabled: c.Disabled}
	if c.Disabled {
		return props, nil
	}

	var err error
	if props.Key, err = os.ReadFile(c.KeyFile); err != nil {
		return props, fmt.Errorf("failed to read tls key: %v", err)
	}
	if props.Cert, err = os.ReadFile(c.CertFile); err != nil {
		return props, fmt.Errorf("failed to read tls cert: %v", err)
	}
	if c.ClientCAFile != "" {
		if props.ClientCACerts, err = os.ReadFile(c.ClientCAFile); err != nil {
			return props, fmt.Errorf("failed to read client ca cert: %v", err)
		}
	}
	return props, nil
}
