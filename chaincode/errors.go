/*
SPDX-License-Identifier: Apache-2.0
*/

package chaincode

import "errors"

// Every rejected transaction returns one of these, usually wrapped with the
// offending value. Callers match them with errors.Is.
var (
	ErrUnauthorized        = errors.New("unauthorized caller")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrAlreadyRegistered   = errors.New("already registered")
	ErrFarmerNotRegistered = errors.New("farmer not registered")
	ErrAlreadyInitialized  = errors.New("already initialized")
	ErrTokenAlreadyIssued  = errors.New("token already issued")
	ErrTokenNotFound       = errors.New("token not found")
)
