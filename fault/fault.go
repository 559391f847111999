// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrByteLengthMismatch   = LengthError("decoded byte count does not match field length")
	ErrChainFileWriteFail   = ProcessError("chain file write failed")
	ErrInvalidHexText       = InvalidError("hex text is invalid")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
	ErrInvalidPortNumber    = InvalidError("port number is invalid")
	ErrInvalidWordWidth     = InvalidError("word width is invalid")
	ErrMissingRequiredField = InvalidError("required field is missing")
	ErrNodeNotResponding    = ProcessError("node is not responding")
	ErrNodeStartFail        = ProcessError("node start failed")
	ErrNotInitialised       = ProcessError("not initialised")
	ErrRequiredNodeCommand  = InvalidError("node command is required")
	ErrWordOverflow         = LengthError("word value exceeds field width")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
// wrapped errors are unwrapped before classification
func IsErrExists(e error) bool   { var f ExistsError; return errors.As(e, &f) }
func IsErrInvalid(e error) bool  { var f InvalidError; return errors.As(e, &f) }
func IsErrLength(e error) bool   { var f LengthError; return errors.As(e, &f) }
func IsErrNotFound(e error) bool { var f NotFoundError; return errors.As(e, &f) }
func IsErrProcess(e error) bool  { var f ProcessError; return errors.As(e, &f) }
