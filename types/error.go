// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// 系统级别的错误
var (
	ErrNotFound           = errors.New("ErrNotFound")
	ErrAmount             = errors.New("ErrAmount")
	ErrAmountOverflow     = errors.New("ErrAmountOverflow")
	ErrAmountUnderflow    = errors.New("ErrAmountUnderflow")
	ErrNoBalance          = errors.New("ErrNoBalance")
	ErrSendSameToRecv     = errors.New("ErrSendSameToRecv")
	ErrExecNameNotAllow   = errors.New("ErrExecNameNotAllow")
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
	ErrActionNotSupport   = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport    = errors.New("ErrQueryNotSupport")
	ErrExecNotFound       = errors.New("ErrExecNotFound")
	ErrInvalidParam       = errors.New("ErrInvalidParam")
	ErrDecode             = errors.New("ErrDecode")
	ErrEmpty              = errors.New("ErrEmpty")
	ErrNilTransaction     = errors.New("ErrNilTransaction")
	ErrInvalidAddress     = errors.New("ErrInvalidAddress")
	ErrConfigNotFound     = errors.New("ErrConfigNotFound")
)

//reflect
var (
	ErrMethodReturnType = errors.New("ErrMethodReturnType")
	ErrLogType          = errors.New("ErrLogType")
	ErrUnRegistedDriver = errors.New("ErrUnRegistedDriver")
	ErrNotAllow         = errors.New("ErrNotAllow")
)
