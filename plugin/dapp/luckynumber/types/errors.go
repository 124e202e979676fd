// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrNotInit           = errors.New("ErrNotInit")
	ErrAlreadyInit       = errors.New("ErrAlreadyInit")
	ErrNoPrivilege       = errors.New("ErrNoPrivilege")
	ErrTierNotFound      = errors.New("ErrTierNotFound")
	ErrInvalidTierConfig = errors.New("ErrInvalidTierConfig")
	ErrRoundNotFound     = errors.New("ErrRoundNotFound")
	ErrBetAmount         = errors.New("ErrBetAmount")
	ErrBetNumber         = errors.New("ErrBetNumber")
	ErrBetExists         = errors.New("ErrBetExists")
	ErrBetNotFound       = errors.New("ErrBetNotFound")
	ErrRewardClaimed     = errors.New("ErrRewardClaimed")
	ErrNotWinner         = errors.New("ErrNotWinner")
	ErrPoolUnderflow     = errors.New("ErrPoolUnderflow")
	ErrViewingKey        = errors.New("ErrViewingKey")
	ErrEmptyTiers        = errors.New("ErrEmptyTiers")
)
