// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
)

var keyPrefix = "mavl-" + ty.LuckyNumberX + "-"

func calcConfigKey() []byte {
	return []byte(keyPrefix + "config")
}

func calcTierKey(tier int32) []byte {
	return []byte(fmt.Sprintf("%stier-%d", keyPrefix, tier))
}

//轮次数量
func calcRoundsKey(tier int32) []byte {
	return []byte(fmt.Sprintf("%srounds-%d", keyPrefix, tier))
}

func calcRoundKey(tier int32, index uint32) []byte {
	return []byte(fmt.Sprintf("%srounds-%d-%010d", keyPrefix, tier, index))
}

func calcUserBetsKey(addr string) []byte {
	return []byte(keyPrefix + "bets-" + addr)
}

func calcViewingKeyKey(addr string) []byte {
	return []byte(keyPrefix + "viewkey-" + addr)
}
