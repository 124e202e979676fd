// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	drivers "github.com/33cn/luckynumber/system/dapp"
	ct "github.com/33cn/luckynumber/system/dapp/coins/types"
	"github.com/33cn/luckynumber/types"
)

//Query_GetBalance 查询余额
func (c *Coins) Query_GetBalance(in *ct.ReqBalance) (types.Message, error) {
	acc := c.GetCoinsAccount()
	var reply ct.ReplyAccounts
	for _, addr := range in.Addresses {
		var a *types.Account
		var err error
		if in.Execer == "" {
			a, err = acc.LoadAccount(addr)
		} else {
			a, err = acc.LoadExecAccount(addr, drivers.ExecAddress(in.Execer))
		}
		if err != nil {
			return nil, err
		}
		reply.Accs = append(reply.Accs, a)
	}
	return &reply, nil
}
