// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/luckynumber/common"
	"github.com/33cn/luckynumber/types"
)

// AccountResult defines account result command
type AccountResult struct {
	Currency int32  `json:"currency,omitempty"`
	Balance  string `json:"balance"`
	Frozen   string `json:"frozen"`
	Addr     string `json:"addr,omitempty"`
}

// ReceiptLogResult 解析后的日志
type ReceiptLogResult struct {
	Ty     int32           `json:"ty"`
	TyName string          `json:"tyName,omitempty"`
	Log    json.RawMessage `json:"log,omitempty"`
	RawLog string          `json:"rawLog,omitempty"`
}

// ReceiptResult 解析后的收据
type ReceiptResult struct {
	Ty     int32               `json:"ty"`
	Height int64               `json:"height"`
	Logs   []*ReceiptLogResult `json:"logs"`
}

//DecodeAccount 金额格式化为带小数的币数
func DecodeAccount(acc *types.Account) *AccountResult {
	return &AccountResult{
		Addr:     acc.GetAddr(),
		Currency: acc.Currency,
		Balance:  types.FormatAmount(acc.GetBalance()),
		Frozen:   types.FormatAmount(acc.GetFrozen()),
	}
}

//DecodeReceipt 按执行器的日志表解析收据，解析不了的日志输出原始 hex
func DecodeReceipt(typ types.ExecutorType, receipt *types.Receipt, height int64) *ReceiptResult {
	res := &ReceiptResult{Ty: receipt.GetTy(), Height: height}
	for _, l := range receipt.GetLogs() {
		item := &ReceiptLogResult{Ty: l.GetTy()}
		name, data, err := typ.DecodeLogJSON(l.GetTy(), l.GetLog())
		if err != nil {
			item.RawLog = common.ToHex(l.GetLog())
		} else {
			item.TyName = name
			item.Log = data
		}
		res.Logs = append(res.Logs, item)
	}
	return res
}

//PrintJSON 缩进输出 json
func PrintJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}
