// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/shopspring/decimal"
)

var coinDecimal = decimal.New(Coin, 0)

//FormatAmount 把最小单位的金额格式化成带8位小数的字符串
func FormatAmount(amount int64) string {
	return decimal.New(amount, 0).Div(coinDecimal).StringFixed(8)
}

//ParseAmount 把字符串形式的币数转换成最小单位，不允许超过8位小数
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrAmount
	}
	units := d.Mul(coinDecimal)
	if !units.Equal(units.Truncate(0)) {
		return 0, ErrAmount
	}
	if units.IsNegative() || units.GreaterThanOrEqual(decimal.New(MaxCoin, 0)) {
		return 0, ErrAmount
	}
	return units.IntPart(), nil
}
