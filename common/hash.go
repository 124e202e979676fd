// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package common 哈希与 hex 编码
package common

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/ripemd160"
)

//Sha256 sha256(b)
func Sha256(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

//Sha2Sum sha256(sha256(b))，地址校验和用
func Sha2Sum(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

//Rimp160AfterSha256 ripemd160(sha256(b))，公钥转地址用
func Rimp160AfterSha256(b []byte) (out [20]byte) {
	first := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(first[:])
	copy(out[:], h.Sum(nil))
	return out
}

//Bytes2Hex 不带 0x 前缀
func Bytes2Hex(b []byte) string {
	return hex.EncodeToString(b)
}

//Hex2Bytes 不带 0x 前缀
func Hex2Bytes(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

//ToHex 带 0x 前缀，空数据返回空字符串
func ToHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return "0x" + hex.EncodeToString(b)
}

//FromHex 可以带 0x 前缀，奇数长度时前面补 0
func FromHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}
