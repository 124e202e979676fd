// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"reflect"

	"github.com/33cn/luckynumber/types"
	"github.com/golang/protobuf/proto"
)

// Query defines query function
func (d *DriverBase) Query(funcname string, params []byte) (msg types.Message, err error) {
	funcname = "Query_" + funcname
	f, ok := d.funcmap[funcname]
	if !ok {
		blog.Error(funcname+" funcname not find", "func", funcname)
		return nil, types.ErrQueryNotSupport
	}
	ty := f.Type
	if ty.NumIn() != 2 {
		blog.Error(funcname+" err num in param", "num", ty.NumIn())
		return nil, types.ErrQueryNotSupport
	}
	paramin := ty.In(1)
	if paramin.Kind() != reflect.Ptr {
		blog.Error(funcname + "  param is not pointer")
		return nil, types.ErrQueryNotSupport
	}
	p := reflect.New(paramin.Elem())
	in, ok := p.Interface().(proto.Message)
	if !ok {
		blog.Error(funcname + " in param is not proto.Message")
		return nil, types.ErrQueryNotSupport
	}
	if err := types.Decode(params, in); err != nil {
		return nil, types.ErrDecode
	}
	return types.CallQueryFunc(d.childValue, f, in)
}
