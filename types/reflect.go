// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Is this an exported - upper case - name?
func isExported(name string) bool {
	rune, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(rune)
}

//ListMethod 列出对象所有导出的方法
func ListMethod(action interface{}) map[string]reflect.Method {
	return ListMethodByType(reflect.TypeOf(action))
}

//ListMethodByType 列出类型所有导出的方法
func ListMethodByType(typ reflect.Type) map[string]reflect.Method {
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		mname := method.Name
		// Method must be exported.
		if method.PkgPath != "" || !isExported(mname) {
			continue
		}
		methods[mname] = method
	}
	return methods
}

//ListMethodByPrefix 只保留以 prefixes 开头的方法，比如 Exec_ Query_
func ListMethodByPrefix(action interface{}, prefixes ...string) map[string]reflect.Method {
	methods := ListMethod(action)
	for name := range methods {
		keep := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(name, prefix) {
				keep = true
				break
			}
		}
		if !keep {
			delete(methods, name)
		}
	}
	return methods
}

//IsOK 检查反射调用的返回值个数，并且都可以转为 interface
func IsOK(list []reflect.Value, n int) bool {
	if len(list) != n {
		return false
	}
	for i := 0; i < len(list); i++ {
		if !IsNilVal(list[i]) && !list[i].CanInterface() {
			return false
		}
	}
	return true
}

//IsNilVal 是否是空值
func IsNilVal(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

//CallQueryFunc 调用 Query_xxx(in) (Message, error)
func CallQueryFunc(this reflect.Value, f reflect.Method, in Message) (reply Message, err error) {
	valueret := f.Func.Call([]reflect.Value{this, reflect.ValueOf(in)})
	if !IsOK(valueret, 2) {
		return nil, ErrMethodReturnType
	}
	r1 := valueret[0].Interface()
	if r1 != nil {
		r, ok := r1.(Message)
		if !ok {
			return nil, ErrMethodReturnType
		}
		reply = r
	}
	r2 := valueret[1].Interface()
	if r2 != nil {
		r, ok := r2.(error)
		if !ok {
			return nil, ErrMethodReturnType
		}
		return nil, r
	}
	if IsNilVal(reflect.ValueOf(reply)) {
		return nil, ErrActionNotSupport
	}
	return reply, nil
}
