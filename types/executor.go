// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"reflect"
	"sync"
)

//LogInfo 日志类型对应的结构体，用于解析收据日志
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

//ExecutorType 执行器的交易与日志类型描述
type ExecutorType interface {
	GetName() string
	//GetPayload 返回一个新的 action 结构体
	GetPayload() Message
	GetTypeMap() map[string]int32
	GetLogMap() map[int64]*LogInfo
	ActionName(tx *Transaction) string
	DecodePayload(tx *Transaction) (Message, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	CreateTransaction(action string, data Message) (*Transaction, error)
	DecodeLog(ty int32, data []byte) (Message, error)
	DecodeLogJSON(ty int32, data []byte) (string, json.RawMessage, error)
}

//ExecutorAction action 结构体都带有类型字段
type ExecutorAction interface {
	GetTy() int32
}

var (
	executorMu   sync.RWMutex
	executorType = make(map[string]ExecutorType)
)

//RegistorExecutor 注册执行器类型
func RegistorExecutor(exec string, util ExecutorType) {
	executorMu.Lock()
	defer executorMu.Unlock()
	if _, exist := executorType[exec]; exist {
		panic("DupExecutorType")
	}
	executorType[exec] = util
}

//LoadExecutorType 根据名字获取执行器类型
func LoadExecutorType(exec string) ExecutorType {
	executorMu.RLock()
	defer executorMu.RUnlock()
	return executorType[exec]
}

//ExecTypeBase 执行器类型的公共实现，子类提供 GetName/GetPayload/GetTypeMap/GetLogMap
type ExecTypeBase struct {
	child     ExecutorType
	actionMap map[int32]string
}

//SetChild 设置子类
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
	base.actionMap = make(map[int32]string)
	for name, ty := range child.GetTypeMap() {
		base.actionMap[ty] = name
	}
}

//GetChild 子类
func (base *ExecTypeBase) GetChild() ExecutorType {
	return base.child
}

//ActionName 交易的 action 名字，解析失败返回 unknown
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	name, _, err := base.DecodePayloadValue(tx)
	if err != nil {
		return "unknown"
	}
	return name
}

//DecodePayload 解析交易的 payload
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (Message, error) {
	if tx == nil {
		return nil, ErrNilTransaction
	}
	payload := base.child.GetPayload()
	if payload == nil {
		return nil, ErrActionNotSupport
	}
	if err := Decode(tx.GetPayload(), payload); err != nil {
		return nil, ErrDecode
	}
	return payload, nil
}

//DecodePayloadValue 解析出 action 名字和对应字段的值
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "", reflect.Value{}, err
	}
	action, ok := payload.(ExecutorAction)
	if !ok {
		return "", reflect.Value{}, ErrActionNotSupport
	}
	name, ok := base.actionMap[action.GetTy()]
	if !ok {
		return "", reflect.Value{}, ErrActionNotSupport
	}
	field := reflect.ValueOf(payload).Elem().FieldByName(name)
	if IsNilVal(field) {
		return "", reflect.Value{}, ErrActionNotSupport
	}
	return name, field, nil
}

//CreateTransaction 构造 action 交易，From 由调用方签名时填写
func (base *ExecTypeBase) CreateTransaction(action string, data Message) (*Transaction, error) {
	ty, ok := base.child.GetTypeMap()[action]
	if !ok {
		return nil, ErrActionNotSupport
	}
	payload := base.child.GetPayload()
	value := reflect.ValueOf(payload).Elem()
	field := value.FieldByName(action)
	if !field.IsValid() || !reflect.TypeOf(data).AssignableTo(field.Type()) {
		return nil, ErrInvalidParam
	}
	field.Set(reflect.ValueOf(data))
	tyField := value.FieldByName("Ty")
	if !tyField.IsValid() {
		return nil, ErrActionNotSupport
	}
	tyField.SetInt(int64(ty))
	return &Transaction{Execer: []byte(base.child.GetName()), Payload: Encode(payload)}, nil
}

//DecodeLog 根据日志类型解析日志内容
func (base *ExecTypeBase) DecodeLog(ty int32, data []byte) (Message, error) {
	info, ok := base.logInfo(ty)
	if !ok || info.Ty == nil {
		return nil, ErrLogType
	}
	msg, ok := reflect.New(info.Ty).Interface().(Message)
	if !ok {
		return nil, ErrLogType
	}
	if err := Decode(data, msg); err != nil {
		return nil, ErrDecode
	}
	return msg, nil
}

//DecodeLogJSON 解析日志，返回日志名和 json
func (base *ExecTypeBase) DecodeLogJSON(ty int32, data []byte) (string, json.RawMessage, error) {
	msg, err := base.DecodeLog(ty, data)
	if err != nil {
		return "", nil, err
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return "", nil, err
	}
	info, _ := base.logInfo(ty)
	return info.Name, b, nil
}

func (base *ExecTypeBase) logInfo(ty int32) (*LogInfo, bool) {
	if info, ok := base.child.GetLogMap()[int64(ty)]; ok {
		return info, true
	}
	info, ok := SystemLog[int64(ty)]
	return info, ok
}
