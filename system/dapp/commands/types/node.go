// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 命令行的公共部分：打开本地节点，发送交易，查询，格式化输出
package types

import (
	"fmt"
	"os"

	dbm "github.com/33cn/luckynumber/common/db"
	"github.com/33cn/luckynumber/executor"
	"github.com/33cn/luckynumber/pluginmgr"
	"github.com/33cn/luckynumber/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//LoadConfig 读取 --conf 指定的配置文件，没有指定时使用默认配置
func LoadConfig(cmd *cobra.Command) (*types.Config, error) {
	path, _ := cmd.Flags().GetString("conf")
	var cfg *types.Config
	var err error
	if path == "" {
		cfg, err = types.InitCfgString(types.GetDefaultCfgstring())
	} else {
		cfg, err = types.InitCfg(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load config %q", path)
	}
	if datadir, _ := cmd.Flags().GetString("datadir"); datadir != "" {
		cfg.Store.DbPath = datadir
	}
	return cfg, nil
}

//Node 本地节点，持有状态数据库和执行器
type Node struct {
	Cfg  *types.Config
	Exec *executor.Executor
	db   dbm.DB

	showMetrics bool
}

//NewNode 初始化插件的执行器并打开状态数据库
func NewNode(cfg *types.Config, opts ...executor.Option) (*Node, error) {
	if err := pluginmgr.InitExec(cfg); err != nil {
		return nil, errors.Wrap(err, "init exec")
	}
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s db", cfg.Store.Driver)
	}
	exec, err := executor.New(cfg.Exec, db, opts...)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Node{Cfg: cfg, Exec: exec, db: db}, nil
}

//OpenNode 按命令行参数打开本地节点
func OpenNode(cmd *cobra.Command) (*Node, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	node, err := NewNode(cfg)
	if err != nil {
		return nil, err
	}
	node.showMetrics, _ = cmd.Flags().GetBool("metrics")
	return node, nil
}

//Close 关闭，开启 --metrics 时先把统计输出到 stderr
func (n *Node) Close() {
	if n.showMetrics {
		if err := n.Exec.Metrics().WriteText(os.Stderr); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	n.Exec.Close()
	n.db.Close()
}

//SendTx 以 from 的身份执行一笔 execer 的 action 交易
func (n *Node) SendTx(from, execer, action string, payload types.Message) (*ReceiptResult, error) {
	typ := types.LoadExecutorType(execer)
	if typ == nil {
		return nil, errors.Wrapf(types.ErrExecNotFound, "executor type %s", execer)
	}
	tx, err := typ.CreateTransaction(action, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s.%s", execer, action)
	}
	tx.From = from
	tx.Nonce = n.Exec.Height() + 1
	receipt, err := n.Exec.ExecTx(tx)
	if err != nil {
		return nil, err
	}
	return DecodeReceipt(typ, receipt, n.Exec.Height()), nil
}

//Query 调用执行器的查询函数
func (n *Node) Query(execer, funcname string, param types.Message) (types.Message, error) {
	return n.Exec.Query(execer, funcname, param)
}

//AddFromFlag 交易命令都需要的发送者地址
func AddFromFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "sender account address")
	cmd.MarkFlagRequired("from")
}

//RunTx 打开节点，执行交易并打印收据
func RunTx(cmd *cobra.Command, execer, action string, payload types.Message) {
	from, _ := cmd.Flags().GetString("from")
	node, err := OpenNode(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer node.Close()
	res, err := node.SendTx(from, execer, action, payload)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	PrintJSON(res)
}

//RunQuery 打开节点，执行查询并打印结果，convert 可以为空
func RunQuery(cmd *cobra.Command, execer, funcname string, param types.Message, convert func(types.Message) interface{}) {
	node, err := OpenNode(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer node.Close()
	reply, err := node.Query(execer, funcname, param)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if convert != nil {
		PrintJSON(convert(reply))
		return
	}
	PrintJSON(reply)
}
