// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/33cn/luckynumber/common"
	"github.com/33cn/luckynumber/common/address"
	_ "github.com/33cn/luckynumber/plugin/dapp/luckynumber"
	lnexec "github.com/33cn/luckynumber/plugin/dapp/luckynumber/executor"
	ty "github.com/33cn/luckynumber/plugin/dapp/luckynumber/types"
	_ "github.com/33cn/luckynumber/system/dapp/coins"
	ct "github.com/33cn/luckynumber/system/dapp/coins/types"
	commandtypes "github.com/33cn/luckynumber/system/dapp/commands/types"
	"github.com/33cn/luckynumber/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	genesisAddr = address.PubKeyToAddress(common.Sha256([]byte("genesis"))).String()
	aliceAddr   = address.PubKeyToAddress(common.Sha256([]byte("alice"))).String()
)

var nodeCfg = fmt.Sprintf(`
Title="local"

[store]
driver = "memdb"

[exec]
enableMetrics = true

[coins]
genesis = "%s"

[luckynumber]
triggerer = "%s"
entropy = 7

[[luckynumber.tiers]]
entryFee = 100000000
triggererFee = 10000000
minEntries = 2
maxNumber = 5
`, genesisAddr, genesisAddr)

func newCmd(t *testing.T, conf string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("conf", "", "")
	cmd.Flags().String("datadir", "", "")
	cmd.Flags().Bool("metrics", false, "")
	require.NoError(t, cmd.Flags().Set("conf", conf))
	return cmd
}

func findLog(res *commandtypes.ReceiptResult, name string) *commandtypes.ReceiptLogResult {
	for _, l := range res.Logs {
		if l.TyName == name {
			return l
		}
	}
	return nil
}

func TestLoadConfig(t *testing.T) {
	f, err := ioutil.TempFile("", "luckynumber-*.toml")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	_, err = f.WriteString(nodeCfg)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	cmd := newCmd(t, f.Name())
	require.NoError(t, cmd.Flags().Set("datadir", "somewhere"))
	cfg, err := commandtypes.LoadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.Equal(t, "somewhere", cfg.Store.DbPath)

	cfg, err = commandtypes.LoadConfig(newCmd(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "leveldb", cfg.Store.Driver)

	_, err = commandtypes.LoadConfig(newCmd(t, f.Name()+".missing"))
	assert.Error(t, err)
}

func TestNodeSendTx(t *testing.T) {
	cfg, err := types.InitCfgString(nodeCfg)
	require.NoError(t, err)
	node, err := commandtypes.NewNode(cfg)
	require.NoError(t, err)
	defer node.Close()

	_, err = node.SendTx(genesisAddr, ct.CoinsX, "Genesis", &ct.AssetsGenesis{To: aliceAddr, Amount: 10 * types.Coin})
	require.NoError(t, err)
	_, err = node.SendTx(aliceAddr, ct.CoinsX, "TransferToExec", &ct.AssetsTransferToExec{ExecName: ty.LuckyNumberX, Amount: 5 * types.Coin})
	require.NoError(t, err)

	in := *lnexec.GenesisInit()
	res, err := node.SendTx(genesisAddr, ty.LuckyNumberX, "Init", &in)
	require.NoError(t, err)
	assert.NotNil(t, findLog(res, "LogLuckyInit"))

	res, err = node.SendTx(aliceAddr, ty.LuckyNumberX, "Bet", &ty.LuckyBet{Tier: 1, Number: 3, Amount: types.Coin})
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), res.Ty)
	assert.Equal(t, int64(4), res.Height)
	l := findLog(res, "LogLuckyBet")
	require.NotNil(t, l)
	assert.Contains(t, string(l.Log), aliceAddr)

	reply, err := node.Query(ty.LuckyNumberX, "GetConfig", &types.ReqNil{})
	require.NoError(t, err)
	assert.Equal(t, genesisAddr, reply.(*ty.ReplyConfig).Owner)

	reply, err = node.Query(ct.CoinsX, "GetBalance", &ct.ReqBalance{Addresses: []string{aliceAddr}, Execer: ty.LuckyNumberX})
	require.NoError(t, err)
	acc := commandtypes.DecodeAccount(reply.(*ct.ReplyAccounts).Accs[0])
	assert.Equal(t, "4.00000000", acc.Balance)

	_, err = node.SendTx(aliceAddr, "nosuchexec", "Bet", &ty.LuckyBet{})
	assert.Equal(t, types.ErrExecNotFound, errors.Cause(err))
	_, err = node.SendTx(aliceAddr, ty.LuckyNumberX, "Nothing", &ty.LuckyBet{})
	assert.Equal(t, types.ErrActionNotSupport, errors.Cause(err))
	_, err = node.SendTx(aliceAddr, ty.LuckyNumberX, "Bet", &ty.LuckyBet{Tier: 1, Number: 3, Amount: types.Coin})
	assert.Equal(t, ty.ErrBetExists, errors.Cause(err))
	assert.Equal(t, int64(4), node.Exec.Height())
}

func TestDecodeReceipt(t *testing.T) {
	typ := types.LoadExecutorType(ty.LuckyNumberX)
	require.NotNil(t, typ)
	receipt := &types.Receipt{
		Ty: types.ExecOk,
		Logs: []*types.ReceiptLog{
			{Ty: ty.TyLogLuckyViewingKey, Log: types.Encode(&ty.ReceiptLuckyViewingKey{Addr: aliceAddr, Key: "api_key_x"})},
			{Ty: 9999, Log: []byte{1, 2}},
		},
	}
	res := commandtypes.DecodeReceipt(typ, receipt, 3)
	require.Len(t, res.Logs, 2)
	assert.Equal(t, "LogLuckyViewingKey", res.Logs[0].TyName)
	assert.Contains(t, string(res.Logs[0].Log), "api_key_x")
	assert.Equal(t, "", res.Logs[1].TyName)
	assert.Equal(t, "0x0102", res.Logs[1].RawLog)
}
