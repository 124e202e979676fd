// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//GetDefaultCfgstring 获取默认的配置
func GetDefaultCfgstring() string {
	return defaultCfg
}

var defaultCfg = `
Title="local"

[log]
# 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
loglevel = "info"
logConsoleLevel = "info"
# 日志文件名，可带目录，所有生成的日志文件都放到此目录下
logFile = "logs/luckynumber.log"
maxFileSize = 300
maxBackups = 100
maxAge = 28
localTime = true
compress = true
callerFile = false
callerFunction = false

[store]
name = "state"
driver = "leveldb"
dbPath = "datadir"
dbCache = 128

[exec]
enableMetrics = true
metricsLogInterval = 0

[coins]
# 可以增发的地址
genesis = "12qyocayNF7Lv6C9qW4avxs2E7U41fKSfv"

[luckynumber]
triggerer = "12qyocayNF7Lv6C9qW4avxs2E7U41fKSfv"
tokenExec = "coins"
tokenSymbol = "bty"
entropy = 20210312

# 5 分钟档
[[luckynumber.tiers]]
entryFee = 100000000
triggererFee = 10000000
minEntries = 2
maxNumber = 5

# 1 小时档
[[luckynumber.tiers]]
entryFee = 500000000
triggererFee = 50000000
minEntries = 5
maxNumber = 15

# 12 小时档
[[luckynumber.tiers]]
entryFee = 1000000000
triggererFee = 100000000
minEntries = 10
maxNumber = 30
`
