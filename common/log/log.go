// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log 设置 log15 的根 handler：控制台彩色输出，文件按 lumberjack 滚动
package log

import (
	"runtime"
	"sync"

	"github.com/33cn/luckynumber/types"
	"github.com/inconshreveable/log15"
	colorable "github.com/mattn/go-colorable"
	"gopkg.in/natefinch/lumberjack.v2"
)

//DefaultLogFile 没有日志配置时的文件名
const DefaultLogFile = "logs/luckynumber.log"

var (
	mu sync.Mutex
	// 重新设置时关闭旧的文件
	rotator *lumberjack.Logger
)

//New 带上下文的 logger
func New(ctx ...interface{}) log15.Logger {
	return log15.Root().New(ctx...)
}

//SetLogLevel 只输出到控制台
func SetLogLevel(level string) {
	mu.Lock()
	defer mu.Unlock()
	closeRotator()
	log15.Root().SetHandler(consoleHandler(level))
}

//SetFileLog 同时输出到控制台和文件，没有文件名时只输出到控制台
func SetFileLog(cfg *types.Log) {
	if cfg == nil {
		cfg = &types.Log{LogFile: DefaultLogFile}
	}
	// 没有配置级别时只打印 error，防止日志太多
	if cfg.Loglevel == "" {
		cfg.Loglevel = log15.LvlError.String()
	}
	if cfg.LogConsoleLevel == "" {
		cfg.LogConsoleLevel = log15.LvlError.String()
	}
	if cfg.LogFile == "" {
		SetLogLevel(cfg.LogConsoleLevel)
		return
	}
	mu.Lock()
	defer mu.Unlock()
	closeRotator()
	rotator = &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    int(cfg.MaxFileSize),
		MaxBackups: int(cfg.MaxBackups),
		MaxAge:     int(cfg.MaxAge),
		LocalTime:  cfg.LocalTime,
		Compress:   cfg.Compress,
	}
	var fh log15.Handler = log15.StreamHandler(rotator, log15.LogfmtFormat())
	if cfg.CallerFile {
		fh = log15.CallerFileHandler(fh)
	}
	if cfg.CallerFunction {
		fh = log15.CallerFuncHandler(fh)
	}
	log15.Root().SetHandler(log15.MultiHandler(
		consoleHandler(cfg.LogConsoleLevel),
		log15.LvlFilterHandler(parseLevel(cfg.Loglevel), fh),
	))
}

func closeRotator() {
	if rotator != nil {
		rotator.Close()
		rotator = nil
	}
}

func consoleHandler(level string) log15.Handler {
	format := log15.TerminalFormat()
	if runtime.GOOS == "windows" {
		format = log15.LogfmtFormat()
	}
	return log15.LvlFilterHandler(parseLevel(level), log15.StreamHandler(colorable.NewColorableStdout(), format))
}

// 级别写错时按 error 处理
func parseLevel(level string) log15.Lvl {
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		return log15.LvlError
	}
	return lvl
}
