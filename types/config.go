// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"io/ioutil"

	tml "github.com/BurntSushi/toml"
)

// Config 配置文件
type Config struct {
	Title string `toml:"Title"`
	Log   *Log   `toml:"log"`
	Store *Store `toml:"store"`
	Exec  *Exec  `toml:"exec"`

	md  tml.MetaData
	sub map[string]tml.Primitive
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// Store 状态数据库配置
type Store struct {
	Name    string `toml:"name"`
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// Exec 执行器配置
type Exec struct {
	EnableMetrics bool `toml:"enableMetrics"`
	// 指标输出到日志的间隔（秒），0 表示不输出
	MetricsLogInterval int64 `toml:"metricsLogInterval"`
}

//InitCfg 从文件读取配置
func InitCfg(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return InitCfgString(string(data))
}

//InitCfgString 从字符串读取配置
func InitCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, err
	}
	sub := make(map[string]tml.Primitive)
	md, err := tml.Decode(cfgstring, &sub)
	if err != nil {
		return nil, err
	}
	cfg.md = md
	cfg.sub = sub
	fillDefault(&cfg)
	return &cfg, nil
}

func fillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "state"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "memdb"
	}
	if cfg.Store.DbCache == 0 {
		cfg.Store.DbCache = 128
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
}

//GetSubConfig 读取插件自己的配置段，比如 [luckynumber]
func (c *Config) GetSubConfig(name string, v interface{}) error {
	prim, ok := c.sub[name]
	if !ok {
		return ErrConfigNotFound
	}
	return c.md.PrimitiveDecode(prim, v)
}
