/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package config resolves the Configuration Snapshot: listen port, log
// path, log permission, timestamp interval, status-endpoint address, and
// daemon flag. Resolution layers, lowest to highest priority: built-in
// defaults, an optional YAML config file discovered by Viper, environment
// variables prefixed AESDSOCKET_, and command-line flags.
package config

import (
	"strings"
	"time"

	libdur "github.com/nabbar/aesdsocket/internal/duration"
	"github.com/nabbar/aesdsocket/internal/logperm"

	libmap "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "AESDSOCKET"

	DefaultPort              = 9000
	DefaultLogPath           = "/var/tmp/aesdsocketdata"
	DefaultLogPerm           = logperm.Perm(0o644)
	DefaultTimestampInterval = 10
	DefaultStatusAddr        = ""
)

// Snapshot is the immutable, fully-resolved configuration passed by value
// into every component that needs it.
type Snapshot struct {
	Port              int
	LogPath           string
	LogPerm           logperm.Perm
	TimestampInterval libdur.Duration
	StatusAddr        string
	Daemon            bool
}

// Resolve layers defaults, an optional config file, environment variables,
// and flags (in increasing priority) into a Snapshot.
func Resolve(flags *pflag.FlagSet) (Snapshot, error) {
	v := viper.New()

	v.SetDefault("port", DefaultPort)
	v.SetDefault("log-path", DefaultLogPath)
	v.SetDefault("log-perm", DefaultLogPerm.String())
	v.SetDefault("timestamp-interval", DefaultTimestampInterval)
	v.SetDefault("status-addr", DefaultStatusAddr)
	v.SetDefault("daemon", false)

	v.SetConfigName(".aesdsocket")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	v.AddConfigPath("/etc/aesdsocket")

	if e := v.ReadInConfig(); e != nil {
		if _, ok := e.(viper.ConfigFileNotFoundError); !ok {
			return Snapshot{}, ErrorReadConfigFile.Error(e)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		_ = v.BindPFlags(flags)
	}

	perm, e := logperm.Parse(v.GetString("log-perm"))
	if e != nil {
		return Snapshot{}, ErrorInvalidLogPerm.Error(e)
	}

	interval, e := resolveInterval(v)
	if e != nil {
		return Snapshot{}, ErrorInvalidTimestampInterval.Error(e)
	}

	return Snapshot{
		Port:              v.GetInt("port"),
		LogPath:           v.GetString("log-path"),
		LogPerm:           perm,
		TimestampInterval: interval,
		StatusAddr:        v.GetString("status-addr"),
		Daemon:            v.GetBool("daemon"),
	}, nil
}

func resolveInterval(v *viper.Viper) (libdur.Duration, error) {
	raw := v.Get("timestamp-interval")

	switch t := raw.(type) {
	case int:
		return libdur.Seconds(int64(t)), nil
	case int64:
		return libdur.Seconds(t), nil
	case float64:
		return libdur.ParseFloat64(t * float64(time.Second)), nil
	case string:
		return libdur.Parse(t)
	default:
		return libdur.Seconds(DefaultTimestampInterval), nil
	}
}

// ViperDecoderHook exposes the logperm decode hook for callers that want to
// mapstructure-decode a Snapshot-shaped struct directly instead of using
// Resolve's explicit field-by-field construction.
func ViperDecoderHook() libmap.DecodeHookFuncType {
	return logperm.ViperDecoderHook()
}
