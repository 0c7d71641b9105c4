/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging

import (
	"io"

	"go.uber.org/zap/zapcore"
)

const (
	defaultFormat = "%{color}%{time:2006-01-02 15:04:05.000 MST} %{level:.4s} [%{module}] %{shortfunc}%{color:reset} %{message}"
	defaultLevel  = zapcore.InfoLevel
)

// Global backs MustGetLogger and the other package level functions.
var Global = mustNew(Config{})

func mustNew(c Config) *Logging {
	l, err := New(c)
	if err != nil {
		panic(err)
	}
	return l
}

// Init applies config to Global and panics when it is invalid.
func Init(config Config) {
	if err := Global.Apply(config); err != nil {
		panic(err)
	}
}

// Reset restores the default configuration of Global.
func Reset() {
	Global.Apply(Config{})
}

// LoggerLevel returns the name of the level active for loggerName.
func LoggerLevel(loggerName string) string {
	return Global.Level(loggerName).String()
}

// MustGetLogger returns a Global logger and panics when loggerName is not
// a valid logger name.
func MustGetLogger(loggerName string) *Logger {
	return Global.Logger(loggerName)
}

// ActivateSpec is used to activate a logging specification on Global. It
// panics when spec is invalid.
func ActivateSpec(spec string) {
	if err := Global.ActivateSpec(spec); err != nil {
		panic(err)
	}
}

// SetWriter replaces the writer of Global and returns the previous one.
func SetWriter(w io.Writer) io.Writer {
	return Global.SetWriter(w)
}

// SetObserver replaces the observer of Global and returns the previous one.
func SetObserver(observer Observer) Observer {
	return Global.SetObserver(observer)
}
