/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger wraps core in a zap.Logger that records the caller and adds
// stack traces to errors.
func NewZapLogger(core zapcore.Core, options ...zap.Option) *zap.Logger {
	defaults := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	return zap.New(core, append(defaults, options...)...)
}

// NewLogger wraps l in a Logger.
func NewLogger(l *zap.Logger, options ...zap.Option) *Logger {
	options = append(options, zap.AddCallerSkip(1))
	return &Logger{s: l.WithOptions(options...).Sugar()}
}

// Logger is the sugared logger handed out by MustGetLogger. The methods
// without an f or w suffix join their arguments with spaces.
type Logger struct{ s *zap.SugaredLogger }

func joinArgs(args []interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

func (l *Logger) Debug(args ...interface{}) { l.s.Debug(joinArgs(args)) }
func (l *Logger) Info(args ...interface{})  { l.s.Info(joinArgs(args)) }
func (l *Logger) Warn(args ...interface{})  { l.s.Warn(joinArgs(args)) }
func (l *Logger) Error(args ...interface{}) { l.s.Error(joinArgs(args)) }

func (l *Logger) Debugf(template string, args ...interface{}) { l.s.Debugf(template, args...) }
func (l *Logger) Infof(template string, args ...interface{})  { l.s.Infof(template, args...) }
func (l *Logger) Warnf(template string, args ...interface{})  { l.s.Warnf(template, args...) }
func (l *Logger) Errorf(template string, args ...interface{}) { l.s.Errorf(template, args...) }
func (l *Logger) Panicf(template string, args ...interface{}) { l.s.Panicf(template, args...) }

func (l *Logger) Debugw(msg string, keysAndValues ...interface{}) { l.s.Debugw(msg, keysAndValues...) }
func (l *Logger) Infow(msg string, keysAndValues ...interface{})  { l.s.Infow(msg, keysAndValues...) }
func (l *Logger) Warnw(msg string, keysAndValues ...interface{})  { l.s.Warnw(msg, keysAndValues...) }
func (l *Logger) Errorw(msg string, keysAndValues ...interface{}) { l.s.Errorw(msg, keysAndValues...) }

// Named returns a child logger; its name is this logger's name, a period
// and name.
func (l *Logger) Named(name string) *Logger { return &Logger{s: l.s.Named(name)} }

// With returns a logger that adds the key value pairs to every record.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{s: l.s.With(keysAndValues...)}
}

func (l *Logger) IsEnabledFor(level zapcore.Level) bool {
	return l.s.Desugar().Core().Enabled(level)
}

func (l *Logger) Zap() *zap.Logger { return l.s.Desugar() }
func (l *Logger) Sync() error      { return l.s.Sync() }
