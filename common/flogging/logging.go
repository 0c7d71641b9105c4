/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging

import (
	"fmt"
	"io"
	"os"
	"sync"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging/fabenc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SpecEnvVar names the environment variable consulted when a Config carries
// no LogSpec.
const SpecEnvVar = "RSAGEN_LOGGING_SPEC"

// Encoding names the record encoding selected by a format.
type Encoding string

const (
	CONSOLE Encoding = "console"
	JSON    Encoding = "json"
	LOGFMT  Encoding = "logfmt"
)

// Config carries the settings applied by New and Apply. Empty fields select
// the defaults.
type Config struct {
	// Format is "json", "logfmt" or a console format for fabenc.ParseFormat.
	Format string
	// LogSpec sets the levels; see LoggerLevels.ActivateSpec. Without one
	// the RSAGEN_LOGGING_SPEC variable is used, then INFO.
	LogSpec string
	// Writer receives the records. Defaults to os.Stderr.
	Writer io.Writer
}

// Logging owns the levels, the encoder and the sink shared by the loggers
// it creates. Every setting can change while loggers are in use.
type Logging struct {
	*LoggerLevels

	mutex    sync.RWMutex
	encoding Encoding
	encoder  zapcore.Encoder
	writer   zapcore.WriteSyncer
	observer Observer
}

// New returns a logging system configured with c.
func New(c Config) (*Logging, error) {
	l := &Logging{LoggerLevels: &LoggerLevels{}}
	if err := l.Apply(c); err != nil {
		return nil, err
	}
	return l, nil
}

// Apply replaces format, levels and writer with the values in c, falling
// back to defaults for empty fields. Nothing changes when c is invalid.
func (l *Logging) Apply(c Config) error {
	if c.Format == "" {
		c.Format = defaultFormat
	}
	encoding, encoder, err := newEncoder(c.Format)
	if err != nil {
		return err
	}

	if c.LogSpec == "" {
		c.LogSpec = os.Getenv(SpecEnvVar)
	}
	if c.LogSpec == "" {
		c.LogSpec = defaultLevel.String()
	}
	if err := l.ActivateSpec(c.LogSpec); err != nil {
		return err
	}

	if c.Writer == nil {
		c.Writer = os.Stderr
	}
	l.mutex.Lock()
	l.encoding, l.encoder = encoding, encoder
	l.mutex.Unlock()
	l.SetWriter(c.Writer)
	return nil
}

// SetFormat switches the record format of every logger.
func (l *Logging) SetFormat(format string) error {
	if format == "" {
		format = defaultFormat
	}
	encoding, encoder, err := newEncoder(format)
	if err != nil {
		return err
	}

	l.mutex.Lock()
	l.encoding, l.encoder = encoding, encoder
	l.mutex.Unlock()
	return nil
}

func newEncoder(format string) (Encoding, zapcore.Encoder, error) {
	config := zap.NewProductionEncoderConfig()
	config.NameKey = "name"

	switch format {
	case string(JSON):
		return JSON, zapcore.NewJSONEncoder(config), nil
	case string(LOGFMT):
		return LOGFMT, zaplogfmt.NewEncoder(config), nil
	}

	formatters, err := fabenc.ParseFormat(format)
	if err != nil {
		return "", nil, err
	}
	return CONSOLE, fabenc.NewConsoleEncoder(formatters...), nil
}

// Encoding reports the encoding of the active format.
func (l *Logging) Encoding() Encoding {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.encoding
}

// Encoder returns the encoder of the active format.
func (l *Logging) Encoder() zapcore.Encoder {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.encoder
}

// SetWriter sends records to w and returns the previous writer. Writers
// other than an *os.File must be safe for concurrent use.
func (l *Logging) SetWriter(w io.Writer) io.Writer {
	var ws zapcore.WriteSyncer
	switch w := w.(type) {
	case *os.File:
		ws = zapcore.Lock(w)
	case zapcore.WriteSyncer:
		ws = w
	default:
		ws = zapcore.AddSync(w)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	prev := l.writer
	l.writer = ws
	return prev
}

func (l *Logging) currentWriter() zapcore.WriteSyncer {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.writer
}

// Write passes b to the active writer.
func (l *Logging) Write(b []byte) (int, error) {
	return l.currentWriter().Write(b)
}

// Sync flushes the active writer.
func (l *Logging) Sync() error {
	return l.currentWriter().Sync()
}

// SetObserver installs observer, or removes it when nil, and returns the
// previous one.
func (l *Logging) SetObserver(observer Observer) Observer {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	prev := l.observer
	l.observer = observer
	return prev
}

func (l *Logging) currentObserver() Observer {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.observer
}

// Check forwards to the installed observer.
func (l *Logging) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) {
	if o := l.currentObserver(); o != nil {
		o.Check(e, ce)
	}
}

// WriteEntry forwards to the installed observer.
func (l *Logging) WriteEntry(e zapcore.Entry, fields []zapcore.Field) {
	if o := l.currentObserver(); o != nil {
		o.WriteEntry(e, fields)
	}
}

// ZapLogger returns a zap logger for name. It panics when name is not a dot
// separated logger name.
func (l *Logging) ZapLogger(name string) *zap.Logger {
	if !isValidLoggerName(name) {
		panic(fmt.Sprintf("invalid logger name: %s", name))
	}

	core := &Core{
		LevelEnabler: l.LoggerLevels,
		Levels:       l.LoggerLevels,
		Encoders:     l,
		Output:       l,
		Observer:     l,
	}
	return NewZapLogger(core).Named(name)
}

// Logger returns a sugared logger for name.
func (l *Logging) Logger(name string) *Logger {
	return NewLogger(l.ZapLogger(name))
}
