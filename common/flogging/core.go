/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging

import (
	"go.uber.org/zap/zapcore"
)

// EncoderSource supplies the encoder for the next record. Records are
// encoded with whatever encoder is current when they are written, so a
// format change reaches loggers created earlier.
type EncoderSource interface {
	Encoder() zapcore.Encoder
}

// Observer is told about every entry a Core checks and every entry it
// writes.
type Observer interface {
	Check(e zapcore.Entry, ce *zapcore.CheckedEntry)
	WriteEntry(e zapcore.Entry, fields []zapcore.Field)
}

// Core is the zapcore.Core behind every flogging logger. Context fields
// added with With are kept unencoded and handed to the encoder on each
// write.
type Core struct {
	zapcore.LevelEnabler
	Levels   *LoggerLevels
	Encoders EncoderSource
	Output   zapcore.WriteSyncer
	Observer Observer

	context []zapcore.Field
}

func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.context = append(c.context[:len(c.context):len(c.context)], fields...)
	return &clone
}

func (c *Core) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Observer != nil {
		c.Observer.Check(e, ce)
	}
	if !c.Enabled(e.Level) || !c.Levels.Level(e.LoggerName).Enabled(e.Level) {
		return ce
	}
	return ce.AddCore(e, c)
}

func (c *Core) Write(e zapcore.Entry, fields []zapcore.Field) error {
	all := fields
	if len(c.context) > 0 {
		all = append(c.context[:len(c.context):len(c.context)], fields...)
	}

	buf, err := c.Encoders.Encoder().EncodeEntry(e, all)
	if err != nil {
		return err
	}
	_, err = c.Output.Write(buf.Bytes())
	buf.Free()
	if err != nil {
		return err
	}

	if e.Level > zapcore.ErrorLevel {
		c.Sync()
	}
	if c.Observer != nil {
		c.Observer.WriteEntry(e, fields)
	}
	return nil
}

func (c *Core) Sync() error {
	return c.Output.Sync()
}
