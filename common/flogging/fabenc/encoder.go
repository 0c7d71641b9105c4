/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package fabenc renders zap entries for the console. A record is the output
// of the Formatters parsed from a %{verb} style format followed by the
// entry's structured fields in logfmt form.
package fabenc

import (
	"time"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

var pool = buffer.NewPool()

// ConsoleEncoder is a zapcore.Encoder for human readable records. The
// embedded Encoder renders the structured fields only.
type ConsoleEncoder struct {
	zapcore.Encoder
	formatters []Formatter
}

// NewConsoleEncoder returns an encoder that writes formatters in order and
// then the fields.
func NewConsoleEncoder(formatters ...Formatter) *ConsoleEncoder {
	return &ConsoleEncoder{
		Encoder: zaplogfmt.NewEncoder(zapcore.EncoderConfig{
			LineEnding:     "\n",
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
				enc.AppendString(t.Format("2006-01-02T15:04:05.999Z07:00"))
			},
		}),
		formatters: formatters,
	}
}

func (c *ConsoleEncoder) Clone() zapcore.Encoder {
	return &ConsoleEncoder{Encoder: c.Encoder.Clone(), formatters: c.formatters}
}

// EncodeEntry renders entry. A space separates the formatted prefix from
// the fields when both are present.
func (c *ConsoleEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	encodedFields, err := c.Encoder.EncodeEntry(entry, fields)
	if err != nil {
		return nil, err
	}
	defer encodedFields.Free()

	line := pool.Get()
	for _, f := range c.formatters {
		f.Format(line, entry, fields)
	}
	// encodedFields holds at least the line ending.
	if line.Len() > 0 && encodedFields.Len() > 1 {
		line.AppendByte(' ')
	}
	line.Write(encodedFields.Bytes())
	return line, nil
}
