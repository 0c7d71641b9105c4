/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabenc

import (
	"fmt"
	"io"
	"regexp"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// A Formatter writes one part of a console record.
type Formatter interface {
	Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field)
}

// Text is a Formatter for the literal text between verbs.
type Text string

func (t Text) Format(w io.Writer, _ zapcore.Entry, _ []zapcore.Field) {
	io.WriteString(w, string(t))
}

// Verb is a Formatter for a %{name} or %{name:arg} directive.
type Verb struct {
	Name string
	Arg  string
}

func (v Verb) Format(w io.Writer, entry zapcore.Entry, _ []zapcore.Field) {
	verbs[v.Name].render(w, v.Arg, entry)
}

type verb struct {
	// defaultArg is used when a directive carries no argument.
	defaultArg string
	validArgs  []string
	render     func(w io.Writer, arg string, entry zapcore.Entry)
}

var verbs = map[string]verb{
	"color": {
		validArgs: []string{"", "bold", "reset"},
		render:    renderColor,
	},
	"id": {
		defaultArg: "d",
		render: func(w io.Writer, arg string, _ zapcore.Entry) {
			fmt.Fprintf(w, "%"+arg, atomic.AddUint64(&sequence, 1))
		},
	},
	"level": {
		defaultArg: "s",
		render: func(w io.Writer, arg string, entry zapcore.Entry) {
			fmt.Fprintf(w, "%"+arg, entry.Level.CapitalString())
		},
	},
	"message": {
		defaultArg: "s",
		render: func(w io.Writer, arg string, entry zapcore.Entry) {
			fmt.Fprintf(w, "%"+arg, strings.TrimRight(entry.Message, "\n"))
		},
	},
	"module": {
		defaultArg: "s",
		render: func(w io.Writer, arg string, entry zapcore.Entry) {
			fmt.Fprintf(w, "%"+arg, entry.LoggerName)
		},
	},
	"shortfunc": {
		defaultArg: "s",
		render: func(w io.Writer, arg string, entry zapcore.Entry) {
			fmt.Fprintf(w, "%"+arg, shortFunc(entry.Caller.PC))
		},
	},
	"time": {
		defaultArg: "2006-01-02T15:04:05.999Z07:00",
		render: func(w io.Writer, layout string, entry zapcore.Entry) {
			io.WriteString(w, entry.Time.Format(layout))
		},
	},
}

var directiveRegexp = regexp.MustCompile(`%{([a-z]+)(?::(.*?))?}`)

// ParseFormat splits a console format into Formatters. Directives take the
// form %{verb} or %{verb:arg}; the verbs are
//
//	%{color}      SGR color of the level; %{color:bold} and %{color:reset}
//	%{id}         process wide sequence number
//	%{level}      level of the entry
//	%{message}    message of the entry
//	%{module}     logger name
//	%{shortfunc}  name of the calling function
//	%{time}       entry time; the argument is a time layout
//
// For every verb except color and time the argument is a fmt verb without
// the leading percent sign, as in %{level:.4s} or %{id:03x}. Verbs without
// an argument get their default one, so the result is comparable.
func ParseFormat(format string) ([]Formatter, error) {
	formatters := []Formatter{}
	cursor := 0
	for _, m := range directiveRegexp.FindAllStringSubmatchIndex(format, -1) {
		if m[0] > cursor {
			formatters = append(formatters, Text(format[cursor:m[0]]))
		}
		cursor = m[1]

		name := format[m[2]:m[3]]
		var arg string
		if m[4] >= 0 {
			arg = format[m[4]:m[5]]
		}

		v, ok := verbs[name]
		if !ok {
			return nil, errors.Errorf("unknown verb: %s", name)
		}
		if v.validArgs != nil && !contains(v.validArgs, arg) {
			return nil, errors.Errorf("invalid %s option: %s", name, arg)
		}
		if arg == "" {
			arg = v.defaultArg
		}
		formatters = append(formatters, Verb{Name: name, Arg: arg})
	}
	if cursor < len(format) {
		formatters = append(formatters, Text(format[cursor:]))
	}
	return formatters, nil
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

var sequence uint64

// SetSequence sets the last issued %{id}; the next record gets s+1.
func SetSequence(s uint64) { atomic.StoreUint64(&sequence, s) }

func shortFunc(pc uintptr) string {
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "(unknown)"
	}
	name := f.Name()
	return name[strings.LastIndex(name, ".")+1:]
}

// levelColors holds the SGR foreground code of each level.
var levelColors = map[zapcore.Level]int{
	zapcore.DebugLevel:  36, // cyan
	zapcore.InfoLevel:   34, // blue
	zapcore.WarnLevel:   33, // yellow
	zapcore.ErrorLevel:  31, // red
	zapcore.DPanicLevel: 35, // magenta
	zapcore.PanicLevel:  35,
	zapcore.FatalLevel:  35,
}

func renderColor(w io.Writer, arg string, entry zapcore.Entry) {
	code := levelColors[entry.Level]
	switch {
	case arg == "reset" || code == 0:
		io.WriteString(w, "\x1b[0m")
	case arg == "bold":
		fmt.Fprintf(w, "\x1b[%d;1m", code)
	default:
		fmt.Fprintf(w, "\x1b[%dm", code)
	}
}
