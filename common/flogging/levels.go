/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

const (
	// DisabledLevel is above every level a logger can emit.
	DisabledLevel = zapcore.FatalLevel + 1

	// PayloadLevel sits below debug for dumping key material while
	// developing.
	PayloadLevel = zapcore.DebugLevel - 1
)

// levelNames maps lower case level names, including the aliases accepted in
// log specs, to zap levels.
var levelNames = map[string]zapcore.Level{
	"payload":  PayloadLevel,
	"debug":    zapcore.DebugLevel,
	"info":     zapcore.InfoLevel,
	"notice":   zapcore.InfoLevel,
	"warn":     zapcore.WarnLevel,
	"warning":  zapcore.WarnLevel,
	"error":    zapcore.ErrorLevel,
	"critical": zapcore.ErrorLevel,
	"dpanic":   zapcore.DPanicLevel,
	"panic":    zapcore.PanicLevel,
	"fatal":    zapcore.FatalLevel,
}

func lookupLevel(name string) (zapcore.Level, bool) {
	lvl, ok := levelNames[strings.ToLower(name)]
	return lvl, ok
}

// NameToLevel converts a level name to a zapcore.Level. Unknown names map to
// zapcore.InfoLevel.
func NameToLevel(level string) zapcore.Level {
	if lvl, ok := lookupLevel(level); ok {
		return lvl
	}
	return zapcore.InfoLevel
}

// IsValidLevel reports whether level names a log level.
func IsValidLevel(level string) bool {
	_, ok := lookupLevel(level)
	return ok
}

var loggerNameRegexp = regexp.MustCompile(`^[[:alnum:]_-]+(\.[[:alnum:]_-]+)*$`)

// isValidLoggerName accepts dot separated segments of letters, digits,
// underscores and dashes.
func isValidLoggerName(loggerName string) bool {
	return loggerNameRegexp.MatchString(loggerName)
}

// levelSpec is a parsed logging specification. Keys of loggers ending in a
// period apply to that exact logger; other keys are prefixes.
type levelSpec struct {
	defaultLevel zapcore.Level
	loggers      map[string]zapcore.Level
}

// parseSpec parses spec, keeping fallback as the default level when spec
// does not name one.
//
// The logging specification has the following form:
//
//	[<logger>[,<logger>...]=]<level>[:[<logger>[,<logger>...]=]<level>...]
func parseSpec(spec string, fallback zapcore.Level) (levelSpec, error) {
	parsed := levelSpec{defaultLevel: fallback, loggers: map[string]zapcore.Level{}}
	bad := func(format string, args ...interface{}) (levelSpec, error) {
		return levelSpec{}, errors.Errorf("invalid logging specification '%s': "+format, append([]interface{}{spec}, args...)...)
	}

	for _, segment := range strings.Split(spec, ":") {
		names, levelName, scoped := strings.Cut(segment, "=")
		if !scoped {
			if segment == "" {
				parsed.defaultLevel = zapcore.InfoLevel
				continue
			}
			lvl, ok := lookupLevel(segment)
			if !ok {
				return bad("bad segment '%s'", segment)
			}
			parsed.defaultLevel = lvl
			continue
		}

		if strings.Contains(levelName, "=") {
			return bad("bad segment '%s'", segment)
		}
		if names == "" {
			return bad("no logger specified in segment '%s'", segment)
		}
		lvl, ok := lookupLevel(levelName)
		if !ok {
			return bad("bad segment '%s'", segment)
		}
		for _, name := range strings.Split(names, ",") {
			if !isValidLoggerName(strings.TrimSuffix(name, ".")) {
				return bad("bad logger name '%s'", name)
			}
			parsed.loggers[name] = lvl
		}
	}

	return parsed, nil
}

// levelFor walks from the exact logger name up through its parents and
// returns the first level the spec sets.
func (s levelSpec) levelFor(loggerName string) zapcore.Level {
	if lvl, ok := s.loggers[loggerName+"."]; ok {
		return lvl
	}
	for name := loggerName; name != ""; {
		if lvl, ok := s.loggers[name]; ok {
			return lvl
		}
		idx := strings.LastIndex(name, ".")
		if idx < 0 {
			break
		}
		name = name[:idx]
	}
	return s.defaultLevel
}

// minLevel is the lowest level any logger is enabled for.
func (s levelSpec) minLevel() zapcore.Level {
	lowest := s.defaultLevel
	for _, lvl := range s.loggers {
		if lvl < lowest {
			lowest = lvl
		}
	}
	return lowest
}

func (s levelSpec) String() string {
	fields := make([]string, 0, len(s.loggers)+1)
	for name, lvl := range s.loggers {
		fields = append(fields, fmt.Sprintf("%s=%s", name, lvl))
	}
	sort.Strings(fields)
	return strings.Join(append(fields, s.defaultLevel.String()), ":")
}

// LoggerLevels tracks the logging level of named loggers. The zero value
// enables every logger at INFO.
type LoggerLevels struct {
	mutex sync.RWMutex
	spec  levelSpec
	cache map[string]zapcore.Level
}

// DefaultLevel returns the level of loggers the active spec does not name.
func (l *LoggerLevels) DefaultLevel() zapcore.Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.spec.defaultLevel
}

// ActivateSpec replaces the active levels with those of spec. A bare level
// sets the default; a logger name ending in a period matches only that
// logger, otherwise the level also applies to its descendants. The active
// levels are left untouched when spec is invalid.
func (l *LoggerLevels) ActivateSpec(spec string) error {
	parsed, err := parseSpec(spec, l.DefaultLevel())
	if err != nil {
		return err
	}

	l.mutex.Lock()
	l.spec = parsed
	l.cache = nil
	l.mutex.Unlock()
	return nil
}

// Level returns the effective level of the named logger.
func (l *LoggerLevels) Level(loggerName string) zapcore.Level {
	l.mutex.RLock()
	lvl, ok := l.cache[loggerName]
	l.mutex.RUnlock()
	if ok {
		return lvl
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	lvl = l.spec.levelFor(loggerName)
	if l.cache == nil {
		l.cache = map[string]zapcore.Level{}
	}
	l.cache[loggerName] = lvl
	return lvl
}

// Spec returns the active spec in normalized form: named loggers sorted,
// default level last.
func (l *LoggerLevels) Spec() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.spec.String()
}

// Enabled reports whether any logger is enabled for lvl. zap calls it before
// the per logger check in Core.Check.
func (l *LoggerLevels) Enabled(lvl zapcore.Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.spec.minLevel().Enabled(lvl)
}
