/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xxzx6uzm3/asymmetric-ciphers/common/flogging"
	"go.uber.org/zap/zapcore"
)

func TestNameToLevel(t *testing.T) {
	levels := []struct {
		names []string
		level zapcore.Level
	}{
		{names: []string{"PAYLOAD", "payload"}, level: flogging.PayloadLevel},
		{names: []string{"DEBUG", "debug"}, level: zapcore.DebugLevel},
		{names: []string{"INFO", "info", "NOTICE", "notice"}, level: zapcore.InfoLevel},
		{names: []string{"WARNING", "WARN", "warning", "warn"}, level: zapcore.WarnLevel},
		{names: []string{"ERROR", "error", "CRITICAL", "critical"}, level: zapcore.ErrorLevel},
		{names: []string{"FATAL", "fatal"}, level: zapcore.FatalLevel},
		{names: []string{"", "bogus"}, level: zapcore.InfoLevel},
	}

	for _, tc := range levels {
		for _, name := range tc.names {
			assert.Equal(t, tc.level, flogging.NameToLevel(name), "level name %q", name)
		}
	}
	assert.False(t, flogging.IsValidLevel("bogus"))
	assert.True(t, flogging.IsValidLevel("warning"))
}

func TestLoggerLevelsActivateSpec(t *testing.T) {
	tests := []struct {
		spec                 string
		expectedLevels       map[string]zapcore.Level
		expectedDefaultLevel zapcore.Level
	}{
		{
			spec:                 "DEBUG",
			expectedLevels:       map[string]zapcore.Level{},
			expectedDefaultLevel: zapcore.DebugLevel,
		},
		{
			spec: "rsa,keystore=warn:error",
			expectedLevels: map[string]zapcore.Level{
				"rsa":        zapcore.WarnLevel,
				"rsa.keygen": zapcore.WarnLevel,
				"keystore":   zapcore.WarnLevel,
				"operations": zapcore.ErrorLevel,
			},
			expectedDefaultLevel: zapcore.ErrorLevel,
		},
		{
			spec: "rsa.=debug:info",
			expectedLevels: map[string]zapcore.Level{
				"rsa":        zapcore.DebugLevel,
				"rsa.keygen": zapcore.InfoLevel,
			},
			expectedDefaultLevel: zapcore.InfoLevel,
		},
		{
			spec: "rsa=info:rsa.keygen=debug:rsa.keygen.primes=error",
			expectedLevels: map[string]zapcore.Level{
				"rsa":               zapcore.InfoLevel,
				"rsa.keygen":        zapcore.DebugLevel,
				"rsa.keygen.primes": zapcore.ErrorLevel,
				"rsa.cipher":        zapcore.InfoLevel,
			},
			expectedDefaultLevel: zapcore.InfoLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			ll := &flogging.LoggerLevels{}

			err := ll.ActivateSpec(tc.spec)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedDefaultLevel, ll.DefaultLevel())
			for name, lvl := range tc.expectedLevels {
				assert.Equal(t, lvl, ll.Level(name), "logger %s", name)
			}
		})
	}
}

func TestLoggerLevelsActivateSpecErrors(t *testing.T) {
	tests := []struct {
		spec string
		err  string
	}{
		{spec: "=INFO", err: "invalid logging specification '=INFO': no logger specified in segment '=INFO'"},
		{spec: "rsa=warn:bogus", err: "invalid logging specification 'rsa=warn:bogus': bad segment 'bogus'"},
		{spec: "a.b=bogus", err: "invalid logging specification 'a.b=bogus': bad segment 'a.b=bogus'"},
		{spec: "a*=info", err: "invalid logging specification 'a*=info': bad logger name 'a*'"},
	}
	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			ll := &flogging.LoggerLevels{}
			err := ll.ActivateSpec("fatal:a=warn")
			assert.NoError(t, err)

			err = ll.ActivateSpec(tc.spec)
			assert.EqualError(t, err, tc.err)

			assert.Equal(t, zapcore.FatalLevel, ll.DefaultLevel(), "default should not change")
			assert.Equal(t, zapcore.WarnLevel, ll.Level("a.b"), "log levels should not change")
		})
	}
}

func TestSpec(t *testing.T) {
	ll := &flogging.LoggerLevels{}
	assert.Equal(t, "info", ll.Spec())

	ll.ActivateSpec("keystore,rsa=debug:warn")
	assert.Equal(t, "keystore=debug:rsa=debug:warn", ll.Spec())
}

func TestEnabledLevel(t *testing.T) {
	ll := &flogging.LoggerLevels{}
	assert.NoError(t, ll.ActivateSpec("warn:rsa=debug"))
	assert.True(t, ll.Enabled(zapcore.DebugLevel))

	assert.NoError(t, ll.ActivateSpec("warn"))
	assert.False(t, ll.Enabled(zapcore.InfoLevel))
	assert.True(t, ll.Enabled(zapcore.WarnLevel))
}
