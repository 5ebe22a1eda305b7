/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type bufferLogger struct {
	lines []string
}

func (b *bufferLogger) Panicf(msg string, args ...interface{}) { b.add("PANIC", msg, args...) }
func (b *bufferLogger) Fatalf(msg string, args ...interface{}) { b.add("FATAL", msg, args...) }
func (b *bufferLogger) Errorf(msg string, args ...interface{}) { b.add("ERROR", msg, args...) }
func (b *bufferLogger) Warnf(msg string, args ...interface{})  { b.add("WARN", msg, args...) }
func (b *bufferLogger) Infof(msg string, args ...interface{})  { b.add("INFO", msg, args...) }
func (b *bufferLogger) Debugf(msg string, args ...interface{}) { b.add("DEBUG", msg, args...) }

func (b *bufferLogger) add(level, msg string, args ...interface{}) {
	b.lines = append(b.lines, level+" "+fmt.Sprintf(msg, args...))
}

type bufferProvider struct {
	logger *bufferLogger
}

func (p *bufferProvider) GetLogger(string) Logger {
	return p.logger
}

func TestCustomLogger(t *testing.T) {
	defer func() { loggerProviderOnce = sync.Once{} }()

	loggerProviderOnce = sync.Once{}

	const module = "sample-module-custom"

	custom := &bufferLogger{}
	Initialize(&bufferProvider{logger: custom})

	SetLevel(module, WARNING)

	logger := New(module)
	logger.Debugf("debug %d", 1)
	logger.Infof("info %d", 2)
	logger.Warnf("warn %d", 3)
	logger.Errorf("error %d", 4)

	require.Contains(t, custom.lines, "WARN warn 3")
	require.Contains(t, custom.lines, "ERROR error 4")
	require.NotContains(t, custom.lines, "DEBUG debug 1")
	require.NotContains(t, custom.lines, "INFO info 2")
}

func TestZapLog(t *testing.T) {
	buf := &bytes.Buffer{}

	logger := newZapLogWithOutput("sample-module-zap", buf)
	logger.Infof("hello %s", "world")
	logger.Debugf("value=%d", 42)

	out := buf.String()
	require.Contains(t, out, "hello world")
	require.Contains(t, out, "value=42")
	require.Contains(t, out, "sample-module-zap")
	require.Contains(t, out, "INFO")
	require.Contains(t, out, "DEBUG")
}

func TestModLogPanicf(t *testing.T) {
	custom := &bufferLogger{}
	logger := &modLog{logger: custom, module: "sample-module-panic"}

	SetLevel("sample-module-panic", CRITICAL)

	logger.Panicf("boom")
	logger.Fatalf("fatal")
	logger.Errorf("filtered")

	require.Equal(t, []string{"PANIC boom", "FATAL fatal"}, custom.lines)
}
