/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	fieldModule = "module"
	// Log, modLog and zapLog frames sit between the caller and the sugared logger.
	callerSkip = 3
)

// zapLog is the default Logger. Level filtering is done by modLog, so the core accepts every level.
type zapLog struct {
	sugar *zap.SugaredLogger
}

func newZapLog(module string) *zapLog {
	return newZapLogWithOutput(module, os.Stdout)
}

func newZapLogWithOutput(module string, w io.Writer) *zapLog {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(callerSkip)).With(zap.String(fieldModule, module))

	return &zapLog{sugar: logger.Sugar()}
}

func (l *zapLog) Fatalf(msg string, args ...interface{}) {
	l.sugar.Fatalf(msg, args...)
}

func (l *zapLog) Panicf(msg string, args ...interface{}) {
	l.sugar.Panicf(msg, args...)
}

func (l *zapLog) Errorf(msg string, args ...interface{}) {
	l.sugar.Errorf(msg, args...)
}

func (l *zapLog) Warnf(msg string, args ...interface{}) {
	l.sugar.Warnf(msg, args...)
}

func (l *zapLog) Infof(msg string, args ...interface{}) {
	l.sugar.Infof(msg, args...)
}

func (l *zapLog) Debugf(msg string, args ...interface{}) {
	l.sugar.Debugf(msg, args...)
}
