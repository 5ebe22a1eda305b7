/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package log implements a module based, level filtered logger for fmt-style log messages.
package log

import (
	"sync"
)

//nolint:lll
const (
	// loggerNotInitializedMsg is used when a logger is not initialized before logging.
	loggerNotInitializedMsg = "Default logger initialized (please call log.Initialize() if you wish to use a custom logger)"
	loggerModule            = "didcomm/common"
)

// Logger represents a general-purpose logger.
type Logger interface {
	Panicf(msg string, args ...interface{})
	Fatalf(msg string, args ...interface{})
	Errorf(msg string, args ...interface{})
	Warnf(msg string, args ...interface{})
	Infof(msg string, args ...interface{})
	Debugf(msg string, args ...interface{})
}

// LoggerProvider is a factory for moduled loggers.
type LoggerProvider interface {
	GetLogger(module string) Logger
}

// Log is an implementation of Logger interface.
// It encapsulates default or custom logger to provide module and level based logging.
type Log struct {
	instance Logger
	module   string
	once     sync.Once
}

// New creates and returns a Logger implementation based on given module name.
// note: the underlying logger instance is lazy initialized on first use.
// To use your own logger implementation provide logger provider in 'Initialize()' before logging any line.
// If 'Initialize()' is not called before logging any line then the zap based default is used.
func New(module string) *Log {
	return &Log{module: module}
}

// Fatalf calls Fatalf function of underlying logger
// should possibly cause system shutdown based on implementation.
func (l *Log) Fatalf(msg string, args ...interface{}) {
	l.logger().Fatalf(msg, args...)
}

// Panicf calls Panic function of underlying logger
// should possibly cause panic based on implementation.
func (l *Log) Panicf(msg string, args ...interface{}) {
	l.logger().Panicf(msg, args...)
}

// Debugf calls Debugf function of underlying logger.
func (l *Log) Debugf(msg string, args ...interface{}) {
	l.logger().Debugf(msg, args...)
}

// Infof calls Infof function of underlying logger.
func (l *Log) Infof(msg string, args ...interface{}) {
	l.logger().Infof(msg, args...)
}

// Warnf calls Warnf function of underlying logger.
func (l *Log) Warnf(msg string, args ...interface{}) {
	l.logger().Warnf(msg, args...)
}

// Errorf calls Errorf function of underlying logger.
func (l *Log) Errorf(msg string, args ...interface{}) {
	l.logger().Errorf(msg, args...)
}

func (l *Log) logger() Logger {
	l.once.Do(func() {
		l.instance = loggerProvider().GetLogger(l.module)
	})

	return l.instance
}

// loggerProviderInstance is logger factory singleton - access only via loggerProvider()
//
//nolint:gochecknoglobals
var (
	loggerProviderInstance LoggerProvider
	loggerProviderOnce     sync.Once
)

// Initialize sets new custom logging provider which takes over logging operations.
// It is required to call this function before making any loggings for using custom loggers.
func Initialize(l LoggerProvider) {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = &modlogProvider{custom: l}
		logger := loggerProviderInstance.GetLogger(loggerModule)
		logger.Debugf("Logger provider initialized")
	})
}

func loggerProvider() LoggerProvider {
	loggerProviderOnce.Do(func() {
		// A custom logger must be initialized prior to the first log output
		// Otherwise the built-in logger is used
		loggerProviderInstance = &modlogProvider{}
		logger := loggerProviderInstance.GetLogger(loggerModule)
		logger.Debugf(loggerNotInitializedMsg)
	})

	return loggerProviderInstance
}

// modlogProvider is a module based logger provider wrapped on given custom logging provider
// if custom logger provider is not provided, then the zap logger will be used.
type modlogProvider struct {
	custom LoggerProvider
}

// GetLogger returns moduled logger implementation.
func (p *modlogProvider) GetLogger(module string) Logger {
	var logger Logger
	if p.custom != nil {
		logger = p.custom.GetLogger(module)
	} else {
		logger = newZapLog(module)
	}

	return &modLog{logger: logger, module: module}
}

// modLog is a moduled wrapper for any underlying Logger implementation.
// Since this is a moduled wrapper each module can have different logging levels (default is INFO).
type modLog struct {
	logger Logger
	module string
}

func (m *modLog) Fatalf(format string, args ...interface{}) {
	m.logger.Fatalf(format, args...)
}

func (m *modLog) Panicf(format string, args ...interface{}) {
	m.logger.Panicf(format, args...)
}

func (m *modLog) Debugf(format string, args ...interface{}) {
	if !IsEnabledFor(m.module, DEBUG) {
		return
	}

	m.logger.Debugf(format, args...)
}

func (m *modLog) Infof(format string, args ...interface{}) {
	if !IsEnabledFor(m.module, INFO) {
		return
	}

	m.logger.Infof(format, args...)
}

func (m *modLog) Warnf(format string, args ...interface{}) {
	if !IsEnabledFor(m.module, WARNING) {
		return
	}

	m.logger.Warnf(format, args...)
}

func (m *modLog) Errorf(format string, args ...interface{}) {
	if !IsEnabledFor(m.module, ERROR) {
		return
	}

	m.logger.Errorf(format, args...)
}
