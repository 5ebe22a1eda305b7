/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocklogger

import (
	"fmt"
	"sync"

	"github.com/rmourey26/didcomm-go/pkg/common/log"
)

// MockLogger is a mocked logger that can be used for testing.
type MockLogger struct {
	mutex    sync.Mutex
	AllLogs  []string
	FatalLog string
	PanicLog string
	ErrorLog string
	WarnLog  string
	InfoLog  string
	DebugLog string
}

// Fatalf records a fatal log line.
func (l *MockLogger) Fatalf(msg string, args ...interface{}) {
	l.record(&l.FatalLog, msg, args...)
}

// Panicf records a panic log line.
func (l *MockLogger) Panicf(msg string, args ...interface{}) {
	l.record(&l.PanicLog, msg, args...)
}

// Errorf records an error log line.
func (l *MockLogger) Errorf(msg string, args ...interface{}) {
	l.record(&l.ErrorLog, msg, args...)
}

// Warnf records a warning log line.
func (l *MockLogger) Warnf(msg string, args ...interface{}) {
	l.record(&l.WarnLog, msg, args...)
}

// Infof records an info log line.
func (l *MockLogger) Infof(msg string, args ...interface{}) {
	l.record(&l.InfoLog, msg, args...)
}

// Debugf records a debug log line.
func (l *MockLogger) Debugf(msg string, args ...interface{}) {
	l.record(&l.DebugLog, msg, args...)
}

func (l *MockLogger) record(last *string, msg string, args ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	line := fmt.Sprintf(msg, args...)
	l.AllLogs = append(l.AllLogs, line)
	*last = line
}

// Provider is a mock logger provider that can be used for testing.
type Provider struct {
	MockLogger *MockLogger
}

// GetLogger returns the mock logger for every module.
func (p *Provider) GetLogger(string) log.Logger {
	return p.MockLogger
}
