/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Level is a log level for a logging message.
type Level int

// Log levels.
const (
	CRITICAL Level = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

const (
	defaultLevel        = INFO
	defaultModuleName   = ""
	moduleSpecSeparator = ":"
	levelSpecSeparator  = "="
)

//nolint:gochecknoglobals
var levelNames = []string{
	"CRITICAL",
	"ERROR",
	"WARNING",
	"INFO",
	"DEBUG",
}

//nolint:gochecknoglobals
var levels = &moduleLevels{levels: map[string]Level{}}

type moduleLevels struct {
	mutex  sync.RWMutex
	levels map[string]Level
}

func (l *moduleLevels) get(module string) Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	level, ok := l.levels[module]
	if ok {
		return level
	}

	level, ok = l.levels[defaultModuleName]
	if ok {
		return level
	}

	return defaultLevel
}

func (l *moduleLevels) set(module string, level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.levels[module] = level
}

// String returns the name of the level.
func (level Level) String() string {
	if level < CRITICAL || level > DEBUG {
		return fmt.Sprintf("Level(%d)", int(level))
	}

	return levelNames[level]
}

// ParseLevel returns the log level from a string representation.
func ParseLevel(level string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(name, level) {
			return Level(i), nil
		}
	}

	return ERROR, fmt.Errorf("logger: invalid log level '%s'", level)
}

// SetLevel sets the log level for the given module.
func SetLevel(module string, level Level) {
	levels.set(module, level)
}

// SetDefaultLevel sets the level used by modules which have no level of their own.
func SetDefaultLevel(level Level) {
	levels.set(defaultModuleName, level)
}

// GetLevel returns the log level for the given module.
// If not set the default level is returned, which is INFO unless changed by SetDefaultLevel.
func GetLevel(module string) Level {
	return levels.get(module)
}

// IsEnabledFor checks if given log level is enabled for given module.
func IsEnabledFor(module string, level Level) bool {
	return level <= levels.get(module)
}

// SetSpec sets the log levels for individual modules as well as the default log level.
// The format of the spec is as follows:
//
//	module1=level1:module2=level2:module3=level3:defaultLevel
//
// Valid log levels are: critical, error, warning, info, debug
func SetSpec(spec string) error {
	parsed := make(map[string]Level)

	for _, part := range strings.Split(spec, moduleSpecSeparator) {
		if part == "" {
			continue
		}

		module, levelStr := defaultModuleName, part

		if kv := strings.Split(part, levelSpecSeparator); len(kv) == 2 { //nolint:gomnd
			module, levelStr = kv[0], kv[1]
		} else if len(kv) > 2 { //nolint:gomnd
			return fmt.Errorf("logger: invalid log spec '%s'", part)
		}

		level, err := ParseLevel(levelStr)
		if err != nil {
			return err
		}

		parsed[module] = level
	}

	if len(parsed) == 0 {
		return errors.New("logger: empty log spec")
	}

	for module, level := range parsed {
		SetLevel(module, level)
	}

	return nil
}

// GetSpec returns the log spec which specifies the log level of each individual module. The spec is
// in the following format:
//
//	module1=level1:module2=level2:module3=level3:defaultLevel
func GetSpec() string {
	levels.mutex.RLock()
	defer levels.mutex.RUnlock()

	var parts []string

	for module, level := range levels.levels {
		if module == defaultModuleName {
			continue
		}

		parts = append(parts, module+levelSpecSeparator+strings.ToLower(level.String()))
	}

	sort.Strings(parts)

	def, ok := levels.levels[defaultModuleName]
	if !ok {
		def = defaultLevel
	}

	return strings.Join(append(parts, strings.ToLower(def.String())), moduleSpecSeparator)
}
