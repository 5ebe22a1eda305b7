/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package utils

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// DecodeJSONMap decodes a generic JSON object (as produced by json.Unmarshal into a map) into result,
// a pointer to a struct with `json` tags. Keys match tag names exactly and unknown keys are ignored.
// json.Number values fit unsigned fields without a float64 round trip and never decode into strings.
func DecodeJSONMap(m map[string]interface{}, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: JSONNumberHook(),
		TagName:    "json",
		Result:     result,
		MatchName:  exactMatch,
	})
	if err != nil {
		return fmt.Errorf("new json map decoder: %w", err)
	}

	return decoder.Decode(m)
}

// JSONNumberHook converts json.Number into uint64 with strconv.ParseUint, so values above
// math.MaxInt64 decode and negative or fractional ones fail. A json.Number targeting a string
// is an error: mapstructure would otherwise accept it as a string.
func JSONNumberHook() mapstructure.DecodeHookFuncType {
	return func(
		_ reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		n, ok := data.(json.Number)
		if !ok {
			return data, nil
		}

		switch t.Kind() { //nolint:exhaustive
		case reflect.Uint64:
			return strconv.ParseUint(n.String(), 10, 64)
		case reflect.String:
			return nil, fmt.Errorf("expected a string, got number %s", n)
		default:
			return data, nil
		}
	}
}

func exactMatch(mapKey, fieldName string) bool {
	return mapKey == fieldName
}
