/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrClock is returned when the clock reports a time before the Unix epoch.
	ErrClock = errors.New("clock is before the Unix epoch")
	// ErrBase64Decode is returned for input outside the unpadded base64url alphabet or of invalid length.
	ErrBase64Decode = errors.New("invalid base64url")
	// ErrTextEncoding is returned when base64url decoded header bytes are not valid UTF-8.
	ErrTextEncoding = errors.New("header is not valid UTF-8")
	// ErrJSONFormat is returned when a header is not a valid JSON encoding of the target structure.
	ErrJSONFormat = errors.New("invalid header JSON")
	// ErrReservedHeaderKey is returned when an extension header uses the name of a named header field.
	ErrReservedHeaderKey = errors.New("reserved header key")
)

func jsonFormatError(err error) error {
	if errors.Is(err, ErrJSONFormat) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrJSONFormat, err)
}
