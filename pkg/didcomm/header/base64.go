/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// EncodeBase64 encodes data as unpadded base64url.
func EncodeBase64(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeBase64 decodes unpadded base64url. Padding, line breaks and non-zero trailing bits are rejected.
func DecodeBase64(encoded string) ([]byte, error) {
	// the decoder skips '\r' and '\n' even in strict mode
	if strings.ContainsAny(encoded, "\r\n") {
		return nil, fmt.Errorf("%w: line break in input", ErrBase64Decode)
	}

	data, err := base64.RawURLEncoding.Strict().DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBase64Decode, err)
	}

	return data, nil
}

// Base64Buffer is a byte slice that travels in JSON as an unpadded base64url string.
type Base64Buffer []byte

// MarshalJSON encodes the buffer as a base64url JSON string.
func (b Base64Buffer) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeBase64(b))
}

// UnmarshalJSON decodes a base64url JSON string.
func (b *Base64Buffer) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var encoded string

	if err := json.Unmarshal(data, &encoded); err != nil {
		return jsonFormatError(err)
	}

	decoded, err := DecodeBase64(encoded)
	if err != nil {
		return err
	}

	*b = decoded

	return nil
}

// EncodeJWMHeader encodes the JSON of h as base64url. A nil header encodes to "" (absent).
func EncodeJWMHeader(h *JWMHeader) (string, error) {
	if h == nil {
		return "", nil
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(h.toJSON()); err != nil {
		return "", fmt.Errorf("marshal JWM header: %w", err)
	}

	return EncodeBase64(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// DecodeJWMHeader reverses EncodeJWMHeader. An empty string decodes to a nil header.
func DecodeJWMHeader(encoded string) (*JWMHeader, error) {
	if encoded == "" {
		return nil, nil
	}

	headerBytes, err := DecodeBase64(encoded)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(headerBytes) {
		return nil, ErrTextEncoding
	}

	var h JWMHeader

	if err = json.Unmarshal(headerBytes, &h); err != nil {
		return nil, jsonFormatError(err)
	}

	return &h, nil
}

// Base64JWMHeader is a JWMHeader embedded in an envelope as base64url(JSON(header)), e.g. a JWE "protected"
// member. Use a *Base64JWMHeader field with omitempty so an absent header stays absent.
type Base64JWMHeader JWMHeader

// MarshalJSON encodes the header as a base64url JSON string.
func (b Base64JWMHeader) MarshalJSON() ([]byte, error) {
	h := JWMHeader(b)

	encoded, err := EncodeJWMHeader(&h)
	if err != nil {
		return nil, err
	}

	return json.Marshal(encoded)
}

// UnmarshalJSON decodes a base64url JSON string holding a JWM header.
func (b *Base64JWMHeader) UnmarshalJSON(data []byte) error {
	var encoded string

	if err := json.Unmarshal(data, &encoded); err != nil {
		return jsonFormatError(err)
	}

	if encoded == "" {
		return fmt.Errorf("%w: empty encoded header", ErrJSONFormat)
	}

	h, err := DecodeJWMHeader(encoded)
	if err != nil {
		return err
	}

	*b = Base64JWMHeader(*h)

	return nil
}

// JWMHeader returns the decoded header, nil when b is nil.
func (b *Base64JWMHeader) JWMHeader() *JWMHeader {
	if b == nil {
		return nil
	}

	h := JWMHeader(*b)

	return &h
}
