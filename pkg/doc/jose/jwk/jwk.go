/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jwk holds the JSON Web Key value carried in JWM headers and JWE recipient entries.
package jwk

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is returned when passed JWK is invalid.
var ErrInvalidKey = errors.New("invalid JWK")

// JWK (JSON Web Key) is a JSON data structure that represents a cryptographic key.
//
// Inside a JWE recipient entry the same structure carries the per-recipient key agreement
// parameters (kid, epk, apu, apv, iv, tag), so only the members that are set get serialized.
type JWK struct {
	KeyID string `json:"kid,omitempty"`
	Kty   string `json:"kty,omitempty"`
	Crv   string `json:"crv,omitempty"`
	X     string `json:"x,omitempty"`
	Y     string `json:"y,omitempty"`
	Alg   string `json:"alg,omitempty"`
	Use   string `json:"use,omitempty"`
	EPK   *JWK   `json:"epk,omitempty"`
	APU   string `json:"apu,omitempty"`
	APV   string `json:"apv,omitempty"`
	IV    string `json:"iv,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// Validate checks that the JWK carries public key material.
func (j *JWK) Validate() error {
	if j.Kty == "" {
		return fmt.Errorf("%w: kty is missing", ErrInvalidKey)
	}

	if j.Crv == "" {
		return fmt.Errorf("%w: crv is missing", ErrInvalidKey)
	}

	if j.X == "" {
		return fmt.Errorf("%w: x is missing", ErrInvalidKey)
	}

	if j.Kty == ecKty && j.Y == "" {
		return fmt.Errorf("%w: y is missing", ErrInvalidKey)
	}

	return nil
}
