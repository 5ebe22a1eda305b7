/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jose

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Registered algorithm names written into JWM headers.
const (
	// TypeJWM is the "typ" of every JSON Web Message.
	TypeJWM = "JWM"

	// EdDSAALG is the EdDSA (Ed25519) signature algorithm name.
	EdDSAALG = "EdDSA"
	// ES256ALG is the ECDSA P-256 SHA-256 signature algorithm name.
	ES256ALG = "ES256"
	// ES256KALG is the ECDSA secp256k1 SHA-256 signature algorithm name.
	ES256KALG = "ES256K"

	// A256GCMALG is the default content encryption algorithm value as per
	// the JWA specification: https://tools.ietf.org/html/rfc7518#section-5.1
	A256GCMALG = "A256GCM"
	// XC20PALG represents XChacha20Poly1305 content encryption algorithm value.
	XC20PALG = "XC20P"

	// ECDH1PUA256KWALG is ECDH-1PU key agreement with A256KW key wrapping.
	ECDH1PUA256KWALG = "ECDH-1PU+A256KW"
	// ECDH1PUXC20PKWALG is ECDH-1PU key agreement with XC20PKW key wrapping.
	ECDH1PUXC20PKWALG = "ECDH-1PU+XC20PKW"
)

const (
	aes256KeySize = 32
	gcmNonceSize  = 12
)

var (
	errNotAnObject             = errors.New("value is not a JSON object")
	errUnsupportedSignatureAlg = errors.New("unsupported signature algorithm")
	errUnsupportedEncAlg       = errors.New("unsupported content encryption algorithm")
)

// SignatureAlgorithm is the closed set of JWS algorithms a JWM can be signed with.
type SignatureAlgorithm int

// Supported signature algorithms.
const (
	EdDSA SignatureAlgorithm = iota
	ES256
	ES256K
)

// SignatureAlgorithms lists every supported signature algorithm.
func SignatureAlgorithms() []SignatureAlgorithm {
	return []SignatureAlgorithm{EdDSA, ES256, ES256K}
}

// Name returns the registered "alg" value.
func (a SignatureAlgorithm) Name() string {
	switch a {
	case EdDSA:
		return EdDSAALG
	case ES256:
		return ES256ALG
	case ES256K:
		return ES256KALG
	}

	return ""
}

func (a SignatureAlgorithm) String() string {
	if n := a.Name(); n != "" {
		return n
	}

	return fmt.Sprintf("SignatureAlgorithm(%d)", int(a))
}

// ParseSignatureAlgorithm maps a registered "alg" value back to its SignatureAlgorithm.
func ParseSignatureAlgorithm(alg string) (SignatureAlgorithm, error) {
	for _, a := range SignatureAlgorithms() {
		if a.Name() == alg {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: '%s'", errUnsupportedSignatureAlg, alg)
}

// EncAlg is the closed set of JWE content encryption algorithms. Each one is paired with exactly
// one ECDH-1PU key wrapping algorithm.
type EncAlg int

// Supported content encryption algorithms.
const (
	A256GCM EncAlg = iota
	XC20P
)

// EncAlgs lists every supported content encryption algorithm.
func EncAlgs() []EncAlg {
	return []EncAlg{A256GCM, XC20P}
}

// Name returns the registered "enc" value.
func (e EncAlg) Name() string {
	switch e {
	case A256GCM:
		return A256GCMALG
	case XC20P:
		return XC20PALG
	}

	return ""
}

// KeyWrapAlgorithm returns the "alg" value paired with the content encryption algorithm.
func (e EncAlg) KeyWrapAlgorithm() string {
	switch e {
	case A256GCM:
		return ECDH1PUA256KWALG
	case XC20P:
		return ECDH1PUXC20PKWALG
	}

	return ""
}

// KeySize returns the content encryption key size in bytes.
func (e EncAlg) KeySize() int {
	switch e {
	case A256GCM:
		return aes256KeySize
	case XC20P:
		return chacha20poly1305.KeySize
	}

	return 0
}

// NonceSize returns the size in bytes of the nonce (JWE "iv") used with the algorithm.
func (e EncAlg) NonceSize() int {
	switch e {
	case A256GCM:
		return gcmNonceSize
	case XC20P:
		return chacha20poly1305.NonceSizeX
	}

	return 0
}

func (e EncAlg) String() string {
	if n := e.Name(); n != "" {
		return n
	}

	return fmt.Sprintf("EncAlg(%d)", int(e))
}

// ParseEncAlg maps a registered "enc" value back to its EncAlg.
func ParseEncAlg(enc string) (EncAlg, error) {
	for _, e := range EncAlgs() {
		if e.Name() == enc {
			return e, nil
		}
	}

	return 0, fmt.Errorf("%w: '%s'", errUnsupportedEncAlg, enc)
}
