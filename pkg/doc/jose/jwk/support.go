/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"

	"github.com/btcsuite/btcd/btcec"
	"github.com/go-jose/go-jose/v3"
)

const (
	ecKty         = "EC"
	okpKty        = "OKP"
	x25519Crv     = "X25519"
	secp256k1Crv  = "secp256k1"
	secp256k1Size = 32
	x25519Size    = 32
)

// FromPublicKey creates a JWK from a public key.
// Supported keys: ed25519.PublicKey, *ecdsa.PublicKey (P-256, P-384, P-521, secp256k1), *btcec.PublicKey
// and X25519 public keys given as raw []byte.
func FromPublicKey(pubKey interface{}) (*JWK, error) {
	switch key := pubKey.(type) {
	case ed25519.PublicKey:
		return fromJOSEKey(key)
	case *btcec.PublicKey:
		return fromSecp256k1Key((*ecdsa.PublicKey)(key))
	case *ecdsa.PublicKey:
		// gojose doesn't handle secp256k1 curve
		if key.Curve == btcec.S256() {
			return fromSecp256k1Key(key)
		}

		return fromJOSEKey(key)
	case []byte:
		if len(key) != x25519Size {
			return nil, fmt.Errorf("create JWK: invalid X25519 key size %d", len(key))
		}

		return &JWK{
			Kty: okpKty,
			Crv: x25519Crv,
			X:   base64.RawURLEncoding.EncodeToString(key),
		}, nil
	default:
		return nil, fmt.Errorf("create JWK: unknown key type '%s'", reflect.TypeOf(pubKey))
	}
}

func fromJOSEKey(key interface{}) (*JWK, error) {
	joseJWK := jose.JSONWebKey{Key: key}

	jsonJWK, err := joseJWK.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("create JWK: %w", err)
	}

	var j JWK

	err = json.Unmarshal(jsonJWK, &j)
	if err != nil {
		return nil, fmt.Errorf("create JWK: %w", err)
	}

	return &j, nil
}

func fromSecp256k1Key(key *ecdsa.PublicKey) (*JWK, error) {
	if key.X == nil || key.Y == nil {
		return nil, fmt.Errorf("create JWK: %w: secp256k1 key has no coordinates", ErrInvalidKey)
	}

	return &JWK{
		Kty: ecKty,
		Crv: secp256k1Crv,
		X:   base64.RawURLEncoding.EncodeToString(key.X.FillBytes(make([]byte, secp256k1Size))),
		Y:   base64.RawURLEncoding.EncodeToString(key.Y.FillBytes(make([]byte, secp256k1Size))),
	}, nil
}

// PublicKey returns the Go public key the JWK describes: ed25519.PublicKey, *ecdsa.PublicKey,
// or []byte for X25519.
func (j *JWK) PublicKey() (interface{}, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	switch {
	case j.Kty == okpKty && j.Crv == x25519Crv:
		x, err := base64.RawURLEncoding.DecodeString(j.X)
		if err != nil {
			return nil, fmt.Errorf("decode X25519 x: %w", err)
		}

		if len(x) != x25519Size {
			return nil, fmt.Errorf("%w: invalid X25519 key size %d", ErrInvalidKey, len(x))
		}

		return x, nil
	case j.Kty == ecKty && j.Crv == secp256k1Crv:
		return j.secp256k1PublicKey()
	default:
		return j.joseKey()
	}
}

func (j *JWK) secp256k1PublicKey() (*ecdsa.PublicKey, error) {
	xBytes, err := base64.RawURLEncoding.DecodeString(j.X)
	if err != nil {
		return nil, fmt.Errorf("decode secp256k1 x: %w", err)
	}

	yBytes, err := base64.RawURLEncoding.DecodeString(j.Y)
	if err != nil {
		return nil, fmt.Errorf("decode secp256k1 y: %w", err)
	}

	curve := btcec.S256()
	x := new(big.Int).SetBytes(xBytes)
	y := new(big.Int).SetBytes(yBytes)

	if !curve.IsOnCurve(x, y) {
		return nil, fmt.Errorf("%w: point is not on secp256k1", ErrInvalidKey)
	}

	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}, nil
}

func (j *JWK) joseKey() (interface{}, error) {
	raw, err := json.Marshal(j)
	if err != nil {
		return nil, fmt.Errorf("marshal JWK: %w", err)
	}

	var joseJWK jose.JSONWebKey

	err = joseJWK.UnmarshalJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKey, err.Error())
	}

	return joseJWK.Key, nil
}

// Thumbprint computes the RFC 7638 SHA-256 thumbprint of the JWK, base64url encoded.
func (j *JWK) Thumbprint() (string, error) {
	if err := j.Validate(); err != nil {
		return "", err
	}

	var (
		sum []byte
		err error
	)

	switch j.Crv {
	case x25519Crv, secp256k1Crv:
		sum, err = j.canonicalThumbprint()
	default:
		var key interface{}

		key, err = j.joseKey()
		if err != nil {
			return "", err
		}

		sum, err = (&jose.JSONWebKey{Key: key}).Thumbprint(crypto.SHA256)
	}

	if err != nil {
		return "", fmt.Errorf("JWK thumbprint: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(sum), nil
}

// canonicalThumbprint hashes the required members in lexicographic order (RFC 7638 section 3.2).
func (j *JWK) canonicalThumbprint() ([]byte, error) {
	var canonical string

	switch j.Kty {
	case ecKty:
		canonical = fmt.Sprintf(`{"crv":%q,"kty":%q,"x":%q,"y":%q}`, j.Crv, j.Kty, j.X, j.Y)
	case okpKty:
		canonical = fmt.Sprintf(`{"crv":%q,"kty":%q,"x":%q}`, j.Crv, j.Kty, j.X)
	default:
		return nil, fmt.Errorf("unsupported key type '%s'", j.Kty)
	}

	sum := sha256.Sum256([]byte(canonical))

	return sum[:], nil
}
