/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwk

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		j := JWK{Kty: "OKP", Crv: "Ed25519", X: "x"}
		require.NoError(t, j.Validate())
	})

	t.Run("missing kty", func(t *testing.T) {
		j := JWK{Crv: "crv", X: "x"}

		err := j.Validate()
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidKey))
		require.Contains(t, err.Error(), "kty is missing")
	})

	t.Run("missing crv", func(t *testing.T) {
		j := JWK{Kty: "kty", X: "x"}

		err := j.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "crv is missing")
	})

	t.Run("missing x", func(t *testing.T) {
		j := JWK{Kty: "kty", Crv: "crv"}

		err := j.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "x is missing")
	})

	t.Run("missing y for EC", func(t *testing.T) {
		j := JWK{Kty: "EC", Crv: "P-256", X: "x"}

		err := j.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "y is missing")
	})
}

func TestJSON(t *testing.T) {
	t.Run("recipient header keeps only set members", func(t *testing.T) {
		j := JWK{KeyID: "did:example:bob#key-1"}

		b, err := json.Marshal(j)
		require.NoError(t, err)
		require.Equal(t, `{"kid":"did:example:bob#key-1"}`, string(b))
	})

	t.Run("nested epk", func(t *testing.T) {
		j := JWK{
			KeyID: "did:example:bob#key-1",
			EPK:   &JWK{Kty: "OKP", Crv: "X25519", X: "abc"},
			APU:   "apu",
		}

		b, err := json.Marshal(j)
		require.NoError(t, err)

		var parsed JWK

		require.NoError(t, json.Unmarshal(b, &parsed))
		require.Equal(t, j, parsed)
	})
}

func TestFromPublicKey(t *testing.T) {
	t.Run("success ED25519", func(t *testing.T) {
		publicKey, _, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		j, err := FromPublicKey(publicKey)
		require.NoError(t, err)
		require.Equal(t, "OKP", j.Kty)
		require.Equal(t, "Ed25519", j.Crv)

		pk, err := j.PublicKey()
		require.NoError(t, err)
		require.Equal(t, publicKey, pk)
	})

	t.Run("success EC P-256", func(t *testing.T) {
		privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)

		j, err := FromPublicKey(&privateKey.PublicKey)
		require.NoError(t, err)
		require.Equal(t, "EC", j.Kty)
		require.Equal(t, "P-256", j.Crv)
		require.NotEmpty(t, j.Y)

		pk, err := j.PublicKey()
		require.NoError(t, err)

		ecKey, ok := pk.(*ecdsa.PublicKey)
		require.True(t, ok)
		require.Equal(t, 0, privateKey.X.Cmp(ecKey.X))
		require.Equal(t, 0, privateKey.Y.Cmp(ecKey.Y))
	})

	t.Run("success EC secp256k1", func(t *testing.T) {
		privateKey, err := btcec.NewPrivateKey(btcec.S256())
		require.NoError(t, err)

		j, err := FromPublicKey(privateKey.PubKey())
		require.NoError(t, err)
		require.Equal(t, "EC", j.Kty)
		require.Equal(t, "secp256k1", j.Crv)

		j2, err := FromPublicKey(privateKey.PubKey().ToECDSA())
		require.NoError(t, err)
		require.Equal(t, j, j2)

		pk, err := j.PublicKey()
		require.NoError(t, err)

		ecKey, ok := pk.(*ecdsa.PublicKey)
		require.True(t, ok)
		require.Equal(t, 0, privateKey.X.Cmp(ecKey.X))
		require.Equal(t, 0, privateKey.Y.Cmp(ecKey.Y))
	})

	t.Run("success X25519", func(t *testing.T) {
		raw := make([]byte, 32)
		_, err := rand.Read(raw)
		require.NoError(t, err)

		j, err := FromPublicKey(raw)
		require.NoError(t, err)
		require.Equal(t, "OKP", j.Kty)
		require.Equal(t, "X25519", j.Crv)

		pk, err := j.PublicKey()
		require.NoError(t, err)
		require.Equal(t, raw, pk)
	})

	t.Run("invalid X25519 size", func(t *testing.T) {
		_, err := FromPublicKey([]byte("short"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid X25519 key size")
	})

	t.Run("unknown key type", func(t *testing.T) {
		_, privateKey, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		j, err := FromPublicKey(privateKey)
		require.Error(t, err)
		require.Nil(t, j)
		require.Contains(t, err.Error(), "unknown key type")
	})
}

func TestPublicKey(t *testing.T) {
	t.Run("invalid JWK", func(t *testing.T) {
		_, err := (&JWK{KeyID: "kid"}).PublicKey()
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidKey))
	})

	t.Run("secp256k1 point not on curve", func(t *testing.T) {
		j := &JWK{Kty: "EC", Crv: "secp256k1", X: "AQ", Y: "AQ"}

		_, err := j.PublicKey()
		require.Error(t, err)
		require.Contains(t, err.Error(), "not on secp256k1")
	})

	t.Run("bad base64", func(t *testing.T) {
		j := &JWK{Kty: "OKP", Crv: "X25519", X: "!!"}

		_, err := j.PublicKey()
		require.Error(t, err)
		require.Contains(t, err.Error(), "decode X25519 x")
	})

	t.Run("unsupported curve", func(t *testing.T) {
		j := &JWK{Kty: "EC", Crv: "P-999", X: "AQ", Y: "AQ"}

		_, err := j.PublicKey()
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidKey))
	})
}

func TestThumbprint(t *testing.T) {
	t.Run("RFC 8037 Ed25519 example", func(t *testing.T) {
		// https://www.rfc-editor.org/rfc/rfc8037#appendix-A.3
		j := &JWK{Kty: "OKP", Crv: "Ed25519", X: "11qYAYKxCrfVS_7TyWQHOg7hcvPapiMlrwIaaPcHURo"}

		tp, err := j.Thumbprint()
		require.NoError(t, err)
		require.Equal(t, "kPrK_qmxVWaYVA9wwBF6Iuo3vVzz7TxHCTwXBygrS4k", tp)
	})

	t.Run("X25519 and secp256k1 use the canonical form", func(t *testing.T) {
		privateKey, err := btcec.NewPrivateKey(btcec.S256())
		require.NoError(t, err)

		secp, err := FromPublicKey(privateKey.PubKey())
		require.NoError(t, err)

		x25519, err := FromPublicKey(make([]byte, 32))
		require.NoError(t, err)

		tp1, err := secp.Thumbprint()
		require.NoError(t, err)
		require.NotEmpty(t, tp1)

		tp2, err := x25519.Thumbprint()
		require.NoError(t, err)
		require.NotEmpty(t, tp2)
		require.NotEqual(t, tp1, tp2)

		secp.KeyID = "ignored"
		tp3, err := secp.Thumbprint()
		require.NoError(t, err)
		require.Equal(t, tp1, tp3)
	})

	t.Run("invalid JWK", func(t *testing.T) {
		_, err := (&JWK{}).Thumbprint()
		require.Error(t, err)
	})
}
