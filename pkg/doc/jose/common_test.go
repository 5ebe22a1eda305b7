/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jose

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmourey26/didcomm-go/pkg/doc/jose/jwk"
)

func TestHeaders(t *testing.T) {
	headers := make(Headers)

	alg, ok := headers.Algorithm()
	require.False(t, ok)
	require.Empty(t, alg)

	kid, ok := headers.KeyID()
	require.False(t, ok)
	require.Empty(t, kid)

	headers = Headers{
		HeaderAlgorithm:   ECDH1PUA256KWALG,
		HeaderEncryption:  A256GCMALG,
		HeaderKeyID:       "did:example:bob#key-1",
		HeaderSenderKeyID: "did:example:alice#key-1",
		HeaderType:        TypeJWM,
		HeaderContentType: TypeJWM,
		HeaderJWKSetURL:   "https://example.com/jwks.json",
	}

	for expected, getter := range map[string]func() (string, bool){
		ECDH1PUA256KWALG:                headers.Algorithm,
		A256GCMALG:                      headers.Encryption,
		"did:example:bob#key-1":         headers.KeyID,
		"did:example:alice#key-1":       headers.SenderKeyID,
		"https://example.com/jwks.json": headers.JWKSetURL,
	} {
		v, ok := getter()
		require.True(t, ok)
		require.Equal(t, expected, v)
	}

	typ, ok := headers.Type()
	require.True(t, ok)
	require.Equal(t, TypeJWM, typ)

	cty, ok := headers.ContentType()
	require.True(t, ok)
	require.Equal(t, TypeJWM, cty)

	headers[HeaderKeyID] = 42
	_, ok = headers.KeyID()
	require.False(t, ok)
}

func TestHeaders_GetJWK(t *testing.T) {
	headers := Headers{}

	pubKey, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	jwkKey, err := jwk.FromPublicKey(pubKey)
	require.NoError(t, err)

	jwkKey.KeyID = "kid"

	jwkBytes, err := json.Marshal(jwkKey)
	require.NoError(t, err)

	var jwkMap map[string]interface{}

	err = json.Unmarshal(jwkBytes, &jwkMap)
	require.NoError(t, err)

	headers["jwk"] = jwkMap

	parsedJWK, ok := headers.JWK()
	require.True(t, ok)
	require.Equal(t, jwkKey, parsedJWK)

	headers["epk"] = jwkKey

	parsedEPK, ok := headers.EPK()
	require.True(t, ok)
	require.Equal(t, jwkKey, parsedEPK)

	// jwk is not present
	delete(headers, "jwk")
	parsedJWK, ok = headers.JWK()
	require.False(t, ok)
	require.Nil(t, parsedJWK)

	// jwk is not a map
	headers["jwk"] = "not a map"
	parsedJWK, ok = headers.JWK()
	require.False(t, ok)
	require.Nil(t, parsedJWK)
}
