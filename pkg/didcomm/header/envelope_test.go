/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmourey26/didcomm-go/pkg/doc/jose"
	"github.com/rmourey26/didcomm-go/pkg/doc/jose/jwk"
)

func TestJWE(t *testing.T) {
	h := NewJWMHeader()
	h.AsEncrypted(jose.XC20P)
	h.SKID = stringPtr("did:example:alice#key-x25519-1")

	recipients := []Recipient{
		NewRecipient(jwk.JWK{KeyID: "did:example:bob#key-x25519-1"}, "a2V5LTE"),
		NewRecipient(jwk.JWK{KeyID: "did:example:carol#key-x25519-1"}, "a2V5LTI"),
	}

	t.Run("serialize and deserialize", func(t *testing.T) {
		e := NewJWE(h, recipients, []byte("iv"), []byte("ciphertext"), []byte("tag"))

		serialized, err := e.Serialize()
		require.NoError(t, err)

		var members map[string]interface{}

		require.NoError(t, json.Unmarshal(serialized, &members))
		require.Equal(t, EncodeBase64([]byte("ciphertext")), members["ciphertext"])
		require.NotContains(t, members, "aad")

		protected, err := EncodeJWMHeader(h)
		require.NoError(t, err)
		require.Equal(t, protected, members["protected"])

		parsed, err := DeserializeJWE(serialized)
		require.NoError(t, err)
		require.Equal(t, e, parsed)
		require.Equal(t, h, parsed.Header())
	})

	t.Run("no protected header", func(t *testing.T) {
		e := NewJWE(nil, recipients, nil, []byte("ciphertext"), nil)
		require.Nil(t, e.Header())

		serialized, err := e.Serialize()
		require.NoError(t, err)
		require.NotContains(t, string(serialized), "protected")
	})

	t.Run("serialize errors", func(t *testing.T) {
		_, err := NewJWE(h, recipients, nil, nil, nil).Serialize()
		require.ErrorIs(t, err, errEmptyCiphertext)

		_, err = NewJWE(h, nil, nil, []byte("ciphertext"), nil).Serialize()
		require.ErrorIs(t, err, errNoRecipients)
	})

	t.Run("deserialize errors", func(t *testing.T) {
		_, err := DeserializeJWE([]byte(`{"recipients":[{"header":{},"encrypted_key":""}]}`))
		require.ErrorIs(t, err, errEmptyCiphertext)

		_, err = DeserializeJWE([]byte(`{"ciphertext":"Y3Q","recipients":[]}`))
		require.ErrorIs(t, err, errNoRecipients)

		_, err = DeserializeJWE([]byte(`{"ciphertext":"Y3Q$"}`))
		require.ErrorIs(t, err, ErrBase64Decode)

		_, err = DeserializeJWE([]byte(`{"protected":"e30","ciphertext":"Y3Q"}`))
		require.ErrorIs(t, err, ErrJSONFormat)

		_, err = DeserializeJWE([]byte(`[]`))
		require.ErrorIs(t, err, ErrJSONFormat)
	})
}
