/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package header

import "github.com/rmourey26/didcomm-go/pkg/doc/jose/jwk"

// Recipient is a single entry of a JWE "recipients" array (https://tools.ietf.org/html/rfc7516#section-7.2.1).
// Every recipient carries the same content encryption key, wrapped for that recipient.
type Recipient struct {
	Header       jwk.JWK `json:"header"`
	EncryptedKey string  `json:"encrypted_key"`
}

// NewRecipient returns a Recipient. The encrypted key is opaque here, its correctness is up to the encrypter.
func NewRecipient(header jwk.JWK, encryptedKey string) Recipient {
	return Recipient{
		Header:       header,
		EncryptedKey: encryptedKey,
	}
}
