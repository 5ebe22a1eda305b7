/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jose

import (
	"encoding/json"

	"github.com/rmourey26/didcomm-go/pkg/doc/jose/jwk"
)

// IANA registered JOSE headers (https://tools.ietf.org/html/rfc7515#section-4.1) used by JWM.
const (
	// HeaderAlgorithm identifies the signature algorithm (JWS) or the CEK key management algorithm (JWE).
	HeaderAlgorithm = "alg" // string

	// HeaderEncryption identifies the JWE content encryption algorithm.
	HeaderEncryption = "enc" // string

	// HeaderJWKSetURL is a URI that refers to a resource for a set of JSON-encoded public keys.
	HeaderJWKSetURL = "jku" // string

	// HeaderJSONWebKey is the public key used to sign the JWS or to which the JWE was encrypted.
	HeaderJSONWebKey = "jwk" // JSON

	// HeaderKeyID is a hint referencing the recipient (JWE) or signing (JWS) key.
	HeaderKeyID = "kid" // string

	// HeaderSenderKeyID references the sender key used in JWE key derivation/wrapping of the CEK.
	HeaderSenderKeyID = "skid" // string

	// HeaderType declares the media type of the complete JWS/JWE.
	HeaderType = "typ" // string

	// HeaderContentType declares the media type of the secured content.
	HeaderContentType = "cty" // string

	// HeaderEPK is used by JWE applications to wrap/unwrap the CEK for a recipient.
	HeaderEPK = "epk" // JSON
)

// Headers represents JOSE headers.
type Headers map[string]interface{}

// KeyID gets Key ID from JOSE headers.
func (h Headers) KeyID() (string, bool) {
	return h.stringValue(HeaderKeyID)
}

// SenderKeyID gets the sender Key ID from Jose headers.
func (h Headers) SenderKeyID() (string, bool) {
	return h.stringValue(HeaderSenderKeyID)
}

// Algorithm gets Algorithm from JOSE headers.
func (h Headers) Algorithm() (string, bool) {
	return h.stringValue(HeaderAlgorithm)
}

// Encryption gets content encryption algorithm from JOSE headers.
func (h Headers) Encryption() (string, bool) {
	return h.stringValue(HeaderEncryption)
}

// Type gets content encryption type from JOSE headers.
func (h Headers) Type() (string, bool) {
	return h.stringValue(HeaderType)
}

// ContentType gets the payload content type from JOSE headers.
func (h Headers) ContentType() (string, bool) {
	return h.stringValue(HeaderContentType)
}

// JWKSetURL gets the JWK set URL from JOSE headers.
func (h Headers) JWKSetURL() (string, bool) {
	return h.stringValue(HeaderJWKSetURL)
}

func (h Headers) stringValue(key string) (string, bool) {
	raw, ok := h[key]
	if !ok {
		return "", false
	}

	str, ok := raw.(string)

	return str, ok
}

// JWK gets JWK from JOSE headers.
func (h Headers) JWK() (*jwk.JWK, bool) {
	return h.jwkValue(HeaderJSONWebKey)
}

// EPK gets the ephemeral public key from JOSE headers.
func (h Headers) EPK() (*jwk.JWK, bool) {
	return h.jwkValue(HeaderEPK)
}

func (h Headers) jwkValue(key string) (*jwk.JWK, bool) {
	raw, ok := h[key]
	if !ok {
		return nil, false
	}

	var jwkKey jwk.JWK

	err := convertMapToValue(raw, &jwkKey)
	if err != nil {
		return nil, false
	}

	return &jwkKey, true
}

func convertMapToValue(vals, to interface{}) error {
	if _, ok := vals.(map[string]interface{}); !ok {
		if _, ok = vals.(*jwk.JWK); !ok {
			return errNotAnObject
		}
	}

	b, err := json.Marshal(vals)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, to)
}
