/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"encoding/json"
	"fmt"

	"github.com/rmourey26/didcomm-go/pkg/common/utils"
	"github.com/rmourey26/didcomm-go/pkg/doc/jose"
	"github.com/rmourey26/didcomm-go/pkg/doc/jose/jwk"
)

// JWMHeader is the JOSE header of a JSON Web Message (https://tools.ietf.org/html/draft-looker-jwm-01#section-2.3),
// usable for both JWE and JWS messages. It deviates from the draft by allowing a raw (unprotected) payload.
//
// "alg" and "enc" can only be set through AsSigned and AsEncrypted (or by decoding a received header),
// so an outgoing header always carries registered values.
type JWMHeader struct {
	Typ string
	// KID is the recipient (JWE) or signing (JWS) key ID, nil for a raw message.
	KID *string
	// SKID is the sender key ID used in ECDH-1PU key agreement.
	SKID *string
	// JKU refers to a set of JSON-encoded public keys, one of which signed the JWS.
	JKU *string
	// JWK is the public key that corresponds to the key used to sign the JWS.
	JWK *jwk.JWK
	// EPK is the ephemeral public key of the sender.
	EPK *jwk.JWK
	// Cty is "JWM" when a signed JWM is nested inside an encrypted one.
	Cty *string

	enc *string
	alg *string
}

// jwmHeaderJSON fixes the member order and presence rules of the encoded header.
type jwmHeaderJSON struct {
	Typ  string   `json:"typ"`
	Enc  *string  `json:"enc,omitempty"`
	KID  *string  `json:"kid,omitempty"`
	SKID *string  `json:"skid,omitempty"`
	Alg  *string  `json:"alg,omitempty"`
	JKU  *string  `json:"jku,omitempty"`
	JWK  *jwk.JWK `json:"jwk,omitempty"`
	EPK  *jwk.JWK `json:"epk,omitempty"`
	Cty  *string  `json:"cty,omitempty"`
}

// NewJWMHeader returns a header with typ "JWM" and nothing else set.
func NewJWMHeader() *JWMHeader {
	return &JWMHeader{Typ: jose.TypeJWM}
}

// AsSigned marks the header as protecting a JWS made with alg. It sets "typ" and "alg" and leaves "enc" alone.
func (h *JWMHeader) AsSigned(alg jose.SignatureAlgorithm) {
	h.Typ = jose.TypeJWM

	if name := alg.Name(); name != "" {
		h.alg = &name
	}
}

// AsEncrypted marks the header as protecting a JWE encrypted with enc. It sets "typ", "enc" and the
// ECDH-1PU key wrapping "alg" paired with enc.
func (h *JWMHeader) AsEncrypted(enc jose.EncAlg) {
	h.Typ = jose.TypeJWM

	name, keyWrap := enc.Name(), enc.KeyWrapAlgorithm()
	if name == "" || keyWrap == "" {
		return
	}

	h.enc = &name
	h.alg = &keyWrap
}

// SetKID sets the "kid" header. The value is not validated.
func (h *JWMHeader) SetKID(kid *string) {
	h.KID = kid
}

// Algorithm returns the "alg" header.
func (h *JWMHeader) Algorithm() (string, bool) {
	return deref(h.alg)
}

// Encryption returns the "enc" header.
func (h *JWMHeader) Encryption() (string, bool) {
	return deref(h.enc)
}

// MarshalJSON encodes the header, omitting absent members.
func (h JWMHeader) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.toJSON())
}

// UnmarshalJSON decodes a header. "typ" is required; "alg" and "enc" are taken as received.
func (h *JWMHeader) UnmarshalJSON(data []byte) error {
	var raw struct {
		jwmHeaderJSON
		Typ *string `json:"typ"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return jsonFormatError(err)
	}

	if raw.Typ == nil {
		return fmt.Errorf("%w: missing 'typ'", ErrJSONFormat)
	}

	raw.jwmHeaderJSON.Typ = *raw.Typ
	*h = raw.fromJSON()

	return nil
}

// Headers returns the header as a generic JOSE header map.
func (h *JWMHeader) Headers() jose.Headers {
	headers := jose.Headers{jose.HeaderType: h.Typ}

	for name, value := range map[string]*string{
		jose.HeaderEncryption:  h.enc,
		jose.HeaderKeyID:       h.KID,
		jose.HeaderSenderKeyID: h.SKID,
		jose.HeaderAlgorithm:   h.alg,
		jose.HeaderJWKSetURL:   h.JKU,
		jose.HeaderContentType: h.Cty,
	} {
		if value != nil {
			headers[name] = *value
		}
	}

	if h.JWK != nil {
		headers[jose.HeaderJSONWebKey] = h.JWK
	}

	if h.EPK != nil {
		headers[jose.HeaderEPK] = h.EPK
	}

	return headers
}

// JWMHeaderFromHeaders builds a JWMHeader from a generic JOSE header map, as produced by a JWE/JWS parser.
// Members outside the JWM header are ignored.
func JWMHeaderFromHeaders(headers jose.Headers) (*JWMHeader, error) {
	if _, ok := headers.Type(); !ok {
		return nil, fmt.Errorf("%w: missing 'typ'", ErrJSONFormat)
	}

	var raw jwmHeaderJSON

	if err := utils.DecodeJSONMap(headers, &raw); err != nil {
		return nil, jsonFormatError(err)
	}

	h := raw.fromJSON()

	return &h, nil
}

func (h *JWMHeader) toJSON() jwmHeaderJSON {
	return jwmHeaderJSON{
		Typ:  h.Typ,
		Enc:  h.enc,
		KID:  h.KID,
		SKID: h.SKID,
		Alg:  h.alg,
		JKU:  h.JKU,
		JWK:  h.JWK,
		EPK:  h.EPK,
		Cty:  h.Cty,
	}
}

func (raw *jwmHeaderJSON) fromJSON() JWMHeader {
	return JWMHeader{
		Typ:  raw.Typ,
		KID:  raw.KID,
		SKID: raw.SKID,
		JKU:  raw.JKU,
		JWK:  raw.JWK,
		EPK:  raw.EPK,
		Cty:  raw.Cty,
		enc:  raw.Enc,
		alg:  raw.Alg,
	}
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}

	return *s, true
}
