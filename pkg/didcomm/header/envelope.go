/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

var (
	errEmptyCiphertext = errors.New("ciphertext cannot be empty")
	errNoRecipients    = errors.New("at least one recipient is required")
)

// JWE is the general JSON serialization of an encrypted DIDComm envelope
// (https://tools.ietf.org/html/rfc7516#section-7.2). It only carries headers and opaque
// encrypted bytes, producing them is up to the crypto engine.
type JWE struct {
	Protected  *Base64JWMHeader `json:"protected,omitempty"`
	Recipients []Recipient      `json:"recipients"`
	AAD        Base64Buffer     `json:"aad,omitempty"`
	IV         Base64Buffer     `json:"iv"`
	Ciphertext Base64Buffer     `json:"ciphertext"`
	Tag        Base64Buffer     `json:"tag"`
}

// NewJWE returns an envelope protected by h.
func NewJWE(h *JWMHeader, recipients []Recipient, iv, ciphertext, tag []byte) *JWE {
	var protected *Base64JWMHeader

	if h != nil {
		b := Base64JWMHeader(*h)
		protected = &b
	}

	return &JWE{
		Protected:  protected,
		Recipients: recipients,
		IV:         iv,
		Ciphertext: ciphertext,
		Tag:        tag,
	}
}

// Serialize returns the JSON serialization of the envelope.
func (e *JWE) Serialize() ([]byte, error) {
	if len(e.Ciphertext) == 0 {
		return nil, errEmptyCiphertext
	}

	if len(e.Recipients) == 0 {
		return nil, errNoRecipients
	}

	serialized, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("serialize JWE: %w", err)
	}

	return serialized, nil
}

// DeserializeJWE parses the JSON serialization of an envelope.
func DeserializeJWE(serialized []byte) (*JWE, error) {
	var e JWE

	if err := json.Unmarshal(serialized, &e); err != nil {
		if !errors.Is(err, ErrBase64Decode) && !errors.Is(err, ErrTextEncoding) {
			err = jsonFormatError(err)
		}

		return nil, fmt.Errorf("deserialize JWE: %w", err)
	}

	if len(e.Ciphertext) == 0 {
		return nil, fmt.Errorf("deserialize JWE: %w", errEmptyCiphertext)
	}

	if len(e.Recipients) == 0 {
		return nil, fmt.Errorf("deserialize JWE: %w", errNoRecipients)
	}

	return &e, nil
}

// Header returns the protected header, nil when absent.
func (e *JWE) Header() *JWMHeader {
	return e.Protected.JWMHeader()
}
