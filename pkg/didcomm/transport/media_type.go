/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transport

import "fmt"

const (
	// MediaTypeV2PlaintextPayload is the media type of a DIDComm V2 plaintext message (JWM with a raw payload).
	MediaTypeV2PlaintextPayload = "application/didcomm-plain+json"
	// MediaTypeV2SignedEnvelope is the media type of a DIDComm V2 signed (JWS) message.
	MediaTypeV2SignedEnvelope = "application/didcomm-signed+json"
	// MediaTypeV2EncryptedEnvelope is the media type for DIDComm V2 encrypted envelopes as per the
	// DIF DIDComm spec.
	MediaTypeV2EncryptedEnvelope = "application/didcomm-encrypted+json"
	// MediaTypeV2SignedEncryptedEnvelope is the media type of an encrypted envelope nesting a signed message.
	MediaTypeV2SignedEncryptedEnvelope = MediaTypeV2EncryptedEnvelope + ";cty=" + MediaTypeV2SignedEnvelope
)

// EnvelopeMediaTypeFor returns the media type that corresponds with a DIDComm envelope given 'typ'
// and optionally 'cty'.
func EnvelopeMediaTypeFor(typ, cty string) (string, error) {
	if cty == "" {
		switch typ {
		case MediaTypeV2PlaintextPayload, MediaTypeV2SignedEnvelope, MediaTypeV2EncryptedEnvelope:
			return typ, nil
		default:
			return "", fmt.Errorf("unsupported: typ=%s", typ)
		}
	}

	m := fmt.Sprintf("%s;cty=%s", typ, cty)
	if m != MediaTypeV2SignedEncryptedEnvelope {
		return "", fmt.Errorf("unsupported: typ=%s cty=%s", typ, cty)
	}

	return m, nil
}
