/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package header models the headers of DIDComm v2 messages: the plaintext routing header
// (DIDCommHeader), the JOSE header of signed and encrypted envelopes (JWMHeader), JWE recipient
// entries and the unpadded base64url codec they are carried in.
package header
