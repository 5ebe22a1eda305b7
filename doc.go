/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package didcomm provides the message headers of DIDComm v2 (https://identity.foundation/didcomm-messaging/spec/).
//
// # Packages for end developer usage
//
// pkg/didcomm/header: The plaintext DIDComm header, the JWM (JOSE) header of signed and encrypted
// envelopes, JWE recipient entries and the base64url codec used to embed them.
//
// pkg/doc/jose: Signature and content encryption algorithm enumerations and the generic JOSE header map.
//
// pkg/doc/jose/jwk: The JSON Web Key value carried in headers, with conversions to and from Go public keys.
//
// pkg/common/log: Module based, level filtered logging.
//
// Basic workflow
//
//  1. Create a DIDComm header with header.New or header.Forward (or a header.Builder).
//  2. Stamp a header.JWMHeader with AsSigned or AsEncrypted.
//  3. Attach header.Recipient entries to the JWE.
//  4. Embed the JWM header with header.EncodeJWMHeader or header.Base64JWMHeader.
package didcomm
