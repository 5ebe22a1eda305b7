/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package header

// PriorClaims is the claim set of a DID rotation: the sender moved from the prior DID (Iss) to
// a new DID (Sub). It is signed by a key authorized by the prior DID, verification happens elsewhere.
type PriorClaims struct {
	Sub string `json:"sub"`
	Iss string `json:"iss"`
	// Iat is the issue time in Unix seconds.
	Iat *uint64 `json:"iat,omitempty"`
}

func (c *PriorClaims) clone() *PriorClaims {
	if c == nil {
		return nil
	}

	cp := *c

	if c.Iat != nil {
		iat := *c.Iat
		cp.Iat = &iat
	}

	return &cp
}
