/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/rmourey26/didcomm-go/pkg/common/utils"
	"github.com/rmourey26/didcomm-go/pkg/didcomm/transport"
)

// MessageType identifies the shape of the payload. Values are opaque, the constants below are the known ones.
type MessageType string

// Known message types.
const (
	DIDCommRaw MessageType = transport.MediaTypeV2PlaintextPayload
	DIDCommJWS MessageType = transport.MediaTypeV2SignedEnvelope
	DIDCommJWE MessageType = transport.MediaTypeV2EncryptedEnvelope
)

// JSON members of the named DIDCommHeader fields.
const (
	fieldID          = "id"
	fieldType        = "type"
	fieldTo          = "to"
	fieldFrom        = "from"
	fieldCreatedTime = "created_time"
	fieldExpiresTime = "expires_time"
	fieldFromPrior   = "from_prior"
)

//nolint:gochecknoglobals
var reservedFields = map[string]struct{}{
	fieldID:          {},
	fieldType:        {},
	fieldTo:          {},
	fieldFrom:        {},
	fieldCreatedTime: {},
	fieldExpiresTime: {},
	fieldFromPrior:   {},
}

// DIDCommHeader is the plaintext routing header of a DIDComm message.
//
// The zero value is not a valid header, use New or Forward (or a Builder) to get a generated ID.
//
// Empty To and Other are omitted when encoding, so an empty non-nil slice or map decodes back as nil.
// Compare decoded headers by content, not with reflect.DeepEqual.
type DIDCommHeader struct {
	ID   string
	Type MessageType
	// To lists recipient DIDs.
	To []string
	// From is the sender DID.
	From *string
	// CreatedTime and ExpiresTime are Unix seconds.
	CreatedTime *uint64
	ExpiresTime *uint64
	// Other holds extension headers, encoded as top level members next to the named ones.
	// Keys must not collide with a named member, see AddHeaderField.
	Other map[string]string

	// fromPrior is a JWT claim set with sub: new DID and iss: prior DID.
	fromPrior *PriorClaims
}

type didcommHeaderJSON struct {
	ID          string       `json:"id"`
	Type        MessageType  `json:"type"`
	To          []string     `json:"to,omitempty"`
	From        *string      `json:"from"`
	CreatedTime *uint64      `json:"created_time,omitempty"`
	ExpiresTime *uint64      `json:"expires_time,omitempty"`
	FromPrior   *PriorClaims `json:"from_prior,omitempty"`
}

// New returns a draft header with a generated ID, using the default Builder.
func New() *DIDCommHeader {
	return defaultBuilder.New()
}

// Forward returns a header for a forward message created now, using the default Builder.
func Forward(to []string, from *string, expiresTime *uint64) (*DIDCommHeader, error) {
	return defaultBuilder.Forward(to, from, expiresTime)
}

// FromPrior returns a copy of the DID rotation claims, nil when absent.
func (h *DIDCommHeader) FromPrior() *PriorClaims {
	return h.fromPrior.clone()
}

// SetFromPrior attaches DID rotation claims. A nil value removes them.
func (h *DIDCommHeader) SetFromPrior(claims *PriorClaims) {
	h.fromPrior = claims.clone()
}

// AddHeaderField sets the extension header key to value.
func (h *DIDCommHeader) AddHeaderField(key, value string) error {
	if _, ok := reservedFields[key]; ok {
		return fmt.Errorf("%w: '%s'", ErrReservedHeaderKey, key)
	}

	if h.Other == nil {
		h.Other = make(map[string]string)
	}

	h.Other[key] = value

	return nil
}

// HeaderField returns the extension header key.
func (h *DIDCommHeader) HeaderField(key string) (string, bool) {
	v, ok := h.Other[key]

	return v, ok
}

// HeaderFields returns a copy of the extension headers.
func (h *DIDCommHeader) HeaderFields() map[string]string {
	fields := make(map[string]string, len(h.Other))

	for k, v := range h.Other {
		fields[k] = v
	}

	return fields
}

// IsExpired reports whether the header has an expiry time and now is at or past it.
func (h *DIDCommHeader) IsExpired(now time.Time) bool {
	if h.ExpiresTime == nil || now.Unix() < 0 {
		return false
	}

	return uint64(now.Unix()) >= *h.ExpiresTime
}

// MarshalJSON writes the named members, then the extension headers sorted by key, into one JSON object.
func (h DIDCommHeader) MarshalJSON() ([]byte, error) {
	named, err := json.Marshal(didcommHeaderJSON{
		ID:          h.ID,
		Type:        h.Type,
		To:          h.To,
		From:        h.From,
		CreatedTime: h.CreatedTime,
		ExpiresTime: h.ExpiresTime,
		FromPrior:   h.fromPrior,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal DIDComm header: %w", err)
	}

	if len(h.Other) == 0 {
		return named, nil
	}

	keys := make([]string, 0, len(h.Other))

	for k := range h.Other {
		if _, ok := reservedFields[k]; ok {
			return nil, fmt.Errorf("marshal DIDComm header: %w: '%s'", ErrReservedHeaderKey, k)
		}

		keys = append(keys, k)
	}

	sort.Strings(keys)

	// named always holds at least "id" and "type", so extensions follow a comma.
	buf := bytes.NewBuffer(make([]byte, 0, len(named)))
	buf.Write(named[:len(named)-1])

	for _, k := range keys {
		member, err := marshalMember(k, h.Other[k])
		if err != nil {
			return nil, fmt.Errorf("marshal DIDComm header: %w", err)
		}

		buf.WriteByte(',')
		buf.Write(member)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func marshalMember(key, value string) ([]byte, error) {
	k, err := json.Marshal(key)
	if err != nil {
		return nil, err
	}

	v, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	return append(append(k, ':'), v...), nil
}

// UnmarshalJSON decodes a header. Members other than the named ones become extension headers
// and must be strings.
func (h *DIDCommHeader) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]interface{}

	if err := decoder.Decode(&raw); err != nil {
		return jsonFormatError(err)
	}

	if raw == nil {
		return nil
	}

	parsed, err := FromMap(raw)
	if err != nil {
		return err
	}

	*h = *parsed

	return nil
}

// FromMap builds a header from a decoded JSON object. Numbers may be float64 or json.Number.
func FromMap(m map[string]interface{}) (*DIDCommHeader, error) {
	for _, required := range []string{fieldID, fieldType} {
		if _, ok := m[required]; !ok {
			return nil, fmt.Errorf("%w: missing '%s'", ErrJSONFormat, required)
		}
	}

	var raw didcommHeaderJSON

	if err := utils.DecodeJSONMap(m, &raw); err != nil {
		return nil, jsonFormatError(err)
	}

	h := &DIDCommHeader{
		ID:          raw.ID,
		Type:        raw.Type,
		To:          raw.To,
		From:        raw.From,
		CreatedTime: raw.CreatedTime,
		ExpiresTime: raw.ExpiresTime,
		fromPrior:   raw.FromPrior,
	}

	for k, v := range m {
		if _, ok := reservedFields[k]; ok {
			continue
		}

		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: extension header '%s' is not a string", ErrJSONFormat, k)
		}

		if h.Other == nil {
			h.Other = make(map[string]string)
		}

		h.Other[k] = s
	}

	return h, nil
}
