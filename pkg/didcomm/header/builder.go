/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/rmourey26/didcomm-go/pkg/common/log"
)

var logger = log.New("didcomm/header")

// IDGenerator generates message IDs.
type IDGenerator interface {
	NewID() string
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// RandomIDGenerator generates the decimal rendering of a random 64-bit value read from crypto/rand.
// It is safe for concurrent use.
type RandomIDGenerator struct{}

// NewID returns a new random ID. It panics if the system random source fails, like uuid.New.
func (RandomIDGenerator) NewID() string {
	var b [8]byte

	if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
		panic(fmt.Sprintf("generate message id: %v", err))
	}

	return strconv.FormatUint(binary.BigEndian.Uint64(b[:]), 10)
}

// UUIDGenerator generates random (version 4) UUIDs.
type UUIDGenerator struct{}

// NewID returns a new UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Builder creates DIDComm headers with an injected ID generator and clock.
type Builder struct {
	idGenerator IDGenerator
	clock       Clock
}

// Option configures a Builder.
type Option func(b *Builder)

// WithIDGenerator sets the message ID generator. Defaults to RandomIDGenerator.
func WithIDGenerator(g IDGenerator) Option {
	return func(b *Builder) {
		b.idGenerator = g
	}
}

// WithClock sets the clock used for created_time and iat. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(b *Builder) {
		b.clock = c
	}
}

//nolint:gochecknoglobals
var defaultBuilder = NewBuilder()

// NewBuilder returns a Builder configured with opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		idGenerator: RandomIDGenerator{},
		clock:       SystemClock{},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// New returns a draft header: a generated ID, type DIDCommRaw, To holding a single empty DID and
// From set to an empty DID. The To/From placeholders are not recipients, callers overwrite them.
func (b *Builder) New() *DIDCommHeader {
	from := ""

	return &DIDCommHeader{
		ID:   b.idGenerator.NewID(),
		Type: DIDCommRaw,
		To:   []string{""},
		From: &from,
	}
}

// Forward returns a header for a forward (relay) message with created_time set to now.
// to, from and expiresTime are copied. It fails with ErrClock if the clock is before the Unix epoch.
func (b *Builder) Forward(to []string, from *string, expiresTime *uint64) (*DIDCommHeader, error) {
	created, err := b.unixNow()
	if err != nil {
		return nil, fmt.Errorf("forward header: %w", err)
	}

	h := &DIDCommHeader{
		ID:          b.idGenerator.NewID(),
		Type:        DIDCommRaw,
		To:          append([]string(nil), to...),
		From:        copyString(from),
		CreatedTime: &created,
		ExpiresTime: copyUint64(expiresTime),
	}

	logger.Debugf("forward header created: id=%s to=%v created_time=%d", h.ID, h.To, created)

	return h, nil
}

// PriorClaims returns DID rotation claims from priorDID to newDID issued now.
func (b *Builder) PriorClaims(newDID, priorDID string) (*PriorClaims, error) {
	iat, err := b.unixNow()
	if err != nil {
		return nil, fmt.Errorf("prior claims: %w", err)
	}

	return &PriorClaims{
		Sub: newDID,
		Iss: priorDID,
		Iat: &iat,
	}, nil
}

func (b *Builder) unixNow() (uint64, error) {
	now := b.clock.Now()

	secs := now.Unix()
	if secs < 0 {
		logger.Warnf("clock reports %s, before the Unix epoch", now.UTC().Format(time.RFC3339))

		return 0, fmt.Errorf("%w: %s", ErrClock, now.UTC().Format(time.RFC3339))
	}

	return uint64(secs), nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}

	cp := *s

	return &cp
}

func copyUint64(v *uint64) *uint64 {
	if v == nil {
		return nil
	}

	cp := *v

	return &cp
}
