// SPDX-License-Identifier: Apache-2.0

package aadinternals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOid(t *testing.T) {
	assert := assert.New(t)

	// Minimal OID: both arcs pack into a single zero byte
	enc, err := EncodeOid("0.0")
	assert.NoError(err)
	assert.Equal(Oid{0x00}, enc)

	// First byte combines the first two arcs as arc0*40 + arc1
	enc, err = EncodeOid("1.2.840.113549.1.1.1")
	assert.NoError(err)
	require.NotEmpty(t, enc)
	assert.Equal(byte(0x2a), enc[0])

	// Arcs up to 127 take a single byte
	enc, err = EncodeOid("2.5.4.3")
	assert.NoError(err)
	assert.Equal(Oid{0x55, 0x04, 0x03}, enc)

	// Arc 200 needs the two byte continuation form
	enc, err = EncodeOid("1.2.200")
	assert.NoError(err)
	assert.Equal(Oid{0x2a, 0x81, 0x48}, enc)

	// Larger two byte arcs match the DER produced by encoding/asn1
	enc, err = EncodeOid("1.3.6.1.4.1.311.13.2.2")
	assert.NoError(err)
	assert.Equal(Oid{0x2b, 0x06, 0x01, 0x04, 0x01, 0x82, 0x37, 0x0d, 0x02, 0x02}, enc)
}

func TestEncodeOidInvalidFormat(t *testing.T) {
	assert := assert.New(t)

	for _, in := range []string{"", "42", "1.2.x", "1.-2.3", "..."} {
		_, err := EncodeOid(in)
		assert.ErrorIs(err, ErrInvalidFormat, "input %q", in)
	}
}

func TestDecodeOid(t *testing.T) {
	assert := assert.New(t)

	// Minimal OID
	s, err := DecodeOid([]byte{0x00})
	assert.NoError(err)
	assert.Equal("0.0", s)

	// Two byte continuation form
	s, err = DecodeOid([]byte{0x2a, 0x81, 0x48})
	assert.NoError(err)
	assert.Equal("1.2.200", s)

	// ecdsa-with-SHA256, arcs 840 and 10045 both use two bytes
	s, err = DecodeOid([]byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x02})
	assert.NoError(err)
	assert.Equal("1.2.840.10045.4.3.2", s)
}

func TestDecodeOidTagSkip(t *testing.T) {
	assert := assert.New(t)

	payload := []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x02}

	want, err := DecodeOid(payload)
	assert.NoError(err)

	tagged := append([]byte{0x06, byte(len(payload))}, payload...)
	got, err := DecodeOid(tagged)
	assert.NoError(err)
	assert.Equal(want, got)

	// the length byte is skipped without being validated
	tagged[1] = 0x00
	got, err = DecodeOid(tagged)
	assert.NoError(err)
	assert.Equal(want, got)
}

func TestDecodeOidOutOfRange(t *testing.T) {
	assert := assert.New(t)

	// empty input
	_, err := DecodeOid(nil)
	assert.ErrorIs(err, ErrOutOfRange)

	// header with no payload
	_, err = DecodeOid([]byte{0x06, 0x00})
	assert.ErrorIs(err, ErrOutOfRange)

	// dangling continuation byte must not be silently truncated
	_, err = DecodeOid([]byte{0x2a, 0x81})
	assert.ErrorIs(err, ErrOutOfRange)
}

func TestOidRoundTrip(t *testing.T) {
	assert := assert.New(t)

	// round-trip holds for all arcs small enough for the two byte form
	oids := []string{
		"0.0",
		"1.2",
		"1.2.200",
		"2.5.4.3",
		"2.5.29.14",
		"1.2.840.10045.4.3.2",
		"2.16.840.1.101.3.4.2.1",
		"1.3.6.1.4.1.311.13.2.2",
		"1.3.6.1.4.1.311.21.20",
		"1.2.16383",
	}

	for _, want := range oids {
		enc, err := EncodeOid(want)
		assert.NoError(err, "oid %s", want)

		got, err := DecodeOid(enc)
		assert.NoError(err, "oid %s", want)
		assert.Equal(want, got)
	}
}
