// SPDX-License-Identifier: Apache-2.0

package aadinternals

import (
	"fmt"
	"strconv"
	"strings"
)

// Oid represents the DER encoding of an Object Identifier, excluding the
// ASN.1 header (two bytes: tag value 0x06 and length), as per the Microsoft
// documentation on object identifiers. The empty or nil Oid value does not
// have any special meaning.
type Oid []byte

// derOidTag is the ASN.1 universal tag for OBJECT IDENTIFIER values.
const derOidTag = 0x06

// EncodeOid converts a dotted-decimal OID string such as
// "1.2.840.113549.1.1.1" to its DER byte encoding, without the two byte
// ASN.1 header. The string must contain at least two dot separated
// non-negative integers or ErrInvalidFormat is returned.
//
// The first two arcs pack into a single byte as arc0*40 + arc1. The value
// of arc0 is not range checked; callers are expected to supply 0, 1 or 2
// per the ASN.1 convention. Arcs of 128 and above encode as two bytes with
// the continuation bit set on the first. Arcs of 16384 and above need three
// or more DER bytes, which the two byte form cannot carry: those arcs are
// truncated and do not round-trip through DecodeOid.
func EncodeOid(oid string) (Oid, error) {
	elms := strings.Split(oid, ".")
	if len(elms) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, oid)
	}

	arcs := make([]uint64, len(elms))
	for i, elm := range elms {
		arc, err := strconv.ParseUint(elm, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, oid)
		}
		arcs[i] = arc
	}

	enc := make(Oid, 0, len(arcs)-1)
	enc = append(enc, byte(arcs[0]*40+arcs[1]))

	for _, arc := range arcs[2:] {
		if arc <= 0x7f {
			enc = append(enc, byte(arc))
			continue
		}

		// Two byte form: bits 13..7 move to the first byte along with
		// the continuation bit, bits 6..0 stay in the second.
		enc = append(enc, byte(arc>>7)|0x80, byte(arc)&0x7f)
	}

	return enc, nil
}

// DecodeOid converts a DER encoded OID to its dotted-decimal string form.
// The input may be the bare encoding or may carry the two byte ASN.1
// header (tag 0x06 and length), which is skipped without validating the
// length byte. ErrOutOfRange is returned when the payload is empty or ends
// on a dangling continuation byte.
func DecodeOid(enc []byte) (string, error) {
	pos := 0
	if len(enc) > 0 && enc[0] == derOidTag {
		pos = 2 // skip the tag and length bytes
	}
	if pos >= len(enc) {
		return "", fmt.Errorf("%w: empty OID payload", ErrOutOfRange)
	}

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(enc[pos] / 40)))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(int(enc[pos] % 40)))
	pos++

	for pos < len(enc) {
		var arc int

		b1 := enc[pos]
		if b1&0x80 != 0 {
			if pos+1 >= len(enc) {
				return "", fmt.Errorf("%w: continuation byte 0x%02x at end of input", ErrOutOfRange, b1)
			}

			// Inverse of the two byte form: the low bit of the first
			// byte is the top bit of the second.
			b2 := enc[pos+1] | (b1&1)<<7
			b1 = (b1 & 0x7f) >> 1
			arc = int(b1)*256 + int(b2)
			pos += 2
		} else {
			arc = int(b1)
			pos++
		}

		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(arc))
	}

	return sb.String(), nil
}
