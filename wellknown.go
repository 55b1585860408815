// SPDX-License-Identifier: Apache-2.0

package aadinternals

import "slices"

//go:generate go run ./build-tools/gen-known-oids -o wellknown_gen.go

// KnownOid identifies an object identifier with a well known meaning in
// the certificate and key material this package deals with. The set covers
// the signature and digest algorithms seen in Azure AD token signing
// certificates plus the Microsoft enrollment attributes used in certificate
// requests.
type KnownOid int

const (
	// rsaEncryption (RFC 8017)
	OID_RSA_ENCRYPTION KnownOid = iota
	// sha1WithRSAEncryption (RFC 8017)
	OID_SHA1_RSA
	// sha256WithRSAEncryption (RFC 8017)
	OID_SHA256_RSA
	// ecdsa-with-SHA256 (RFC 5758)
	OID_ECDSA_SHA256
	// id-sha256 (RFC 8017)
	OID_SHA256
	// pkcs-9 extensionRequest (RFC 2985)
	OID_EXTENSION_REQUEST
	// szOID_ENROLLMENT_CSP_PROVIDER (MS-WCCE)
	OID_ENROLLMENT_CSP_PROVIDER
	// szOID_OS_VERSION (MS-WCCE)
	OID_ENROLLMENT_OS_VERSION
	_OID_LAST
)

func (o KnownOid) Oid() Oid {
	if o >= _OID_LAST {
		panic(ErrUnknownOid)
	}

	return knownOids[o].oid
}

func (o KnownOid) OidString() string {
	if o >= _OID_LAST {
		panic(ErrUnknownOid)
	}

	return knownOids[o].oidString
}

func (o KnownOid) String() string {
	if o >= _OID_LAST {
		panic(ErrUnknownOid)
	}

	return knownOids[o].name
}

// KnownFromOid returns the well known identifier matching an OID.
//
// Parameters:
//   - oid: the object identifier to look up, without the ASN.1 header
//
// Returns:
//   - KnownOid: the corresponding well known identifier
//   - error: ErrUnknownOid if the OID is not recognized
func KnownFromOid(oid Oid) (KnownOid, error) {
	for i, known := range knownOids {
		if slices.Equal(known.oid, oid) {
			return KnownOid(i), nil
		}
	}

	return 0, ErrUnknownOid
}
