// SPDX-License-Identifier: Apache-2.0

package aadinternals

// GENERATED CODE: DO NOT EDIT

var knownOids = []struct {
	id        KnownOid
	name      string
	oidString string
	oid       Oid
}{

	// 1.2.840.113549.1.1.1
	{OID_RSA_ENCRYPTION,
		"OID_RSA_ENCRYPTION",
		"1.2.840.113549.1.1.1",
		[]byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01}},

	// 1.2.840.113549.1.1.5
	{OID_SHA1_RSA,
		"OID_SHA1_RSA",
		"1.2.840.113549.1.1.5",
		[]byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x05}},

	// 1.2.840.113549.1.1.11
	{OID_SHA256_RSA,
		"OID_SHA256_RSA",
		"1.2.840.113549.1.1.11",
		[]byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b}},

	// 1.2.840.10045.4.3.2
	{OID_ECDSA_SHA256,
		"OID_ECDSA_SHA256",
		"1.2.840.10045.4.3.2",
		[]byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x02}},

	// 2.16.840.1.101.3.4.2.1
	{OID_SHA256,
		"OID_SHA256",
		"2.16.840.1.101.3.4.2.1",
		[]byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}},

	// 1.2.840.113549.1.9.14
	{OID_EXTENSION_REQUEST,
		"OID_EXTENSION_REQUEST",
		"1.2.840.113549.1.9.14",
		[]byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x09, 0x0e}},

	// 1.3.6.1.4.1.311.13.2.2
	{OID_ENROLLMENT_CSP_PROVIDER,
		"OID_ENROLLMENT_CSP_PROVIDER",
		"1.3.6.1.4.1.311.13.2.2",
		[]byte{0x2b, 0x06, 0x01, 0x04, 0x01, 0x82, 0x37, 0x0d, 0x02, 0x02}},

	// 1.3.6.1.4.1.311.13.2.3
	{OID_ENROLLMENT_OS_VERSION,
		"OID_ENROLLMENT_OS_VERSION",
		"1.3.6.1.4.1.311.13.2.3",
		[]byte{0x2b, 0x06, 0x01, 0x04, 0x01, 0x82, 0x37, 0x0d, 0x02, 0x03}},
}
