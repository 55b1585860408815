// SPDX-License-Identifier: Apache-2.0

/*
Package aadinternals provides the byte level utilities used when working
with Azure AD authentication material: a codec between dotted-decimal
object identifier (OID) strings and their ASN.1 DER byte encoding, base64
and hexadecimal string conversions, and loading of X.509 certificates and
private keys from PKCS#12 containers or PEM files.

The OID codec operates on strings and byte slices only and has no
dependency on certificate or key material. All codec functions are pure
and safe for concurrent use.
*/
package aadinternals
