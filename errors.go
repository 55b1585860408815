// SPDX-License-Identifier: Apache-2.0

package aadinternals

import "errors"

// Error variables returned by the codec and the credential loading helpers.
// Call sites wrap these with fmt.Errorf and %w to add detail; callers can
// match them with errors.Is.

var ErrInvalidFormat = errors.New("the OID string does not contain at least two dot separated integers")
var ErrOutOfRange = errors.New("the encoded OID is empty or ends on an incomplete continuation pair")
var ErrUnknownOid = errors.New("the object identifier is not in the well known set")
var ErrNoCertificate = errors.New("no certificate was found in the input")
var ErrNoKey = errors.New("the certificate has no private key material")
var ErrKeyReleased = errors.New("the private key handle has been released")
