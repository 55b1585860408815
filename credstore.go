// SPDX-License-Identifier: Apache-2.0

package aadinternals

import (
	"bytes"
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	pkcs12 "software.sslmate.com/src/go-pkcs12"
)

type credStoreConfig struct {
	password string
}

// CredStoreOption options configure how certificate and key material is
// loaded by LoadCertificate.
type CredStoreOption func(c *credStoreConfig)

// WithPassword configures the password used to decrypt a PKCS#12 container.
// It has no effect on PEM input.
func WithPassword(password string) CredStoreOption {
	return func(c *credStoreConfig) {
		c.password = password
	}
}

// Certificate is a handle to a loaded X.509 certificate and any private key
// material that was bundled with it.
type Certificate struct {
	cert *x509.Certificate
	key  crypto.Signer
}

// PrivateKey is an explicitly owned handle to private key material. The
// owner must release the handle with Close when done with it; there is no
// ambient store holding key material beyond the handle's lifetime.
type PrivateKey struct {
	signer crypto.Signer
}

// LoadCertificate loads a certificate from a PKCS#12 (.pfx/.p12) container
// or a PEM file. The format is detected from the file content, not the
// file name.
//
// Parameters:
//   - path: the file to load
//   - opts: optional credential store options, such as WithPassword
//
// Returns:
//   - cert: a handle to the certificate and any bundled private key
//   - err: error if one occurred, otherwise nil
func LoadCertificate(path string, opts ...CredStoreOption) (*Certificate, error) {
	var cfg credStoreConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("-----BEGIN")) {
		return parseCertificatePEM(data)
	}

	return parseCertificatePKCS12(data, cfg.password)
}

func parseCertificatePKCS12(data []byte, password string) (*Certificate, error) {
	key, cert, _, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		return nil, fmt.Errorf("decoding PKCS#12 container: %w", err)
	}

	c := &Certificate{cert: cert}
	if key != nil {
		signer, ok := key.(crypto.Signer)
		if !ok {
			return nil, fmt.Errorf("%w: %T cannot sign", ErrNoKey, key)
		}
		c.key = signer
	}

	return c, nil
}

func parseCertificatePEM(data []byte) (*Certificate, error) {
	var c Certificate

	block, rest := pem.Decode(data)
	for block != nil {
		switch block.Type {
		case "CERTIFICATE":
			// the first certificate block is the leaf, later blocks
			// are assumed to be the chain and are ignored
			if c.cert == nil {
				cert, err := x509.ParseCertificate(block.Bytes)
				if err != nil {
					return nil, fmt.Errorf("parsing certificate: %w", err)
				}
				c.cert = cert
			}
		case "PRIVATE KEY":
			key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
			if err != nil {
				return nil, fmt.Errorf("parsing private key: %w", err)
			}
			signer, ok := key.(crypto.Signer)
			if !ok {
				return nil, fmt.Errorf("%w: %T cannot sign", ErrNoKey, key)
			}
			c.key = signer
		case "RSA PRIVATE KEY":
			key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
			if err != nil {
				return nil, fmt.Errorf("parsing private key: %w", err)
			}
			c.key = key
		case "EC PRIVATE KEY":
			key, err := x509.ParseECPrivateKey(block.Bytes)
			if err != nil {
				return nil, fmt.Errorf("parsing private key: %w", err)
			}
			c.key = key
		}

		block, rest = pem.Decode(rest)
	}

	if c.cert == nil {
		return nil, ErrNoCertificate
	}

	return &c, nil
}

// X509 returns the parsed certificate.
func (c *Certificate) X509() *x509.Certificate {
	return c.cert
}

// PrivateKey returns a handle to the certificate's private key, or ErrNoKey
// when the loaded material carried none. The caller owns the returned
// handle and must release it with Close.
func (c *Certificate) PrivateKey() (*PrivateKey, error) {
	if c.key == nil {
		return nil, ErrNoKey
	}

	return &PrivateKey{signer: c.key}, nil
}

// Signer returns the signing key held by the handle. After Close it returns
// ErrKeyReleased.
func (k *PrivateKey) Signer() (crypto.Signer, error) {
	if k.signer == nil {
		return nil, ErrKeyReleased
	}

	return k.signer, nil
}

// Close releases the key material held by the handle. The handle must not
// be used afterwards. Close is idempotent.
func (k *PrivateKey) Close() error {
	k.signer = nil
	return nil
}
