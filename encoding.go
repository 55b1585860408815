// SPDX-License-Identifier: Apache-2.0

package aadinternals

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

type b64Config struct {
	urlSafe   bool
	noPadding bool
}

// B64Option options configure the output of EncodeBase64.
type B64Option func(c *b64Config)

// WithURLEncoding selects the URL safe base64 alphabet, which uses "-" and
// "_" in place of "+" and "/".
func WithURLEncoding() B64Option {
	return func(c *b64Config) {
		c.urlSafe = true
	}
}

// WithoutPadding omits the trailing "=" padding characters from the output.
func WithoutPadding() B64Option {
	return func(c *b64Config) {
		c.noPadding = true
	}
}

// EncodeBase64 returns the base64 form of data. The default output uses the
// standard alphabet with padding; see WithURLEncoding and WithoutPadding.
func EncodeBase64(data []byte, opts ...B64Option) string {
	var cfg b64Config
	for _, opt := range opts {
		opt(&cfg)
	}

	enc := base64.StdEncoding
	if cfg.urlSafe {
		enc = base64.URLEncoding
	}
	if cfg.noPadding {
		enc = enc.WithPadding(base64.NoPadding)
	}

	return enc.EncodeToString(data)
}

// DecodeBase64 decodes a base64 string in either the standard or the URL
// safe alphabet. Stripped padding is restored before decoding, so unpadded
// input such as a JWT segment decodes without preprocessing by the caller.
func DecodeBase64(b64 string) ([]byte, error) {
	b64 = strings.ReplaceAll(b64, "-", "+")
	b64 = strings.ReplaceAll(b64, "_", "/")
	if n := len(b64) % 4; n != 0 {
		b64 += strings.Repeat("=", 4-n)
	}

	return base64.StdEncoding.DecodeString(b64)
}

// EncodeHex returns the lower case hexadecimal form of data.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex converts a hexadecimal string to bytes. The input must have an
// even number of hex digits.
func DecodeHex(h string) ([]byte, error) {
	return hex.DecodeString(h)
}
