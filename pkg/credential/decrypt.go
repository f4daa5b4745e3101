// Package credential decrypts the per-device local credentials delivered by
// the cloud provisioning API. The blob is AES-256-CBC encrypted with a fixed,
// publicly documented provisioning key and a zero IV; the plaintext is a JSON
// document whose apPasswordHash field is the device's local MQTT password.
package credential

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// Decryption errors.
var (
	ErrCiphertextLength = errors.New("ciphertext is not a whole number of AES blocks")
	ErrInvalidPadding   = errors.New("invalid trailing padding")
	ErrMissingPassword  = errors.New("decrypted credential has no apPasswordHash field")
)

// provisioningKey is the fixed key used by the device provisioning scheme.
// It is not a secret: every device credential blob is encrypted with it.
var provisioningKey = []byte{
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
	0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
}

var provisioningIV = make([]byte, aes.BlockSize)

// DecodeError reports a failure while decoding an encrypted credential blob.
// Stage identifies the step that failed (base64, cipher, padding, json).
type DecodeError struct {
	Stage string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("credential decode failed at %s: %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decrypt decodes a base64 credential blob from a device descriptor and
// returns the local MQTT password it contains. Failures at any step return a
// *DecodeError and are never retried.
func Decrypt(encrypted string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", &DecodeError{Stage: "base64", Err: err}
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", &DecodeError{Stage: "cipher", Err: ErrCiphertextLength}
	}

	block, err := aes.NewCipher(provisioningKey)
	if err != nil {
		return "", &DecodeError{Stage: "cipher", Err: err}
	}
	plain := make([]byte, len(raw))
	cipher.NewCBCDecrypter(block, provisioningIV).CryptBlocks(plain, raw)

	plain, err = unpad(plain)
	if err != nil {
		return "", &DecodeError{Stage: "padding", Err: err}
	}

	var doc struct {
		Password string `json:"apPasswordHash"`
	}
	if err := json.Unmarshal(plain, &doc); err != nil {
		return "", &DecodeError{Stage: "json", Err: err}
	}
	if doc.Password == "" {
		return "", &DecodeError{Stage: "json", Err: ErrMissingPassword}
	}
	return doc.Password, nil
}

// unpad strips trailing padding where the last byte holds the pad length.
func unpad(data []byte) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > aes.BlockSize || n > len(data) {
		return nil, ErrInvalidPadding
	}
	return data[:len(data)-n], nil
}
