package credential

import (
	"encoding/base64"
	"errors"
	"testing"
)

// encryptedFixture decrypts to {"serial":"device-id-1","apPasswordHash":"password1"}.
const encryptedFixture = "1/aJ5t52WvAfn+z+fjDuef86kQDQPefbQ6/70ZGysII1Ke1i0ZHakFH84DZuxsSQ4KTT2vbCm7uYeTORULKLKQ=="

func TestDecrypt(t *testing.T) {
	password, err := Decrypt(encryptedFixture)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if password != "password1" {
		t.Errorf("password = %q, want %q", password, "password1")
	}
}

func TestDecryptErrors(t *testing.T) {
	tests := []struct {
		name  string
		blob  string
		stage string
		want  error
	}{
		{"NotBase64", "%%%not-base64%%%", "base64", nil},
		{"Empty", "", "cipher", ErrCiphertextLength},
		// base64 of three raw bytes, not a whole AES block
		{"PartialBlock", base64.StdEncoding.EncodeToString([]byte("abc")), "cipher", ErrCiphertextLength},
		// single block whose plaintext ends in 0x00
		{"ZeroPadding", "hHque2L1FYcr+seyf69qPQ==", "padding", ErrInvalidPadding},
		// single block whose plaintext ends in 0x20, larger than a block
		{"OversizedPadding", "MUqZN03F9HNqaCBMj6lhaA==", "padding", ErrInvalidPadding},
		// decrypts to "not json at all"
		{"NotJSON", "Yu1/g5w2d2bD/gq+lwcz4A==", "json", nil},
		// decrypts to {"serial":"device-id-1"}
		{"MissingPassword", "1/aJ5t52WvAfn+z+fjDueV/QXbFhvYfhqhZdd4JGYq8=", "json", ErrMissingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decrypt(tt.blob)
			if err == nil {
				t.Fatal("Decrypt() expected error, got nil")
			}

			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("error type = %T, want *DecodeError", err)
			}
			if de.Stage != tt.stage {
				t.Errorf("Stage = %q, want %q", de.Stage, tt.stage)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("errors.Is() = false, want unwrap to %v", tt.want)
			}
		})
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Stage: "padding", Err: ErrInvalidPadding}
	want := "credential decode failed at padding: invalid trailing padding"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
