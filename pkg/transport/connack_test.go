package transport

import (
	"errors"
	"fmt"
	"testing"

	"github.com/eclipse/paho.mqtt.golang/packets"
)

func TestConnackReason(t *testing.T) {
	tests := []struct {
		name string
		code byte
		want string
	}{
		{"Accepted", CodeAccepted, "Connection successful"},
		{"BadProtocolVersion", CodeBadProtocolVersion, "Connection refused - incorrect protocol version"},
		{"IdentifierRejected", CodeIdentifierRejected, "Connection refused - invalid client identifier"},
		{"ServerUnavailable", CodeServerUnavailable, "Connection refused - server unavailable"},
		{"BadUsernamePassword", CodeBadUsernamePassword, "Connection refused - bad username or password"},
		{"NotAuthorised", CodeNotAuthorised, "Connection refused - not authorised"},
		{"Unknown", 99, "Connection refused - unknown reason"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConnackReason(tt.code); got != tt.want {
				t.Errorf("ConnackReason(%d) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestConnectionRefusedError(t *testing.T) {
	err := error(&ConnectionRefusedError{Code: CodeBadUsernamePassword})

	if err.Error() != "Connection refused - bad username or password" {
		t.Errorf("Error() = %q", err.Error())
	}

	var refused *ConnectionRefusedError
	if !errors.As(err, &refused) {
		t.Fatal("errors.As() failed for *ConnectionRefusedError")
	}
	if refused.Code != CodeBadUsernamePassword {
		t.Errorf("Code = %d, want %d", refused.Code, CodeBadUsernamePassword)
	}
}

func TestRefusedErrorMapping(t *testing.T) {
	for code := CodeBadProtocolVersion; code <= CodeNotAuthorised; code++ {
		err := refusedError(packets.ConnErrors[code])

		var refused *ConnectionRefusedError
		if !errors.As(err, &refused) {
			t.Fatalf("refusedError(code %d) = %v, want *ConnectionRefusedError", code, err)
		}
		if refused.Code != code {
			t.Errorf("Code = %d, want %d", refused.Code, code)
		}
	}
}

func TestRefusedErrorMappingWrapped(t *testing.T) {
	wrapped := fmt.Errorf("connect failed: %w", packets.ConnErrors[CodeNotAuthorised])

	var refused *ConnectionRefusedError
	if !errors.As(refusedError(wrapped), &refused) {
		t.Fatal("wrapped CONNACK error not mapped")
	}
	if refused.Code != CodeNotAuthorised {
		t.Errorf("Code = %d, want %d", refused.Code, CodeNotAuthorised)
	}
}

func TestRefusedErrorPassthrough(t *testing.T) {
	cause := errors.New("network down")
	if got := refusedError(cause); got != cause {
		t.Errorf("refusedError() = %v, want the original error", got)
	}
}
