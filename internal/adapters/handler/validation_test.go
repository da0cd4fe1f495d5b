package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstViolation(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name string
		req  any
		want MessageResponse
	}{
		{
			name: "missing email",
			req:  &LoginRequest{Password: "pw"},
			want: MessageResponse{Message: "email is required", Field: "email"},
		},
		{
			name: "malformed email",
			req:  &LoginRequest{Email: "nope", Password: "pw"},
			want: MessageResponse{Message: "email must be a valid email address", Field: "email"},
		},
		{
			name: "signup without name",
			req:  &SignupRequest{Email: "a@b.co", Password: "pw"},
			want: MessageResponse{Message: "name is required", Field: "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			assert.Equal(t, tt.want, firstViolation(err))
		})
	}
}

func TestFirstViolation_NonValidationError(t *testing.T) {
	assert.Equal(t, MessageResponse{Message: "invalid request body"}, firstViolation(errors.New("boom")))
}
