package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		pass    string
		wantErr bool
	}{
		{"valid credentials", "Admin", "MarketingComfort25", false},
		{"wrong password", "Admin", "wrong", true},
		{"username is case sensitive", "admin", "MarketingComfort25", true},
		{"empty", "", "", true},
		{"trailing space", "Admin ", "MarketingComfort25", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.user, tt.pass)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
