package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountValidation(t *testing.T) {
	tests := []struct {
		name    string
		account *Account
		wantErr bool
	}{
		{
			name: "valid account",
			account: &Account{
				ID:       "acct-1",
				Username: "ada",
				Email:    "ada@x.com",
				Password: "pw",
			},
			wantErr: false,
		},
		{
			name: "missing username",
			account: &Account{
				ID:       "acct-1",
				Email:    "ada@x.com",
				Password: "pw",
			},
			wantErr: true,
		},
		{
			name: "malformed email",
			account: &Account{
				ID:       "acct-1",
				Username: "ada",
				Email:    "not-an-email",
				Password: "pw",
			},
			wantErr: true,
		},
		{
			name: "missing password",
			account: &Account{
				ID:       "acct-1",
				Username: "ada",
				Email:    "ada@x.com",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccountBeforeCreate(t *testing.T) {
	account := &Account{Username: "ada", Email: "ada@x.com", Password: "pw"}
	account.BeforeCreate()
	assert.NotEmpty(t, account.ID)

	other := &Account{Username: "grace", Email: "grace@x.com", Password: "pw"}
	other.BeforeCreate()
	assert.NotEqual(t, account.ID, other.ID)
}

func TestAccountBeforeCreateKeepsExistingID(t *testing.T) {
	account := &Account{ID: "fixed", Username: "ada", Email: "ada@x.com", Password: "pw"}
	account.BeforeCreate()
	assert.Equal(t, "fixed", account.ID)
}
