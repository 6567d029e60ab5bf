package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidItemStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{ItemStatusActive, true},
		{ItemStatusClaimed, true},
		{"", false},
		{"pending", false},
		{"ACTIVE", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ValidItemStatus(tt.status), "ValidItemStatus(%q)", tt.status)
	}
}

func TestItemPublicHidesAdminDetails(t *testing.T) {
	item := Item{ID: "x", Name: "Wallet", AdminDetails: "brown leather, 3 cards"}

	public := item.Public()
	assert.Empty(t, public.AdminDetails)
	assert.Equal(t, "Wallet", public.Name)
	assert.Equal(t, "brown leather, 3 cards", item.AdminDetails, "original must not be modified")

	data, err := json.Marshal(public)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "adminDetails")
}

func TestAdminPasswordHashNotSerialized(t *testing.T) {
	data, err := json.Marshal(Admin{ID: 1, Username: "admin", PasswordHash: "secret-hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-hash")
}
