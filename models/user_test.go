package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullNameFallbackChain(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		expected string
	}{
		{"both names", User{FirstName: "Ada", LastName: "Lovelace", Username: "ada"}, "Ada Lovelace"},
		{"first only", User{FirstName: "Ada", Username: "ada"}, "Ada"},
		{"last only", User{LastName: "Lovelace", Username: "ada"}, "Lovelace"},
		{"username fallback", User{Username: "ada"}, "ada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.FullName())
		})
	}
}

func TestToSummaryFollowStateRelativeToViewer(t *testing.T) {
	target := User{ID: "u2", Username: "grace", FirstName: "Grace"}

	follower := User{ID: "u1", Following: StringSlice{"u2"}}
	summary := target.ToSummary(&follower)
	assert.True(t, summary.IsFollowing)
	assert.Equal(t, "Grace", summary.FullName)

	stranger := User{ID: "u3"}
	assert.False(t, target.ToSummary(&stranger).IsFollowing)

	assert.False(t, target.ToSummary(nil).IsFollowing)
}
