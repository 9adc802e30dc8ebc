package nav

import (
	"testing"

	"github.com/printdvor/storefront-cli/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestTargetSurfaceFor(t *testing.T) {
	tests := []struct {
		name   string
		user   *models.User
		want   Surface
		wantOK bool
	}{
		{"admin", &models.User{Role: models.RoleAdmin}, SurfaceAdmin, true},
		{"manager", &models.User{Role: models.RoleManager}, SurfaceManager, true},
		{"user", &models.User{Role: models.RoleUser}, SurfaceProfile, true},
		{"unknown role falls back to profile", &models.User{Role: "INTERN"}, SurfaceProfile, true},
		{"absent user prompts login", nil, Surface(""), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := TargetSurfaceFor(tc.user)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, got)
		})
	}
}
