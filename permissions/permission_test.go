package permissions_test

import (
	"testing"

	"pawsit/permissions"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		permission string
		expected   bool
	}{
		{
			name:       "admin wildcard grants everything",
			role:       "admin",
			permission: "booking:create",
			expected:   true,
		},
		{
			name:       "client can create bookings",
			role:       "client",
			permission: "booking:create",
			expected:   true,
		},
		{
			name:       "client cannot transition visits",
			role:       "client",
			permission: "visit:transition",
			expected:   false,
		},
		{
			name:       "sitter can transition visits",
			role:       "sitter",
			permission: "visit:transition",
			expected:   true,
		},
		{
			name:       "sitter cannot create bookings",
			role:       "sitter",
			permission: "booking:create",
			expected:   false,
		},
		{
			name:       "unknown role has no permissions",
			role:       "auditor",
			permission: "booking:read",
			expected:   false,
		},
		{
			name:       "unknown permission is denied",
			role:       "client",
			permission: "booking:delete",
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := permissions.HasPermission(tt.role, tt.permission)
			if result != tt.expected {
				t.Errorf("expected %v for role %s permission %s, got %v", tt.expected, tt.role, tt.permission, result)
			}
		})
	}
}
