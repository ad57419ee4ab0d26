package auth_test

import (
	"context"
	"testing"

	"radiology/internal/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal(t *testing.T) {
	t.Run("resolves_roles_into_capabilities", func(t *testing.T) {
		p := auth.NewPrincipal(3, "jdoe", []auth.Role{
			auth.RoleReferringPhysician,
			auth.RoleScheduler,
		})

		assert.True(t, p.Capabilities.Referring)
		assert.True(t, p.Capabilities.Scheduler)
		assert.False(t, p.Capabilities.Performing)
		assert.False(t, p.Capabilities.Reading)
		assert.False(t, p.IsSuper())
	})

	t.Run("ignores_unknown_roles", func(t *testing.T) {
		p := auth.NewPrincipal(3, "jdoe", []auth.Role{"janitor"})

		assert.True(t, p.IsSuper())
	})

	t.Run("no_roles_means_super", func(t *testing.T) {
		p := auth.NewPrincipal(3, "jdoe", nil)

		assert.True(t, p.IsSuper())
	})
}

func TestPrincipalContext(t *testing.T) {
	t.Run("round_trips_through_context", func(t *testing.T) {
		p := auth.NewPrincipal(3, "jdoe", []auth.Role{auth.RoleReadingPhysician})
		ctx := auth.WithPrincipal(context.Background(), p)

		got, ok := auth.FromContext(ctx)

		require.True(t, ok)
		assert.Equal(t, p, got)
	})

	t.Run("absent_principal_reports_false", func(t *testing.T) {
		_, ok := auth.FromContext(context.Background())

		assert.False(t, ok)
	})
}
