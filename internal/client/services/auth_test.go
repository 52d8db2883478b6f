package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginForm_Validate(t *testing.T) {
	tests := []struct {
		name   string
		form   LoginForm
		fields []string
	}{
		{"ok", LoginForm{Username: "jo", Password: []byte("pass"), Role: "BROKER"}, nil},
		{"short username", LoginForm{Username: "j", Password: []byte("pass"), Role: "BROKER"}, []string{"username"}},
		{"blank username", LoginForm{Username: "   ", Password: []byte("pass"), Role: "ADMIN"}, []string{"username"}},
		{"short password", LoginForm{Username: "jo", Password: []byte("abc"), Role: "ADMIN"}, []string{"password"}},
		{"multibyte counts runes", LoginForm{Username: "éé", Password: []byte("ñañá"), Role: "VIEWER"}, nil},
		{"lower-case role", LoginForm{Username: "jo", Password: []byte("pass"), Role: "viewer"}, nil},
		{"bad role", LoginForm{Username: "jo", Password: []byte("pass"), Role: "OWNER"}, []string{"role"}},
		{"all bad", LoginForm{}, []string{"password", "role", "username"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, common.ErrorValidation)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			got := make([]string, 0, len(verrs))
			for f := range verrs {
				got = append(got, f)
			}
			assert.ElementsMatch(t, tt.fields, got)
		})
	}
}

func TestValidationErrors_ErrorIsSorted(t *testing.T) {
	err := ValidationErrors{"role": "r", "password": "p"}
	assert.Equal(t, "validation error: password: p; role: r", err.Error())
}

func TestAuthService_Login(t *testing.T) {
	svc, sess := newAuth(t)
	ctx := context.Background()

	u, err := svc.Login(ctx, LoginForm{Username: " jo ", Password: []byte("pass"), Role: "ANALYST"})
	require.NoError(t, err)
	assert.Equal(t, "jo", u.Name)
	assert.Equal(t, models.RoleAnalyst, u.Role)
	assert.NotEmpty(t, u.ID)
	assert.NotEmpty(t, u.Token)

	cur := sess.Current()
	require.NotNil(t, cur)
	assert.Equal(t, u, *cur)
	assert.Equal(t, cur, svc.Current(ctx))
}

func TestAuthService_LoginInvalidLeavesSessionUntouched(t *testing.T) {
	svc, sess := newAuth(t)
	ctx := context.Background()

	prev, err := svc.QuickLogin(ctx, models.RoleBroker)
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginForm{Username: "x", Password: []byte("1"), Role: "ADMIN"})
	require.ErrorIs(t, err, common.ErrorValidation)

	cur := sess.Current()
	require.NotNil(t, cur)
	assert.Equal(t, prev.ID, cur.ID)
}

func TestAuthService_QuickLogin(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()

	want := map[models.Role]string{
		models.RoleAdmin:   "alice.admin",
		models.RoleBroker:  "ben.broker",
		models.RoleAnalyst: "amy.analyst",
		models.RoleViewer:  "vic.viewer",
	}
	for role, name := range want {
		u, err := svc.QuickLogin(ctx, role)
		require.NoError(t, err)
		assert.Equal(t, name, u.Name)
		assert.Equal(t, role, u.Role)
	}

	_, err := svc.QuickLogin(ctx, models.Role("ROOT"))
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, models.AllRoles(), QuickLoginRoles())
}

func TestAuthService_LoginReplacesAndLogoutClears(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()

	_, err := svc.QuickLogin(ctx, models.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.QuickLogin(ctx, models.RoleViewer)
	require.NoError(t, err)
	assert.Equal(t, models.RoleViewer, svc.Current(ctx).Role)

	svc.Logout(ctx)
	assert.Nil(t, svc.Current(ctx))

	svc.Logout(ctx)
	assert.Nil(t, svc.Current(ctx))
}

func TestAuthService_LoginRoleIsCaseInsensitive(t *testing.T) {
	svc, _ := newAuth(t)

	u, err := svc.Login(context.Background(), LoginForm{Username: "vic", Password: []byte("pass"), Role: " viewer "})
	require.NoError(t, err)
	assert.Equal(t, models.RoleViewer, u.Role)
}
