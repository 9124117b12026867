package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/hgmendoza/recaudo/internal/auth"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}

func TestService_Login(t *testing.T) {
	type testCase struct {
		name      string
		username  string
		password  string
		setupMock func(t *testing.T, m *auth.MockRepository)
		wantRole  auth.Role
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			username: "maria",
			password: "s3cret",
			setupMock: func(t *testing.T, m *auth.MockRepository) {
				m.EXPECT().
					GetCredentials(gomock.Any(), "maria").
					Return(&auth.Credentials{
						UserID:       7,
						Username:     "maria",
						PasswordHash: hashOf(t, "s3cret"),
						Role:         "supervisor",
						Active:       true,
					}, nil)
			},
			wantRole: auth.RoleSupervisor,
		},
		{
			name:     "UnknownUser",
			username: "ghost",
			password: "whatever",
			setupMock: func(t *testing.T, m *auth.MockRepository) {
				m.EXPECT().
					GetCredentials(gomock.Any(), "ghost").
					Return(nil, auth.ErrNotFound)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name:     "WrongPassword",
			username: "maria",
			password: "nope",
			setupMock: func(t *testing.T, m *auth.MockRepository) {
				m.EXPECT().
					GetCredentials(gomock.Any(), "maria").
					Return(&auth.Credentials{
						UserID:       7,
						Username:     "maria",
						PasswordHash: hashOf(t, "s3cret"),
						Role:         "agent",
						Active:       true,
					}, nil)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name:     "InactiveUser",
			username: "old",
			password: "s3cret",
			setupMock: func(t *testing.T, m *auth.MockRepository) {
				m.EXPECT().
					GetCredentials(gomock.Any(), "old").
					Return(&auth.Credentials{
						UserID:       3,
						Username:     "old",
						PasswordHash: hashOf(t, "s3cret"),
						Role:         "agent",
						Active:       false,
					}, nil)
			},
			wantErr: auth.ErrUserInactive,
		},
		{
			name:     "UnknownStoredRole",
			username: "odd",
			password: "s3cret",
			setupMock: func(t *testing.T, m *auth.MockRepository) {
				m.EXPECT().
					GetCredentials(gomock.Any(), "odd").
					Return(&auth.Credentials{
						UserID:       4,
						Username:     "odd",
						PasswordHash: hashOf(t, "s3cret"),
						Role:         "superuser",
						Active:       true,
					}, nil)
			},
			wantErr: nil, // any error is fine, checked separately below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := auth.NewMockRepository(ctrl)
			tt.setupMock(t, repo)

			svc := auth.NewService(repo)
			sess, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.name == "UnknownStoredRole" {
				assert.Error(t, err)
				assert.Nil(t, sess)

				return
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sess)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, sess)
			assert.Equal(t, tt.wantRole, sess.Role)
			assert.Equal(t, tt.username, sess.Username)
		})
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"agent", "supervisor", "gerente", "admin"} {
		role, err := auth.ParseRole(s)
		require.NoError(t, err)
		assert.True(t, role.CanOperate())
	}

	for _, s := range []string{"", "Agent", "root", "superuser"} {
		_, err := auth.ParseRole(s)
		assert.Error(t, err, "role %q must not parse", s)
	}

	assert.False(t, auth.RoleAgent.Elevated())
	assert.True(t, auth.RoleSupervisor.Elevated())
	assert.True(t, auth.RoleGerente.Elevated())
	assert.True(t, auth.RoleAdmin.Elevated())
	assert.True(t, auth.RoleAdmin.IsAdmin())
	assert.False(t, auth.RoleGerente.IsAdmin())
}
