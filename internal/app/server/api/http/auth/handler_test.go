package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"responsivas/internal/domain/admin"
)

type MockAdmin struct {
	mock.Mock
}

func (m *MockAdmin) Authenticate(username, password string) error {
	args := m.Called(username, password)
	return args.Error(0)
}

type MockSession struct {
	mock.Mock
}

func (m *MockSession) Issue(identity string) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

func (m *MockSession) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func TestHandler_Login_Success(t *testing.T) {
	adm := new(MockAdmin)
	sess := new(MockSession)
	h := NewHandler(adm, sess, slog.Default(), nil)

	adm.On("Authenticate", "admin", "secret").Return(nil)
	sess.On("Issue", "admin").Return("signed.jwt.token", nil)

	out, err := h.login(context.Background(), &loginInput{
		Body: LoginRequest{Username: "admin", Password: "secret"},
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Body.Token)
}

func TestHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown identity", username: "wronguser", password: "anything"},
		{name: "wrong password", username: "admin", password: "wrongpass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adm := new(MockAdmin)
			sess := new(MockSession)
			h := NewHandler(adm, sess, slog.Default(), nil)

			adm.On("Authenticate", tt.username, tt.password).Return(admin.ErrInvalidAuth)

			_, err := h.login(context.Background(), &loginInput{
				Body: LoginRequest{Username: tt.username, Password: tt.password},
			})
			require.Error(t, err)

			// Both failure kinds share one status and one message.
			var statusErr huma.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, 401, statusErr.GetStatus())
			assert.Contains(t, err.Error(), "Credenciales incorrectas")

			sess.AssertNotCalled(t, "Issue")
		})
	}
}

func TestHandler_Login_IssueError(t *testing.T) {
	adm := new(MockAdmin)
	sess := new(MockSession)
	h := NewHandler(adm, sess, slog.Default(), nil)

	adm.On("Authenticate", "admin", "secret").Return(nil)
	sess.On("Issue", "admin").Return("", errors.New("signing failure"))

	_, err := h.login(context.Background(), &loginInput{
		Body: LoginRequest{Username: "admin", Password: "secret"},
	})
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 500, statusErr.GetStatus())
}
