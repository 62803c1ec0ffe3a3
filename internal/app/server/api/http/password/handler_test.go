package password

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"responsivas/internal/domain/credential"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, categoria, servicio, secret, descripcion string) (*credential.Credential, error) {
	args := m.Called(ctx, categoria, servicio, secret, descripcion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credential.Credential), args.Error(1)
}

func (m *MockService) List(ctx context.Context) ([]credential.Credential, error) {
	args := m.Called(ctx)
	return args.Get(0).([]credential.Credential), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id int) (*credential.Credential, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credential.Credential), args.Error(1)
}

func (m *MockService) Reveal(ctx context.Context, id int) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int, categoria, servicio, secret, descripcion string) (*credential.Credential, error) {
	args := m.Called(ctx, id, categoria, servicio, secret, descripcion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credential.Credential), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) MostRecent(ctx context.Context) (*credential.Credential, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credential.Credential), args.Error(1)
}

func TestHandler_Create(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	created := &credential.Credential{
		ID:        1,
		Categoria: "VPN Y SERVIDOR",
		Servicio:  "vpn-admin",
		CreatedAt: time.Now(),
	}
	svc.On("Create", mock.Anything, "VPN Y SERVIDOR", "vpn-admin", "Tr0ub4dor&3", "").Return(created, nil)

	out, err := h.create(context.Background(), &createInput{
		Body: passwordRequest{Categoria: "VPN Y SERVIDOR", Servicio: "vpn-admin", Contrasena: "Tr0ub4dor&3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Body.ID)
	assert.Equal(t, "vpn-admin", out.Body.Servicio)

	svc.AssertExpectations(t)
}

func TestHandler_Create_Validation(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Create", mock.Anything, "CAMARAS", "", "x", "").Return(nil, credential.ErrInvalidInput)

	_, err := h.create(context.Background(), &createInput{
		Body: passwordRequest{Categoria: "CAMARAS", Contrasena: "x"},
	})
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.GetStatus())
}

func TestHandler_Reveal(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Reveal", mock.Anything, 7).Return("Tr0ub4dor&3", nil)

	out, err := h.reveal(context.Background(), &idInput{ID: 7})
	require.NoError(t, err)
	assert.Equal(t, "Tr0ub4dor&3", out.Body.Password)
}

func TestHandler_Reveal_NotFound(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Reveal", mock.Anything, 99).Return("", credential.ErrNotFound)

	_, err := h.reveal(context.Background(), &idInput{ID: 99})
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}

func TestHandler_Reveal_DecryptError(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Reveal", mock.Anything, 7).Return("", credential.ErrDecrypt)

	_, err := h.reveal(context.Background(), &idInput{ID: 7})
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 500, statusErr.GetStatus())
	// The client sees a generic message, not cipher internals.
	assert.NotContains(t, err.Error(), "envelope")
}

func TestHandler_Delete_BestEffort(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Delete", mock.Anything, 424242).Return(nil)

	out, err := h.delete(context.Background(), &idInput{ID: 424242})
	require.NoError(t, err)
	assert.Equal(t, "Registro eliminado correctamente", out.Body.Mensaje)
}

func TestHandler_Update_PassesEmptySecretThrough(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	updated := &credential.Credential{ID: 3, Categoria: "ZKTIME", Servicio: "reloj-checador"}
	svc.On("Update", mock.Anything, 3, "ZKTIME", "reloj-checador", "", "").Return(updated, nil)

	out, err := h.update(context.Background(), &updateInput{
		ID:   3,
		Body: passwordRequest{Categoria: "ZKTIME", Servicio: "reloj-checador"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Body.ID)

	svc.AssertExpectations(t)
}

func TestHandler_Recent_Empty(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("MostRecent", mock.Anything).Return(nil, nil)

	out, err := h.recent(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, out.Body.Credential)
}

func TestHandler_List_StorageError(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("List", mock.Anything).Return([]credential.Credential(nil), errors.New("connection refused"))

	_, err := h.list(context.Background(), nil)
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 500, statusErr.GetStatus())
	assert.NotContains(t, err.Error(), "connection refused")
}
