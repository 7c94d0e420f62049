package service

import (
	"context"
	"testing"

	"github.com/gabovieira/ali300-consultores/internal/config"
	"github.com/gabovieira/ali300-consultores/internal/dto"
	"github.com/gabovieira/ali300-consultores/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*stubUsuarioRepo, AuthService) {
	t.Helper()
	repo := newStubUsuarioRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
	return repo, NewAuthService(repo, cfg, nil)
}

func seedUser(t *testing.T, repo *stubUsuarioRepo, username, password string) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Nivel:        "consultor",
	}
	repo.users[u.ID] = u
	return u
}

func TestLoginExitoso(t *testing.T) {
	repo, svc := newAuthFixture(t)
	u := seedUser(t, repo, "gabo", "hunter22")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "gabo", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, u.ID.String(), resp.User.ID)
	assert.Equal(t, "gabo", resp.User.Username)
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	repo, svc := newAuthFixture(t)
	seedUser(t, repo, "gabo", "hunter22")

	// Unknown user and wrong password must be indistinguishable
	_, errUsuario := svc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "hunter22"})
	_, errClave := svc.Login(context.Background(), dto.LoginRequest{Username: "gabo", Password: "incorrecta"})

	assert.ErrorIs(t, errUsuario, ErrCredencialesInvalidas)
	assert.ErrorIs(t, errClave, ErrCredencialesInvalidas)
	assert.Equal(t, errUsuario, errClave)
}

func TestRefreshConTokenDeLogin(t *testing.T) {
	repo, svc := newAuthFixture(t)
	u := seedUser(t, repo, "gabo", "hunter22")

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "gabo", Password: "hunter22"})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, u.ID.String(), resp.User.ID)
}

func TestRefreshTokenInvalido(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	assert.Error(t, err)
}

func TestRegistrar(t *testing.T) {
	repo, svc := newAuthFixture(t)

	resp, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Username:            "maria",
		Email:               "maria@example.com",
		Password:            "clave1234",
		HorasDesarrollo:     decPtr("8"),
		HorasAdiestramiento: decPtr("1.6"),
	})
	require.NoError(t, err)
	assert.Equal(t, "maria", resp.Username)
	assert.Equal(t, "consultor", resp.Nivel, "nivel por defecto")
	require.NotNil(t, resp.HorasDesarrollo)
	assert.True(t, resp.HorasDesarrollo.Equal(dec("8")))

	// Password stored hashed, never verbatim
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	stored := repo.users[id]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave1234", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave1234")))
}

func TestRegistrarUsernameEnUso(t *testing.T) {
	repo, svc := newAuthFixture(t)
	seedUser(t, repo, "gabo", "hunter22")

	_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Username: "gabo",
		Email:    "otro@example.com",
		Password: "clave1234",
	})
	assert.ErrorIs(t, err, ErrUsuarioEnUso)
	assert.Len(t, repo.users, 1)
}

func TestRegistrarEmailEnUso(t *testing.T) {
	repo, svc := newAuthFixture(t)
	seedUser(t, repo, "gabo", "hunter22")

	_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Username: "gabriel",
		Email:    "gabo@example.com",
		Password: "clave1234",
	})
	assert.ErrorIs(t, err, ErrEmailEnUso)
	assert.Len(t, repo.users, 1)
}

func TestRegistrarCuotasPorDefecto(t *testing.T) {
	repo, svc := newAuthFixture(t)

	resp, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Username: "pedro",
		Email:    "pedro@example.com",
		Password: "clave1234",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.HorasDesarrollo)
	require.NotNil(t, resp.HorasAdiestramiento)
	assert.True(t, resp.HorasDesarrollo.Equal(dec("8")))
	assert.True(t, resp.HorasAdiestramiento.Equal(dec("1.6")))

	// La cuenta nueva queda sujeta al límite diario estándar
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	actSvc := NewActividadService(&stubActividadRepo{}, repo, nil)
	ok, err := actSvc.PuedeRegistrar(context.Background(), repo.users[id], dec("9"))
	require.NoError(t, err)
	assert.False(t, ok, "sin cuotas explícitas la cuenta no debe ser ilimitada")
}

func TestRegistrarConservaNivelExplicito(t *testing.T) {
	_, svc := newAuthFixture(t)

	resp, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "clave1234",
		Nivel:    "senior",
	})
	require.NoError(t, err)
	assert.Equal(t, "senior", resp.Nivel)
}
