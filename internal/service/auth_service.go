package service

import (
	"context"
	"errors"
	"time"

	"github.com/gabovieira/ali300-consultores/internal/config"
	"github.com/gabovieira/ali300-consultores/internal/dto"
	"github.com/gabovieira/ali300-consultores/internal/model"
	"github.com/gabovieira/ali300-consultores/internal/repository"
	"github.com/gabovieira/ali300-consultores/internal/worker"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// New accounts start with the standard daily quotas unless the registration
// request sets its own. A quota only becomes null (sin límite / sin cálculo
// derivado) through an explicit profile update afterwards.
var (
	cuotaDesarrolloDefault     = decimal.NewFromFloat(8.0)
	cuotaAdiestramientoDefault = decimal.NewFromFloat(1.6)
)

func cuotaODefault(v *decimal.Decimal, def decimal.Decimal) *decimal.Decimal {
	if v != nil {
		return v
	}
	return &def
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error)
}

type authService struct {
	repo       repository.UsuarioRepository
	cfg        *config.Config
	dispatcher *worker.Dispatcher // nil when async email is disabled (tests)
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config, dispatcher *worker.Dispatcher) AuthService {
	return &authService{repo: repo, cfg: cfg, dispatcher: dispatcher}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		// Same error as a hash mismatch — no account enumeration
		return nil, ErrCredencialesInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	return s.buildLoginResponse(user)
}

// Refresh issues a fresh token pair from a still-valid refresh token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(*jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token inválido o expirado")
	}

	claims, _ := token.Claims.(jwt.MapClaims)
	raw, _ := claims["user_id"].(string)
	uid, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.New("token mal formado")
	}

	user, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}
	return s.buildLoginResponse(user)
}

func (s *authService) Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	if taken, err := s.repo.ExistsUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsuarioEnUso
	}
	if taken, err := s.repo.ExistsEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailEnUso
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	nivel := req.Nivel
	if nivel == "" {
		nivel = "consultor"
	}
	user := &model.Usuario{
		Username:            req.Username,
		Email:               req.Email,
		PasswordHash:        string(hash),
		Nivel:               nivel,
		HorasDesarrollo:     cuotaODefault(req.HorasDesarrollo, cuotaDesarrolloDefault),
		HorasAdiestramiento: cuotaODefault(req.HorasAdiestramiento, cuotaAdiestramientoDefault),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Best-effort welcome email; registration already succeeded
	if s.dispatcher != nil {
		job := worker.EmailJobPayload{
			ToEmail: user.Email,
			Subject: "Bienvenido a ALI300 Consultores",
			Body:    "Tu cuenta fue creada. Ya puedes registrar tus actividades diarias.",
		}
		if err := s.dispatcher.EnqueueEmail(ctx, job); err != nil {
			log.Warn().Err(err).Str("username", user.Username).Msg("welcome email not enqueued")
		}
	}

	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *authService) buildLoginResponse(user *model.Usuario) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         usuarioToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"nivel":    user.Nivel,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioToResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:                  u.ID.String(),
		Username:            u.Username,
		Email:               u.Email,
		Nivel:               u.Nivel,
		HorasDesarrollo:     u.HorasDesarrollo,
		HorasAdiestramiento: u.HorasAdiestramiento,
	}
}
