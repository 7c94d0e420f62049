package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=4"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegistroRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Email    string `json:"email"    validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=4"`
	Nivel    string `json:"nivel"    validate:"omitempty,max=64"`
	// Quotas are optional: null means sin limite / sin calculo derivado
	HorasDesarrollo     *decimal.Decimal `json:"horas_desarrollo"`
	HorasAdiestramiento *decimal.Decimal `json:"horas_adiestramiento"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID                  string           `json:"id"`
	Username            string           `json:"username"`
	Email               string           `json:"email"`
	Nivel               string           `json:"nivel"`
	HorasDesarrollo     *decimal.Decimal `json:"horas_desarrollo"`
	HorasAdiestramiento *decimal.Decimal `json:"horas_adiestramiento"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"` // seconds
	User         UsuarioResponse `json:"user"`
}
