package service

import "errors"

// Domain error taxonomy. Handlers map these onto HTTP statuses via errors.Is;
// the messages are the user-visible text, so they stay in Spanish.
var (
	// ErrCredencialesInvalidas covers both unknown username and wrong
	// password — a single generic message so accounts cannot be enumerated.
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")

	ErrUsuarioEnUso = errors.New("el nombre de usuario ya está en uso")
	ErrEmailEnUso   = errors.New("el correo electrónico ya está en uso")

	ErrLimiteDiarioExcedido = errors.New("has excedido el límite diario de horas de desarrollo")

	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")

	// ErrFiltroInvalido marks malformed report filters (bad dates). Handlers
	// map it to 400; any other ListarFiltradas error is an internal 500.
	ErrFiltroInvalido = errors.New("filtro de fechas inválido")
)
