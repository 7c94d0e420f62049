package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestCalcularAdiestramiento(t *testing.T) {
	t.Run("ratio estandar 8 a 1.6", func(t *testing.T) {
		u := &Usuario{HorasDesarrollo: decPtr("8"), HorasAdiestramiento: decPtr("1.6")}
		got := u.CalcularAdiestramiento(dec("4"))
		assert.True(t, got.Equal(dec("0.8")), "got %s", got)
	})

	t.Run("ratio no estandar", func(t *testing.T) {
		u := &Usuario{HorasDesarrollo: decPtr("4.5"), HorasAdiestramiento: decPtr("3.5")}
		got := u.CalcularAdiestramiento(dec("9"))
		assert.True(t, got.Equal(dec("7")), "got %s", got)
	})

	t.Run("sin cuota de desarrollo", func(t *testing.T) {
		u := &Usuario{HorasAdiestramiento: decPtr("1.6")}
		assert.True(t, u.CalcularAdiestramiento(dec("4")).IsZero())
	})

	t.Run("sin cuota de adiestramiento", func(t *testing.T) {
		u := &Usuario{HorasDesarrollo: decPtr("8")}
		assert.True(t, u.CalcularAdiestramiento(dec("4")).IsZero())
	})

	t.Run("cuota de desarrollo en cero no divide", func(t *testing.T) {
		u := &Usuario{HorasDesarrollo: decPtr("0"), HorasAdiestramiento: decPtr("1.6")}
		assert.True(t, u.CalcularAdiestramiento(dec("4")).IsZero())
	})
}
