package services

import (
	"testing"

	"github.com/drxagencia/mateus-burger/entity"
	"github.com/stretchr/testify/assert"
)

func formValido() entity.CheckoutForm {
	return entity.CheckoutForm{
		Nome:            "Maria Silva",
		Whatsapp:        "11987654321",
		Bairro:          "Centro",
		Rua:             "Rua das Flores, 123",
		Referencia:      "Próximo ao mercado",
		MetodoPagamento: "Pix",
	}
}

func TestTelefoneValido(t *testing.T) {
	casos := []struct {
		tel    string
		valido bool
	}{
		{"11987654321", true},
		{"(11) 98765-4321", true}, // só os dígitos contam
		{"11887654321", false},    // terceiro dígito não é 9
		{"119876543", false},      // tamanho errado
		{"119876543210", false},
		{"", false},
	}
	for _, c := range casos {
		assert.Equal(t, c.valido, TelefoneValido(c.tel), "tel %q", c.tel)
	}
}

func TestValidateCamposObrigatorios(t *testing.T) {
	s := NewCheckoutService()

	v := s.Validate(&entity.CheckoutForm{}, 0)
	assert.False(t, v.Valido)
	for _, campo := range []string{"nome", "whatsapp", "bairro", "rua", "referencia"} {
		assert.Contains(t, v.Erros, campo)
	}

	form := formValido()
	v = s.Validate(&form, 5000)
	assert.True(t, v.Valido)
	assert.Empty(t, v.Erros)

	// limites de tamanho
	form.Nome = "Jo"
	v = s.Validate(&form, 5000)
	assert.Contains(t, v.Erros, "nome")

	form = formValido()
	form.Rua = "Rua "
	v = s.Validate(&form, 5000)
	assert.Contains(t, v.Erros, "rua")

	form = formValido()
	form.Whatsapp = "11887654321"
	v = s.Validate(&form, 5000)
	assert.Equal(t, "Formato inválido (11 dígitos)", v.Erros["whatsapp"])
}

func TestValidateTroco(t *testing.T) {
	s := NewCheckoutService()
	total := int64(5000) // R$ 50,00

	form := formValido()
	form.MetodoPagamento = MetodoDinheiro
	form.PrecisaTroco = true

	form.TrocoPara = "40"
	assert.False(t, s.Validate(&form, total).Valido)

	// igual ao total não serve: precisa ser estritamente maior
	form.TrocoPara = "50"
	assert.False(t, s.Validate(&form, total).Valido)

	form.TrocoPara = "60,50"
	assert.True(t, s.Validate(&form, total).Valido)

	form.TrocoPara = "60.50"
	assert.True(t, s.Validate(&form, total).Valido)

	form.TrocoPara = "abc"
	assert.False(t, s.Validate(&form, total).Valido)

	// sem troco pedido, o valor digitado é irrelevante
	form.PrecisaTroco = false
	form.TrocoPara = "1"
	assert.True(t, s.Validate(&form, total).Valido)

	// método não-dinheiro nunca avalia troco
	form = formValido()
	form.PrecisaTroco = true
	form.TrocoPara = "0"
	assert.True(t, s.Validate(&form, total).Valido)
}
