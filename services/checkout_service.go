package services

import (
	"unicode/utf8"

	"github.com/drxagencia/mateus-burger/entity"
	"github.com/drxagencia/mateus-burger/pkg/money"
)

const (
	MetodoDinheiro = "Dinheiro"

	// mensagem fixa do telefone; as demais são genéricas por campo
	msgTelefoneInvalido = "Formato inválido (11 dígitos)"
)

// CheckoutService valida o formulário de entrega/pagamento contra as regras
// de negócio. O formulário continua editável; o envio fica bloqueado
// enquanto houver erro.
type CheckoutService struct{}

func NewCheckoutService() *CheckoutService { return &CheckoutService{} }

// Validate aplica as regras de campo e a regra cruzada do troco. O total da
// sacola entra em centavos por causa da comparação do troco.
func (s *CheckoutService) Validate(form *entity.CheckoutForm, totalCentavos int64) entity.Validacao {
	erros := make(map[string]string)

	if utf8.RuneCountInString(form.Nome) <= 2 {
		erros["nome"] = "informe seu nome"
	}
	if !TelefoneValido(form.Whatsapp) {
		erros["whatsapp"] = msgTelefoneInvalido
	}
	if utf8.RuneCountInString(form.Bairro) <= 2 {
		erros["bairro"] = "informe o bairro"
	}
	if utf8.RuneCountInString(form.Rua) <= 3 {
		erros["rua"] = "informe rua e número"
	}
	if utf8.RuneCountInString(form.Referencia) <= 2 {
		erros["referencia"] = "informe uma referência"
	}
	if !trocoValido(form, totalCentavos) {
		erros["trocoPara"] = "o troco precisa ser maior que o total"
	}

	return entity.Validacao{Valido: len(erros) == 0, Erros: erros}
}

// TelefoneValido: depois de remover tudo que não é dígito, precisa ter
// exatamente 11 e o terceiro dígito ser 9 (celular com DDD).
func TelefoneValido(tel string) bool {
	d := SomenteDigitos(tel)
	return len(d) == 11 && d[2] == '9'
}

// SomenteDigitos remove qualquer caractere que não seja 0-9.
func SomenteDigitos(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// trocoValido só é avaliada para pagamento em dinheiro com troco pedido:
// o valor precisa parsear (vírgula ou ponto) e ser estritamente maior que o
// total. Nos demais casos a regra passa por vacuidade.
func trocoValido(form *entity.CheckoutForm, totalCentavos int64) bool {
	if form.MetodoPagamento != MetodoDinheiro || !form.PrecisaTroco {
		return true
	}
	valor, err := money.Parse(form.TrocoPara)
	return err == nil && valor > totalCentavos
}
