package entity

// CheckoutForm é o formulário de entrega e pagamento enviado pelo front.
type CheckoutForm struct {
	Nome            string `json:"nome"`
	Whatsapp        string `json:"whatsapp"`
	Bairro          string `json:"bairro"`
	Rua             string `json:"rua"`
	Referencia      string `json:"referencia"`
	MetodoPagamento string `json:"metodoPagamento"`
	PrecisaTroco    bool   `json:"precisaTroco"`
	TrocoPara       string `json:"trocoPara"`
}

// Validacao é o resultado campo a campo da validação do checkout.
type Validacao struct {
	Valido bool              `json:"valido"`
	Erros  map[string]string `json:"erros"`
}
