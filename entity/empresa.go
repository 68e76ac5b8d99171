package entity

import "encoding/json"

// Empresa é o registro completo da empresa vindo do banco remoto.
// O cardápio fica cru (a forma do documento é dinâmica) e só é
// resolvido pelo CardapioService.
type Empresa struct {
	Config   Config          `json:"config"`
	Cardapio json.RawMessage `json:"cardapio,omitempty"`
}
