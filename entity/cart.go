package entity

// Selecao guarda os extras escolhidos de um grupo, na ordem do cardápio,
// para que o achatamento no pedido seja determinístico.
type Selecao struct {
	Grupo string   `json:"grupo"`
	Itens []string `json:"itens"`
}

// CartItem é uma linha da sacola. Qtd existe na estrutura mas é sempre 1:
// cada add gera uma linha própria, sem merge de itens iguais.
type CartItem struct {
	ID       string    `json:"id"`
	Produto  Item      `json:"produto"`
	Selecoes []Selecao `json:"selecoes"`
	Total    int64     `json:"total"` // centavos, por unidade
	Qtd      int       `json:"qtd"`
}

type Cart struct {
	Itens []CartItem `json:"itens"`
}
