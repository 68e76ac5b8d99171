package entity

// Formato de gravação do pedido no banco remoto. Valores monetários em
// reais (float), que é o schema que o painel do lojista já lê.

type Cliente struct {
	Nome     string `json:"nome"`
	Whatsapp string `json:"whatsapp"`
}

type Endereco struct {
	Bairro     string `json:"bairro"`
	Rua        string `json:"rua"`
	Referencia string `json:"referencia"`
}

// Pagamento registra o método como rótulo; nada é cobrado aqui.
// Troco/TrocoPara só aparecem quando o método é dinheiro.
type Pagamento struct {
	Metodo    string `json:"metodo"`
	Troco     string `json:"troco,omitempty"`
	TrocoPara string `json:"troco_para,omitempty"`
}

type PedidoItem struct {
	Produto       string   `json:"produto"`
	Quantidade    int      `json:"quantidade"`
	Extras        []string `json:"extras"`
	PrecoUnitario float64  `json:"preco_unitario"`
	TotalItem     float64  `json:"total_item"`
}

type Pedido struct {
	Cliente     Cliente      `json:"cliente"`
	DataHora    string       `json:"data_hora"`
	Endereco    Endereco     `json:"endereco"`
	Itens       []PedidoItem `json:"itens"`
	Pagamento   Pagamento    `json:"pagamento"`
	Status      string       `json:"status"`
	TotalPedido float64      `json:"total_pedido"`
}
