package entity

// Item é um produto do cardápio ou um extra de personalização.
// Os campos seguem o formato do documento da empresa no banco remoto,
// por isso as tags em português.
type Item struct {
	Nome       string   `json:"nome"`
	Disponivel bool     `json:"disponivel"`
	Preco      *float64 `json:"preco,omitempty"`
	Descricao  string   `json:"descricao,omitempty"`

	// imagem é o campo legado; img_url é o atual e tem prioridade
	Imagem string `json:"imagem,omitempty"`
	ImgURL string `json:"img_url,omitempty"`

	// flags que ligam o item aos grupos de personalização
	SaboresRecheios bool `json:"sabores_recheios,omitempty"`
	Adicionais      bool `json:"adicionais,omitempty"`
}

// ImagemURL resolve a URL de imagem do item: img_url vence, imagem é fallback.
func (i *Item) ImagemURL() string {
	if len(i.ImgURL) > 5 {
		return i.ImgURL
	}
	if len(i.Imagem) > 5 {
		return i.Imagem
	}
	return ""
}

// PrecoBase retorna o preço em reais, 0 quando ausente.
func (i *Item) PrecoBase() float64 {
	if i.Preco == nil {
		return 0
	}
	return *i.Preco
}
