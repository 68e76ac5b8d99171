package entity

// Categoria é uma seção do cardápio já normalizada, na ordem do documento.
type Categoria struct {
	Chave string `json:"chave"`
	Nome  string `json:"nome"`
	Itens []Item `json:"itens"`
}

// Grupo é uma lista de extras selecionáveis (sabores, recheios, adicionais...).
type Grupo struct {
	Chave string `json:"chave"`
	Itens []Item `json:"itens"`
}

// Busca retorna o item do grupo com o nome dado, ou nil.
func (g *Grupo) Busca(nome string) *Item {
	for i := range g.Itens {
		if g.Itens[i].Nome == nome {
			return &g.Itens[i]
		}
	}
	return nil
}

// Cardapio é o documento dinâmico da empresa resolvido em uma estrutura
// fechada: seções de categoria e grupos de personalização, ambos ordenados.
type Cardapio struct {
	Categorias []Categoria `json:"categorias"`
	Grupos     []Grupo     `json:"grupos"`
}

// Grupo retorna o grupo com a chave dada, ou nil.
func (c *Cardapio) Grupo(chave string) *Grupo {
	for i := range c.Grupos {
		if c.Grupos[i].Chave == chave {
			return &c.Grupos[i]
		}
	}
	return nil
}

// BuscaProduto procura um item pelo nome em todas as seções de categoria.
func (c *Cardapio) BuscaProduto(nome string) *Item {
	for i := range c.Categorias {
		for j := range c.Categorias[i].Itens {
			if c.Categorias[i].Itens[j].Nome == nome {
				return &c.Categorias[i].Itens[j]
			}
		}
	}
	return nil
}
