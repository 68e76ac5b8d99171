package services

import (
	"bytes"
	"encoding/json"

	"github.com/drxagencia/mateus-burger/entity"
)

const (
	chaveCategorias    = "categorias"
	chaveItens         = "itens" // reservada: lista "todos os itens", nunca vira grupo
	chaveNomeCategoria = "nome_categoria"
)

// CardapioService resolve o documento dinâmico do cardápio em uma estrutura
// fechada. O documento é escrito à mão pelo lojista, então entradas
// malformadas são puladas em silêncio em vez de derrubar o cardápio inteiro.
type CardapioService struct{}

func NewCardapioService() *CardapioService { return &CardapioService{} }

// Normalize separa o documento em seções de categoria e grupos de
// personalização, preservando a ordem das chaves do JSON original.
func (s *CardapioService) Normalize(raw json.RawMessage) *entity.Cardapio {
	card := &entity.Cardapio{}
	if len(raw) == 0 {
		return card
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		return card
	}

	for _, chave := range orderedKeys(raw) {
		switch chave {
		case chaveCategorias:
			card.Categorias = s.parseCategorias(root[chave])
		case chaveItens:
			// reservada
		default:
			// qualquer outra chave de raiz com lista não vazia vira grupo
			if itens := parseItens(root[chave]); len(itens) > 0 {
				card.Grupos = append(card.Grupos, entity.Grupo{Chave: chave, Itens: itens})
			}
		}
	}
	return card
}

func (s *CardapioService) parseCategorias(raw json.RawMessage) []entity.Categoria {
	var cats map[string]json.RawMessage
	if err := json.Unmarshal(raw, &cats); err != nil {
		return nil
	}

	var out []entity.Categoria
	for _, chave := range orderedKeys(raw) {
		var campos map[string]json.RawMessage
		if err := json.Unmarshal(cats[chave], &campos); err != nil {
			continue
		}

		nome := chave
		if rawNome, ok := campos[chaveNomeCategoria]; ok {
			var n string
			if err := json.Unmarshal(rawNome, &n); err == nil && n != "" {
				nome = n
			}
		}

		var itens []entity.Item
		for _, campo := range orderedKeys(cats[chave]) {
			if campo == chaveNomeCategoria {
				continue
			}
			var item entity.Item
			if err := json.Unmarshal(campos[campo], &item); err != nil || item.Nome == "" {
				continue
			}
			itens = append(itens, item)
		}

		// seção sem nenhum item bem formado não aparece
		if len(itens) == 0 {
			continue
		}
		out = append(out, entity.Categoria{Chave: chave, Nome: nome, Itens: itens})
	}
	return out
}

// parseItens aceita apenas listas JSON; elementos nulos, malformados ou sem
// nome são descartados.
func parseItens(raw json.RawMessage) []entity.Item {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}

	var out []entity.Item
	for _, el := range elems {
		var item entity.Item
		if err := json.Unmarshal(el, &item); err != nil || item.Nome == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// orderedKeys devolve as chaves de um objeto JSON na ordem do documento,
// coisa que um map[string]... não preserva.
func orderedKeys(raw json.RawMessage) []string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}

	var chaves []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return chaves
		}
		chave, ok := tok.(string)
		if !ok {
			return chaves
		}
		chaves = append(chaves, chave)

		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return chaves
		}
	}
	return chaves
}
