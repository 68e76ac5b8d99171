package services

import (
	"github.com/drxagencia/mateus-burger/entity"
	"github.com/drxagencia/mateus-burger/pkg/money"
)

// Chaves de grupo com semântica conhecida. Sabores e recheios compartilham a
// flag sabores_recheios do item; adicionais tem flag própria. Qualquer outra
// chave declarada no documento não se aplica a item nenhum.
const (
	grupoSabores    = "sabores"
	grupoRecheios   = "recheios"
	grupoAdicionais = "adicionais"
)

// CustomizerService decide quais grupos valem para um item e calcula o preço
// final da personalização.
type CustomizerService struct{}

func NewCustomizerService() *CustomizerService { return &CustomizerService{} }

// NeedsCustomization: itens sem nenhuma flag vão direto pra sacola pelo
// preço base, sem abrir personalização.
func (s *CustomizerService) NeedsCustomization(item *entity.Item) bool {
	return item.SaboresRecheios || item.Adicionais
}

func (s *CustomizerService) Applicable(item *entity.Item, grupo *entity.Grupo) bool {
	switch grupo.Chave {
	case grupoSabores, grupoRecheios:
		return item.SaboresRecheios
	case grupoAdicionais:
		return item.Adicionais
	default:
		return false
	}
}

// ApplicableGroups devolve os grupos do cardápio que valem para o item,
// na ordem do documento.
func (s *CustomizerService) ApplicableGroups(item *entity.Item, card *entity.Cardapio) []entity.Grupo {
	var out []entity.Grupo
	for i := range card.Grupos {
		if s.Applicable(item, &card.Grupos[i]) {
			out = append(out, card.Grupos[i])
		}
	}
	return out
}

// Price soma ao preço base o preço de cada extra selecionado, em centavos.
// Nome que não resolve no grupo é seleção obsoleta e soma 0; extra sem preço
// também soma 0.
func (s *CustomizerService) Price(item *entity.Item, selecoes map[string][]string, card *entity.Cardapio) int64 {
	total := money.Centavos(item.PrecoBase())
	for i := range card.Grupos {
		grupo := &card.Grupos[i]
		if !s.Applicable(item, grupo) {
			continue
		}
		for _, nome := range selecoes[grupo.Chave] {
			if extra := grupo.Busca(nome); extra != nil && extra.Preco != nil {
				total += money.Centavos(*extra.Preco)
			}
		}
	}
	return total
}
