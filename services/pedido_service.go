package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/drxagencia/mateus-burger/entity"
	"github.com/drxagencia/mateus-burger/pkg/money"
)

const StatusPendente = "pendente"

var ErrEnvioEmAndamento = errors.New("já existe um envio em andamento")

// Transport grava o pedido na coleção da empresa e gera a própria chave.
type Transport interface {
	Enviar(ctx context.Context, companyID string, pedido *entity.Pedido) error
}

// PedidoService monta o registro do pedido a partir da sacola + formulário
// validado e envia pelo transporte. No máximo um envio em voo por sessão:
// não há chave de idempotência no servidor, então o toque duplo é suprimido
// aqui.
type PedidoService struct {
	mu          sync.Mutex
	emAndamento map[string]bool

	transport Transport
	companyID string

	now func() time.Time
}

func NewPedidoService(transport Transport, companyID string) *PedidoService {
	return &PedidoService{
		emAndamento: make(map[string]bool),
		transport:   transport,
		companyID:   companyID,
		now:         time.Now,
	}
}

// Montar mapeia cada linha da sacola para um item do pedido. Os extras de
// todos os grupos são achatados numa lista só de nomes; a proveniência do
// grupo não vai para o registro. O preço unitário é o preço base do item.
func (s *PedidoService) Montar(cart *entity.Cart, form *entity.CheckoutForm, totalCentavos int64) *entity.Pedido {
	itens := make([]entity.PedidoItem, 0, len(cart.Itens))
	for i := range cart.Itens {
		linha := &cart.Itens[i]

		extras := make([]string, 0)
		for _, sel := range linha.Selecoes {
			extras = append(extras, sel.Itens...)
		}

		itens = append(itens, entity.PedidoItem{
			Produto:       linha.Produto.Nome,
			Quantidade:    linha.Qtd,
			Extras:        extras,
			PrecoUnitario: linha.Produto.PrecoBase(),
			TotalItem:     money.Reais(linha.Total),
		})
	}

	pagamento := entity.Pagamento{Metodo: form.MetodoPagamento}
	if form.MetodoPagamento == MetodoDinheiro {
		if form.PrecisaTroco && form.TrocoPara != "" {
			pagamento.Troco = "Sim"
			pagamento.TrocoPara = form.TrocoPara // como digitado, sem reformatar
		} else {
			pagamento.Troco = "Não"
		}
	}

	return &entity.Pedido{
		Cliente: entity.Cliente{
			Nome:     form.Nome,
			Whatsapp: SomenteDigitos(form.Whatsapp),
		},
		DataHora: s.now().Format("02/01/2006 15:04:05"),
		Endereco: entity.Endereco{
			Bairro:     form.Bairro,
			Rua:        form.Rua,
			Referencia: form.Referencia,
		},
		Itens:       itens,
		Pagamento:   pagamento,
		Status:      StatusPendente,
		TotalPedido: money.Reais(totalCentavos),
	}
}

// Enviar chama o transporte segurando a flag de envio da sessão. A flag é
// liberada ao final nos dois desfechos, então uma falha sempre permite
// tentar de novo.
func (s *PedidoService) Enviar(ctx context.Context, sessionID string, pedido *entity.Pedido) error {
	s.mu.Lock()
	if s.emAndamento[sessionID] {
		s.mu.Unlock()
		return ErrEnvioEmAndamento
	}
	s.emAndamento[sessionID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.emAndamento, sessionID)
		s.mu.Unlock()
	}()

	return s.transport.Enviar(ctx, s.companyID, pedido)
}
