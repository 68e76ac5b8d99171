package services

import (
	"errors"
	"sync"

	"github.com/drxagencia/mateus-burger/entity"
	"github.com/google/uuid"
)

var (
	ErrFechado      = errors.New("estamos fechados no momento")
	ErrIndisponivel = errors.New("item indisponível")
)

// CartService guarda as sacolas em memória, uma por token de sessão.
// Um mutex único serializa as operações na ordem em que chegam.
type CartService struct {
	mu     sync.Mutex
	carts  map[string]*entity.Cart
	status *StatusService
}

func NewCartService(status *StatusService) *CartService {
	return &CartService{
		carts:  make(map[string]*entity.Cart),
		status: status,
	}
}

// Add cria uma linha nova com id opaco e qtd 1; adds repetidos do mesmo item
// geram linhas separadas, nunca merge. O horário é reavaliado aqui dentro,
// na hora, para um add não passar pela borda do fechamento com status velho.
func (s *CartService) Add(sessionID string, item entity.Item, selecoes []entity.Selecao, totalCentavos int64) (*entity.CartItem, error) {
	if st := s.status.Check(); !st.Aberto {
		return nil, ErrFechado
	}
	if !item.Disponivel {
		return nil, ErrIndisponivel
	}

	linha := entity.CartItem{
		ID:       uuid.NewString(),
		Produto:  item,
		Selecoes: selecoes,
		Total:    totalCentavos,
		Qtd:      1,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[sessionID]
	if cart == nil {
		cart = &entity.Cart{}
		s.carts[sessionID] = cart
	}
	cart.Itens = append(cart.Itens, linha)
	return &linha, nil
}

// Remove tira a linha com o id dado; id desconhecido é no-op.
func (s *CartService) Remove(sessionID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[sessionID]
	if cart == nil {
		return
	}
	for i := range cart.Itens {
		if cart.Itens[i].ID == id {
			cart.Itens = append(cart.Itens[:i], cart.Itens[i+1:]...)
			return
		}
	}
}

// Clear esvazia a sacola; chamar de novo numa sacola vazia é inofensivo.
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Get devolve uma cópia das linhas e o total em centavos.
func (s *CartService) Get(sessionID string) (*entity.Cart, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[sessionID]
	if cart == nil {
		return &entity.Cart{}, 0
	}

	copia := &entity.Cart{Itens: make([]entity.CartItem, len(cart.Itens))}
	copy(copia.Itens, cart.Itens)

	var total int64
	for i := range cart.Itens {
		total += cart.Itens[i].Total
	}
	return copia, total
}

// Total soma os totais das linhas; qtd não entra porque o preço é calculado
// por unidade no add e cada add produz exatamente uma linha.
func (s *CartService) Total(sessionID string) int64 {
	_, total := s.Get(sessionID)
	return total
}
