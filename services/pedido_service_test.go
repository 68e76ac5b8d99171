package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/drxagencia/mateus-burger/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	err      error
	chamadas int
	libera   chan struct{} // quando não-nil, segura o envio até fechar
	entrou   chan struct{}
}

func (f *fakeTransport) Enviar(ctx context.Context, companyID string, p *entity.Pedido) error {
	f.chamadas++
	if f.entrou != nil {
		close(f.entrou)
	}
	if f.libera != nil {
		<-f.libera
	}
	return f.err
}

func sacolaTeste() *entity.Cart {
	return &entity.Cart{Itens: []entity.CartItem{
		{
			ID:      "l1",
			Produto: entity.Item{Nome: "Açaí 300ml", Disponivel: true, Preco: preco(10)},
			Selecoes: []entity.Selecao{
				{Grupo: "sabores", Itens: []string{"Morango"}},
				{Grupo: "adicionais", Itens: []string{"Leite em pó", "Granola"}},
			},
			Total: 1450,
			Qtd:   1,
		},
		{
			ID:      "l2",
			Produto: entity.Item{Nome: "Água", Disponivel: true, Preco: preco(4)},
			Total:   400,
			Qtd:     1,
		},
	}}
}

func TestMontarPedido(t *testing.T) {
	s := NewPedidoService(&fakeTransport{}, "universo_acai")
	s.now = func() time.Time { return time.Date(2025, 3, 10, 19, 30, 5, 0, time.Local) }

	form := formValido()
	pedido := s.Montar(sacolaTeste(), &form, 1850)

	assert.Equal(t, "Maria Silva", pedido.Cliente.Nome)
	assert.Equal(t, "11987654321", pedido.Cliente.Whatsapp)
	assert.Equal(t, "10/03/2025 19:30:05", pedido.DataHora)
	assert.Equal(t, "Centro", pedido.Endereco.Bairro)
	assert.Equal(t, "pendente", pedido.Status)
	assert.Equal(t, 18.50, pedido.TotalPedido)

	require.Len(t, pedido.Itens, 2)
	// extras achatados numa lista só, sem o grupo de origem
	assert.Equal(t, []string{"Morango", "Leite em pó", "Granola"}, pedido.Itens[0].Extras)
	assert.Equal(t, 10.0, pedido.Itens[0].PrecoUnitario) // preço base, não o personalizado
	assert.Equal(t, 14.50, pedido.Itens[0].TotalItem)
	assert.Equal(t, 1, pedido.Itens[0].Quantidade)
	assert.Empty(t, pedido.Itens[1].Extras)
}

func TestMontarPedidoTelefoneENormalizado(t *testing.T) {
	s := NewPedidoService(&fakeTransport{}, "x")
	form := formValido()
	form.Whatsapp = "(11) 98765-4321"

	pedido := s.Montar(sacolaTeste(), &form, 1850)
	assert.Equal(t, "11987654321", pedido.Cliente.Whatsapp)
}

func TestMontarPagamento(t *testing.T) {
	s := NewPedidoService(&fakeTransport{}, "x")
	cart := sacolaTeste()

	// dinheiro com troco: Sim + valor como digitado
	form := formValido()
	form.MetodoPagamento = MetodoDinheiro
	form.PrecisaTroco = true
	form.TrocoPara = "60,50"
	pag := s.Montar(cart, &form, 1850).Pagamento
	assert.Equal(t, MetodoDinheiro, pag.Metodo)
	assert.Equal(t, "Sim", pag.Troco)
	assert.Equal(t, "60,50", pag.TrocoPara)

	// dinheiro sem troco
	form.PrecisaTroco = false
	form.TrocoPara = ""
	pag = s.Montar(cart, &form, 1850).Pagamento
	assert.Equal(t, "Não", pag.Troco)
	assert.Empty(t, pag.TrocoPara)

	// não-dinheiro: bloco de troco fora do registro
	form = formValido()
	pag = s.Montar(cart, &form, 1850).Pagamento
	assert.Equal(t, "Pix", pag.Metodo)
	assert.Empty(t, pag.Troco)
	assert.Empty(t, pag.TrocoPara)
}

func TestEnviarFalhaLiberaRetentativa(t *testing.T) {
	tr := &fakeTransport{err: errors.New("rede caiu")}
	s := NewPedidoService(tr, "x")
	form := formValido()
	pedido := s.Montar(sacolaTeste(), &form, 1850)

	err := s.Enviar(context.Background(), "sessao", pedido)
	require.Error(t, err)

	// a flag foi limpa: a retentativa chega ao transporte
	tr.err = nil
	err = s.Enviar(context.Background(), "sessao", pedido)
	assert.NoError(t, err)
	assert.Equal(t, 2, tr.chamadas)
}

func TestEnviarSuprimeToqueDuplo(t *testing.T) {
	tr := &fakeTransport{
		libera: make(chan struct{}),
		entrou: make(chan struct{}),
	}
	s := NewPedidoService(tr, "x")
	form := formValido()
	pedido := s.Montar(sacolaTeste(), &form, 1850)

	primeiro := make(chan error, 1)
	go func() { primeiro <- s.Enviar(context.Background(), "sessao", pedido) }()
	<-tr.entrou

	// com o primeiro envio em voo, o segundo é recusado na hora
	err := s.Enviar(context.Background(), "sessao", pedido)
	assert.ErrorIs(t, err, ErrEnvioEmAndamento)

	close(tr.libera)
	assert.NoError(t, <-primeiro)
	assert.Equal(t, 1, tr.chamadas)
}
