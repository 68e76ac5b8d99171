package controllers

import (
	"errors"
	"log"

	"github.com/drxagencia/mateus-burger/entity"
	"github.com/drxagencia/mateus-burger/pkg/resp"
	"github.com/drxagencia/mateus-burger/services"
	"github.com/drxagencia/mateus-burger/utils"
	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Carts    *services.CartService
	Checkout *services.CheckoutService
	Pedidos  *services.PedidoService
}

func NewCheckoutController(carts *services.CartService, checkout *services.CheckoutService, pedidos *services.PedidoService) *CheckoutController {
	return &CheckoutController{Carts: carts, Checkout: checkout, Pedidos: pedidos}
}

// POST /checkout/validate
func (h *CheckoutController) Validate(c *gin.Context) {
	var form entity.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	total := h.Carts.Total(utils.SessionID(c))
	resp.OK(c, h.Checkout.Validate(&form, total))
}

// POST /checkout
// A sacola NÃO é limpa aqui: o front limpa depois da tela de confirmação.
func (h *CheckoutController) Submit(c *gin.Context) {
	var form entity.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	session := utils.SessionID(c)
	cart, total := h.Carts.Get(session)
	if len(cart.Itens) == 0 {
		resp.BadRequest(c, "sacola vazia")
		return
	}

	if v := h.Checkout.Validate(&form, total); !v.Valido {
		resp.Unprocessable(c, "formulário inválido", gin.H{"erros": v.Erros})
		return
	}

	pedido := h.Pedidos.Montar(cart, &form, total)
	if err := h.Pedidos.Enviar(c.Request.Context(), session, pedido); err != nil {
		if errors.Is(err, services.ErrEnvioEmAndamento) {
			resp.Conflict(c, err.Error())
			return
		}
		log.Printf("envio do pedido falhou: %v", err)
		resp.BadGateway(c, "não foi possível enviar o pedido, tente novamente")
		return
	}

	resp.Created(c, gin.H{"status": services.StatusPendente, "total": pedido.TotalPedido})
}
