package controllers

import (
	"errors"

	"github.com/drxagencia/mateus-burger/entity"
	"github.com/drxagencia/mateus-burger/pkg/resp"
	"github.com/drxagencia/mateus-burger/services"
	"github.com/drxagencia/mateus-burger/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	Carts      *services.CartService
	Empresas   *services.EmpresaService
	Cardapios  *services.CardapioService
	Customizer *services.CustomizerService
	CompanyID  string
}

func NewCartController(carts *services.CartService, emp *services.EmpresaService, card *services.CardapioService, cust *services.CustomizerService, companyID string) *CartController {
	return &CartController{Carts: carts, Empresas: emp, Cardapios: card, Customizer: cust, CompanyID: companyID}
}

type AddToCartIn struct {
	Produto string              `json:"produto" binding:"required"`
	Extras  map[string][]string `json:"extras"`
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, total := h.Carts.Get(utils.SessionID(c))
	resp.OK(c, gin.H{"itens": cart.Itens, "total": total})
}

// POST /cart/items
// O item e o preço são resolvidos aqui pelo cardápio atual; o front manda
// só o nome do produto e os extras escolhidos.
func (h *CartController) Add(c *gin.Context) {
	var req AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	emp, err := h.Empresas.Load(c.Request.Context(), h.CompanyID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	card := h.Cardapios.Normalize(emp.Cardapio)

	item := card.BuscaProduto(req.Produto)
	if item == nil {
		resp.NotFound(c, "produto não encontrado")
		return
	}

	extras := limpaExtras(req.Extras)
	selecoes := montaSelecoes(h.Customizer, item, card, extras)
	total := h.Customizer.Price(item, extras, card)

	linha, err := h.Carts.Add(utils.SessionID(c), *item, selecoes, total)
	if err != nil {
		if errors.Is(err, services.ErrFechado) {
			resp.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, services.ErrIndisponivel) {
			resp.Unprocessable(c, err.Error(), nil)
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, linha)
}

// DELETE /cart/items/:id — id ausente na sacola é no-op, responde 200.
func (h *CartController) Remove(c *gin.Context) {
	h.Carts.Remove(utils.SessionID(c), c.Param("id"))
	resp.OK(c, gin.H{"removido": c.Param("id")})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Carts.Clear(utils.SessionID(c))
	resp.OK(c, nil)
}

// limpaExtras tira duplicatas preservando a ordem de escolha.
func limpaExtras(extras map[string][]string) map[string][]string {
	out := make(map[string][]string, len(extras))
	for grupo, nomes := range extras {
		visto := make(map[string]bool, len(nomes))
		var unicos []string
		for _, n := range nomes {
			if n == "" || visto[n] {
				continue
			}
			visto[n] = true
			unicos = append(unicos, n)
		}
		if len(unicos) > 0 {
			out[grupo] = unicos
		}
	}
	return out
}

// montaSelecoes materializa a seleção na ordem dos grupos do cardápio,
// só com os grupos aplicáveis ao item.
func montaSelecoes(cust *services.CustomizerService, item *entity.Item, card *entity.Cardapio, extras map[string][]string) []entity.Selecao {
	var out []entity.Selecao
	for _, g := range cust.ApplicableGroups(item, card) {
		if nomes := extras[g.Chave]; len(nomes) > 0 {
			out = append(out, entity.Selecao{Grupo: g.Chave, Itens: nomes})
		}
	}
	return out
}
