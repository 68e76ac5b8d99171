package controllers

import (
	"errors"

	"github.com/drxagencia/mateus-burger/pkg/resp"
	"github.com/drxagencia/mateus-burger/repository"
	"github.com/drxagencia/mateus-burger/services"
	"github.com/gin-gonic/gin"
)

type EmpresaController struct {
	Empresas  *services.EmpresaService
	Cardapios *services.CardapioService
	Status    *services.StatusService
	CompanyID string
}

func NewEmpresaController(emp *services.EmpresaService, card *services.CardapioService, st *services.StatusService, companyID string) *EmpresaController {
	return &EmpresaController{Empresas: emp, Cardapios: card, Status: st, CompanyID: companyID}
}

// GET /empresa
func (h *EmpresaController) Get(c *gin.Context) {
	emp, err := h.Empresas.Load(c.Request.Context(), h.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrPermissionDenied) {
			resp.Forbidden(c, "acesso restrito")
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			// o id vai junto para diagnóstico
			resp.NotFound(c, "empresa não encontrada: "+h.CompanyID)
			return
		}
		resp.ServerError(c, err)
		return
	}

	// cada load renova a janela de funcionamento do monitor
	h.Status.SetJanela(emp.Config.HoraAbre, emp.Config.HoraFecha)

	resp.OK(c, gin.H{
		"config":   emp.Config,
		"cardapio": h.Cardapios.Normalize(emp.Cardapio),
	})
}
