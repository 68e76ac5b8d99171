package controllers

import (
	"github.com/drxagencia/mateus-burger/pkg/resp"
	"github.com/drxagencia/mateus-burger/services"
	"github.com/gin-gonic/gin"
)

type StatusController struct {
	Status *services.StatusService
}

func NewStatusController(st *services.StatusService) *StatusController {
	return &StatusController{Status: st}
}

// GET /status
func (h *StatusController) Get(c *gin.Context) {
	resp.OK(c, h.Status.Check())
}
