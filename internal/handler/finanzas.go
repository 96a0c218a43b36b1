package handler

import (
	"net/http"

	"keso/internal/apierror"
	"keso/internal/dto"
	"keso/internal/service"

	"github.com/gin-gonic/gin"
)

type FinanzasHandler struct{ svc service.FinanzasService }

func NewFinanzasHandler(svc service.FinanzasService) *FinanzasHandler {
	return &FinanzasHandler{svc: svc}
}

// ResumenRango computes the financial report for [startDate, endDate].
func (h *FinanzasHandler) ResumenRango(c *gin.Context) {
	var req dto.RangoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ResumenRango(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResumenGlobal returns the all-time income/expense balance.
func (h *FinanzasHandler) ResumenGlobal(c *gin.Context) {
	resp, err := h.svc.ResumenGlobal(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error balance"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DashboardStats returns inventory value, estimated profit and pending
// receivable totals.
func (h *FinanzasHandler) DashboardStats(c *gin.Context) {
	resp, err := h.svc.DashboardStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estadisticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
