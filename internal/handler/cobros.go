package handler

import (
	"net/http"

	"keso/internal/apierror"
	"keso/internal/dto"
	"keso/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CobrosHandler struct{ svc service.CobranzaService }

func NewCobrosHandler(svc service.CobranzaService) *CobrosHandler {
	return &CobrosHandler{svc: svc}
}

// ListarPendientes returns pending receivables with the nested sale and its
// product breakdown.
func (h *CobrosHandler) ListarPendientes(c *gin.Context) {
	resp, err := h.svc.ListarPendientes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar cuentas por cobrar"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarcarPagada settles a receivable. Re-settling an already-paid one still
// reports success.
func (h *CobrosHandler) MarcarPagada(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.MarcarPagada(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// EnviarRecordatorio queues a payment reminder email for a pending debt.
func (h *CobrosHandler) EnviarRecordatorio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.RecordatorioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarRecordatorio(c.Request.Context(), id, req.Email); err != nil {
		if err == service.ErrCobroNoEncontrado {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true})
}
