package handler

import (
	"net/http"

	"keso/internal/apierror"
	"keso/internal/dto"
	"keso/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GastosHandler struct{ svc service.GastoService }

func NewGastosHandler(svc service.GastoService) *GastosHandler { return &GastosHandler{svc: svc} }

func (h *GastosHandler) Crear(c *gin.Context) {
	var req dto.CrearGastoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Error al guardar gasto"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GastosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener gastos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GastosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if err == service.ErrGastoNoEncontrado {
			c.JSON(http.StatusNotFound, apierror.New("No encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gasto eliminado"})
}
