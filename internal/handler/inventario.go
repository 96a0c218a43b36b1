package handler

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"keso/internal/apierror"
	"keso/internal/dto"
	"keso/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventarioHandler struct{ svc service.ProductoService }

func NewInventarioHandler(svc service.ProductoService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// readImagen extracts the optional multipart image and converts it into the
// base64 data URI the shell renders directly in <img> tags.
func readImagen(c *gin.Context) (*string, error) {
	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		return nil, nil // no file part — not an error
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	contentType := fileHeader.Header.Get("Content-Type")
	uri := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	return &uri, nil
}

func (h *InventarioHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventarioHandler) Crear(c *gin.Context) {
	var form dto.ProductoForm
	if !bindFormAndValidate(c, &form) {
		return
	}
	imagen, err := readImagen(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Imagen invalida"))
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), form, imagen)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InventarioHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var form dto.ProductoForm
	if !bindFormAndValidate(c, &form) {
		return
	}
	imagen, err := readImagen(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Imagen invalida"))
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, form, imagen)
	if err != nil {
		if err == service.ErrProductoNoEncontrado {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventarioHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if err == service.ErrProductoNoEncontrado {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar producto"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Deleted"})
}

func (h *InventarioHandler) ListarMovimientos(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ListarMovimientos(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar movimientos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
