package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Business-rule errors surfaced by the checkout processor. Handlers map all
// of these to 400 with the error text as the user-facing message.
var (
	ErrCarritoVacio   = errors.New("el carrito está vacío")
	ErrClienteCredito = errors.New("las ventas a crédito requieren el nombre del cliente")
)

// StockInsuficienteError aborts the whole checkout transaction; it names the
// offending product and the quantity actually available so the cashier can
// correct the cart.
type StockInsuficienteError struct {
	Producto   string
	Disponible decimal.Decimal
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("Stock insuficiente para: %s (disponible: %s)", e.Producto, e.Disponible)
}

// ProductoNoEncontradoError: a cart line references an id that is not (or no
// longer) in the catalog.
type ProductoNoEncontradoError struct {
	ProductoID string
}

func (e *ProductoNoEncontradoError) Error() string {
	return fmt.Sprintf("producto %s no encontrado", e.ProductoID)
}
