package http

import (
	"github.com/gofiber/fiber/v2"
	appcart "github.com/jhoicas/boutique-api/internal/application/cart"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
)

// HeaderSessionID header que identifica el carrito del visitante.
const HeaderSessionID = "X-Session-ID"

// CartHandler carrito de compras por sesión (público). La sesión viaja en el
// header X-Session-ID; si no viene, se emite una nueva y se devuelve en la
// respuesta.
type CartHandler struct {
	uc    *appcart.UseCase
	store *appcart.Store
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *appcart.UseCase, store *appcart.Store) *CartHandler {
	return &CartHandler{uc: uc, store: store}
}

// session resuelve el session ID del request, emitiendo uno nuevo si no viene.
func (h *CartHandler) session(c *fiber.Ctx) string {
	id := c.Get(HeaderSessionID)
	if id == "" {
		id = h.store.NewSession()
	}
	c.Set(HeaderSessionID, id)
	return id
}

// Get godoc
// @Summary      Estado del carrito
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header  string  false  "ID de sesión del carrito"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.State(h.session(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar una unidad de (producto, talla) al carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string  false  "ID de sesión del carrito"
// @Param        body  body  dto.AddCartItemRequest  true  "Producto y talla"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddItem(h.session(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y size son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado o inactivo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Fijar la cantidad de una línea (<= 0 la elimina)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string  false  "ID de sesión del carrito"
// @Param        body  body  dto.UpdateCartItemRequest  true  "Producto, talla y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/items [put]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateItem(h.session(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y size son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Eliminar una línea del carrito
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header  string  false  "ID de sesión del carrito"
// @Param        product_id  path   string  true  "ID del producto"
// @Param        size        query  string  true  "Talla"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(h.session(c), c.Params("product_id"), c.Query("size"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header  string  false  "ID de sesión del carrito"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	out, err := h.uc.Clear(h.session(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Mensaje y enlace de WhatsApp para cerrar la compra
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header  string  false  "ID de sesión del carrito"
// @Success      200  {object}  dto.CheckoutResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.uc.Checkout(h.session(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
