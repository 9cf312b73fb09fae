package http

import (
	"github.com/gofiber/fiber/v2"
	appcart "github.com/jhoicas/boutique-api/internal/application/cart"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/usecase"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

// CatalogHandler vitrina pública: productos activos con tallas y stock,
// tasa vigente y "comprar ahora" por WhatsApp. Sin autenticación.
type CatalogHandler struct {
	productUC *usecase.ProductUseCase
	rateUC    *usecase.ExchangeRateUseCase
	cartUC    *appcart.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(productUC *usecase.ProductUseCase, rateUC *usecase.ExchangeRateUseCase, cartUC *appcart.UseCase) *CatalogHandler {
	return &CatalogHandler{productUC: productUC, rateUC: rateUC, cartUC: cartUC}
}

// List godoc
// @Summary      Catálogo de productos activos
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría (nino|nina)"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")
	if category != "" && !entity.ValidCategory(category) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoría inválida: nino o nina"})
	}
	out, err := h.productUC.Catalog(category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un producto del catálogo
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.productUC.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil || !out.IsActive {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// ExchangeRate godoc
// @Summary      Tasa Bs/USD vigente
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ExchangeRateResponse
// @Router       /api/exchange-rate [get]
func (h *CatalogHandler) ExchangeRate(c *fiber.Ctx) error {
	out, err := h.rateUC.Current()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// BuyNow godoc
// @Summary      Enlace de WhatsApp "comprar ahora" para un producto
// @Tags         catalog
// @Produce      json
// @Param        id    path   string  true   "ID del producto"
// @Param        size  query  string  false  "Talla elegida"
// @Success      200   {object}  dto.CheckoutResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalog/{id}/buy [get]
func (h *CatalogHandler) BuyNow(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.cartUC.CheckoutProduct(id, c.Query("size"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
