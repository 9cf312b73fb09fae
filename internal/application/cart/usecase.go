package cart

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/usecase"
	"github.com/jhoicas/boutique-api/internal/domain"
	domaincart "github.com/jhoicas/boutique-api/internal/domain/cart"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
	"github.com/jhoicas/boutique-api/pkg/whatsapp"
)

// UseCase opera el carrito de una sesión: agregar/quitar/actualizar líneas,
// estado con totales convertidos a bolívares y checkout vía WhatsApp.
type UseCase struct {
	store          *Store
	productRepo    repository.ProductRepository
	rateUC         *usecase.ExchangeRateUseCase
	whatsappNumber string
}

// NewUseCase construye el caso de uso del carrito.
func NewUseCase(store *Store, productRepo repository.ProductRepository, rateUC *usecase.ExchangeRateUseCase, whatsappNumber string) *UseCase {
	return &UseCase{store: store, productRepo: productRepo, rateUC: rateUC, whatsappNumber: whatsappNumber}
}

// AddItem agrega una unidad de (producto, talla) al carrito de la sesión.
// No verifica stock: la disponibilidad se muestra en el catálogo y se
// garantiza recién al registrar la venta.
func (uc *UseCase) AddItem(sessionID string, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if in.ProductID == "" || in.Size == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetWithSizes(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}
	uc.store.With(sessionID, func(c *domaincart.Cart) {
		c.AddItem(*product, in.Size)
	})
	return uc.State(sessionID)
}

// UpdateItem fija la cantidad exacta de una línea; cantidad <= 0 la elimina.
func (uc *UseCase) UpdateItem(sessionID string, in dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	if in.ProductID == "" || in.Size == "" {
		return nil, domain.ErrInvalidInput
	}
	uc.store.With(sessionID, func(c *domaincart.Cart) {
		c.UpdateQuantity(in.ProductID, in.Size, in.Quantity)
	})
	return uc.State(sessionID)
}

// RemoveItem elimina la línea (producto, talla) si existe.
func (uc *UseCase) RemoveItem(sessionID, productID, size string) (*dto.CartResponse, error) {
	uc.store.With(sessionID, func(c *domaincart.Cart) {
		c.RemoveItem(productID, size)
	})
	return uc.State(sessionID)
}

// Clear vacía el carrito.
func (uc *UseCase) Clear(sessionID string) (*dto.CartResponse, error) {
	uc.store.With(sessionID, func(c *domaincart.Cart) {
		c.Clear()
	})
	return uc.State(sessionID)
}

// State devuelve las líneas y los totales en USD y bolívares a la tasa vigente.
func (uc *UseCase) State(sessionID string) (*dto.CartResponse, error) {
	rate, err := uc.rateUC.Current()
	if err != nil {
		return nil, err
	}

	var lines []domaincart.Line
	var totalItems int
	var totalUSD decimal.Decimal
	uc.store.With(sessionID, func(c *domaincart.Cart) {
		lines = c.Lines()
		totalItems = c.TotalItems()
		totalUSD = c.TotalAmount()
	})

	out := &dto.CartResponse{
		SessionID:  sessionID,
		Lines:      make([]dto.CartLineResponse, 0, len(lines)),
		TotalItems: totalItems,
		TotalUSD:   totalUSD,
		TotalBs:    domaincart.ToLocalCurrency(totalUSD, rate.Rate),
		Rate:       rate.Rate,
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.CartLineResponse{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Size:        l.Size,
			Quantity:    l.Quantity,
			UnitPrice:   l.Product.Price,
			ImageURL:    l.Product.ImageURL,
		})
	}
	return out, nil
}

// Checkout arma el mensaje de WhatsApp con las líneas del carrito y el enlace
// wa.me de la tienda. Falla si el carrito está vacío. No vacía el carrito: el
// cliente puede volver si no concreta la compra.
func (uc *UseCase) Checkout(sessionID string) (*dto.CheckoutResponse, error) {
	var lines []domaincart.Line
	uc.store.With(sessionID, func(c *domaincart.Cart) {
		lines = c.Lines()
	})
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	waLines := make([]whatsapp.Line, 0, len(lines))
	for _, l := range lines {
		waLines = append(waLines, whatsapp.Line{
			ProductName: l.Product.Name,
			Size:        l.Size,
			Quantity:    l.Quantity,
		})
	}
	message := whatsapp.BuildCartMessage(waLines)
	return &dto.CheckoutResponse{
		Message: message,
		Link:    whatsapp.Link(uc.whatsappNumber, message),
	}, nil
}

// CheckoutProduct arma el mensaje "comprar ahora" para un solo producto.
func (uc *UseCase) CheckoutProduct(productID, size string) (*dto.CheckoutResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	message := whatsapp.BuildProductMessage(product.Name, size)
	return &dto.CheckoutResponse{
		Message: message,
		Link:    whatsapp.Link(uc.whatsappNumber, message),
	}, nil
}
