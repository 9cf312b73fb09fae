package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// ExchangeRateUseCase lee y actualiza la tasa Bs/USD (configuracion.tasa_dolar).
// Si no hay valor guardado se responde la tasa de respaldo, marcada como tal.
type ExchangeRateUseCase struct {
	repo     repository.SettingRepository
	fallback decimal.Decimal
}

// NewExchangeRateUseCase construye el caso de uso con la tasa de respaldo.
func NewExchangeRateUseCase(repo repository.SettingRepository, fallback decimal.Decimal) *ExchangeRateUseCase {
	return &ExchangeRateUseCase{repo: repo, fallback: fallback}
}

// Current devuelve la tasa vigente (guardada o de respaldo).
func (uc *ExchangeRateUseCase) Current() (*dto.ExchangeRateResponse, error) {
	setting, err := uc.repo.Get(entity.SettingTasaDolar)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return &dto.ExchangeRateResponse{Rate: uc.fallback, Fallback: true}, nil
	}
	return &dto.ExchangeRateResponse{Rate: setting.Value}, nil
}

// Update fija la tasa. Debe ser positiva.
func (uc *ExchangeRateUseCase) Update(rate decimal.Decimal) (*dto.ExchangeRateResponse, error) {
	if !rate.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	setting, err := uc.repo.Upsert(entity.SettingTasaDolar, rate)
	if err != nil {
		return nil, err
	}
	return &dto.ExchangeRateResponse{Rate: setting.Value}, nil
}
