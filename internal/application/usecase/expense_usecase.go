package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso de gastos del negocio.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto. ExpenseDate vacío = ahora.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Description == "" || !entity.ValidExpenseType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	expenseDate := time.Now()
	if in.ExpenseDate != "" {
		parsed, err := time.Parse(time.RFC3339, in.ExpenseDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expenseDate = parsed
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		ExpenseDate: expenseDate,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List devuelve gastos con rango de fechas opcional.
func (uc *ExpenseUseCase) List(from, to *time.Time) ([]*dto.ExpenseResponse, error) {
	list, err := uc.repo.List(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// TotalsByType suma los gastos agrupados por tipo.
func (uc *ExpenseUseCase) TotalsByType() (*dto.ExpenseTotalsResponse, error) {
	totals, err := uc.repo.TotalsByType()
	if err != nil {
		return nil, err
	}
	return &dto.ExpenseTotalsResponse{Totals: totals}, nil
}

// Update aplica los campos no nulos; nil si el gasto no existe.
func (uc *ExpenseUseCase) Update(id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil || expense == nil {
		return nil, err
	}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, domain.ErrInvalidInput
		}
		expense.Description = *in.Description
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = *in.Amount
	}
	if in.Type != nil {
		if !entity.ValidExpenseType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		expense.Type = *in.Type
	}
	if in.ExpenseDate != nil {
		parsed, err := time.Parse(time.RFC3339, *in.ExpenseDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expense.ExpenseDate = parsed
	}
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(id string) error {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Type:        e.Type,
		ExpenseDate: e.ExpenseDate,
	}
}
