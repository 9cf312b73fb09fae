package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación de SettingRepository sobre la tabla configuracion.
type SettingRepo struct {
	q Querier
}

// NewSettingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingRepository(q Querier) *SettingRepo {
	return &SettingRepo{q: q}
}

// Get devuelve el valor para la clave; nil si no existe.
func (r *SettingRepo) Get(key string) (*entity.Setting, error) {
	query := `
		SELECT id, clave, valor, created_at, updated_at
		FROM configuracion WHERE clave = $1`
	var s entity.Setting
	err := r.q.QueryRow(context.Background(), query, key).Scan(
		&s.ID, &s.Key, &s.Value, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

// Upsert crea o actualiza el valor de la clave y devuelve la fila resultante.
func (r *SettingRepo) Upsert(key string, value decimal.Decimal) (*entity.Setting, error) {
	query := `
		INSERT INTO configuracion (id, clave, valor, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (clave)
		DO UPDATE SET valor = EXCLUDED.valor, updated_at = now()
		RETURNING id, clave, valor, created_at, updated_at`
	var s entity.Setting
	err := r.q.QueryRow(context.Background(), query, uuid.New().String(), key, value).Scan(
		&s.ID, &s.Key, &s.Value, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert setting: %w", err)
	}
	return &s, nil
}
