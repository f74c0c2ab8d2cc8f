package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación de IndustryRepository (usable con pool o tx).
type IndustryRepo struct {
	q Querier
}

// NewIndustryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIndustryRepository(q Querier) *IndustryRepo {
	return &IndustryRepo{q: q}
}

// List devuelve todos los sectores.
func (r *IndustryRepo) List(ctx context.Context) ([]*entity.Industry, error) {
	query := `SELECT code, industry FROM industries ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Industry, 0)
	for rows.Next() {
		var ind entity.Industry
		if err := rows.Scan(&ind.Code, &ind.Industry); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		list = append(list, &ind)
	}
	return list, rows.Err()
}

// GetByCode obtiene un sector por código. Devuelve (nil, nil) si no existe.
func (r *IndustryRepo) GetByCode(ctx context.Context, code string) (*entity.Industry, error) {
	query := `SELECT code, industry FROM industries WHERE code = $1`
	var ind entity.Industry
	err := r.q.QueryRow(ctx, query, code).Scan(&ind.Code, &ind.Industry)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get industry: %w", err)
	}
	return &ind, nil
}

// CompanyNames devuelve los nombres de las empresas asociadas al sector.
// Join interno: sin asociaciones devuelve slice vacío, nunca [null].
func (r *IndustryRepo) CompanyNames(ctx context.Context, code string) ([]string, error) {
	query := `
		SELECT c.name
		FROM company_industry ci
		JOIN companies c ON c.code = ci.comp_code
		WHERE ci.ind_code = $1
		ORDER BY c.name`
	rows, err := r.q.Query(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("list industry companies: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan company name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Create persiste un sector nuevo. Devuelve domain.ErrDuplicate si el código existe.
func (r *IndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	query := `INSERT INTO industries (code, industry) VALUES ($1, $2)`
	_, err := r.q.Exec(ctx, query, industry.Code, industry.Industry)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert industry: %w", err)
	}
	return nil
}

// Associate inserta la fila de asociación empresa—sector. Un constraint único
// en la tabla (si está definido) aflora como domain.ErrDuplicate.
func (r *IndustryRepo) Associate(ctx context.Context, compCode, indCode string) error {
	query := `INSERT INTO company_industry (comp_code, ind_code) VALUES ($1, $2)`
	_, err := r.q.Exec(ctx, query, compCode, indCode)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company_industry: %w", err)
	}
	return nil
}
