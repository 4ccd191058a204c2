package pos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const posTable = "pos"

var posColumns = []string{
	"id", "name", "description", "type", "campus",
	"street", "house_number", "postal_code", "city",
	"created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresRepo struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresRepository(db *sql.DB, logger *zap.Logger) Repository {
	return &postgresRepo{db: db, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, items []*Pos) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create: %w", err)
	}
	defer tx.Rollback()

	for _, p := range items {
		query, args, err := psql.Insert(posTable).
			Columns("id", "name", "description", "type", "campus",
				"street", "house_number", "postal_code", "city").
			Values(p.ID, p.Name, p.Description, p.Type, p.Campus,
				p.Street, p.HouseNumber, p.PostalCode, p.City).
			Suffix("RETURNING created_at, updated_at").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
			return translate(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create: %w", err)
	}
	r.logger.Debug("pos created", zap.Int("count", len(items)))
	return nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Pos, error) {
	query, args, err := psql.Select(posColumns...).From(posTable).OrderBy("seq").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*Pos{}
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Pos, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) GetByName(ctx context.Context, name string) (*Pos, error) {
	return r.getOne(ctx, sq.Eq{"name": name})
}

func (r *postgresRepo) getOne(ctx context.Context, where sq.Eq) (*Pos, error) {
	query, args, err := psql.Select(posColumns...).From(posTable).Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	p, err := scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *postgresRepo) Update(ctx context.Context, p *Pos) error {
	query, args, err := psql.Update(posTable).
		Set("name", p.Name).
		Set("description", p.Description).
		Set("type", p.Type).
		Set("campus", p.Campus).
		Set("street", p.Street).
		Set("house_number", p.HouseNumber).
		Set("postal_code", p.PostalCode).
		Set("city", p.City).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return err
	}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (r *postgresRepo) DeleteAll(ctx context.Context) error {
	query, args, err := psql.Delete(posTable).ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil {
		r.logger.Info("pos table cleared", zap.Int64("deleted", n))
	}
	return nil
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func scan(row rowScanner) (*Pos, error) {
	p := &Pos{}
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Type, &p.Campus,
		&p.Street, &p.HouseNumber, &p.PostalCode, &p.City,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// translate maps driver errors onto the package's sentinel errors.
func translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicateName
	}
	return err
}
