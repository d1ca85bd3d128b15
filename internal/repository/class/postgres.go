package class

import (
	"context"
	"errors"

	"yoga-marketplace/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// postgresRepo keeps each class as a JSONB document keyed by the hex identifier.
type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Insert(ctx context.Context, c domain.Class) (domain.InsertResult, error) {
	if c.ID.IsZero() {
		c.ID = domain.NewID()
	}
	if _, err := r.pool.Exec(ctx, `INSERT INTO classes (id, doc) VALUES ($1, $2)`, c.ID.Hex(), c); err != nil {
		return domain.InsertResult{}, err
	}
	return domain.InsertResult{Acknowledged: true, InsertedID: c.ID.Hex()}, nil
}

func (r *postgresRepo) List(ctx context.Context, f domain.ClassFilter) ([]domain.Class, error) {
	const q = `
SELECT doc
FROM classes
WHERE ($1 = '' OR doc->>'status' = $1)
  AND ($2 = '' OR doc->>'instructorEmail' = $2)
ORDER BY created_at ASC, id ASC
`
	return r.query(ctx, q, string(f.Status), f.InstructorEmail)
}

func (r *postgresRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Class, error) {
	var c domain.Class
	err := r.pool.QueryRow(ctx, `SELECT doc FROM classes WHERE id = $1`, id.Hex()).Scan(&c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Class, error) {
	if len(ids) == 0 {
		return []domain.Class{}, nil
	}
	hexIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		hexIDs = append(hexIDs, id.Hex())
	}
	return r.query(ctx, `SELECT doc FROM classes WHERE id = ANY($1) ORDER BY created_at ASC, id ASC`, hexIDs)
}

func (r *postgresRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status domain.ClassStatus, reason string, upsert bool) (domain.UpdateResult, error) {
	patch := map[string]interface{}{"status": status, "reason": reason}
	return r.patch(ctx, id, patch, nil, upsert)
}

func (r *postgresRepo) UpdateDetails(ctx context.Context, id primitive.ObjectID, d domain.ClassDetails, upsert bool) (domain.UpdateResult, error) {
	patch := map[string]interface{}{
		"name":           d.Name,
		"description":    d.Description,
		"price":          d.Price,
		"availableSeats": d.AvailableSeats,
		"videoLink":      d.VideoLink,
		"status":         domain.StatusPending,
	}
	return r.patch(ctx, id, patch, []string{"reason"}, upsert)
}

// patch merges fields into the stored document and drops the keys in unset.
func (r *postgresRepo) patch(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}, unset []string, upsert bool) (domain.UpdateResult, error) {
	if unset == nil {
		unset = []string{}
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.UpdateResult{}, err
	}
	defer tx.Rollback(ctx)

	const update = `
WITH prev AS (
	SELECT id, doc FROM classes WHERE id = $1 FOR UPDATE
)
UPDATE classes c
SET doc = (prev.doc || $2::jsonb) - $3::text[]
FROM prev
WHERE c.id = prev.id
RETURNING prev.doc <> c.doc
`
	var modified bool
	err = tx.QueryRow(ctx, update, id.Hex(), fields, unset).Scan(&modified)
	switch {
	case err == nil:
		if err := tx.Commit(ctx); err != nil {
			return domain.UpdateResult{}, err
		}
		res := domain.UpdateResult{Acknowledged: true, MatchedCount: 1}
		if modified {
			res.ModifiedCount = 1
		}
		return res, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return domain.UpdateResult{}, err
	case !upsert:
		return domain.UpdateResult{Acknowledged: true}, nil
	}

	cmd, err := tx.Exec(ctx, `
INSERT INTO classes (id, doc)
VALUES ($1, (jsonb_build_object('_id', $1::text) || $2::jsonb) - $3::text[])
ON CONFLICT (id) DO NOTHING
`, id.Hex(), fields, unset)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.UpdateResult{}, err
	}
	if cmd.RowsAffected() == 0 {
		// Lost a race with a concurrent insert of the same id; last write wins.
		return r.patch(ctx, id, fields, unset, false)
	}
	return domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id.Hex()}, nil
}

func (r *postgresRepo) query(ctx context.Context, q string, args ...interface{}) ([]domain.Class, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Class{}
	for rows.Next() {
		var c domain.Class
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
