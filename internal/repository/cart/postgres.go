package cart

import (
	"context"
	"errors"
	"time"

	"yoga-marketplace/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Insert(ctx context.Context, e domain.CartEntry) (domain.InsertResult, error) {
	if e.ID.IsZero() {
		e.ID = domain.NewID()
	}
	date := time.Now().UTC()
	if e.Date != nil {
		date = *e.Date
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO cart_items (id, class_id, user_mail, created_at)
VALUES ($1, $2, $3, $4)
`, e.ID.Hex(), e.ClassID, e.UserMail, date)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.InsertResult{}, domain.ErrAlreadyExists
		}
		return domain.InsertResult{}, err
	}
	return domain.InsertResult{Acknowledged: true, InsertedID: e.ID.Hex()}, nil
}

func (r *postgresRepo) FindOne(ctx context.Context, classID, userMail string) (*domain.CartEntry, error) {
	const q = `
SELECT id, class_id
FROM cart_items
WHERE class_id = $1 AND user_mail = $2
ORDER BY created_at ASC, id ASC
LIMIT 1
`
	var (
		id string
		e  domain.CartEntry
	)
	if err := r.pool.QueryRow(ctx, q, classID, userMail).Scan(&id, &e.ClassID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	oid, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	e.ID = oid
	return &e, nil
}

func (r *postgresRepo) ClassIDs(ctx context.Context, userMail string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
SELECT class_id
FROM cart_items
WHERE user_mail = $1
ORDER BY created_at ASC, id ASC
`, userMail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *postgresRepo) DeleteOne(ctx context.Context, classID, userMail string) (domain.DeleteResult, error) {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM cart_items
WHERE id = (
	SELECT id FROM cart_items
	WHERE class_id = $1 AND ($2 = '' OR user_mail = $2)
	ORDER BY created_at ASC, id ASC
	LIMIT 1
)
`, classID, userMail)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: cmd.RowsAffected()}, nil
}
