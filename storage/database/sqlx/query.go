package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/assistant"
)

type queryRepository struct {
	db *sqlx.DB
}

var _ assistant.QueryRepository = (*queryRepository)(nil) // interface compliance check

func NewQueryRepository(db *sqlx.DB) assistant.QueryRepository {
	return &queryRepository{db: db}
}

func (repo *queryRepository) CreateQuery(ctx context.Context, qry assistant.Query) (assistant.Query, error) {
	err := repo.db.QueryRowxContext(ctx, `
		INSERT INTO query (ref, student_id, text, intent, response, status, priority, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		qry.Ref, qry.StudentID, qry.Text, qry.Intent, qry.Response, qry.Status, qry.Priority, qry.CreatedAt,
	).Scan(&qry.ID)
	if err != nil {
		return assistant.Query{}, errors.Wrap(err, "inserting query")
	}
	return qry, nil
}

func (repo *queryRepository) QueryRecentByStudent(ctx context.Context, studentID, limit int) ([]assistant.Query, error) {
	qrys := make([]assistant.Query, 0)
	err := repo.db.SelectContext(ctx, &qrys, `
		SELECT * FROM query
		WHERE student_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, studentID, limit)
	return qrys, errors.Wrap(err, "querying recent queries")
}
