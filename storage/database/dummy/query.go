package dummydb

import (
	"context"

	"github.com/trezcool/darasa/core/assistant"
)

type queryRepository struct {
	db *queryTable
}

var _ assistant.QueryRepository = (*queryRepository)(nil) // interface compliance check

func NewQueryRepository(db *DB) assistant.QueryRepository {
	return &queryRepository{db: db.query}
}

func (repo *queryRepository) CreateQuery(_ context.Context, qry assistant.Query) (assistant.Query, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	qry.ID = repo.db.pk
	repo.db.table = append(repo.db.table, qry)
	return qry, nil
}

func (repo *queryRepository) QueryRecentByStudent(_ context.Context, studentID, limit int) ([]assistant.Query, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var qrys []assistant.Query
	for i := len(repo.db.table) - 1; i >= 0; i-- { // insertion order, newest first
		qry := repo.db.table[i]
		if qry.StudentID.Valid && qry.StudentID.Int == studentID {
			qrys = append(qrys, qry)
			if limit > 0 && len(qrys) == limit {
				break
			}
		}
	}
	return qrys, nil
}
