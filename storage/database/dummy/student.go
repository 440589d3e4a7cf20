package dummydb

import (
	"context"

	"github.com/trezcool/darasa/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) CreateStudent(_ context.Context, std student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	std.ID = repo.db.pk
	repo.db.table[std.ID] = &std
	return std, nil
}

func (repo *studentRepository) GetStudentByCode(_ context.Context, code string) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, std := range repo.db.table {
		if std.StudentCode == code {
			return *std, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}
