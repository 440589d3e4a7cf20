package dummydb

import (
	"context"
	"sort"

	"github.com/trezcool/darasa/core/course"
)

type courseRepository struct {
	db *courseTable
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.course}
}

func (repo *courseRepository) CreateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	crs.ID = repo.db.pk
	repo.db.table[crs.ID] = &crs
	return crs, nil
}

func (repo *courseRepository) GetCourseByCode(_ context.Context, code string) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, crs := range repo.db.table {
		if crs.Code == code {
			return *crs, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) CreateAssignment(_ context.Context, asg course.Assignment) (course.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	asg.ID = repo.db.pk
	repo.db.assignments[asg.CourseID] = append(repo.db.assignments[asg.CourseID], asg)
	return asg, nil
}

func (repo *courseRepository) QueryAssignments(_ context.Context, courseID int) ([]course.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	asgs := append([]course.Assignment(nil), repo.db.assignments[courseID]...)
	sort.SliceStable(asgs, func(i, j int) bool { return asgs[i].DueDate.Before(asgs[j].DueDate) })
	return asgs, nil
}

func (repo *courseRepository) CreateQuiz(_ context.Context, qz course.Quiz) (course.Quiz, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	qz.ID = repo.db.pk
	repo.db.quizzes[qz.CourseID] = append(repo.db.quizzes[qz.CourseID], qz)
	return qz, nil
}

func (repo *courseRepository) QueryQuizzes(_ context.Context, courseID int) ([]course.Quiz, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	qzs := append([]course.Quiz(nil), repo.db.quizzes[courseID]...)
	sort.SliceStable(qzs, func(i, j int) bool { return qzs[i].Date.Before(qzs[j].Date) })
	return qzs, nil
}

func (repo *courseRepository) CreateGrade(_ context.Context, grd course.Grade) (course.Grade, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	grd.ID = repo.db.pk
	if grd.CourseCode == "" {
		if crs, ok := repo.db.table[grd.CourseID]; ok {
			grd.CourseCode = crs.Code
		}
	}
	repo.db.grades = append(repo.db.grades, grd)
	return grd, nil
}

func (repo *courseRepository) QueryGrades(_ context.Context, studentID, courseID int) ([]course.Grade, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var grds []course.Grade
	for _, grd := range repo.db.grades {
		if grd.StudentID == studentID && grd.CourseID == courseID {
			grds = append(grds, grd)
		}
	}
	sortGradesDesc(grds)
	return grds, nil
}

func (repo *courseRepository) QueryStudentGrades(_ context.Context, studentID, limit int) ([]course.Grade, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var grds []course.Grade
	for _, grd := range repo.db.grades {
		if grd.StudentID == studentID {
			grds = append(grds, grd)
		}
	}
	sortGradesDesc(grds)
	if limit > 0 && len(grds) > limit {
		grds = grds[:limit]
	}
	return grds, nil
}

func sortGradesDesc(grds []course.Grade) {
	sort.SliceStable(grds, func(i, j int) bool { return grds[i].SubmittedAt.After(grds[j].SubmittedAt) })
}
