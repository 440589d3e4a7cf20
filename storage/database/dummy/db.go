package dummydb

import (
	"sync"

	"github.com/trezcool/darasa/core/assistant"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/knowledge"
	"github.com/trezcool/darasa/core/student"
)

// DB is an in-memory store used in tests and local development.
type DB struct {
	student   *studentTable
	course    *courseTable
	knowledge *knowledgeTable
	query     *queryTable
}

type (
	studentTable struct {
		sync.RWMutex
		pk    int
		table map[int]*student.Student
	}

	courseTable struct {
		sync.RWMutex
		pk          int
		table       map[int]*course.Course
		assignments map[int][]course.Assignment // by course ID
		quizzes     map[int][]course.Quiz       // by course ID
		grades      []course.Grade
	}

	knowledgeTable struct {
		sync.RWMutex
		pk        int
		items     []knowledge.Item
		templates []knowledge.Template
	}

	queryTable struct {
		sync.RWMutex
		pk    int
		table []assistant.Query
	}
)

func Open() (*DB, error) {
	db := &DB{
		student: &studentTable{table: make(map[int]*student.Student)},
		course: &courseTable{
			table:       make(map[int]*course.Course),
			assignments: make(map[int][]course.Assignment),
			quizzes:     make(map[int][]course.Quiz),
		},
		knowledge: &knowledgeTable{},
		query:     &queryTable{},
	}
	return db, nil
}
