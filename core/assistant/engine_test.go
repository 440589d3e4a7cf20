package assistant_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core/assistant"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/knowledge"
	"github.com/trezcool/darasa/core/student"
	dummydb "github.com/trezcool/darasa/storage/database/dummy"
	"github.com/trezcool/darasa/tests"
)

const (
	supportEmail = "support@darasa.cd"
	frontendURL  = "http://localhost:3000"
)

type engineEnv struct {
	engine        *assistant.Engine
	studentRepo   student.Repository
	courseRepo    course.Repository
	knowledgeRepo knowledge.Repository
	knowledgeSvc  *knowledge.Service
}

func newEngineEnv(t *testing.T, seed func(env *engineEnv)) *engineEnv {
	t.Helper()

	db, err := dummydb.Open()
	require.NoError(t, err)

	env := &engineEnv{
		studentRepo:   dummydb.NewStudentRepository(db),
		courseRepo:    dummydb.NewCourseRepository(db),
		knowledgeRepo: dummydb.NewKnowledgeRepository(db),
	}
	env.knowledgeSvc = knowledge.NewService(env.knowledgeRepo)
	if seed != nil {
		seed(env)
	}
	env.engine = assistant.NewEngine(
		course.NewService(env.courseRepo), env.knowledgeSvc, testutil.Logger{}, supportEmail,
	)
	return env
}

func TestEngineAssignmentDeadline(t *testing.T) {
	ctx := context.Background()
	env := newEngineEnv(t, func(env *engineEnv) {
		crs := testutil.CreateCourse(t, env.courseRepo, "COMP101", "Introduction to Computing")
		testutil.CreateAssignment(t, env.courseRepo, crs.ID, "Programming Basics", time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC))
		testutil.CreateAssignment(t, env.courseRepo, crs.ID, "Data Structures Essay", time.Date(2026, 4, 1, 23, 59, 0, 0, time.UTC))
		testutil.CreateCourse(t, env.courseRepo, "WEB201", "Web Development")
	})

	t.Run("lists deadlines in due order", func(t *testing.T) {
		res := env.engine.GenerateResponse(ctx, "When is Assignment 2 due for COMP101?", nil)
		assert.Equal(t, assistant.IntentAssignmentDeadline, res.Intent)
		assert.Equal(t, 0.9, res.Confidence)
		assert.Contains(t, res.Response, "Here are the assignments for COMP101:")
		assert.Contains(t, res.Response, "Programming Basics")
		assert.Contains(t, res.Response, "Due: 01 March 2026, 11:59 PM")
		require.Len(t, res.Data, 2)
		assert.Equal(t, "Programming Basics", res.Data[0].Title)
		assert.Equal(t, "Data Structures Essay", res.Data[1].Title)
	})

	t.Run("asks for a course code", func(t *testing.T) {
		res := env.engine.GenerateResponse(ctx, "When is the assignment due?", nil)
		assert.Equal(t, assistant.IntentAssignmentDeadline, res.Intent)
		assert.Equal(t, 0.5, res.Confidence)
		assert.Contains(t, res.Response, "Please specify which course")
		assert.Empty(t, res.Data)
	})

	t.Run("unknown course", func(t *testing.T) {
		res := env.engine.GenerateResponse(ctx, "When is the assignment due for NET999?", nil)
		assert.Equal(t, 0.6, res.Confidence)
		assert.Contains(t, res.Response, "I couldn't find the course NET999.")
	})

	t.Run("course without assignments", func(t *testing.T) {
		res := env.engine.GenerateResponse(ctx, "Any assignment deadlines for WEB201?", nil)
		assert.Equal(t, 0.8, res.Confidence)
		assert.Contains(t, res.Response, "There are no assignments listed for WEB201 yet.")
	})
}

func TestEngineGradeInquiry(t *testing.T) {
	ctx := context.Background()

	var (
		std student.Student
		crs course.Course
	)
	env := newEngineEnv(t, func(env *engineEnv) {
		std = testutil.CreateStudent(t, env.studentRepo, "STU001", "Amina Kalombo")
		crs = testutil.CreateCourse(t, env.courseRepo, "COMP101", "Introduction to Computing")
	})

	t.Run("anonymous requester is asked to log in", func(t *testing.T) {
		res := env.engine.GenerateResponse(ctx, "What's my grade?", nil)
		assert.Equal(t, assistant.IntentGradeInquiry, res.Intent)
		assert.Equal(t, 0.5, res.Confidence)
		assert.Equal(t, "Please log in to view your grades.", res.Response)
	})

	t.Run("inactive account", func(t *testing.T) {
		suspended := std
		suspended.Status = student.StatusSuspended
		res := env.engine.GenerateResponse(ctx, "What's my grade?", &suspended)
		assert.Equal(t, assistant.IntentGradeInquiry, res.Intent)
		assert.Equal(t, 0.5, res.Confidence)
		assert.Contains(t, res.Response, "not active")
		assert.Contains(t, res.Response, supportEmail)
	})

	t.Run("no grades yet", func(t *testing.T) {
		res := env.engine.GenerateResponse(ctx, "What's my grade?", &std)
		assert.Equal(t, 0.8, res.Confidence)
		assert.Equal(t, "No grades available yet.", res.Response)
	})

	t.Run("recent grades", func(t *testing.T) {
		testutil.CreateGrade(t, env.courseRepo, std.ID, crs.ID, "Quiz 1", 8, 10)
		testutil.CreateGrade(t, env.courseRepo, std.ID, crs.ID, "Midterm", 42, 50)

		res := env.engine.GenerateResponse(ctx, "Show me my marks", &std)
		assert.Equal(t, assistant.IntentGradeInquiry, res.Intent)
		assert.Equal(t, 0.9, res.Confidence)
		assert.Contains(t, res.Response, "Your recent grades:")
		assert.Contains(t, res.Response, "COMP101 - Quiz 1")
		assert.Contains(t, res.Response, "Score: 8/10 (80%)")
	})

	t.Run("grades scoped to a course", func(t *testing.T) {
		res := env.engine.GenerateResponse(ctx, "What's my grade for COMP101?", &std)
		assert.Equal(t, 0.9, res.Confidence)
		assert.Contains(t, res.Response, "Your grades for COMP101:")
	})

	t.Run("unknown course", func(t *testing.T) {
		res := env.engine.GenerateResponse(ctx, "What's my grade for NET999?", &std)
		assert.Equal(t, 0.6, res.Confidence)
		assert.Equal(t, "Course NET999 not found.", res.Response)
	})
}

func TestEngineTechnicalIssue(t *testing.T) {
	env := newEngineEnv(t, nil)

	res := env.engine.GenerateResponse(context.Background(), "I can't log in", nil)
	assert.Equal(t, assistant.IntentTechnicalIssue, res.Intent)
	assert.Equal(t, 0.9, res.Confidence)
	assert.Contains(t, res.Response, "contact IT Support")
	assert.Contains(t, res.Response, supportEmail)
}

func TestEngineCourseContent(t *testing.T) {
	env := newEngineEnv(t, nil)

	res := env.engine.GenerateResponse(context.Background(), "Where are the lecture slides?", nil)
	assert.Equal(t, assistant.IntentCourseContent, res.Intent)
	assert.Equal(t, 0.7, res.Confidence)
	assert.Contains(t, res.Response, "Lecture slides and notes")
}

func TestEngineExamSchedule(t *testing.T) {
	ctx := context.Background()
	env := newEngineEnv(t, func(env *engineEnv) {
		crs := testutil.CreateCourse(t, env.courseRepo, "COMP101", "Introduction to Computing")
		testutil.CreateQuiz(t, env.courseRepo, crs.ID, "Midterm Exam", time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC))
		testutil.CreateCourse(t, env.courseRepo, "WEB201", "Web Development")
	})

	t.Run("lists scheduled quizzes", func(t *testing.T) {
		res := env.engine.GenerateResponse(ctx, "When is the exam for COMP101?", nil)
		assert.Equal(t, assistant.IntentExamSchedule, res.Intent)
		assert.Equal(t, 0.9, res.Confidence)
		assert.Contains(t, res.Response, "Exam schedule for COMP101:")
		assert.Contains(t, res.Response, "Midterm Exam")
		assert.Contains(t, res.Response, "Date: 10 May 2026, 09:00 AM")
	})

	t.Run("asks for a course code", func(t *testing.T) {
		res := env.engine.GenerateResponse(ctx, "When is the final exam?", nil)
		assert.Equal(t, 0.5, res.Confidence)
		assert.Contains(t, res.Response, "Please specify which course")
	})

	t.Run("nothing scheduled", func(t *testing.T) {
		res := env.engine.GenerateResponse(ctx, "When is the exam for WEB201?", nil)
		assert.Equal(t, 0.8, res.Confidence)
		assert.Contains(t, res.Response, "No exams/quizzes scheduled for WEB201 yet.")
	})
}

func TestEngineFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("default responses on an empty corpus", func(t *testing.T) {
		env := newEngineEnv(t, nil)

		res := env.engine.GenerateResponse(ctx, "asdkjfh random gibberish", nil)
		assert.Equal(t, assistant.IntentGeneralInquiry, res.Intent)
		assert.Equal(t, 0.5, res.Confidence)
		assert.Contains(t, res.Response, "I'm here to help!")

		res = env.engine.GenerateResponse(ctx, "How do I add course or drop course?", nil)
		assert.Equal(t, assistant.IntentEnrollmentHelp, res.Intent)
		assert.Contains(t, res.Response, "Registrar's Office")
		assert.Contains(t, res.Response, supportEmail)

		res = env.engine.GenerateResponse(ctx, "How much is the tuition fee payment?", nil)
		assert.Equal(t, assistant.IntentFeePayment, res.Intent)
		assert.Contains(t, res.Response, "Finance Office")
	})

	t.Run("knowledge base match", func(t *testing.T) {
		env := newEngineEnv(t, func(env *engineEnv) {
			testutil.CreateKnowledgeItem(t, env.knowledgeRepo, "facilities", "Library Hours",
				"The campus library opens from 8am to 10pm on weekdays.")
		})

		res := env.engine.GenerateResponse(ctx, "campus library opening hours on weekdays", nil)
		assert.Equal(t, assistant.IntentResourceAccess, res.Intent)
		assert.Equal(t, "Library Hours\n\nThe campus library opens from 8am to 10pm on weekdays.", res.Response)
		assert.Greater(t, res.Confidence, assistant.MatchThreshold)
		assert.LessOrEqual(t, res.Confidence, 1.0)
	})
}

func TestEngineRefresh(t *testing.T) {
	ctx := context.Background()
	env := newEngineEnv(t, nil)

	question := "campus library opening hours on weekdays"
	res := env.engine.GenerateResponse(ctx, question, nil)
	assert.Equal(t, 0.5, res.Confidence) // empty corpus falls back

	// new items are invisible until the corpus is reloaded
	testutil.CreateKnowledgeItem(t, env.knowledgeRepo, "facilities", "Library Hours",
		"The campus library opens from 8am to 10pm on weekdays.")
	res = env.engine.GenerateResponse(ctx, question, nil)
	assert.Equal(t, 0.5, res.Confidence)

	require.NoError(t, env.engine.Refresh(ctx))
	res = env.engine.GenerateResponse(ctx, question, nil)
	assert.Contains(t, res.Response, "Library Hours")
	assert.Greater(t, res.Confidence, assistant.MatchThreshold)
}

func TestEngineTemplates(t *testing.T) {
	ctx := context.Background()
	env := newEngineEnv(t, nil)

	_, err := env.knowledgeSvc.CreateTemplate(ctx, knowledge.Template{
		Intent:   string(assistant.IntentGradeInquiry),
		Template: "Your current grade is {grade}.",
	})
	require.NoError(t, err)
	_, err = env.knowledgeSvc.CreateTemplate(ctx, knowledge.Template{
		Intent:   "made_up_intent",
		Template: "never loaded",
	})
	require.NoError(t, err)

	require.NoError(t, env.engine.Refresh(ctx))
	tpls := env.engine.Templates()
	assert.Equal(t, "Your current grade is {grade}.", tpls[assistant.IntentGradeInquiry])
	assert.Len(t, tpls, 1)
}

func TestEngineResultInvariants(t *testing.T) {
	ctx := context.Background()
	env := newEngineEnv(t, func(env *engineEnv) {
		crs := testutil.CreateCourse(t, env.courseRepo, "COMP101", "Introduction to Computing")
		testutil.CreateAssignment(t, env.courseRepo, crs.ID, "Programming Basics", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		testutil.CreateKnowledgeItem(t, env.knowledgeRepo, "faq", "Password Reset",
			"Click forgot password on the portal and follow the emailed reset link.")
	})

	inputs := []string{
		"",
		"When is Assignment 2 due for COMP101?",
		"What's my grade?",
		"I can't log in",
		"résumé 日本語 ¯\\_(ツ)_/¯",
		"\x00\x01\x02",
		"how do I reset my forgotten password on the portal",
	}
	for i, text := range inputs {
		t.Run(fmt.Sprintf("input_%d", i), func(t *testing.T) {
			res := env.engine.GenerateResponse(ctx, text, nil)
			assert.True(t, assistant.IsValidIntent(string(res.Intent)))
			assert.NotEmpty(t, res.Response)
			assert.GreaterOrEqual(t, res.Confidence, 0.0)
			assert.LessOrEqual(t, res.Confidence, 1.0)

			again := env.engine.GenerateResponse(ctx, text, nil)
			assert.Equal(t, res, again)
		})
	}
}
