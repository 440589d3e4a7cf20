package echoapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/assistant"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/knowledge"
	"github.com/trezcool/darasa/core/student"
	dummymail "github.com/trezcool/darasa/services/email/dummy"
	dummydb "github.com/trezcool/darasa/storage/database/dummy"
	"github.com/trezcool/darasa/tests"
)

const supportEmail = "support@darasa.cd"

type testApp struct {
	server        echoapi.Server
	knowledgeRepo knowledge.Repository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	conf := &core.Config{TestMode: true, AppName: "darasa", SupportEmail: supportEmail}

	validate := validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator(enLocale.Locale())
	core.InitValidators(validate, translator)

	db, err := dummydb.Open()
	require.NoError(t, err)
	studentRepo := dummydb.NewStudentRepository(db)
	courseRepo := dummydb.NewCourseRepository(db)
	knowledgeRepo := dummydb.NewKnowledgeRepository(db)
	queryRepo := dummydb.NewQueryRepository(db)

	std := testutil.CreateStudent(t, studentRepo, "STU001", "Amina Kalombo")
	crs := testutil.CreateCourse(t, courseRepo, "COMP101", "Introduction to Computing")
	testutil.CreateGrade(t, courseRepo, std.ID, crs.ID, "Quiz 1", 8, 10)

	engine := assistant.NewEngine(
		course.NewService(courseRepo),
		knowledge.NewService(knowledgeRepo),
		testutil.Logger{}, supportEmail,
	)
	assistantSvc := assistant.NewService(engine, queryRepo, dummymail.NewService(), testutil.Logger{}, supportEmail, "http://localhost:3000")

	server := echoapi.NewServer(&echoapi.Options{
		Conf:           conf,
		DisableReqLogs: true,
		Logger:         testutil.Logger{},
		AssistantSvc:   assistantSvc,
		StudentSvc:     student.NewService(studentRepo),
		Validate:       validate,
		Translator:     translator,
	})
	return &testApp{server: server, knowledgeRepo: knowledgeRepo}
}

func (app *testApp) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.server.ServeHTTP(rec, req)
	return rec
}

func TestHome(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Darasa API!", rec.Body.String())
}

func TestQueryAPI(t *testing.T) {
	app := newTestApp(t)

	t.Run("anonymous question", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/assistant/query", `{"query": "I can't log in"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var res assistant.QueryResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, assistant.IntentTechnicalIssue, res.Intent)
		assert.Equal(t, 0.9, res.Confidence)
		assert.Contains(t, res.Response, supportEmail)
	})

	t.Run("identified question", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/assistant/query",
			`{"query": "What's my grade?", "student_code": "STU001"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var res assistant.QueryResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, assistant.IntentGradeInquiry, res.Intent)
		assert.Contains(t, res.Response, "COMP101 - Quiz 1")
	})

	t.Run("missing query", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/assistant/query", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var fldErrs map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fldErrs))
		assert.Equal(t, "this field is required", fldErrs["query"])
	})

	t.Run("unknown student code", func(t *testing.T) {
		rec := app.request(t, http.MethodPost, "/v1/assistant/query",
			`{"query": "What's my grade?", "student_code": "NOBODY"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var fldErrs map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fldErrs))
		assert.Equal(t, "unknown student code", fldErrs["student_code"])
	})
}

func TestRecentQueriesAPI(t *testing.T) {
	app := newTestApp(t)

	for _, q := range []string{"I can't log in", "Where are the lecture slides?"} {
		rec := app.request(t, http.MethodPost, "/v1/assistant/query",
			`{"query": "`+q+`", "student_code": "STU001"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	t.Run("lists the student's queries", func(t *testing.T) {
		rec := app.request(t, http.MethodGet, "/v1/assistant/queries?student_code=STU001", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var qrys []assistant.Query
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &qrys))
		require.Len(t, qrys, 2)
		assert.Equal(t, "Where are the lecture slides?", qrys[0].Text)
		assert.Equal(t, "I can't log in", qrys[1].Text)
	})

	t.Run("limit applies", func(t *testing.T) {
		rec := app.request(t, http.MethodGet, "/v1/assistant/queries?student_code=STU001&limit=1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var qrys []assistant.Query
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &qrys))
		assert.Len(t, qrys, 1)
	})

	t.Run("student code is required", func(t *testing.T) {
		rec := app.request(t, http.MethodGet, "/v1/assistant/queries", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var fldErrs map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fldErrs))
		assert.Equal(t, "this field is required", fldErrs["student_code"])
	})
}

func TestRefreshAPI(t *testing.T) {
	app := newTestApp(t)

	question := `{"query": "campus library opening hours on weekdays"}`
	rec := app.request(t, http.MethodPost, "/v1/assistant/query", question)
	require.Equal(t, http.StatusOK, rec.Code)
	var res assistant.QueryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 0.5, res.Confidence) // nothing to retrieve yet

	testutil.CreateKnowledgeItem(t, app.knowledgeRepo, "facilities", "Library Hours",
		"The campus library opens from 8am to 10pm on weekdays.")

	rec = app.request(t, http.MethodPost, "/v1/assistant/refresh", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"refreshed": true}`, rec.Body.String())

	rec = app.request(t, http.MethodPost, "/v1/assistant/query", question)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res.Response, "Library Hours")
	assert.Greater(t, res.Confidence, assistant.MatchThreshold)
}
