package main

import (
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/assistant"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/knowledge"
	"github.com/trezcool/darasa/core/student"
	emailsvc "github.com/trezcool/darasa/services/email"
	logsvc "github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/database"
	sqlxrepos "github.com/trezcool/darasa/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, conf.AppName+" : ", log.LstdFlags|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!(conf.Debug || conf.TestMode))

	// set up validators
	validate := validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator(enLocale.Locale())
	core.InitValidators(validate, translator)

	// set up DB
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal("opening database", err)
	}
	defer func() { _ = db.Close() }()
	if err = database.Ping(db); err != nil {
		logger.Fatal("pinging database", err)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	studentSvc := student.NewService(sqlxrepos.NewStudentRepository(db))
	courseSvc := course.NewService(sqlxrepos.NewCourseRepository(db))
	knowledgeSvc := knowledge.NewService(sqlxrepos.NewKnowledgeRepository(db))

	engine := assistant.NewEngine(courseSvc, knowledgeSvc, logger, conf.SupportEmail)
	assistantSvc := assistant.NewService(
		engine,
		sqlxrepos.NewQueryRepository(db),
		mailSvc,
		logger,
		conf.SupportEmail,
		conf.FrontendBaseURL,
	)

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Conf:         conf,
		Logger:       logger,
		AssistantSvc: assistantSvc,
		StudentSvc:   studentSvc,
		Validate:     validate,
		Translator:   translator,
	})
	app.Start()
}
