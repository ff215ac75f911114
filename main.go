package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"task-tracker/config"
	"task-tracker/database"
	"task-tracker/handlers"
	"task-tracker/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	log := newLogger(cfg.Log)

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	store := database.NewSQLTaskStore(db)
	svc := service.NewTaskService(store, log.WithField("component", "service"))
	handler := handlers.NewTaskHandler(svc, log.WithField("component", "handlers"))

	r := gin.Default()
	handler.Register(r)

	log.WithField("addr", cfg.Server.Addr).Info("starting server")
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func newLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log
}
