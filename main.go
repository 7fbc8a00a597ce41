package main

import (
	"os"
	"os/signal"
	"syscall"

	"quizboard/config"
	"quizboard/database"
	"quizboard/logger"
	"quizboard/routers"
	"quizboard/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	log, err := logger.Init(config.AppConfig.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	database.ConnectDb()

	scheduler, err := utils.InitializeQuizCloseScheduler(config.AppConfig.QuizCloseSchedule)
	if err != nil {
		log.Fatal("Failed to start quiz close scheduler", "error", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	routers.Setup(app)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Info("Shutting down")
		<-scheduler.Stop().Done()
		_ = app.Shutdown()
	}()

	log.Info("Server is running", "port", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal("Server stopped", "error", err)
	}
}
