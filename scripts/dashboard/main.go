package main

import (
	"context"
	"flag"
	"os"

	"quizboard/config"
	"quizboard/dashboard"
	"quizboard/logger"
)

// Prints a user's dashboard from a running server. API_BASE_URL and API_TOKEN
// come from the environment.
func main() {
	userID := flag.String("user", "", "user id whose dashboard to show (defaults to the token's user)")
	path := flag.String("path", "/dashboard", "page path, decides the grid width")
	flag.Parse()

	config.LoadConfig()
	log, err := logger.Init(config.AppConfig.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	client := dashboard.NewClient(config.AppConfig.APIBaseURL, config.AppConfig.APIToken, config.AppConfig.RequestTimeout, log)

	view, res := client.Load(context.Background(), *userID)
	if err := dashboard.Render(os.Stdout, view, *path); err != nil {
		log.Fatal("Failed to render dashboard", "error", err)
	}
	if res.Failed() {
		os.Exit(1)
	}
}
