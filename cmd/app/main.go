package main

import (
	"StudentPlanner/internal/config"
	contextPkg "StudentPlanner/pkg/context"
	"StudentPlanner/pkg/log"
	"StudentPlanner/pkg/utils"
	"context"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	log.NewLogger()

	if err := godotenv.Load(); err != nil {
		log.Warn(nil, "No .env file found, continuing with defaults")
	}

	store, err := config.NewStore(log.NewLogger())
	if err != nil {
		log.Fatal(log.Fields{
			"error": err.Error(),
		}, "Failed to open storage")
	}

	idGenerator := utils.New()

	session, err := config.NewSession(
		config.WithLogger(log.NewLogger()),
		config.WithValidator(config.NewValidator()),
		config.WithStore(store),
		config.WithNotifier(newConsoleNotifier()),
		config.WithUtils(idGenerator),
		config.WithClock(time.Now),
	)
	if err != nil {
		log.Fatal(log.Fields{
			"error": err.Error(),
		}, "Failed to assemble session")
	}

	session.RegisterDomains()

	sessionID, err := idGenerator.NewULIDFromTimestamp(time.Now())
	if err != nil {
		log.Fatal(log.Fields{
			"error": err.Error(),
		}, "Failed to generate session id")
	}

	ctx := contextPkg.WithSessionID(context.Background(), sessionID)

	if err := session.Settings().Welcome(ctx); err != nil {
		log.Warn(log.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}, "Failed to record first visit")
	}

	log.Info(log.Fields{
		"session_id": sessionID,
	}, "Planner session started")

	runConsole(ctx, session)
}
