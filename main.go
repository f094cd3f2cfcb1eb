package main

import (
	"os"

	"social-planner/core/logger"
	"social-planner/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
		logger.Sync()
		os.Exit(1)
	}
}
