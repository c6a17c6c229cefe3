package main

import (
	"draftsmith/cmd/handlers"
	"draftsmith/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
