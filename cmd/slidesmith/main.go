package main

import (
	"slidesmith/cmd/handlers"
	"slidesmith/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
