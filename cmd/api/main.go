package main

import (
	"log/slog"
	"os"

	"github.com/ardaguler/theatre-reservation-system/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
