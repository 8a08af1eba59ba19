package main

import (
	"log"

	"nexrates/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("application failed: %v", err)
	}
}
