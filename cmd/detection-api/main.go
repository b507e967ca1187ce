package main

import (
	"log"

	"github.com/glucoin/glucoin-ai/internal/builder"
)

func main() {
	app, err := builder.BuildDetection()
	if err != nil {
		log.Fatal("Failed to build detection service:", err)
	}

	if err := app.Run(); err != nil {
		log.Fatal("Application error:", err)
	}
}
