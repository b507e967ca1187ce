package main

import (
	"log"

	"github.com/glucoin/glucoin-ai/internal/builder"
)

func main() {
	app, err := builder.BuildCombined()
	if err != nil {
		log.Fatal("Failed to build combined service:", err)
	}

	if err := app.Run(); err != nil {
		log.Fatal("Application error:", err)
	}
}
