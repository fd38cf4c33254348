package main

import (
	"log"

	"CommunityOracle/internal/adapters/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	if err := a.Start(); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
