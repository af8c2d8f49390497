package main

import (
	"context"
	"log"

	"github.com/JDavidVR/zendesk-support-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("api server exited: %v", err)
	}
}
