package main

import (
	"context"
	"log"

	"github.com/dbelakovs/authcore/internal/app"
	"github.com/dbelakovs/authcore/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	a, err := app.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	a.Run(ctx)

}
