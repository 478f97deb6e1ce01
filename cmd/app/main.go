package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"
	"github.com/vlatan/block-site/internal/app"
	"github.com/vlatan/block-site/internal/config"
)

func main() {
	if err := app.New(config.New()).Run(); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}
