package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"fleet-waitlist/backend/internal/auth"
	"fleet-waitlist/backend/internal/config"
)

func main() {
	characterID := flag.Int64("character", 0, "character id the token is issued for")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *characterID <= 0 {
		log.Fatal("-character is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	token, err := auth.IssueToken([]byte(cfg.Auth.JWTSecret), *characterID, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
