// cmd/admintoken/main.go — Mints a development admin token for the write API.
// Usage: ADMIN_JWT_SECRET=... go run ./cmd/admintoken admin@example.com
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/neelamenterprises/sajawatdesigns/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	secret := os.Getenv("ADMIN_JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_JWT_SECRET must be set")
		os.Exit(1)
	}

	subject := "admin@sajawatdesigns.com"
	if len(os.Args) > 1 {
		subject = os.Args[1]
	}

	claims := middleware.AdminClaims{
		Subject: subject,
		Role:    "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		fmt.Fprintln(os.Stderr, "sign error:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
