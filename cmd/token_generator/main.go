package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// makeToken mints a long-lived bearer token for local testing of the
// protected routes.
func makeToken(secret, githubID string) string {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": githubID,
		"exp": time.Now().Add(365 * 24 * time.Hour).Unix(),
	})

	s, err := t.SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return s
}

func main() {
	githubID := flag.String("github-id", "octocat", "subject claim of the token")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		secret = "supersecretkey"
	}

	fmt.Println("ACCESS_TOKEN=" + makeToken(secret, *githubID))
}
