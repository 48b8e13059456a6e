package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(jwtSecret())

func jwtSecret() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "your_secret_key" // override via env in production
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
