package middlewares

import (
	"crypto/subtle"
	"fmt"
	"log"
	"lpst/src/lib"

	"github.com/gin-gonic/gin"
)

func CSRFKey(userID uint) string {
	return fmt.Sprintf("csrf:%d", userID)
}

// VerifyCSRFToken compares the submitted anti-forgery token with the one
// issued at login. Must pass before any state change happens.
func VerifyCSRFToken(ctx *gin.Context, token string) bool {
	if token == "" {
		return false
	}
	userID := ctx.GetUint("id")
	rd := lib.GetRedisClient()
	if rd == nil {
		log.Println("csrf check failed: redis is not configured")
		return false
	}
	stored, err := rd.Get(ctx, CSRFKey(userID)).Result()
	if err != nil {
		log.Printf("csrf check failed for user [%d]: %s\n", userID, err.Error())
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1
}
