package lib

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "flash"

type FlashSeverity string

const (
	FLASH_SUCCESS FlashSeverity = "success"
	FLASH_ERROR   FlashSeverity = "error"
)

type FlashMessage struct {
	Message  string        `json:"message"`
	Severity FlashSeverity `json:"severity"`
}

// RedirectWithMessage stores a one-shot flash cookie and redirects,
// every action path terminates through here.
func RedirectWithMessage(ctx *gin.Context, location string, message string, severity FlashSeverity) {
	SetFlash(ctx, message, severity)
	ctx.Redirect(http.StatusFound, location)
}

func SetFlash(ctx *gin.Context, message string, severity FlashSeverity) {
	payload, err := json.Marshal(&FlashMessage{Message: message, Severity: severity})
	if err != nil {
		log.Printf("Error encoding flash message: %s\n", err.Error())
		return
	}
	value := base64.URLEncoding.EncodeToString(payload)
	ctx.SetCookie(flashCookieName, value, 60, "/", "", false, true)
}

// GetFlash returns the pending flash message, if any, and clears it.
func GetFlash(ctx *gin.Context) *FlashMessage {
	value, err := ctx.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	ctx.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	payload, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		log.Printf("Error decoding flash cookie: %s\n", err.Error())
		return nil
	}
	var flash FlashMessage
	if err := json.Unmarshal(payload, &flash); err != nil {
		log.Printf("Error decoding flash message: %s\n", err.Error())
		return nil
	}
	return &flash
}
