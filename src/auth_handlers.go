package main

import (
	"log"
	"lpst/src/db"
	"lpst/src/lib"
	"lpst/src/middlewares"
	"lpst/src/models"
	"lpst/src/types"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

const sessionTTL = 24 * time.Hour

func generateJWT(username string, userID uint, role string) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userID)),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func guestAuthRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	guest := apiv1.Group("/auth")
	guest.POST("/login", func(ctx *gin.Context) {
		var body types.LoginRequestBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		db := db.GetDb()
		var user models.User
		if err := db.
			Model(&models.User{}).
			Where(&models.User{Username: body.Username}).
			First(&user).
			Error; err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		token, err := generateJWT(user.Username, user.ID, user.Role)
		if err != nil {
			log.Printf("Error generating token for user [%d]: %s\n", user.ID, err.Error())
			ctx.Status(http.StatusInternalServerError)
			return
		}
		csrfToken := uuid.NewString()
		rd := lib.GetRedisClient()
		if rd == nil {
			ctx.Status(http.StatusInternalServerError)
			return
		}
		if err := rd.Set(ctx, middlewares.CSRFKey(user.ID), csrfToken, sessionTTL).Err(); err != nil {
			log.Printf("Error storing csrf token for user [%d]: %s\n", user.ID, err.Error())
			ctx.Status(http.StatusInternalServerError)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"token": token, "csrf_token": csrfToken})
	})
	return guest
}
