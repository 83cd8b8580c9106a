package main

import (
	"log"
	"lpst/src/common"
	"lpst/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

func exportHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/exports/email", func(ctx *gin.Context) {
			var body types.ExportEmailRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			adminID := ctx.GetUint("id")
			filters := common.ExportFilters{
				StartDate: body.StartDate,
				EndDate:   body.EndDate,
				Status:    body.Status,
			}
			if err := common.SendExportEmail(body.Email, filters, adminID); err != nil {
				log.Printf("Export email to %s failed: %s\n", body.Email, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Export email sent successfully"})
		}).
		POST("/exports/test-email", func(ctx *gin.Context) {
			var body types.TestEmailRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			adminID := ctx.GetUint("id")
			if err := common.SendTestEmail(body.Email, adminID); err != nil {
				log.Printf("Test email to %s failed: %s\n", body.Email, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Test email sent successfully"})
		})
	return g
}
