package main

import (
	"lpst/src/db"
	"lpst/src/lib"
	"lpst/src/models"
	"lpst/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type gridCell struct {
	Resource models.Resource `json:"resource"`
	Booking  *models.Booking `json:"booking,omitempty"`
}

// gridHandlers serves the room grid the action workflow redirects back
// to. A room with no ACTIVE booking is available.
func gridHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/grid", func(ctx *gin.Context) {
		flash := lib.GetFlash(ctx)
		db := db.GetDb()
		var resources []models.Resource
		if err := db.
			Model(&models.Resource{}).
			Where(&models.Resource{IsActive: true}).
			Order("display_name").
			Find(&resources).
			Error; err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		var bookings []models.Booking
		if err := db.
			Model(&models.Booking{}).
			Where("status = ?", types.BOOKING_ACTIVE).
			Find(&bookings).
			Error; err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		byResource := make(map[uint]*models.Booking, len(bookings))
		for i := range bookings {
			byResource[bookings[i].ResourceID] = &bookings[i]
		}
		cells := make([]gridCell, 0, len(resources))
		for _, r := range resources {
			cells = append(cells, gridCell{Resource: r, Booking: byResource[r.ID]})
		}
		ctx.JSON(http.StatusOK, gin.H{"data": cells, "count": len(cells), "flash": flash})
	})
	return g
}
