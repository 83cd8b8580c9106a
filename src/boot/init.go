package boot

import (
	"log"
	"lpst/src/common"
	"lpst/src/db"
	"lpst/src/lib"
	"lpst/src/models"
	"os"
	"strconv"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Resource{},
		&models.Booking{},
		&models.BookingCancellation{},
		&models.Payment{},
		&models.Setting{},
		&models.EmailLog{},
		&models.SmsLog{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	seedSettings(db)

	return db
}

var defaultSettings = map[string]string{
	"hotel_name":       "L.P.S.T Hotel",
	"smtp_port":        "587",
	"smtp_encryption":  "tls",
	"export_recipient": "",
}

func seedSettings(db *gorm.DB) {
	for key, value := range defaultSettings {
		setting := models.Setting{SettingKey: key, SettingValue: value, Group: "general"}
		if err := db.
			Where(&models.Setting{SettingKey: key}).
			FirstOrCreate(&setting).
			Error; err != nil {
			log.Printf("Could not seed setting %s: %s\n", key, err.Error())
		}
	}
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	hour := uint(6)
	if v, err := strconv.Atoi(os.Getenv("EXPORT_HOUR")); err == nil && v >= 0 && v < 24 {
		hour = uint(v)
	}
	id, err := lib.CreateDailyJob(hour, common.RunDailyExport)
	if err != nil {
		log.Printf("Error scheduling daily export: %s\n", err.Error())
	} else {
		log.Printf("Daily export job: %s\n", *id)
	}
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Printf("Error shutting down Scheduler: %s\n", err.Error())
	}
}

func InitConsumers() {
	go common.AuditRetryConsumer()
}
