package common

import (
	"lpst/src/db"
	"lpst/src/models"
)

func GetSettings(keys ...string) (map[string]string, error) {
	db := db.GetDb()
	var rows []models.Setting
	err := db.
		Model(&models.Setting{}).
		Where("setting_key IN (?)", keys).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.SettingKey] = row.SettingValue
	}
	return settings, nil
}

func GetSetting(key string, fallback string) string {
	settings, err := GetSettings(key)
	if err != nil {
		return fallback
	}
	return settingOr(settings, key, fallback)
}

func settingOr(settings map[string]string, key string, fallback string) string {
	if v, ok := settings[key]; ok && v != "" {
		return v
	}
	return fallback
}
