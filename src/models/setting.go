package models

import "lpst/src/types"

type Setting struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	SettingKey   string `gorm:"uniqueIndex:name" json:"setting_key"`
	SettingValue string `json:"setting_value"`
	Group        string `gorm:"uniqueIndex:name" json:"group,omitempty"`

	types.Timestamps
}
