package models

import "lpst/src/types"

type Resource struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	DisplayName  string `json:"display_name,omitempty"`
	CustomName   string `json:"custom_name,omitempty"`
	ResourceType string `json:"resource_type,omitempty"`
	IsActive     bool   `gorm:"default:true" json:"is_active,omitempty"`

	types.Timestamps
}

// DisplayLabel prefers the owner-assigned custom name over the default one.
func (r *Resource) DisplayLabel() string {
	if r == nil {
		return ""
	}
	if r.CustomName != "" {
		return r.CustomName
	}
	return r.DisplayName
}
