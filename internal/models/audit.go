package models

import "time"

// AuditLog trace les mutations (create/edit/delete) de façon best-effort.
type AuditLog struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	ActorID    *uint     `json:"actorId,omitempty"`
	ActorEmail string    `gorm:"size:180" json:"actorEmail,omitempty"`
	Action     string    `gorm:"size:20;not null" json:"action"`
	Resource   string    `gorm:"size:30;not null" json:"resource"`
	ResourceID string    `gorm:"size:36" json:"resourceId"`
	Success    bool      `json:"success"`
	ErrorMsg   string    `gorm:"type:text" json:"errorMsg,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (a *AuditLog) TableName() string {
	return "audit_log"
}
