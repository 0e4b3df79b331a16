package models

// Project is a named project with a 0-100 progress figure
type Project struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}
