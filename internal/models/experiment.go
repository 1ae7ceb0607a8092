package models

import "time"

type Experiment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Subject     string    `gorm:"type:varchar(50)" json:"subject"`
	Level       string    `gorm:"type:varchar(50)" json:"level"`
	Class       string    `gorm:"type:varchar(50)" json:"class"`
	Procedure   string    `gorm:"type:text" json:"-"`
	VideoLink   string    `json:"video_link"`
	FilePath    string    `gorm:"type:varchar(500)" json:"-"`
	FileName    string    `json:"file_name"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
