package models

import "time"

// Upload is a single ingestion event. Rows are append-only: created once per
// upload call, immediately before their child records, and never mutated.
type Upload struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID       string    `gorm:"column:user_id;type:text;not null;index"`
	StoreID      string    `gorm:"column:store_id;type:varchar(50);not null"`
	Filename     string    `gorm:"column:filename;type:varchar(255);not null"`
	FileSize     int64     `gorm:"column:file_size"`
	TotalRecords int       `gorm:"column:total_records;not null;default:0"`
	UploadDate   time.Time `gorm:"column:upload_date;autoCreateTime"`
}

func (Upload) TableName() string { return "uploads" }
