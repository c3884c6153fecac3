package model

import "time"

// SugestaoModel mirrors the 'sugestoes' table. Prices are stored as
// integer centavos; the decimal exposure happens at the domain boundary.
type SugestaoModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	PrecoCentavos int64     `gorm:"not null"`
	CriadoEm      time.Time `gorm:"autoCreateTime;not null"`
	EstoqueID     int64     `gorm:"not null;index"`
	CriadoPor     int64     `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (SugestaoModel) TableName() string {
	return "sugestoes"
}
