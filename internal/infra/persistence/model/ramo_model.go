package model

// RamoModel mirrors the 'ramos' table. Name uniqueness is case-insensitive
// and enforced by the conflict detector before any write reaches here.
type RamoModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(30);not null"`
	Descricao string `gorm:"type:varchar(150);not null"`
}

// TableName explicitly sets the table name for GORM.
func (RamoModel) TableName() string {
	return "ramos"
}
