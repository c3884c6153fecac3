// Package model contains the GORM-specific structs mirroring the catalog
// tables. Identifiers are server-assigned bigserials.
package model

// CategoriaModel mirrors the 'categorias' table.
type CategoriaModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(30);not null"`
	Descricao string `gorm:"type:varchar(150);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoriaModel) TableName() string {
	return "categorias"
}
