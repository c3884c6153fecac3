package model

// EstoqueModel mirrors the 'estoques' table. The composite unique index is
// the last line of defense against a racing duplicate; the conflict
// detector normally rejects duplicates before the write.
type EstoqueModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CriadoPor int64 `gorm:"not null;index"`
	ProdutoID int64 `gorm:"not null;uniqueIndex:idx_estoques_produto_mercado"`
	MercadoID int64 `gorm:"not null;uniqueIndex:idx_estoques_produto_mercado"`

	Sugestoes []SugestaoModel `gorm:"foreignKey:EstoqueID"`
}

// TableName explicitly sets the table name for GORM.
func (EstoqueModel) TableName() string {
	return "estoques"
}
