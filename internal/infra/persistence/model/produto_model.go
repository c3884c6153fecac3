package model

// ProdutoModel mirrors the 'produtos' table.
type ProdutoModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Nome        string  `gorm:"type:varchar(150);not null"`
	Marca       string  `gorm:"type:varchar(50);not null"`
	Tamanho     string  `gorm:"type:varchar(20);not null"`
	Cor         *string `gorm:"type:varchar(20)"`
	CriadoPor   int64   `gorm:"not null;index"`
	CategoriaID int64   `gorm:"not null;index"`

	Estoques []EstoqueModel `gorm:"foreignKey:ProdutoID"`
}

// TableName explicitly sets the table name for GORM.
func (ProdutoModel) TableName() string {
	return "produtos"
}
