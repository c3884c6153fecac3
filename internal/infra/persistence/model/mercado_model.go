package model

// MercadoModel mirrors the 'mercados' table.
type MercadoModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	CriadoPor   int64   `gorm:"not null;index"`
	RamoID      int64   `gorm:"not null;index"`
	Nome        string  `gorm:"type:varchar(50);not null"`
	Logradouro  string  `gorm:"type:varchar(120);not null"`
	Numero      int     `gorm:"not null"`
	Complemento *string `gorm:"type:varchar(20)"`
	Bairro      string  `gorm:"type:varchar(50);not null"`
	Cidade      string  `gorm:"type:varchar(30);not null"`
	UF          string  `gorm:"column:uf;type:char(2);not null"`
	CEP         string  `gorm:"column:cep;type:char(9);not null"`

	Estoques []EstoqueModel `gorm:"foreignKey:MercadoID"`
}

// TableName explicitly sets the table name for GORM.
func (MercadoModel) TableName() string {
	return "mercados"
}
