package model

// UsuarioModel mirrors the 'usuarios' table. Rows are never hard-deleted:
// a soft delete blanks the personal columns and flips Status, so Email
// deliberately carries no unique constraint (several deleted rows share the
// empty string). Active-email uniqueness is enforced by the conflict
// detector.
type UsuarioModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Nome        string  `gorm:"type:varchar(50);not null"`
	Email       string  `gorm:"type:varchar(255);not null;index"`
	SenhaHash   string  `gorm:"type:varchar(255);not null"`
	Logradouro  string  `gorm:"type:varchar(120);not null"`
	Numero      int     `gorm:"not null"`
	Complemento *string `gorm:"type:varchar(20)"`
	Bairro      string  `gorm:"type:varchar(50);not null"`
	Cidade      string  `gorm:"type:varchar(30);not null"`
	UF          string  `gorm:"column:uf;type:char(2);not null"`
	CEP         string  `gorm:"column:cep;type:char(9);not null"`
	Status      string  `gorm:"type:varchar(10);not null;default:ativo"`
}

// TableName explicitly sets the table name for GORM.
func (UsuarioModel) TableName() string {
	return "usuarios"
}
