package domain

// Product is a catalog item as stored in the produtos table.
type Product struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name       string `gorm:"column:nome;not null" json:"nome"`
	PriceCents int64  `gorm:"column:valor_em_centavos;not null" json:"valor_em_centavos"` // price in minor currency units
}

// TableName Specify table name
func (Product) TableName() string {
	return "produtos"
}
