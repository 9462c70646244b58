package products

import (
	"gorm.io/gorm"
)

// Product is a catalog entry. Price is the current unit price; order rows
// snapshot their own total at insert time and never read it back.
type Product struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"not null;size:255" json:"name"`
	Category string  `gorm:"size:100" json:"category"`
	Price    float64 `gorm:"not null;check:price >= 0" json:"price"`
}

// TableName specifies the table name for GORM
func (Product) TableName() string {
	return "products"
}

// GetProductByID retrieves a product by ID
func GetProductByID(db *gorm.DB, id uint) (*Product, error) {
	var product Product
	if err := db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// CountProducts returns the number of product rows
func CountProducts(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&Product{}).Count(&count).Error
	return count, err
}
