package customers

import (
	"gorm.io/gorm"
)

// Customer is a buyer record. Rows are created by seeding and are immutable
// afterwards; a reseed replaces the whole table.
type Customer struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"not null;size:255" json:"name"`
	Email  string `gorm:"uniqueIndex;size:255" json:"email"`
	Region string `gorm:"size:50" json:"region"`
	Type   string `gorm:"size:50" json:"type"` // free-text segment label, e.g. "Premium"
}

// TableName specifies the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// GetCustomerByID retrieves a customer by ID
func GetCustomerByID(db *gorm.DB, id uint) (*Customer, error) {
	var customer Customer
	if err := db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// CountCustomers returns the number of customer rows
func CountCustomers(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&Customer{}).Count(&count).Error
	return count, err
}
