package product

// Product is the row shape of the products table.
type Product struct {
	ID    int    `gorm:"column:id"`
	Name  string `gorm:"column:name"`
	Price int    `gorm:"column:price"`
}
