// Package product describes the read-only catalog records.
package product

import "fmt"

// Product is a catalog row. Price is in whole currency units.
type Product struct {
	ID    int
	Name  string
	Price int
}

func (p Product) String() string {
	return fmt.Sprintf("%d\t%s\t%d", p.ID, p.Name, p.Price)
}
