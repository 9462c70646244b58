package reports

import (
	"errors"
	"sort"

	"salescope/internal/orders"
)

// ErrInvalidInput is returned when a report is requested without both dates.
var ErrInvalidInput = errors.New("startDate and endDate are required")

// topEntryLimit caps the top-products and top-customers rankings.
const topEntryLimit = 5

// ProductSales is one top-products entry: units sold for a product.
type ProductSales struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// CustomerSpend is one top-customers entry: total spend for a customer.
type CustomerSpend struct {
	Name  string  `json:"name"`
	Spend float64 `json:"spend"`
}

// Aggregates holds the computed fields of an analytics report, ready for
// persistence.
type Aggregates struct {
	TotalOrders   int64
	TotalRevenue  float64
	AvgOrderValue float64
	TopProducts   []ProductSales
	TopCustomers  []CustomerSpend
}

// ComputeAggregates derives report aggregates from the orders matching
// [startDate, endDate]. It is a pure function: the caller fetches the rows,
// this only folds them.
//
// TotalRevenue sums each order's stored total amount. The stored value may
// differ from quantity times the current product price; that is the point,
// reports replay historical amounts.
//
// Rankings are sorted descending by their metric and truncated to five
// entries. Equal metrics are broken by the lower product/customer id so the
// output does not depend on row iteration order.
func ComputeAggregates(startDate, endDate string, rows []orders.RangeOrder) (Aggregates, error) {
	if startDate == "" || endDate == "" {
		return Aggregates{}, ErrInvalidInput
	}

	agg := Aggregates{
		TopProducts:  []ProductSales{},
		TopCustomers: []CustomerSpend{},
	}

	type productGroup struct {
		id    uint
		name  string
		count int64
	}
	type customerGroup struct {
		id    uint
		name  string
		spend float64
	}

	productGroups := make(map[uint]*productGroup)
	customerGroups := make(map[uint]*customerGroup)

	for _, row := range rows {
		agg.TotalOrders++
		agg.TotalRevenue += row.TotalAmount

		pg, ok := productGroups[row.ProductID]
		if !ok {
			pg = &productGroup{id: row.ProductID, name: row.ProductName}
			productGroups[row.ProductID] = pg
		}
		pg.count += int64(row.Quantity)

		cg, ok := customerGroups[row.CustomerID]
		if !ok {
			cg = &customerGroup{id: row.CustomerID, name: row.CustomerName}
			customerGroups[row.CustomerID] = cg
		}
		cg.spend += row.TotalAmount
	}

	if agg.TotalOrders > 0 {
		agg.AvgOrderValue = agg.TotalRevenue / float64(agg.TotalOrders)
	}

	rankedProducts := make([]*productGroup, 0, len(productGroups))
	for _, pg := range productGroups {
		rankedProducts = append(rankedProducts, pg)
	}
	sort.Slice(rankedProducts, func(i, j int) bool {
		if rankedProducts[i].count != rankedProducts[j].count {
			return rankedProducts[i].count > rankedProducts[j].count
		}
		return rankedProducts[i].id < rankedProducts[j].id
	})
	for i, pg := range rankedProducts {
		if i == topEntryLimit {
			break
		}
		agg.TopProducts = append(agg.TopProducts, ProductSales{Name: pg.name, Count: pg.count})
	}

	rankedCustomers := make([]*customerGroup, 0, len(customerGroups))
	for _, cg := range customerGroups {
		rankedCustomers = append(rankedCustomers, cg)
	}
	sort.Slice(rankedCustomers, func(i, j int) bool {
		if rankedCustomers[i].spend != rankedCustomers[j].spend {
			return rankedCustomers[i].spend > rankedCustomers[j].spend
		}
		return rankedCustomers[i].id < rankedCustomers[j].id
	})
	for i, cg := range rankedCustomers {
		if i == topEntryLimit {
			break
		}
		agg.TopCustomers = append(agg.TopCustomers, CustomerSpend{Name: cg.name, Spend: cg.spend})
	}

	return agg, nil
}
