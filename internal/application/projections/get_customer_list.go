package projections

import (
	"context"

	"personaltrainer/internal/application/listutil"
	"personaltrainer/internal/domain/customer"
	"personaltrainer/internal/domain/export"
)

// GetCustomerListQuery carries query parameters.
type GetCustomerListQuery struct {
	Search string
}

// GetCustomerListDeps holds dependencies for GetCustomerList.
type GetCustomerListDeps struct {
	CustomerSource CustomerSource
}

// GetCustomerListResult carries the query result.
type GetCustomerListResult struct {
	Customers []customer.Customer
}

// QueryGetCustomerList retrieves customers matching the search term.
// PRE: deps.CustomerSource is set
// POST: returns the customers whose fields contain the term; an empty
// term returns the full collection
func QueryGetCustomerList(ctx context.Context, query GetCustomerListQuery, deps GetCustomerListDeps) (GetCustomerListResult, error) {
	customers, err := deps.CustomerSource.Customers(ctx)
	if err != nil {
		return GetCustomerListResult{}, err
	}

	result := make([]customer.Customer, 0, len(customers))
	for _, c := range customers {
		if listutil.MatchesAny(customerSearchFields(c), query.Search) {
			result = append(result, c)
		}
	}
	return GetCustomerListResult{Customers: result}, nil
}

func customerSearchFields(c customer.Customer) []string {
	return []string{
		c.Firstname, c.Lastname, c.Streetaddress,
		c.Postcode, c.City, c.Email, c.Phone,
	}
}

// ExportCustomers builds the customers.csv table from an already
// filtered row set. The identity column is the last path segment of
// each customer's canonical URL.
func ExportCustomers(rows []customer.Customer) export.Table {
	t := export.Table{
		Filename: "customers.csv",
		Header:   []string{"id", "firstname", "lastname", "streetaddress", "postcode", "city", "email", "phone"},
	}
	for _, c := range rows {
		t.Rows = append(t.Rows, []string{
			c.Ref.LastSegment(),
			c.Firstname, c.Lastname, c.Streetaddress,
			c.Postcode, c.City, c.Email, c.Phone,
		})
	}
	return t
}
