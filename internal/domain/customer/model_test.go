package customer

import "testing"

func validCustomer() Customer {
	return Customer{
		Firstname:     "Ann",
		Lastname:      "Lee",
		Streetaddress: "12 Harbour St",
		Postcode:      "00120",
		City:          "Helsinki",
		Email:         "ann.lee@example.com",
		Phone:         "040-1234567",
	}
}

// TestValidate verifies the required-field check that gates submission.
func TestValidate(t *testing.T) {
	c := validCustomer()
	if err := c.Validate(); err != nil {
		t.Fatalf("valid customer rejected: %v", err)
	}

	blank := func(mutate func(*Customer)) Customer {
		c := validCustomer()
		mutate(&c)
		return c
	}

	tests := []struct {
		name  string
		value Customer
	}{
		{"missing firstname", blank(func(c *Customer) { c.Firstname = "" })},
		{"missing lastname", blank(func(c *Customer) { c.Lastname = "" })},
		{"missing address", blank(func(c *Customer) { c.Streetaddress = "" })},
		{"missing postcode", blank(func(c *Customer) { c.Postcode = "" })},
		{"missing city", blank(func(c *Customer) { c.City = "" })},
		{"missing email", blank(func(c *Customer) { c.Email = "" })},
		{"missing phone", blank(func(c *Customer) { c.Phone = "" })},
		{"whitespace only", blank(func(c *Customer) { c.City = "   " })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.value.Validate(); err != ErrMissingField {
				t.Errorf("expected ErrMissingField, got %v", err)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	c := validCustomer()
	if got := c.DisplayName(); got != "Ann Lee" {
		t.Errorf("DisplayName = %q, want %q", got, "Ann Lee")
	}
}
