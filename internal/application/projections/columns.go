package projections

// Column describes one table column for on-screen presentation: its
// record key, header label and relative width. Column sets are static
// per entity kind.
type Column struct {
	Key   string
	Label string
	Width int
}

// CustomerColumns returns the customer table layout.
func CustomerColumns() []Column {
	return []Column{
		{Key: "firstname", Label: "First name", Width: 150},
		{Key: "lastname", Label: "Last name", Width: 150},
		{Key: "streetaddress", Label: "Address", Width: 150},
		{Key: "postcode", Label: "Postcode", Width: 90},
		{Key: "city", Label: "City", Width: 120},
		{Key: "email", Label: "Email", Width: 150},
		{Key: "phone", Label: "Phone", Width: 125},
	}
}

// TrainingColumns returns the training table layout.
func TrainingColumns() []Column {
	return []Column{
		{Key: "date", Label: "Date", Width: 200},
		{Key: "duration", Label: "Duration (min)", Width: 120},
		{Key: "activity", Label: "Activity", Width: 150},
		{Key: "customerName", Label: "Customer", Width: 200},
	}
}
