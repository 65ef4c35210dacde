package web

import (
	"log/slog"
	"net/http"

	"personaltrainer/internal/application/listutil"
	"personaltrainer/internal/application/orchestrators"
	"personaltrainer/internal/application/projections"
	"personaltrainer/internal/domain/customer"
	"personaltrainer/internal/domain/resource"
)

// customerListPage is the template data for the customers table.
type customerListPage struct {
	Search    string
	Columns   []projections.Column
	Customers []customer.Customer
	Alert     string
}

// handleCustomerList renders the searchable customer table. A failed
// collection fetch is logged and leaves the list empty; it is not a
// user-initiated action, so no alert is raised.
func handleCustomerList(w http.ResponseWriter, r *http.Request) {
	fp := listutil.ParseFilterParams(r.URL.Query())

	page := customerListPage{
		Search:  fp.Search,
		Columns: projections.CustomerColumns(),
		Alert:   alertFrom(r),
	}

	result, err := projections.QueryGetCustomerList(r.Context(),
		projections.GetCustomerListQuery{Search: fp.Search},
		projections.GetCustomerListDeps{CustomerSource: service},
	)
	if err != nil {
		slog.Error("customer_list_fetch_failed", "error", err.Error())
	} else {
		page.Customers = result.Customers
	}
	renderTemplate(w, r, "customers.html", page)
}

// handleCustomersExport downloads the currently filtered customer rows
// as customers.csv.
func handleCustomersExport(w http.ResponseWriter, r *http.Request) {
	fp := listutil.ParseFilterParams(r.URL.Query())
	result, err := projections.QueryGetCustomerList(r.Context(),
		projections.GetCustomerListQuery{Search: fp.Search},
		projections.GetCustomerListDeps{CustomerSource: service},
	)
	if err != nil {
		slog.Error("customer_export_fetch_failed", "error", err.Error())
		redirectWithAlert(w, r, "/customers", "Failed to export customers")
		return
	}
	serveExport(w, projections.ExportCustomers(result.Customers))
}

// customerFormPage is the template data for the add/edit dialog.
type customerFormPage struct {
	Title    string
	Action   string
	Ref      string
	Customer customer.Customer
	Alert    string
}

func handleCustomerNew(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "customer_form.html", customerFormPage{
		Title:  "Add Customer",
		Action: "/customers",
	})
}

func handleCustomerCreate(w http.ResponseWriter, r *http.Request) {
	saveCustomer(w, r, resource.Ref(""))
}

// handleCustomerEdit shows the edit form pre-filled with the customer's
// current values, looked up by canonical URL in a fresh collection fetch.
func handleCustomerEdit(w http.ResponseWriter, r *http.Request) {
	ref := resource.Ref(r.URL.Query().Get("ref"))
	if ref.IsZero() {
		redirectWithAlert(w, r, "/customers", "Missing customer resource link")
		return
	}
	customers, err := service.Customers(r.Context())
	if err != nil {
		slog.Error("customer_edit_fetch_failed", "error", err.Error())
		redirectWithAlert(w, r, "/customers", "Failed to load customer")
		return
	}
	for _, c := range customers {
		if c.Ref == ref {
			renderTemplate(w, r, "customer_form.html", customerFormPage{
				Title:    "Edit Customer",
				Action:   "/customers/edit",
				Ref:      ref.String(),
				Customer: c,
			})
			return
		}
	}
	redirectWithAlert(w, r, "/customers", "Customer not found")
}

func handleCustomerUpdate(w http.ResponseWriter, r *http.Request) {
	saveCustomer(w, r, resource.Ref(r.FormValue("ref")))
}

// saveCustomer runs the save orchestrator for create (absent ref) or
// replace. A validation failure re-renders the form with a blocking
// alert and never sends a request; a request failure surfaces the
// server's status text.
func saveCustomer(w http.ResponseWriter, r *http.Request, ref resource.Ref) {
	value := customer.Customer{
		Ref:           ref,
		Firstname:     r.FormValue("firstname"),
		Lastname:      r.FormValue("lastname"),
		Streetaddress: r.FormValue("streetaddress"),
		Postcode:      r.FormValue("postcode"),
		City:          r.FormValue("city"),
		Email:         r.FormValue("email"),
		Phone:         r.FormValue("phone"),
	}

	_, err := orchestrators.ExecuteSaveCustomer(r.Context(),
		orchestrators.SaveCustomerInput{Customer: value},
		orchestrators.SaveCustomerDeps{Writer: service},
	)
	if err != nil {
		title, action := "Add Customer", "/customers"
		if !ref.IsZero() {
			title, action = "Edit Customer", "/customers/edit"
		}
		if orchestrators.IsValidation(err) {
			renderTemplate(w, r, "customer_form.html", customerFormPage{
				Title: title, Action: action, Ref: ref.String(),
				Customer: value, Alert: "Please fill in all fields!",
			})
			return
		}
		slog.Error("customer_save_failed", "error", err.Error())
		redirectWithAlert(w, r, "/customers", "Failed to save customer")
		return
	}
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

// confirmPage is the template data for delete confirmation.
type confirmPage struct {
	Prompt string
	Action string
	Ref    string
	Back   string
}

func handleCustomerDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "confirm_delete.html", confirmPage{
		Prompt: "Are you sure you want to delete this customer?",
		Action: "/customers/delete",
		Ref:    r.URL.Query().Get("ref"),
		Back:   "/customers",
	})
}

// handleCustomerDelete deletes by canonical URL. On failure (for
// example 409 when trainings still reference the customer) the row
// stays and the alert carries the reason.
func handleCustomerDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteCustomer(r.Context(),
		orchestrators.DeleteCustomerInput{Ref: resource.Ref(r.FormValue("ref"))},
		orchestrators.DeleteCustomerDeps{Writer: service},
	)
	if err != nil {
		slog.Error("customer_delete_failed", "error", err.Error())
		redirectWithAlert(w, r, "/customers", "Failed to delete customer: "+err.Error())
		return
	}
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

