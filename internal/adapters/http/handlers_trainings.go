package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"personaltrainer/internal/application/listutil"
	"personaltrainer/internal/application/orchestrators"
	"personaltrainer/internal/application/projections"
	"personaltrainer/internal/domain/resource"
	"personaltrainer/internal/domain/training"
)

// trainingListPage is the template data for the trainings table.
type trainingListPage struct {
	Search  string
	Columns []projections.Column
	Rows    []projections.TrainingRow
	Alert   string
}

// handleTrainingList renders the searchable, customer-enriched training
// table. A failed collection fetch is logged and leaves the list empty.
func handleTrainingList(w http.ResponseWriter, r *http.Request) {
	fp := listutil.ParseFilterParams(r.URL.Query())

	page := trainingListPage{
		Search:  fp.Search,
		Columns: projections.TrainingColumns(),
		Alert:   alertFrom(r),
	}

	result, err := projections.QueryGetTrainingList(r.Context(),
		projections.GetTrainingListQuery{Search: fp.Search},
		projections.GetTrainingListDeps{TrainingSource: service, Resolver: service},
	)
	if err != nil {
		slog.Error("training_list_fetch_failed", "error", err.Error())
	} else {
		page.Rows = result.Trainings
	}
	renderTemplate(w, r, "trainings.html", page)
}

// handleTrainingsExport downloads the currently filtered training rows
// as trainings.csv.
func handleTrainingsExport(w http.ResponseWriter, r *http.Request) {
	fp := listutil.ParseFilterParams(r.URL.Query())
	result, err := projections.QueryGetTrainingList(r.Context(),
		projections.GetTrainingListQuery{Search: fp.Search},
		projections.GetTrainingListDeps{TrainingSource: service, Resolver: service},
	)
	if err != nil {
		slog.Error("training_export_fetch_failed", "error", err.Error())
		redirectWithAlert(w, r, "/trainings", "Failed to export trainings")
		return
	}
	serveExport(w, projections.ExportTrainings(result.Trainings))
}

// trainingFormPage is the template data for the add-training dialog,
// opened for one specific customer.
type trainingFormPage struct {
	CustomerRef  string
	CustomerName string
	Date         string
	Duration     string
	Activity     string
	Alert        string
}

// handleTrainingNew shows the add-training form for the customer named
// in the query string.
func handleTrainingNew(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	renderTemplate(w, r, "training_form.html", trainingFormPage{
		CustomerRef:  q.Get("customer"),
		CustomerName: q.Get("name"),
		Date:         timeNow().Format(formDateFormat),
	})
}

// handleTrainingCreate validates and creates a training. A validation
// failure re-renders the form with a blocking alert; no request is sent.
func handleTrainingCreate(w http.ResponseWriter, r *http.Request) {
	duration, _ := strconv.Atoi(r.FormValue("duration"))
	date, _ := time.ParseInLocation(formDateFormat, r.FormValue("date"), time.Local)

	value := training.Training{
		CustomerRef: resource.Ref(r.FormValue("customer")),
		Date:        date,
		Duration:    duration,
		Activity:    r.FormValue("activity"),
	}

	_, err := orchestrators.ExecuteSaveTraining(r.Context(),
		orchestrators.SaveTrainingInput{Training: value},
		orchestrators.SaveTrainingDeps{Writer: service},
	)
	if err != nil {
		if orchestrators.IsValidation(err) {
			renderTemplate(w, r, "training_form.html", trainingFormPage{
				CustomerRef:  r.FormValue("customer"),
				CustomerName: r.FormValue("name"),
				Date:         r.FormValue("date"),
				Duration:     r.FormValue("duration"),
				Activity:     r.FormValue("activity"),
				Alert:        "Please fill in all fields!",
			})
			return
		}
		slog.Error("training_save_failed", "error", err.Error())
		redirectWithAlert(w, r, "/trainings", "Failed to add training.")
		return
	}
	http.Redirect(w, r, "/trainings", http.StatusSeeOther)
}

func handleTrainingDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("ref")
	if ref == "" {
		redirectWithAlert(w, r, "/trainings", "Cannot delete training: missing resource link.")
		return
	}
	renderTemplate(w, r, "confirm_delete.html", confirmPage{
		Prompt: "Are you sure you want to delete this training?",
		Action: "/trainings/delete",
		Ref:    ref,
		Back:   "/trainings",
	})
}

func handleTrainingDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteTraining(r.Context(),
		orchestrators.DeleteTrainingInput{Ref: resource.Ref(r.FormValue("ref"))},
		orchestrators.DeleteTrainingDeps{Writer: service},
	)
	if err != nil {
		slog.Error("training_delete_failed", "error", err.Error())
		redirectWithAlert(w, r, "/trainings", "Failed to delete training")
		return
	}
	http.Redirect(w, r, "/trainings", http.StatusSeeOther)
}
