package web

import (
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/gorilla/csrf"

	"personaltrainer/internal/domain/export"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// formDateFormat matches the datetime-local input format used by the
// add-training form.
const formDateFormat = "2006-01-02T15:04"

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	funcMap := template.FuncMap{
		"csrfField": func() template.HTML { return csrf.TemplateField(r) },
	}

	layoutPath := filepath.Join(templateDir, "layout.html")
	pagePath := filepath.Join(templateDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
	}
}

// redirectWithAlert sends the user back to a list page with a blocking
// alert message in the query string.
func redirectWithAlert(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?alert="+url.QueryEscape(msg), http.StatusSeeOther)
}

// alertFrom extracts the alert message carried across a redirect.
func alertFrom(r *http.Request) string {
	return r.URL.Query().Get("alert")
}

// serveExport delivers an export table as a file download. This is the
// single place the file-save capability touches HTTP; building the
// table itself is pure and tested separately.
func serveExport(w http.ResponseWriter, t export.Table) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+t.Filename+`"`)
	w.Write(t.Encode())
}
