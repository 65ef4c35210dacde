package projections

import (
	"context"
	"strconv"

	"personaltrainer/internal/adapters/rest"
	"personaltrainer/internal/application/listutil"
	"personaltrainer/internal/domain/export"

	"github.com/google/uuid"
)

// DisplayDateFormat is how a training's start instant is rendered in
// the table.
const DisplayDateFormat = "02.01.2006 15:04"

// exportDateFormat is how the start instant is rendered in the CSV file.
const exportDateFormat = "2006-01-02 15:04"

// GetTrainingListQuery carries query parameters.
type GetTrainingListQuery struct {
	Search string
}

// GetTrainingListDeps holds dependencies for GetTrainingList.
type GetTrainingListDeps struct {
	TrainingSource TrainingSource
	Resolver       NameResolver
}

// TrainingRow is an enriched training with its display row key.
type TrainingRow struct {
	EnrichedTraining
	RowKey string
}

// GetTrainingListResult carries the query result.
type GetTrainingListResult struct {
	Trainings []TrainingRow
}

// QueryGetTrainingList retrieves trainings enriched with customer names
// and filtered by the search term. All name resolutions run
// concurrently; a failed lookup yields "Unknown" for that row only. A
// failure fetching the collection itself fails the whole query.
// PRE: deps.TrainingSource and deps.Resolver are set
// POST: rows preserve the collection's order; every row has a non-empty RowKey
func QueryGetTrainingList(ctx context.Context, query GetTrainingListQuery, deps GetTrainingListDeps) (GetTrainingListResult, error) {
	items, err := deps.TrainingSource.Trainings(ctx)
	if err != nil {
		return GetTrainingListResult{}, err
	}

	enriched := enrichTrainings(ctx, items, deps.Resolver, rest.FallbackUnknown)

	rows := make([]TrainingRow, 0, len(enriched))
	for _, e := range enriched {
		if !listutil.MatchesAny(trainingSearchFields(e), query.Search) {
			continue
		}
		rows = append(rows, TrainingRow{EnrichedTraining: e, RowKey: rowKey(e)})
	}
	return GetTrainingListResult{Trainings: rows}, nil
}

// rowKey is the canonical URL, or a synthesized unique key for a
// malformed row without one.
func rowKey(e EnrichedTraining) string {
	if !e.Ref.IsZero() {
		return e.Ref.String()
	}
	return e.Activity + "-" + uuid.New().String()
}

func trainingSearchFields(e EnrichedTraining) []string {
	return []string{
		e.DisplayDate(),
		strconv.Itoa(e.Duration),
		e.Activity,
		e.CustomerName,
	}
}

// DisplayDate renders the start instant for the table, or "No date"
// when it is missing.
func (e EnrichedTraining) DisplayDate() string {
	if e.Date.IsZero() {
		return "No date"
	}
	return e.Date.Format(DisplayDateFormat)
}

// ExportTrainings builds the trainings.csv table from an already
// filtered row set.
func ExportTrainings(rows []TrainingRow) export.Table {
	t := export.Table{
		Filename: "trainings.csv",
		Header:   []string{"id", "date", "duration", "activity", "customerName"},
	}
	for _, r := range rows {
		date := ""
		if !r.Date.IsZero() {
			date = r.Date.Format(exportDateFormat)
		}
		t.Rows = append(t.Rows, []string{
			r.Ref.LastSegment(),
			date,
			strconv.Itoa(r.Duration),
			r.Activity,
			r.CustomerName,
		})
	}
	return t
}
