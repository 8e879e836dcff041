package survey

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/catalog"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/models"
)

// SuggestionLimit caps the suggestions feed.
const SuggestionLimit = 100

// Report is the aggregate view over every stored response.
// Map keys are question ids (and Likert values) rendered as strings.
type Report struct {
	TotalSurveys  int
	Averages      map[string]float64
	Distributions map[string]map[string]int
	Suggestions   []models.Suggestion
}

// Report scans the whole store and aggregates it.
func (s *Service) Report(ctx context.Context) (Report, error) {
	rows, err := s.store.ListResponses(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return BuildReport(rows, s.catalog, SuggestionLimit), nil
}

type suggestionKey struct {
	surveyID  string
	text      string
	createdAt int64
}

// BuildReport aggregates rows. Averages and distributions are dense over
// every catalog question; suggestions are one entry per survey, newest first,
// at most limit entries.
func BuildReport(rows []models.Response, cat *catalog.Catalog, limit int) Report {
	rep := Report{
		Averages:      map[string]float64{},
		Distributions: map[string]map[string]int{},
		Suggestions:   []models.Suggestion{},
	}
	if len(rows) == 0 {
		return rep
	}

	surveys := make(map[string]struct{})
	sums := make(map[int]int)
	counts := make(map[int]int)
	buckets := make(map[int]*[MaxValue + 1]int)

	seen := make(map[suggestionKey]struct{})
	type entry struct {
		surveyID string
		s        models.Suggestion
	}
	var feed []entry

	for _, r := range rows {
		surveys[r.SurveyID] = struct{}{}

		sums[r.QuestionID] += r.Value
		counts[r.QuestionID]++
		if r.Value >= MinValue && r.Value <= MaxValue {
			b, ok := buckets[r.QuestionID]
			if !ok {
				b = new([MaxValue + 1]int)
				buckets[r.QuestionID] = b
			}
			b[r.Value]++
		}

		if strings.TrimSpace(r.Suggestion) == "" {
			continue
		}
		key := suggestionKey{surveyID: r.SurveyID, text: r.Suggestion, createdAt: r.CreatedAt.UnixNano()}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		feed = append(feed, entry{
			surveyID: r.SurveyID,
			s: models.Suggestion{
				Texto:     r.Suggestion,
				Nombre:    r.RespondentName,
				Contacto:  r.RespondentContact,
				Fecha:     r.SurveyDate,
				CreatedAt: r.CreatedAt,
			},
		})
	}

	rep.TotalSurveys = len(surveys)

	for _, id := range cat.IDs() {
		key := strconv.Itoa(id)

		avg := 0.0
		if n := counts[id]; n > 0 {
			avg = round2(float64(sums[id]) / float64(n))
		}
		rep.Averages[key] = avg

		dist := make(map[string]int, MaxValue)
		for v := MinValue; v <= MaxValue; v++ {
			n := 0
			if b, ok := buckets[id]; ok {
				n = b[v]
			}
			dist[strconv.Itoa(v)] = n
		}
		rep.Distributions[key] = dist
	}

	sort.SliceStable(feed, func(i, j int) bool {
		a, b := feed[i], feed[j]
		if !a.s.CreatedAt.Equal(b.s.CreatedAt) {
			return a.s.CreatedAt.After(b.s.CreatedAt)
		}
		return a.surveyID > b.surveyID
	})
	if limit >= 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	for _, e := range feed {
		rep.Suggestions = append(rep.Suggestions, e.s)
	}

	return rep
}

// round2 rounds to two decimals, ties to even.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
