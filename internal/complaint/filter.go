package complaint

import (
	"sort"
	"strings"

	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"
)

// SortMode selects the ordering of a listed collection.
type SortMode string

const (
	SortNewest   SortMode = "newest"
	SortOldest   SortMode = "oldest"
	SortPriority SortMode = "priority"
)

// ListParams are the admin dashboard's filter and sort controls. Zero values
// pass everything through: an empty search matches all records, an unset
// status or priority filter is ignored.
type ListParams struct {
	Search   string
	Status   models.Status
	Priority models.Priority
	Sort     SortMode
}

// Apply runs the fixed pipeline over in: search filter, then status filter,
// then priority filter, then a stable sort. It returns a fresh slice and
// never mutates in.
func (p ListParams) Apply(in []models.Complaint) []models.Complaint {
	term := strings.ToLower(strings.TrimSpace(p.Search))

	out := make([]models.Complaint, 0, len(in))
	for _, c := range in {
		if !matchesSearch(c, term) {
			continue
		}
		if p.Status != "" && c.Status != p.Status {
			continue
		}
		if p.Priority != "" && c.Priority != p.Priority {
			continue
		}
		out = append(out, c)
	}

	switch p.Sort {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return config.PriorityRank[out[i].Priority] > config.PriorityRank[out[j].Priority]
		})
	}

	return out
}

// matchesSearch does a case-insensitive substring match across title,
// description, student name and room. An empty term matches everything.
func matchesSearch(c models.Complaint, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Title), term) ||
		strings.Contains(strings.ToLower(c.Description), term) ||
		strings.Contains(strings.ToLower(c.StudentName), term) ||
		strings.Contains(strings.ToLower(c.StudentRoom), term)
}
