// Package search filters the activity catalog for the list and map screens.
package search

import (
	"strings"

	"github.com/connectmate/connectmate_api/internal/model"
)

// AllCategories is the pseudo-category that disables category filtering.
const AllCategories = "All"

// Filter returns the activities whose title, location, description or
// category contains query, ignoring case. Order is preserved. A blank query
// returns every activity.
func Filter(query string, activities []model.Activity) []model.Activity {
	if strings.TrimSpace(query) == "" {
		return model.CloneActivities(activities)
	}

	q := strings.ToLower(query)
	out := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if Matches(q, a) {
			out = append(out, a.Clone())
		}
	}
	return out
}

// Matches reports whether the lower-cased query occurs in any searchable field.
func Matches(lowerQuery string, a model.Activity) bool {
	for _, field := range []string{a.Title, a.Location, a.Description, a.Category} {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}

// ByCategory keeps activities tagged with any of categories. Tags are stored
// comma separated on the activity.
func ByCategory(categories []string, activities []model.Activity) []model.Activity {
	wanted := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if c == strings.ToLower(AllCategories) {
			return model.CloneActivities(activities)
		}
		wanted[c] = struct{}{}
	}
	if len(wanted) == 0 {
		return model.CloneActivities(activities)
	}

	out := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		for _, tag := range splitCategories(a.Category) {
			if _, ok := wanted[strings.ToLower(tag)]; ok {
				out = append(out, a.Clone())
				break
			}
		}
	}
	return out
}

// Categories lists the distinct category tags in first-seen order.
func Categories(activities []model.Activity) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, a := range activities {
		for _, tag := range splitCategories(a.Category) {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// ParseCategories splits a comma separated query parameter.
func ParseCategories(raw string) []string {
	return splitCategories(raw)
}

func splitCategories(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
