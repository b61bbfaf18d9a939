// Package catalog separates where activities come from from the screens that
// show them. Every Source returns copies in display order.
package catalog

import (
	"context"
	"fmt"

	"github.com/connectmate/connectmate_api/internal/fixtures"
	"github.com/connectmate/connectmate_api/internal/model"
)

type Source interface {
	List(ctx context.Context) ([]model.Activity, error)
	Get(ctx context.Context, id string) (model.Activity, error)
}

// FixtureSource serves the built-in sample activities.
type FixtureSource struct{}

func NewFixtureSource() *FixtureSource {
	return &FixtureSource{}
}

func (FixtureSource) List(_ context.Context) ([]model.Activity, error) {
	return fixtures.Activities(), nil
}

func (FixtureSource) Get(_ context.Context, id string) (model.Activity, error) {
	return find(fixtures.Activities(), id)
}

func find(activities []model.Activity, id string) (model.Activity, error) {
	for _, a := range activities {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return model.Activity{}, fmt.Errorf("activity %s: %w", id, model.ErrActivityNotFound)
}

// MapSource narrows a Source to the activities that can be pinned on a map.
func MapSource(ctx context.Context, src Source) ([]model.Activity, error) {
	all, err := src.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Activity, 0, len(all))
	for _, a := range all {
		if a.HasCoordinates() {
			out = append(out, a)
		}
	}
	return out, nil
}
