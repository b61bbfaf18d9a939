// Package mapview drives the map screen: it loads the map SDK once, falls
// back to a static layout when that fails, and tracks the selected marker.
package mapview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/connectmate/connectmate_api/internal/model"
)

type State string

const (
	Loading        State = "Loading"
	MapReady       State = "MapReady"
	FallbackActive State = "FallbackActive"
)

// DefaultLoadTimeout bounds how long the SDK may take to load.
const DefaultLoadTimeout = 5 * time.Second

var ErrLoadTimeout = errors.New("map sdk load timed out")

// SDKLoader loads the third-party map SDK. It may block until ctx is done.
type SDKLoader interface {
	Load(ctx context.Context) error
}

type LoaderFunc func(ctx context.Context) error

func (f LoaderFunc) Load(ctx context.Context) error { return f(ctx) }

type Controller struct {
	loader     SDKLoader
	timeout    time.Duration
	activities []model.Activity

	once sync.Once
	done chan struct{}

	mu       sync.RWMutex
	state    State
	loadErr  error
	selected *model.Activity
}

type Option func(*Controller)

func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func NewController(loader SDKLoader, activities []model.Activity, opts ...Option) *Controller {
	c := &Controller{
		loader:     loader,
		timeout:    DefaultLoadTimeout,
		activities: model.CloneActivities(activities),
		done:       make(chan struct{}),
		state:      Loading,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start loads the SDK on first call and waits for the outcome or for ctx to
// end. Later calls only wait. The returned state is final unless Loading.
func (c *Controller) Start(ctx context.Context) State {
	c.once.Do(func() {
		go c.load(context.WithoutCancel(ctx))
	})

	select {
	case <-c.done:
	case <-ctx.Done():
	}
	return c.State()
}

// Done is closed once the controller has left Loading.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

func (c *Controller) load(parent context.Context) {
	defer close(c.done)

	ctx, cancel := context.WithTimeout(parent, c.timeout)
	defer cancel()

	result := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				result <- fmt.Errorf("map sdk panicked: %v", r)
			}
		}()
		result <- c.loader.Load(ctx)
	}()

	var err error
	select {
	case err = <-result:
		if ctx.Err() != nil {
			err = ErrLoadTimeout
		}
	case <-ctx.Done():
		err = ErrLoadTimeout
	}

	if err != nil {
		slog.Warn("map sdk unavailable, using fallback layout", "error", err)
		c.transition(FallbackActive, err)
		return
	}
	slog.Info("map sdk loaded")
	c.transition(MapReady, nil)
}

// transition only ever leaves Loading.
func (c *Controller) transition(to State, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Loading {
		return
	}
	c.state = to
	c.loadErr = err
}

func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// LoadError is the reason for FallbackActive, nil otherwise.
func (c *Controller) LoadError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadErr
}

// Activities returns the activities shown on the map.
func (c *Controller) Activities() []model.Activity {
	return model.CloneActivities(c.activities)
}

// Select marks an activity for the detail card. It works in every state.
func (c *Controller) Select(activityID string) (model.Activity, error) {
	for _, a := range c.activities {
		if a.ID == activityID {
			sel := a.Clone()
			c.mu.Lock()
			c.selected = &sel
			c.mu.Unlock()
			return sel.Clone(), nil
		}
	}
	return model.Activity{}, fmt.Errorf("activity %s: %w", activityID, model.ErrActivityNotFound)
}

func (c *Controller) Selected() (model.Activity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.selected == nil {
		return model.Activity{}, false
	}
	return c.selected.Clone(), true
}

// ClearSelection closes the detail card.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	c.selected = nil
	c.mu.Unlock()
}

// View assembles everything the map screen renders.
func (c *Controller) View(ctx context.Context, g Geolocator) model.MapView {
	center, located := Locate(ctx, g)

	view := model.MapView{
		State:   string(c.State()),
		Center:  center,
		Markers: c.Markers(),
	}
	if located {
		lat, lng := center.Lat, center.Lng
		view.UserLocation = &model.Marker{
			Title: "You are here",
			Color: UserMarkerColor,
			Lat:   &lat,
			Lng:   &lng,
			Info:  "You are here",
		}
	}
	if sel, ok := c.Selected(); ok {
		view.Selected = &sel
	}
	return view
}
