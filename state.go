package rsu

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// ErrPersist wraps errors raised while saving grants. The in-memory state is kept.
var ErrPersist = errors.New("grants not saved")

// ErrUnknownGrant is returned when a grant ID does not exist.
var ErrUnknownGrant = errors.New("unknown grant")

// State is the whole application state.
type State struct {
	Grants        []Grant
	Prices        PriceMap
	LastPricesAt  time.Time
	LoadingPrices bool
	Error         string
}

// Action is a state transition, see Reduce.
type Action interface{ action() }

type (
	// Hydrate replaces all grants, typically with the stored ones.
	Hydrate struct{ Grants []Grant }
	// AddGrant puts a new grant first.
	AddGrant struct{ Grant Grant }
	// UpdateGrant replaces the grant with the same ID.
	UpdateGrant struct{ Grant Grant }
	// DeleteGrant removes a grant.
	DeleteGrant struct{ ID string }
	// SetPrices replaces the price snapshot, fetched at At.
	SetPrices struct {
		Prices PriceMap
		At     time.Time
	}
	SetLoadingPrices struct{ Loading bool }
	// SetError records an error message to display, empty to clear it.
	SetError struct{ Message string }
)

func (Hydrate) action()          {}
func (AddGrant) action()         {}
func (UpdateGrant) action()      {}
func (DeleteGrant) action()      {}
func (SetPrices) action()        {}
func (SetLoadingPrices) action() {}
func (SetError) action()         {}

// Reduce returns the state after action. It never modifies s.
func Reduce(s State, a Action) State {
	switch v := a.(type) {
	case Hydrate:
		s.Grants = slices.Clone(v.Grants)
	case AddGrant:
		s.Grants = append([]Grant{v.Grant}, s.Grants...)
	case UpdateGrant:
		grants := slices.Clone(s.Grants)
		for i, g := range grants {
			if g.ID == v.Grant.ID {
				grants[i] = v.Grant
			}
		}
		s.Grants = grants
	case DeleteGrant:
		s.Grants = slices.DeleteFunc(slices.Clone(s.Grants), func(g Grant) bool { return g.ID == v.ID })
	case SetPrices:
		s.Prices = v.Prices.Clone()
		s.LoadingPrices = false
		s.LastPricesAt = v.At
	case SetLoadingPrices:
		s.LoadingPrices = v.Loading
	case SetError:
		s.Error = v.Message
	}
	return s
}

// changesGrants reports whether the action must be followed by a save.
func changesGrants(a Action) bool {
	switch a.(type) {
	case AddGrant, UpdateGrant, DeleteGrant:
		return true
	}
	return false
}

// Container holds the State, applies actions and persists grants after they change.
//
// Dispatches are serialized: a save completes before the next action is applied.
type Container struct {
	mu       sync.Mutex
	state    State
	repo     Repository
	provider PriceProvider
	now      func() time.Time
}

// NewContainer returns a Container with an empty state.
func NewContainer(repo Repository, provider PriceProvider) *Container {
	return &Container{
		state:    State{Prices: PriceMap{}},
		repo:     repo,
		provider: provider,
		now:      time.Now,
	}
}

// State returns a snapshot of the current state.
func (c *Container) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch applies a and saves the grants if a changed them.
//
// A save failure is logged and returned wrapped in ErrPersist; the new state is kept anyway.
func (c *Container) Dispatch(ctx context.Context, a Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, a)
	if !changesGrants(a) {
		return nil
	}
	return c.save(ctx, c.state.Grants)
}

func (c *Container) save(ctx context.Context, grants []Grant) error {
	if err := c.repo.SaveGrants(ctx, grants); err != nil {
		log.WithError(err).Warn("cannot save grants")
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// Load hydrates the state from the repository. An empty repository is seeded with SampleGrants.
//
// Failing to save the seed is only logged: the sample grants stay in memory.
func (c *Container) Load(ctx context.Context) error {
	grants, err := c.repo.LoadGrants(ctx)
	if err != nil {
		return err
	}
	if len(grants) > 0 {
		return c.Dispatch(ctx, Hydrate{Grants: grants})
	}
	log.Info("no grants stored, seeding with sample grants")
	seed := SampleGrants()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, Hydrate{Grants: seed})
	if err := c.save(ctx, seed); err != nil {
		log.WithError(err).Warn("sample grants are kept in memory only")
	}
	return nil
}

// symbols returns the distinct symbols of grants, in order of first appearance.
func symbols(grants []Grant) []string {
	var out []string
	for _, g := range grants {
		if !slices.Contains(out, g.Symbol) {
			out = append(out, g.Symbol)
		}
	}
	return out
}

// RefreshPrices fetches the prices of all the grants' symbols.
//
// On failure the error message is recorded in the state, the previous prices
// are kept and the error is returned.
func (c *Container) RefreshPrices(ctx context.Context) error {
	c.apply(SetLoadingPrices{Loading: true})
	prices, err := c.provider.FetchCurrentPrices(ctx, symbols(c.State().Grants))
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "failed to load prices"
		}
		c.apply(SetError{Message: msg}, SetLoadingPrices{Loading: false})
		return fmt.Errorf("cannot refresh prices: %w", err)
	}
	c.apply(SetError{}, SetPrices{Prices: prices, At: c.now()})
	return nil
}

// apply reduces actions that leave the grants unchanged, there is nothing to save.
func (c *Container) apply(actions ...Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range actions {
		c.state = Reduce(c.state, a)
	}
}

// Add validates the draft and adds the new grant.
//
// A *ValidationError is returned when the draft is not valid, nothing is added then.
func (c *Container) Add(ctx context.Context, d Draft) (Grant, error) {
	g, err := d.Grant()
	if err != nil {
		return Grant{}, err
	}
	return g, c.Dispatch(ctx, AddGrant{Grant: g})
}

// Update validates the draft and replaces the grant id.
func (c *Container) Update(ctx context.Context, id string, d Draft) (Grant, error) {
	if _, ok := c.Grant(id); !ok {
		return Grant{}, fmt.Errorf("%w %q", ErrUnknownGrant, id)
	}
	g, err := d.grant(id)
	if err != nil {
		return Grant{}, err
	}
	return g, c.Dispatch(ctx, UpdateGrant{Grant: g})
}

// Delete removes the grant id.
func (c *Container) Delete(ctx context.Context, id string) error {
	if _, ok := c.Grant(id); !ok {
		return fmt.Errorf("%w %q", ErrUnknownGrant, id)
	}
	return c.Dispatch(ctx, DeleteGrant{ID: id})
}

// Grant returns the grant with the given ID.
func (c *Container) Grant(id string) (Grant, bool) {
	s := c.State()
	i := slices.IndexFunc(s.Grants, func(g Grant) bool { return g.ID == id })
	if i < 0 {
		return Grant{}, false
	}
	return s.Grants[i], true
}

// Metrics computes the portfolio metrics of the current state.
func (c *Container) Metrics() Metrics {
	s := c.State()
	return ComputeMetrics(s.Grants, s.Prices)
}

// Events returns the vesting events of the grant id.
func (c *Container) Events(id string) ([]VestEvent, error) {
	g, ok := c.Grant(id)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGrant, id)
	}
	return Expand(g, c.State().Prices), nil
}

// AllEvents returns the vesting events of all grants.
func (c *Container) AllEvents() []VestEvent {
	s := c.State()
	return ExpandAll(s.Grants, s.Prices)
}

// Summary returns the detail view of grant id, with the next n events from today.
func (c *Container) Summary(id string, n int) (GrantSummary, error) {
	g, ok := c.Grant(id)
	if !ok {
		return GrantSummary{}, fmt.Errorf("%w %q", ErrUnknownGrant, id)
	}
	s := c.State()
	next := Upcoming(Expand(g, s.Prices), n)
	return NewGrantSummary(g, s.Prices, ComputeMetrics(s.Grants, s.Prices), next), nil
}
