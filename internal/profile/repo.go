package profile

import (
	"context"
	"fmt"

	"github.com/2beens/fitgenius/internal/store"
	"github.com/2beens/fitgenius/internal/telemetry/tracing"
)

type Repo struct {
	store *store.Store
}

func NewRepo(s *store.Store) *Repo {
	return &Repo{
		store: s,
	}
}

func (r *Repo) Get(ctx context.Context) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profile.repo.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var p UserProfile
	found, err := r.store.GetJSON(ctx, store.KeyProfile, &p)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !found {
		return nil, ErrProfileNotFound
	}
	return &p, nil
}

func (r *Repo) Set(ctx context.Context, p *UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "profile.repo.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.store.SetJSON(ctx, store.KeyProfile, p); err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

// ActiveTab returns the last opened dashboard tab, empty when never set.
func (r *Repo) ActiveTab(ctx context.Context) (string, error) {
	var tab string
	if _, err := r.store.GetJSON(ctx, store.KeyActiveTab, &tab); err != nil {
		return "", fmt.Errorf("get active tab: %w", err)
	}
	return tab, nil
}

func (r *Repo) SetActiveTab(ctx context.Context, tab string) error {
	if err := r.store.SetJSON(ctx, store.KeyActiveTab, tab); err != nil {
		return fmt.Errorf("set active tab: %w", err)
	}
	return nil
}

// ClearAll wipes every stored record, restarting onboarding from scratch.
func (r *Repo) ClearAll(ctx context.Context) error {
	return r.store.ClearAll(ctx)
}
