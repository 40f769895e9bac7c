// Package selector picks message, quote and image content for a festival
// uniformly at random from the active pools in the data store.
package selector

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/festwish/wish-service/internal/domain"
)

// contentPools is the slice of the repository the selector needs.
type contentPools interface {
	ActiveMessages(ctx context.Context, festivalID, relationshipID int64) ([]domain.MessageTemplate, error)
	ActiveQuotes(ctx context.Context, festivalID int64) ([]domain.Quote, error)
	ActiveImages(ctx context.Context, festivalID int64) ([]domain.FestivalImage, error)
}

// Selector performs a fresh pool query and a fresh random draw on every call.
// There is deliberately no caching and no anti-repeat memory: two consecutive
// calls may return the same item.
type Selector struct {
	pools contentPools
	intN  func(n int) int
}

// New builds a selector. intN overrides the random source for deterministic
// tests; nil uses the shared math/rand generator, which is safe for
// concurrent use.
func New(pools contentPools, intN func(n int) int) *Selector {
	if intN == nil {
		intN = rand.Intn
	}
	return &Selector{pools: pools, intN: intN}
}

// PickMessage returns one active template for the exact (festival,
// relationship) pair, or nil when the pool is empty. An empty pool is not an
// error; the caller decides whether a custom message is mandatory.
func (s *Selector) PickMessage(ctx context.Context, festivalID, relationshipID int64) (*domain.MessageTemplate, error) {
	pool, err := s.pools.ActiveMessages(ctx, festivalID, relationshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to query message pool: %w", err)
	}
	if len(pool) == 0 {
		return nil, nil
	}

	picked := pool[s.intN(len(pool))]
	return &picked, nil
}

// PickQuote returns one active quote for the festival, or nil when none exist.
func (s *Selector) PickQuote(ctx context.Context, festivalID int64) (*domain.Quote, error) {
	pool, err := s.pools.ActiveQuotes(ctx, festivalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quote pool: %w", err)
	}
	if len(pool) == 0 {
		return nil, nil
	}

	picked := pool[s.intN(len(pool))]
	return &picked, nil
}

// PickImage returns one active image for the festival, or nil when none exist.
func (s *Selector) PickImage(ctx context.Context, festivalID int64) (*domain.FestivalImage, error) {
	pool, err := s.pools.ActiveImages(ctx, festivalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query image pool: %w", err)
	}
	if len(pool) == 0 {
		return nil, nil
	}

	picked := pool[s.intN(len(pool))]
	return &picked, nil
}
