// Package services contains the application services of the carbonnft
// client: the durable stores for the connected wallet and the minted
// collection, and the Orchestrator that drives the login / preview / mint
// flow.
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/carbonnft/internal/client/models"
	"github.com/dmitrijs2005/carbonnft/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/carbonnft/internal/common"
	"github.com/dmitrijs2005/carbonnft/internal/logging"
)

// Storage keys. Every wallet's records share the collection entry.
const (
	WalletKey     = "connectedWallet"
	CollectionKey = "allMintedNfts"
)

// CollectionStore persists the whole wallet -> records mapping as one JSON
// document. Every Save rewrites the entry in full.
type CollectionStore struct {
	repo metadata.Repository
	log  logging.Logger
}

func NewCollectionStore(repo metadata.Repository, log logging.Logger) *CollectionStore {
	return &CollectionStore{repo: repo, log: log}
}

// Load reads the stored collection. A missing, unreadable or unparseable
// entry yields an empty collection; the failure is only logged.
func (s *CollectionStore) Load(ctx context.Context) models.Collection {
	raw, err := s.repo.Get(ctx, CollectionKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read NFTs from local storage", "error", fmt.Errorf("%w: %w", common.ErrStorage, err))
		return models.Collection{}
	}
	if len(raw) == 0 {
		return models.Collection{}
	}

	var c models.Collection
	if err := json.Unmarshal(raw, &c); err != nil {
		s.log.Warn(ctx, "failed to parse NFTs from local storage", "error", fmt.Errorf("%w: %w", common.ErrStorage, err))
		return models.Collection{}
	}
	if c == nil {
		c = models.Collection{}
	}
	return c
}

// Save overwrites the stored collection with c.
func (s *CollectionStore) Save(ctx context.Context, c models.Collection) error {
	if c == nil {
		c = models.Collection{}
	}
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: encode collection: %w", common.ErrStorage, err)
	}
	if err := s.repo.Set(ctx, CollectionKey, b); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return nil
}

// WalletStore keeps the "current wallet" slot so a restart resumes the
// last login.
type WalletStore struct {
	repo metadata.Repository
}

func NewWalletStore(repo metadata.Repository) *WalletStore {
	return &WalletStore{repo: repo}
}

// Current returns the stored wallet address, or "" when nobody is logged in.
func (s *WalletStore) Current(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, WalletKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return string(v), nil
}

func (s *WalletStore) SetCurrent(ctx context.Context, addr string) error {
	if err := s.repo.Set(ctx, WalletKey, []byte(addr)); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return nil
}

func (s *WalletStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, WalletKey); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	return nil
}
