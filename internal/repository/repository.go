package repository

import (
	"escrow-engine/internal/escrowerrors"
	model "escrow-engine/internal/models"
	"fmt"
	"sync"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// ItemStore defines the item registry used by the escrow engine.
// UpdateItem is reserved for the engine, which serializes all writes.
type ItemStore interface {
	CreateItem(item model.Item) (model.Item, error)
	GetItem(itemID uint64) (model.Item, error)
	UpdateItem(item model.Item) error
	NextItemID() uint64
}

// MemoryRepo is a concurrency-safe in-memory implementation of ItemStore
type MemoryRepo struct {
	mu     sync.RWMutex
	items  []model.Item // items[i] has ItemID i+1
	nextID uint64
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items:  make([]model.Item, 0),
		nextID: 1,
	}
}

// CreateItem assigns the next sequential id to item and stores it
func (r *MemoryRepo) CreateItem(item model.Item) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ItemID = r.nextID
	r.items = append(r.items, item)
	r.nextID++

	return item, nil
}

// GetItem returns a snapshot of the item with the given id
func (r *MemoryRepo) GetItem(itemID uint64) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.issued(itemID) {
		return model.Item{}, fmt.Errorf("get item %d: %w", itemID, escrowerrors.ErrItemNotFound)
	}
	return r.items[itemID-1], nil
}

// UpdateItem replaces the stored record for an issued id
func (r *MemoryRepo) UpdateItem(item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.issued(item.ItemID) {
		return fmt.Errorf("update item %d: %w", item.ItemID, escrowerrors.ErrItemNotFound)
	}
	r.items[item.ItemID-1] = item
	return nil
}

// NextItemID returns the id the next created item will receive
func (r *MemoryRepo) NextItemID() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextID
}

func (r *MemoryRepo) issued(itemID uint64) bool {
	return itemID != 0 && itemID < r.nextID
}
