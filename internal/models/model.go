package models

import "time"

// Address identifies a participant account (seller, buyer, owner)
type Address string

// ItemStatus is the position of an item in the escrow lifecycle
type ItemStatus string

const (
	StatusListed    ItemStatus = "Listed"
	StatusInEscrow  ItemStatus = "InEscrow"
	StatusCompleted ItemStatus = "Completed"
	StatusDisputed  ItemStatus = "Disputed"
	StatusRefunded  ItemStatus = "Refunded"
	// StatusCancelled is declared for wire compatibility only. No operation transitions into it.
	StatusCancelled ItemStatus = "Cancelled"
)

// transitions is the directed lifecycle graph. Anything not listed is rejected.
var transitions = map[ItemStatus][]ItemStatus{
	StatusListed:   {StatusInEscrow},
	StatusInEscrow: {StatusCompleted, StatusDisputed, StatusRefunded},
	StatusDisputed: {StatusCompleted, StatusRefunded},
}

// CanTransition reports whether the lifecycle graph has an edge from -> to
func CanTransition(from, to ItemStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions leave the status
func (s ItemStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRefunded
}

// HoldsEscrow reports whether the item's price is held by the engine in this status
func (s ItemStatus) HoldsEscrow() bool {
	return s == StatusInEscrow || s == StatusDisputed
}

// Item represents a listing and its escrow transaction
type Item struct {
	ItemID      uint64     `json:"item_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       int64      `json:"price"`
	Seller      Address    `json:"seller"`
	Buyer       Address    `json:"buyer,omitempty"`
	Status      ItemStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt time.Time  `json:"completed_at"`
}

// EventType names an observable state transition
type EventType string

const (
	EventItemListed            EventType = "ItemListed"
	EventItemPurchased         EventType = "ItemPurchased"
	EventItemDeliveryConfirmed EventType = "ItemDeliveryConfirmed"
	EventItemRefunded          EventType = "ItemRefunded"
	EventItemDisputed          EventType = "ItemDisputed"
	EventDisputeResolved       EventType = "DisputeResolved"
)

// Event is emitted once per committed transition. Account holds the seller, buyer,
// initiator or winner depending on Type; Amount is set for listings and purchases.
type Event struct {
	EventID    string    `json:"event_id"`
	Type       EventType `json:"type"`
	ItemID     uint64    `json:"item_id"`
	Account    Address   `json:"account,omitempty"`
	Amount     int64     `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
