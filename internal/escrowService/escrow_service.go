package escrow

import (
	"errors"
	"escrow-engine/internal/escrowerrors"
	"escrow-engine/internal/events"
	"escrow-engine/internal/guard"
	"escrow-engine/internal/ledger"
	"escrow-engine/internal/metrics"
	"escrow-engine/internal/models"
	"escrow-engine/internal/repository"
	"escrow-engine/utils"
	"fmt"
	"sync"
	"time"
)

const (
	opList            = "list"
	opPurchase        = "purchase"
	opConfirmDelivery = "confirm_delivery"
	opRequestRefund   = "request_refund"
	opAgreeToRefund   = "agree_to_refund"
	opResolveDispute  = "resolve_dispute"
	opUpdateFee       = "update_fee"
	opDeposit         = "deposit"
)

// EscrowService runs the escrow lifecycle over the item registry and the ledger.
//
// Every mutating operation holds mu for its whole duration, so operations are admitted one
// at a time and run to completion. Within an operation the item's new state is written to
// the registry before any funds move; if the payout fails the previous state is restored
// and the operation reports the ledger error. Events are published only after both steps
// succeed.
type EscrowService struct {
	mu      sync.RWMutex
	repo    repository.ItemStore
	ledger  *ledger.Ledger
	log     *events.Log
	metrics *metrics.Recorder
	now     func() time.Time

	owner          models.Address
	feeBasisPoints int64
}

// Option configures an EscrowService
type Option func(*EscrowService)

// WithEventLog sets the log events are published to
func WithEventLog(log *events.Log) Option {
	return func(s *EscrowService) {
		s.log = log
	}
}

// WithMetrics sets the metrics recorder
func WithMetrics(m *metrics.Recorder) Option {
	return func(s *EscrowService) {
		s.metrics = m
	}
}

// WithClock overrides the time source used for createdAt/completedAt
func WithClock(now func() time.Time) Option {
	return func(s *EscrowService) {
		s.now = now
	}
}

// NewEscrowService creates a new EscrowService instance owned by owner
func NewEscrowService(repo repository.ItemStore, l *ledger.Ledger, owner models.Address, feeBasisPoints int64, opts ...Option) (*EscrowService, error) {
	if err := guard.All(guard.ValidCaller(owner), guard.FeeWithinCap(feeBasisPoints)); err != nil {
		return nil, fmt.Errorf("service: invalid marketplace configuration: %w", err)
	}

	s := &EscrowService{
		repo:           repo,
		ledger:         l,
		log:            events.NewLog(),
		now:            func() time.Time { return time.Now().UTC() },
		owner:          owner,
		feeBasisPoints: feeBasisPoints,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics.SetFeeBasisPoints(feeBasisPoints)
	return s, nil
}

// List creates a new item for sale by seller
func (s *EscrowService) List(seller models.Address, name, description string, price int64) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := guard.All(guard.ValidCaller(seller), guard.PositivePrice(price)); err != nil {
		return models.Item{}, s.reject(opList, seller, 0, err)
	}

	item, err := s.repo.CreateItem(models.Item{
		Name:        name,
		Description: description,
		Price:       price,
		Seller:      seller,
		Status:      models.StatusListed,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return models.Item{}, s.reject(opList, seller, 0, fmt.Errorf("service: failed to create item: %w", err))
	}

	s.emit(models.Event{Type: models.EventItemListed, ItemID: item.ItemID, Account: seller, Amount: price})
	s.succeed(opList, seller, item)
	return item, nil
}

// Purchase locks payment in escrow for a listed item and refunds any surplus to the caller
func (s *EscrowService) Purchase(caller models.Address, itemID uint64, payment int64) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.load(caller, itemID)
	if err == nil {
		err = guard.All(
			guard.NotSeller(caller, item),
			guard.InStatus(item, escrowerrors.ErrNotAvailable, models.StatusListed),
			guard.CoversPrice(payment, item.Price),
		)
	}
	if err != nil {
		return models.Item{}, s.reject(opPurchase, caller, itemID, err)
	}

	next := item
	next.Buyer = caller
	next.Status = models.StatusInEscrow

	if err := s.commit(item, next,
		ledger.Transfer{From: caller, To: ledger.EscrowAccount, Amount: payment},
		ledger.Transfer{From: ledger.EscrowAccount, To: caller, Amount: payment - item.Price},
	); err != nil {
		return models.Item{}, s.reject(opPurchase, caller, itemID, err)
	}

	s.emit(models.Event{Type: models.EventItemPurchased, ItemID: itemID, Account: caller, Amount: item.Price})
	s.succeed(opPurchase, caller, next)
	return next, nil
}

// ConfirmDelivery releases escrow to the seller minus the platform fee
func (s *EscrowService) ConfirmDelivery(caller models.Address, itemID uint64) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.load(caller, itemID)
	if err == nil {
		err = guard.All(
			guard.IsBuyer(caller, item),
			guard.InStatus(item, escrowerrors.ErrNotInEscrow, models.StatusInEscrow),
		)
	}
	if err != nil {
		return models.Item{}, s.reject(opConfirmDelivery, caller, itemID, err)
	}

	next := item
	next.Status = models.StatusCompleted
	next.CompletedAt = s.now()

	if err := s.commit(item, next, s.sellerPayout(item)...); err != nil {
		return models.Item{}, s.reject(opConfirmDelivery, caller, itemID, err)
	}

	s.emit(models.Event{Type: models.EventItemDeliveryConfirmed, ItemID: itemID})
	s.succeed(opConfirmDelivery, caller, next)
	return next, nil
}

// RequestRefund moves an escrowed item into dispute on the buyer's request
func (s *EscrowService) RequestRefund(caller models.Address, itemID uint64) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.load(caller, itemID)
	if err == nil {
		err = guard.All(
			guard.IsBuyer(caller, item),
			guard.InStatus(item, escrowerrors.ErrNotInEscrow, models.StatusInEscrow),
		)
	}
	if err != nil {
		return models.Item{}, s.reject(opRequestRefund, caller, itemID, err)
	}

	next := item
	next.Status = models.StatusDisputed

	if err := s.commit(item, next); err != nil {
		return models.Item{}, s.reject(opRequestRefund, caller, itemID, err)
	}

	s.emit(models.Event{Type: models.EventItemDisputed, ItemID: itemID, Account: caller})
	s.succeed(opRequestRefund, caller, next)
	return next, nil
}

// AgreeToRefund returns the full price to the buyer on the seller's agreement
func (s *EscrowService) AgreeToRefund(caller models.Address, itemID uint64) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.load(caller, itemID)
	if err == nil {
		err = guard.All(
			guard.IsSeller(caller, item),
			guard.InStatus(item, escrowerrors.ErrNotEscrowOrDisputed, models.StatusInEscrow, models.StatusDisputed),
		)
	}
	if err != nil {
		return models.Item{}, s.reject(opAgreeToRefund, caller, itemID, err)
	}

	next := item
	next.Status = models.StatusRefunded

	if err := s.commit(item, next, buyerRefund(item)); err != nil {
		return models.Item{}, s.reject(opAgreeToRefund, caller, itemID, err)
	}

	s.emit(models.Event{Type: models.EventItemRefunded, ItemID: itemID})
	s.succeed(opAgreeToRefund, caller, next)
	return next, nil
}

// ResolveDispute settles a disputed item either as a full refund or as a completed sale
func (s *EscrowService) ResolveDispute(caller models.Address, itemID uint64, refundToBuyer bool) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.load(caller, itemID)
	if err == nil {
		err = guard.All(
			guard.IsOwner(caller, s.owner),
			guard.InStatus(item, escrowerrors.ErrNotDisputed, models.StatusDisputed),
		)
	}
	if err != nil {
		return models.Item{}, s.reject(opResolveDispute, caller, itemID, err)
	}

	next := item
	var transfers []ledger.Transfer
	winner := item.Seller
	if refundToBuyer {
		next.Status = models.StatusRefunded
		transfers = []ledger.Transfer{buyerRefund(item)}
		winner = item.Buyer
	} else {
		next.Status = models.StatusCompleted
		next.CompletedAt = s.now()
		transfers = s.sellerPayout(item)
	}

	if err := s.commit(item, next, transfers...); err != nil {
		return models.Item{}, s.reject(opResolveDispute, caller, itemID, err)
	}

	s.emit(models.Event{Type: models.EventDisputeResolved, ItemID: itemID, Account: winner})
	s.succeed(opResolveDispute, caller, next)
	return next, nil
}

// UpdateFee sets the platform fee applied to future payouts
func (s *EscrowService) UpdateFee(caller models.Address, newFeeBasisPoints int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := guard.All(guard.IsOwner(caller, s.owner), guard.FeeWithinCap(newFeeBasisPoints)); err != nil {
		return s.reject(opUpdateFee, caller, 0, err)
	}

	previous := s.feeBasisPoints
	s.feeBasisPoints = newFeeBasisPoints
	s.metrics.SetFeeBasisPoints(newFeeBasisPoints)
	s.metrics.Observe(opUpdateFee, nil)
	utils.Info("service: fee updated", map[string]any{
		"operation": opUpdateFee,
		"caller":    caller,
		"previous":  previous,
		"fee_bps":   newFeeBasisPoints,
	})
	return nil
}

// Deposit credits external funds to the caller's own account
func (s *EscrowService) Deposit(caller models.Address, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := guard.ValidCaller(caller)(); err != nil {
		return 0, s.reject(opDeposit, caller, 0, err)
	}
	if err := s.ledger.Deposit(caller, amount); err != nil {
		return 0, s.reject(opDeposit, caller, 0, fmt.Errorf("service: %w", err))
	}

	balance := s.ledger.Balance(caller)
	s.metrics.Observe(opDeposit, nil)
	utils.Info("service: deposit credited", map[string]any{
		"operation": opDeposit,
		"caller":    caller,
		"amount":    amount,
		"balance":   balance,
	})
	return balance, nil
}

// GetItem returns a snapshot of an item
func (s *EscrowService) GetItem(itemID uint64) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}
	return item, nil
}

// Events returns the audit trail of an item
func (s *EscrowService) Events(itemID uint64) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.repo.GetItem(itemID); err != nil {
		return nil, fmt.Errorf("service: failed to get events for item %d: %w", itemID, err)
	}
	return s.log.ForItem(itemID), nil
}

// FeeBasisPoints returns the current platform fee
func (s *EscrowService) FeeBasisPoints() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.feeBasisPoints
}

// Owner returns the arbitrator and fee recipient
func (s *EscrowService) Owner() models.Address {
	return s.owner
}

// Balance returns an account's ledger balance
func (s *EscrowService) Balance(account models.Address) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Balance(account)
}

// EscrowHeld returns the total currently held on behalf of open transactions
func (s *EscrowService) EscrowHeld() int64 {
	return s.Balance(ledger.EscrowAccount)
}

// load validates the caller and fetches the item; existence is always the first item check
func (s *EscrowService) load(caller models.Address, itemID uint64) (models.Item, error) {
	if err := guard.ValidCaller(caller)(); err != nil {
		return models.Item{}, err
	}
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// commit writes next to the registry, then applies the payout. A failed payout restores prev.
func (s *EscrowService) commit(prev, next models.Item, transfers ...ledger.Transfer) error {
	if !models.CanTransition(prev.Status, next.Status) {
		return fmt.Errorf("service: illegal transition %s -> %s for item %d", prev.Status, next.Status, prev.ItemID)
	}

	if err := s.repo.UpdateItem(next); err != nil {
		return fmt.Errorf("service: failed to stage item %d: %w", next.ItemID, err)
	}
	if len(transfers) == 0 {
		return nil
	}

	if err := s.ledger.Payout(transfers...); err != nil {
		if rbErr := s.repo.UpdateItem(prev); rbErr != nil {
			utils.Error("service: rollback failed after payout error", map[string]any{
				"item_id":        prev.ItemID,
				"payout_error":   err.Error(),
				"rollback_error": rbErr.Error(),
			})
			return fmt.Errorf("service: payout for item %d: %w", next.ItemID, errors.Join(err, rbErr))
		}
		return fmt.Errorf("service: payout for item %d: %w", next.ItemID, err)
	}

	s.metrics.SetEscrowHeld(s.ledger.Balance(ledger.EscrowAccount))
	return nil
}

// sellerPayout splits the escrowed price between the owner (fee) and the seller
func (s *EscrowService) sellerPayout(item models.Item) []ledger.Transfer {
	fee, sellerAmount := ledger.ComputeSplit(item.Price, s.feeBasisPoints)
	return []ledger.Transfer{
		{From: ledger.EscrowAccount, To: s.owner, Amount: fee},
		{From: ledger.EscrowAccount, To: item.Seller, Amount: sellerAmount},
	}
}

func buyerRefund(item models.Item) ledger.Transfer {
	return ledger.Transfer{From: ledger.EscrowAccount, To: item.Buyer, Amount: item.Price}
}

func (s *EscrowService) emit(event models.Event) {
	event.OccurredAt = s.now()
	published := s.log.Publish(event)
	utils.Info("service: event emitted", map[string]any{
		"event_id": published.EventID,
		"event":    string(published.Type),
		"item_id":  published.ItemID,
		"account":  published.Account,
		"amount":   published.Amount,
	})
}

func (s *EscrowService) succeed(operation string, caller models.Address, item models.Item) {
	s.metrics.Observe(operation, nil)
	utils.Info("service: operation committed", map[string]any{
		"operation": operation,
		"caller":    caller,
		"item_id":   item.ItemID,
		"status":    string(item.Status),
	})
}

func (s *EscrowService) reject(operation string, caller models.Address, itemID uint64, err error) error {
	s.metrics.Observe(operation, err)
	utils.Warn("service: operation rejected", map[string]any{
		"operation": operation,
		"caller":    caller,
		"item_id":   itemID,
		"error":     err.Error(),
	})
	return err
}
