package escrow

import (
	"errors"
	"escrow-engine/internal/escrowerrors"
	"escrow-engine/internal/events"
	"escrow-engine/internal/ledger"
	"escrow-engine/internal/metrics"
	model "escrow-engine/internal/models"
	"escrow-engine/internal/repository"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func escrowedItem(id uint64, price int64) model.Item {
	return model.Item{
		ItemID:    id,
		Name:      "lamp",
		Price:     price,
		Seller:    seller,
		Buyer:     buyer,
		Status:    model.StatusInEscrow,
		CreatedAt: fixedNow,
	}
}

// Tests store failures with a mocked registry
func TestEscrowService_StoreFailures(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("store unavailable")

	t.Run("create_failure_emits_nothing", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := repository.NewMockItemStore(ctrl)
		store.EXPECT().CreateItem(gomock.Any()).Return(model.Item{}, storeErr)

		log := events.NewLog()
		svc, err := NewEscrowService(store, ledger.New(), owner, 250, WithEventLog(log))
		require.NoError(t, err)

		_, err = svc.List(seller, "lamp", "", 10)
		require.Error(t, err)
		require.True(t, errors.Is(err, storeErr))
		require.Empty(t, log.All())
	})

	t.Run("stage_failure_moves_no_funds", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		item := escrowedItem(1, 100)
		store := repository.NewMockItemStore(ctrl)
		store.EXPECT().GetItem(uint64(1)).Return(item, nil)
		store.EXPECT().UpdateItem(gomock.Any()).Return(storeErr)

		l := ledger.New()
		require.NoError(t, l.Deposit(ledger.EscrowAccount, 100))
		log := events.NewLog()
		svc, err := NewEscrowService(store, l, owner, 250, WithEventLog(log))
		require.NoError(t, err)

		_, err = svc.ConfirmDelivery(buyer, 1)
		require.Error(t, err)
		require.True(t, errors.Is(err, storeErr))
		require.Equal(t, int64(100), l.Balance(ledger.EscrowAccount))
		require.Equal(t, int64(0), l.Balance(seller))
		require.Empty(t, log.All())
	})

	t.Run("payout_failure_restores_previous_item", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		item := escrowedItem(4, 100)
		store := repository.NewMockItemStore(ctrl)
		gomock.InOrder(
			store.EXPECT().GetItem(uint64(4)).Return(item, nil),
			store.EXPECT().UpdateItem(gomock.Any()).DoAndReturn(func(next model.Item) error {
				require.Equal(t, model.StatusCompleted, next.Status)
				return nil
			}),
			store.EXPECT().UpdateItem(item).Return(nil),
		)

		// escrow is empty, so the seller payout cannot be funded
		log := events.NewLog()
		svc, err := NewEscrowService(store, ledger.New(), owner, 250, WithEventLog(log))
		require.NoError(t, err)

		_, err = svc.ConfirmDelivery(buyer, 4)
		require.Error(t, err)
		require.True(t, errors.Is(err, escrowerrors.ErrInsufficientBalance))
		require.Empty(t, log.All())
	})

	t.Run("failed_rollback_reports_both_errors", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		item := escrowedItem(2, 100)
		store := repository.NewMockItemStore(ctrl)
		gomock.InOrder(
			store.EXPECT().GetItem(uint64(2)).Return(item, nil),
			store.EXPECT().UpdateItem(gomock.Any()).Return(nil),
			store.EXPECT().UpdateItem(item).Return(storeErr),
		)

		svc, err := NewEscrowService(store, ledger.New(), owner, 250)
		require.NoError(t, err)

		_, err = svc.AgreeToRefund(seller, 2)
		require.Error(t, err)
		require.True(t, errors.Is(err, escrowerrors.ErrInsufficientBalance))
		require.True(t, errors.Is(err, storeErr))
		require.Equal(t, escrowerrors.TransferFailed, escrowerrors.KindOf(err))
	})

	t.Run("guard_failure_never_writes", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := repository.NewMockItemStore(ctrl)
		store.EXPECT().GetItem(uint64(3)).Return(escrowedItem(3, 100), nil)
		store.EXPECT().UpdateItem(gomock.Any()).Times(0)

		svc, err := NewEscrowService(store, ledger.New(), owner, 250)
		require.NoError(t, err)

		_, err = svc.ResolveDispute(owner, 3, true)
		require.True(t, errors.Is(err, escrowerrors.ErrNotDisputed))
	})

	t.Run("not_found_from_store", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := repository.NewMockItemStore(ctrl)
		store.EXPECT().GetItem(uint64(5)).Return(model.Item{}, fmt.Errorf("lookup: %w", escrowerrors.ErrItemNotFound))

		svc, err := NewEscrowService(store, ledger.New(), owner, 250)
		require.NoError(t, err)

		_, err = svc.Purchase(buyer, 5, 100)
		require.Equal(t, escrowerrors.NotFound, escrowerrors.KindOf(err))
	})
}

// Tests that operations are counted by outcome
func TestEscrowService_Metrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	svc, err := NewEscrowService(repository.NewMemoryRepo(), ledger.New(), owner, 250, WithMetrics(rec))
	require.NoError(t, err)

	item, err := svc.List(seller, "lamp", "", 100)
	require.NoError(t, err)
	_, err = svc.Deposit(buyer, 100)
	require.NoError(t, err)
	_, err = svc.Purchase(seller, item.ItemID, 100)
	require.Error(t, err)
	_, err = svc.Purchase(buyer, item.ItemID, 100)
	require.NoError(t, err)
	require.Error(t, svc.UpdateFee(buyer, 10))
	require.NoError(t, svc.UpdateFee(owner, 500))

	expected := `
# HELP escrow_fee_basis_points Current platform fee in basis points.
# TYPE escrow_fee_basis_points gauge
escrow_fee_basis_points 500
# HELP escrow_held_amount Smallest currency units currently held in escrow.
# TYPE escrow_held_amount gauge
escrow_held_amount 100
# HELP escrow_operations_total Escrow operations by name and outcome.
# TYPE escrow_operations_total counter
escrow_operations_total{operation="deposit",result="ok"} 1
escrow_operations_total{operation="list",result="ok"} 1
escrow_operations_total{operation="purchase",result="Unauthorized"} 1
escrow_operations_total{operation="purchase",result="ok"} 1
escrow_operations_total{operation="update_fee",result="Unauthorized"} 1
escrow_operations_total{operation="update_fee",result="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
}
