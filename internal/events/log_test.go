package events

import (
	model "escrow-engine/internal/models"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

// Test Publish and ForItem
func TestLog_PublishAndForItem(t *testing.T) {
	t.Parallel()

	log := NewLog()
	now := time.Now().UTC()

	listed := log.Publish(model.Event{Type: model.EventItemListed, ItemID: 1, Account: "seller", Amount: 100, OccurredAt: now})
	log.Publish(model.Event{Type: model.EventItemListed, ItemID: 2, Account: "seller", Amount: 50, OccurredAt: now})
	purchased := log.Publish(model.Event{Type: model.EventItemPurchased, ItemID: 1, Account: "buyer", Amount: 100, OccurredAt: now})

	_, err := ulid.Parse(listed.EventID)
	require.NoError(t, err, "EventID should be a valid ULID")
	require.NotEqual(t, listed.EventID, purchased.EventID)

	itemEvents := log.ForItem(1)
	require.Len(t, itemEvents, 2)
	require.Equal(t, model.EventItemListed, itemEvents[0].Type)
	require.Equal(t, model.EventItemPurchased, itemEvents[1].Type)
	require.Less(t, itemEvents[0].EventID, itemEvents[1].EventID)

	require.Empty(t, log.ForItem(3))
	require.NotNil(t, log.ForItem(3))
	require.Len(t, log.All(), 3)
}

// Test concurrent publishing
func TestLog_ConcurrentPublish(t *testing.T) {
	t.Parallel()

	log := NewLog()
	var wg sync.WaitGroup
	publishCount := 50

	for i := 0; i < publishCount; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			log.Publish(model.Event{Type: model.EventItemListed, ItemID: uint64(i%5 + 1), Account: model.Address(fmt.Sprintf("seller-%d", i))})
		}()
	}
	wg.Wait()

	all := log.All()
	require.Len(t, all, publishCount)
	ids := map[string]bool{}
	for _, e := range all {
		require.False(t, ids[e.EventID])
		ids[e.EventID] = true
	}
	for item := uint64(1); item <= 5; item++ {
		require.Len(t, log.ForItem(item), publishCount/5)
	}
}
