package perftests

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	escrow "escrow-engine/internal/escrowService"
	model "escrow-engine/internal/models"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name      string
	NumBuyers int
	NumItems  int
	ReadRatio int  // out of 10
	Burst     bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()

	if len(om.latencies) == 0 {
		return
	}
	latencies := append([]time.Duration(nil), om.latencies...)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// Benchmark_Load_EscrowSystem runs multiple scenarios and checks escrow conservation after each
func Benchmark_Load_EscrowSystem(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 2000, 0, false},
		{"High-Contention-WriteHeavy", 500, 10, 0, false},
		{"Mixed-Workload", 300, 500, 7, false},
		{"ReadHeavy", 200, 500, 9, false},
		{"Edge-Case-SingleItem", 100, 1, 5, false},
		{"Peak-Burst", 500, 500, 0, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	svc := setupService(b, s.NumItems)
	for i := 0; i < s.NumBuyers; i++ {
		fund(b, svc, buyerFor(i), int64(s.NumItems)*unit)
	}

	var totalOps, committed, rejected, totalReads int64
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		for pb.Next() {
			itemID := uint64(rnd.Intn(s.NumItems) + 1)
			buyer := buyerFor(rnd.Intn(s.NumBuyers))
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				if _, err := svc.GetItem(itemID); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)
			} else if err := write(svc, rnd, buyer, itemID); err != nil {
				atomic.AddInt64(&rejected, 1)
			} else {
				atomic.AddInt64(&committed, 1)
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	verifyEscrowHeld(b, svc)

	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Items: %d | Total Ops: %d | Committed: %d | Rejected: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumItems, totalOps, committed, rejected, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}

// write picks one lifecycle operation; rejections are expected under contention
func write(svc *escrow.EscrowService, rnd *rand.Rand, buyer model.Address, itemID uint64) error {
	var err error
	switch rnd.Intn(4) {
	case 0:
		_, err = svc.Purchase(buyer, itemID, unit)
	case 1:
		_, err = svc.ConfirmDelivery(buyer, itemID)
	case 2:
		_, err = svc.RequestRefund(buyer, itemID)
	default:
		_, err = svc.ResolveDispute(owner, itemID, rnd.Intn(2) == 0)
	}
	return err
}

func verifyEscrowHeld(b *testing.B, svc *escrow.EscrowService) {
	var held int64
	for id := uint64(1); ; id++ {
		item, err := svc.GetItem(id)
		if err != nil {
			break
		}
		if item.Status.HoldsEscrow() {
			held += item.Price
		}
	}
	if got := svc.EscrowHeld(); got != held {
		b.Fatalf("escrow holds %d, open items total %d", got, held)
	}
}

func buyerFor(i int) model.Address {
	return model.Address(fmt.Sprintf("buyer_%d", i))
}
