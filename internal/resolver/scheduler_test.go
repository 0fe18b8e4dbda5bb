package resolver_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"enricher/internal/resolver"
	mockdnsclient "enricher/pkg/dnsclient/mock"
	"enricher/pkg/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// resolverFunc allows using a function as a resolver.DomainResolver.
type resolverFunc func(ctx context.Context, name string) (domain.EnrichedDomain, error)

func (f resolverFunc) Resolve(ctx context.Context, name string) (domain.EnrichedDomain, error) {
	return f(ctx, name)
}

func enrichedFor(name string) domain.EnrichedDomain {
	spf := "v=spf1 -all"

	return domain.EnrichedDomain{
		Raw:    name,
		Domain: name,
		HasMX:  true,
		MX:     []domain.MXRecord{{Exchange: "mx." + name, Priority: 10}},
		SPF:    &spf,
	}
}

func domainsN(n int) []string {
	out := make([]string, 0, n)
	for i := range n {
		out = append(out, fmt.Sprintf("d%02d.example", i))
	}

	return out
}

func TestScheduler_Run_ordersAndBoundsConcurrency(t *testing.T) {
	var (
		inFlight    atomic.Int32
		maxInFlight atomic.Int32
	)
	r := resolverFunc(func(_ context.Context, name string) (domain.EnrichedDomain, error) {
		n := inFlight.Add(1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)

		return enrichedFor(name), nil
	})

	domains := domainsN(25)
	s := resolver.NewScheduler(r, resolver.SchedulerOptions{BatchSize: 10})
	require.Equal(t, 3, s.Batches(len(domains)))

	got, err := s.Run(context.Background(), domains, nil)
	require.NoError(t, err)
	require.Len(t, got, 25)
	for i, record := range got {
		require.Equal(t, domains[i], record.Domain)
	}
	require.LessOrEqual(t, maxInFlight.Load(), int32(10))
}

func TestScheduler_Run_batchesAreSequential(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)
	r := resolverFunc(func(_ context.Context, name string) (domain.EnrichedDomain, error) {
		mu.Lock()
		order = append(order, name)
		mu.Unlock()

		return enrichedFor(name), nil
	})

	domains := domainsN(6)
	_, err := resolver.NewScheduler(r, resolver.SchedulerOptions{BatchSize: 2}).Run(context.Background(), domains, nil)
	require.NoError(t, err)

	// every member of batch N resolves before any member of batch N+1
	for i, name := range order {
		batch := i / 2
		require.Contains(t, domains[batch*2:batch*2+2], name)
	}
}

func TestScheduler_Run_failuresAreDefaulted(t *testing.T) {
	r := resolverFunc(func(_ context.Context, name string) (domain.EnrichedDomain, error) {
		if name == "d01.example" {
			return domain.EnrichedDomain{}, errors.New("servfail")
		}

		return enrichedFor(name), nil
	})

	got, err := resolver.NewScheduler(r, resolver.SchedulerOptions{}).Run(context.Background(), domainsN(3), nil)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultEnrichedDomain("d01.example"), got[1])
	require.True(t, got[0].HasMX)
	require.True(t, got[2].HasMX)
}

func TestScheduler_Run_timedOutLookupsAreDefaulted(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockdnsclient.NewMockClient(ctrl)
	client.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded).AnyTimes()

	s := resolver.NewScheduler(resolver.New(client, resolver.Options{}), resolver.SchedulerOptions{})
	got, err := s.Run(context.Background(), []string{"slow.example"}, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.False(t, got[0].HasMX)
	require.Equal(t, []domain.MXRecord{}, got[0].MX)
	require.Nil(t, got[0].SPF)
	require.Nil(t, got[0].DMARC)
}

func TestScheduler_Run_memoReplaysCompletedBatches(t *testing.T) {
	var calls atomic.Int32
	r := resolverFunc(func(_ context.Context, name string) (domain.EnrichedDomain, error) {
		calls.Add(1)

		return enrichedFor(name), nil
	})

	domains := domainsN(4)
	saved := map[int][]domain.EnrichedDomain{
		0: {domain.DefaultEnrichedDomain(domains[0]), domain.DefaultEnrichedDomain(domains[1])},
	}
	memo := func(ctx context.Context, index int, run func(context.Context) ([]domain.EnrichedDomain, error)) ([]domain.EnrichedDomain, error) {
		if records, ok := saved[index]; ok {
			return records, nil
		}
		records, err := run(ctx)
		if err == nil {
			saved[index] = records
		}

		return records, err
	}

	got, err := resolver.NewScheduler(r, resolver.SchedulerOptions{BatchSize: 2}).Run(context.Background(), domains, memo)
	require.NoError(t, err)
	require.EqualValues(t, 2, calls.Load())
	require.False(t, got[0].HasMX)
	require.True(t, got[2].HasMX)
	require.Len(t, saved, 2)
}

func TestScheduler_Run_memoMismatch(t *testing.T) {
	memo := func(context.Context, int, func(context.Context) ([]domain.EnrichedDomain, error)) ([]domain.EnrichedDomain, error) {
		return []domain.EnrichedDomain{}, nil
	}
	r := resolverFunc(func(_ context.Context, name string) (domain.EnrichedDomain, error) {
		return enrichedFor(name), nil
	})

	_, err := resolver.NewScheduler(r, resolver.SchedulerOptions{}).Run(context.Background(), domainsN(2), memo)
	require.Error(t, err)
}

func TestScheduler_Run_pausesBetweenBatches(t *testing.T) {
	r := resolverFunc(func(_ context.Context, name string) (domain.EnrichedDomain, error) {
		return enrichedFor(name), nil
	})

	start := time.Now()
	_, err := resolver.NewScheduler(r, resolver.SchedulerOptions{BatchSize: 1, Pause: 20 * time.Millisecond}).
		Run(context.Background(), domainsN(3), nil)
	require.NoError(t, err)
	// two pauses, none after the last batch
	require.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestScheduler_Run_cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := resolverFunc(func(ctx context.Context, name string) (domain.EnrichedDomain, error) {
		cancel()
		<-ctx.Done()

		return domain.EnrichedDomain{}, ctx.Err()
	})

	got, err := resolver.NewScheduler(r, resolver.SchedulerOptions{}).Run(ctx, domainsN(3), nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, got)
}

func TestScheduler_Run_empty(t *testing.T) {
	r := resolverFunc(func(context.Context, string) (domain.EnrichedDomain, error) {
		t.Fatal("resolver must not be called")

		return domain.EnrichedDomain{}, nil
	})

	got, err := resolver.NewScheduler(r, resolver.SchedulerOptions{}).Run(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Empty(t, got)
}
