package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	goAccount "github.com/spookysoftware/goAccount"
	"github.com/spookysoftware/goAccount/internal"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

const auditStream = "goaccount:audit"

func main() {
	var (
		accounts    = flag.Int("accounts", 10000, "number of accounts to seed through the signup flow")
		concurrency = flag.Int("concurrency", 256, "number of concurrent workers")
		ops         = flag.Int("ops", 100000, "operations per phase (lookup + reset)")
		redisAddr   = flag.String("redis-addr", "", "redis address for the audit stream; if empty, REDIS_ADDR env or miniredis is used")
	)
	flag.Parse()

	if *accounts <= 0 || *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "accounts, concurrency, and ops must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var (
		cleanup func()
		client  redis.UniversalClient
	)
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		addr = mr.Addr()
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() {
			_ = client.Close()
			mr.Close()
		}
		fmt.Printf("using miniredis at %s\n", addr)
	} else {
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() { _ = client.Close() }
		fmt.Printf("using redis at %s\n", addr)
	}
	defer cleanup()

	secret, err := internal.NewSecret(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "secret: %v\n", err)
		os.Exit(1)
	}

	engine, err := goAccount.New().
		WithSecret(secret).
		WithAuditSink(goAccount.NewRedisStreamSink(client, auditStream, int64(*ops))).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine build: %v\n", err)
		os.Exit(1)
	}

	ids := make([]uint64, *accounts)
	fmt.Printf("seeding %d accounts through the signup flow...\n", *accounts)
	startSeed := time.Now()
	for i := 0; i < *accounts; i++ {
		id, err := seedAccount(ctx, engine, i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
			os.Exit(1)
		}
		ids[i] = id
	}
	fmt.Printf("seeded in %s\n", time.Since(startSeed).Round(time.Millisecond))

	lookupStats := runLookupPhase(engine, ids, *ops, *concurrency)
	resetStats := runResetPhase(ctx, engine, ids, *ops, *concurrency)

	engine.Close()

	fmt.Println("---- results ----")
	printStats("lookup", lookupStats)
	printStats("reset", resetStats)
	fmt.Printf("audit: dropped=%d streamed=%d\n", engine.AuditDropped(), streamLen(ctx, client))
}

func seedAccount(ctx context.Context, engine *goAccount.Engine, i int) (uint64, error) {
	link, err := engine.IssueSignupLink(ctx, fmt.Sprintf("load-%d@example.com", i))
	if err != nil {
		return 0, err
	}
	result, err := engine.CreateAccount(ctx, goAccount.CreateAccountRequest{
		Email:             link.Email,
		Token:             link.Token,
		RequestedName:     fmt.Sprintf("load-%d", i),
		RequestedPassword: "initial-password",
	})
	if err != nil {
		return 0, err
	}
	return result.UserID, nil
}

// runLookupPhase hammers GetAccount, the read path guarded by the directory
// lock.
func runLookupPhase(engine *goAccount.Engine, ids []uint64, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				id := ids[r.Intn(len(ids))]
				t0 := time.Now()
				_, err := engine.GetAccount(id)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

// runResetPhase runs the full reset round trip per operation: issue a link,
// then confirm it with a fresh password. Hashing dominates, which is the
// point — it runs outside the directory lock.
func runResetPhase(ctx context.Context, engine *goAccount.Engine, ids []uint64, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*6151))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				id := ids[r.Intn(len(ids))]

				t0 := time.Now()
				err := resetOnce(ctx, engine, id, i)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}

				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

func resetOnce(ctx context.Context, engine *goAccount.Engine, id uint64, op int) error {
	link, err := engine.IssueResetLink(ctx, id)
	if err != nil {
		return err
	}
	return engine.ConfirmPasswordReset(ctx, goAccount.ResetPasswordRequest{
		UserID:            link.UserID,
		Expires:           link.Expires,
		Token:             link.Token,
		RequestedPassword: fmt.Sprintf("rotated-%d", op),
	})
}

func streamLen(ctx context.Context, client redis.UniversalClient) int64 {
	n, err := client.XLen(ctx, auditStream).Result()
	if err != nil {
		return -1
	}
	return n
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}
