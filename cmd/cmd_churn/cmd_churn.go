package cmd_churn

import (
	"fmt"
	"github.com/GiGurra/boa/pkg/boa"
	"github.com/GiGurra/static_pool/pkg/pretty"
	"github.com/GiGurra/static_pool/pkg/static_pool"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"slices"
	"time"
)

type Params struct {
	Slots boa.Required[int] `descr:"Number of slots in the pool" default:"1024"`
	Ops   boa.Required[int] `descr:"Number of free+alloc rounds to run" default:"1000000"`
	Burst boa.Required[int] `descr:"Handles freed and reallocated per round" default:"8"`
}

func (p *Params) WithValidation() *Params {
	p.Slots.CustomValidator = func(i int) error {
		if i <= 0 {
			return fmt.Errorf("slots must be greater than 0")
		}
		return nil
	}
	p.Ops.CustomValidator = func(i int) error {
		if i <= 0 {
			return fmt.Errorf("ops must be greater than 0")
		}
		return nil
	}
	p.Burst.CustomValidator = func(i int) error {
		if i <= 0 {
			return fmt.Errorf("burst must be greater than 0")
		}
		return nil
	}
	return p
}

type Config struct {
	Slots int
	Ops   int
	Burst int
}

type Result struct {
	Allocs       int64
	Frees        int64
	FailedAllocs int64
	Mismatches   int64
	Elapsed      time.Duration
}

func Cmd() *cobra.Command {
	params := new(Params).WithValidation()
	return boa.Wrap{
		Use:    "churn",
		Short:  "run an allocation churn benchmark against a pool",
		Params: params,
		ParamEnrich: boa.ParamEnricherCombine(
			boa.ParamEnricherName,
			boa.ParamEnricherShort,
			boa.ParamEnricherBool,
		),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := Config{
				Slots: params.Slots.Value(),
				Ops:   params.Ops.Value(),
				Burst: params.Burst.Value(),
			}

			fmt.Printf("* Will churn a pool of %s slot(s)\n", pretty.Int3Digits(int64(cfg.Slots)))
			fmt.Printf("  %s round(s) of %d free+alloc\n", pretty.Int3Digits(int64(cfg.Ops)), cfg.Burst)

			res, err := Run(cfg)
			if err != nil {
				exitWithError(err.Error())
			}

			ops := res.Allocs + res.Frees
			rate := float64(ops) / res.Elapsed.Seconds()
			fmt.Printf("* Done in %s\n", res.Elapsed)
			fmt.Printf("*        Allocs: %s\n", pretty.Int3Digits(res.Allocs))
			fmt.Printf("*         Frees: %s\n", pretty.Int3Digits(res.Frees))
			fmt.Printf("* Failed allocs: %s\n", pretty.Int3Digits(res.FailedAllocs))
			fmt.Printf("*    Mismatches: %s\n", pretty.Int3Digits(res.Mismatches))
			fmt.Printf("*      Op Rate: %s ops/s\n", pretty.Int3Digits(int64(rate)))

			if res.Mismatches != 0 {
				exitWithError("pool returned unexpected handles or data")
			}
		},
	}.ToCmd()
}

// Run fills a pool, then repeatedly frees cfg.Burst live handles picked by a
// deterministic stride and allocates the same number back. Every allocation
// gets a unique payload that is checked before the handle is freed, and the
// reallocated handles must come back lowest first.
func Run(cfg Config) (Result, error) {
	if cfg.Slots <= 0 {
		return Result{}, fmt.Errorf("slots must be greater than 0")
	}
	if cfg.Burst <= 0 || cfg.Burst > cfg.Slots {
		return Result{}, fmt.Errorf("burst must be in [1, %d], got %d", cfg.Slots, cfg.Burst)
	}

	res := Result{}
	pool := static_pool.New[int64](cfg.Slots)
	payloads := make([]int64, cfg.Slots+1) // indexed by handle
	nextPayload := int64(1)

	alloc := func() (static_pool.Handle, bool) {
		h, ok := pool.Alloc()
		if !ok {
			res.FailedAllocs++
			return h, false
		}
		res.Allocs++
		if v, _ := pool.Get(h); v != 0 {
			res.Mismatches++
		}
		*pool.GetMut(h) = nextPayload
		payloads[h] = nextPayload
		nextPayload++
		return h, true
	}

	live := lo.Map(lo.Range(cfg.Slots), func(i int, _ int) static_pool.Handle {
		h, _ := alloc()
		if h != static_pool.Handle(i+1) {
			res.Mismatches++
		}
		return h
	})

	// a full pool must refuse further allocations
	if _, ok := pool.Alloc(); ok {
		res.Mismatches++
	}

	stride := strideFor(cfg.Slots)
	pos := 0
	freed := make([]static_pool.Handle, 0, cfg.Burst)

	slog.Debug("Starting churn", slog.Int("slots", cfg.Slots), slog.Int("stride", stride))

	t0 := time.Now()
	for op := 0; op < cfg.Ops; op++ {
		freed = freed[:0]
		for len(freed) < cfg.Burst {
			pos = (pos + stride) % cfg.Slots
			h := live[pos]
			if !pool.Valid(h) {
				continue // already freed this round
			}
			if v, _ := pool.Get(h); v != payloads[h] {
				res.Mismatches++
			}
			pool.Free(h)
			res.Frees++
			freed = append(freed, h)
		}

		// live keeps pointing at the right slots since the freed handles
		// are exactly the ones handed out again
		slices.Sort(freed)
		for _, expected := range freed {
			h, ok := alloc()
			if !ok || h != expected {
				res.Mismatches++
			}
		}
	}
	res.Elapsed = time.Since(t0)

	if pool.Len() != cfg.Slots {
		res.Mismatches++
	}

	return res, nil
}

// strideFor returns a step that is coprime with n, so that walking the live
// handles with it visits every slot before repeating.
func strideFor(n int) int {
	for s := 7919 % n; s > 0; s-- {
		if gcd(s, n) == 1 {
			return s
		}
	}
	return 1
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func exitWithError(msg string) {
	slog.Error(msg)
	os.Exit(1)
}
