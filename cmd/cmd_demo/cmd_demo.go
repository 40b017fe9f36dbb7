package cmd_demo

import (
	"fmt"
	"github.com/GiGurra/boa/pkg/boa"
	"github.com/GiGurra/static_pool/pkg/static_pool"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
)

type Params struct {
	Slots boa.Required[int] `descr:"Number of slots in the pool" default:"4"`
	Free  boa.Required[int] `descr:"Handle to free once the pool is full" default:"2"`
}

func (p *Params) WithValidation() *Params {
	p.Slots.CustomValidator = func(i int) error {
		if i <= 0 {
			return fmt.Errorf("slots must be greater than 0")
		}
		return nil
	}
	p.Free.CustomValidator = func(i int) error {
		if i <= 0 {
			return fmt.Errorf("free must be greater than 0")
		}
		return nil
	}
	return p
}

func Cmd() *cobra.Command {
	params := new(Params).WithValidation()
	return boa.Wrap{
		Use:    "demo",
		Short:  "walk through allocating, writing, reading and freeing pool slots",
		Params: params,
		ParamEnrich: boa.ParamEnricherCombine(
			boa.ParamEnricherName,
			boa.ParamEnricherShort,
			boa.ParamEnricherBool,
		),
		Run: func(cmd *cobra.Command, args []string) {
			if err := Run(params.Slots.Value(), params.Free.Value(), os.Stdout); err != nil {
				slog.Error(err.Error())
				os.Exit(1)
			}
		},
	}.ToCmd()
}

// Run fills a pool of the given size, frees one handle, reallocates it and
// does a write/read/free round trip on it, printing every step to out.
func Run(slots int, free int, out io.Writer) error {
	if free > slots {
		return fmt.Errorf("cannot free handle %d in a pool of %d slots", free, slots)
	}

	pool := static_pool.New[int64](slots)
	slog.Debug("Created pool", slog.Int("slots", pool.Cap()))

	for {
		h, ok := pool.Alloc()
		if !ok {
			_, _ = fmt.Fprintf(out, "* alloc -> none (%d/%d used)\n", pool.Len(), pool.Cap())
			break
		}
		_, _ = fmt.Fprintf(out, "* alloc -> %d\n", h)
	}

	toFree := static_pool.Handle(free)
	pool.Free(toFree)
	_, _ = fmt.Fprintf(out, "* free(%d)\n", toFree)

	h, ok := pool.Alloc()
	if !ok || h != toFree {
		return fmt.Errorf("expected to get handle %d back, got %d", toFree, h)
	}
	_, _ = fmt.Fprintf(out, "* alloc -> %d\n", h)

	if h2, ok := pool.Alloc(); ok {
		return fmt.Errorf("expected pool to be full, got handle %d", h2)
	}
	_, _ = fmt.Fprintln(out, "* alloc -> none")

	*pool.GetMut(h) = 100
	v, _ := pool.Get(h)
	_, _ = fmt.Fprintf(out, "* write(%d, 100), read(%d) -> %d\n", h, h, v)

	pool.Free(h)
	if _, ok := pool.Get(h); ok {
		return fmt.Errorf("expected handle %d to be invalid after free", h)
	}
	_, _ = fmt.Fprintf(out, "* free(%d), read(%d) -> none\n", h, h)

	return nil
}
