package main

import (
	"github.com/GiGurra/boa/pkg/boa"
	"github.com/GiGurra/static_pool/cmd/cmd_churn"
	"github.com/GiGurra/static_pool/cmd/cmd_demo"
	"github.com/GiGurra/static_pool/pkg/snail_logging"
	"github.com/spf13/cobra"
)

type Params struct {
}

func main() {
	snail_logging.ConfigureDefaultLogger("text", "info", false)
	boa.CmdT[Params]{
		Use:         "static_pool",
		Short:       "exercise a fixed size object pool",
		ParamEnrich: boa.ParamEnricherDefault,
		SubCmds: []*cobra.Command{
			cmd_demo.Cmd(),
			cmd_churn.Cmd(),
		},
	}.Run()
}
