package system

import (
	"github.com/jmallicoat/tally/internal/cli"
	"github.com/jmallicoat/tally/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	return tui.Run(ctx.Store, ctx.Engine)
}
