package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bornholm/founderfinder/internal/command/common"
	"github.com/bornholm/founderfinder/internal/logx"
	"github.com/bornholm/founderfinder/pkg/founder"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Lookup() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Look up the founders of the given companies",
		ArgsUsage: "<company> [company...]",
		Flags:     common.FinderFlags(),
		Action: func(cliCtx *cli.Context) error {
			companies := make([]string, 0, cliCtx.NArg())
			for _, arg := range cliCtx.Args().Slice() {
				if company := strings.TrimSpace(arg); company != "" {
					companies = append(companies, company)
				}
			}

			if len(companies) == 0 {
				return errors.New("at least one company name is required")
			}

			funcs := make([]founder.OptionFunc, 0)
			if cliCtx.Bool("debug") {
				funcs = append(funcs, founder.WithTrace(func(ctx context.Context, step string, value any) {
					slog.DebugContext(ctx, "lookup "+step, slog.String("dump", spew.Sdump(value)))
				}))
			}

			finder, closeFinder, err := common.NewFinder(cliCtx, funcs...)
			if err != nil {
				return errors.WithStack(err)
			}

			defer closeFinder()

			out := cliCtx.App.Writer

			for _, company := range companies {
				ctx := logx.WithAttrs(cliCtx.Context, slog.String("company", company))

				result, err := finder.Lookup(ctx, company)
				if err != nil {
					return errors.Wrapf(err, "could not look up '%s'", company)
				}

				fmt.Fprintf(out, "Founder of %s: %s\n", company, result)
			}

			return nil
		},
	}
}
