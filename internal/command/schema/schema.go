package schema

import (
	"fmt"

	"github.com/bornholm/founderfinder/pkg/report"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Schema() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the JSON schema of the batch report",
		Action: func(cliCtx *cli.Context) error {
			data, err := report.Schema()
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintln(cliCtx.App.Writer, string(data))

			return nil
		},
	}
}
