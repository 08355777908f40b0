package batch

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bornholm/founderfinder/internal/command"
	"github.com/bornholm/founderfinder/internal/command/common"
	"github.com/bornholm/founderfinder/internal/logx"
	"github.com/bornholm/founderfinder/pkg/founder"
	"github.com/bornholm/founderfinder/pkg/report"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const DefaultFile = "/content/Company_Names_Dataset.csv"

func Batch() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:      "file",
			Value:     DefaultFile,
			Aliases:   []string{"f"},
			EnvVars:   []string{command.EnvPrefix + "FILE"},
			Usage:     "The CSV file listing company names in its first column",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:      "report",
			Value:     "",
			Aliases:   []string{"r"},
			EnvVars:   []string{command.EnvPrefix + "REPORT"},
			Usage:     "Write a YAML report to the given file, 'auto' derives its name from the input file",
			TakesFile: true,
		},
		&cli.StringSliceFlag{
			Name:    "skip",
			EnvVars: []string{command.EnvPrefix + "SKIP"},
			Usage:   "Glob patterns of company names to ignore",
		},
	}

	return &cli.Command{
		Name:  "batch",
		Usage: "Look up the founders of every company listed in a CSV file",
		Flags: append(flags, common.FinderFlags()...),
		Action: func(cliCtx *cli.Context) error {
			file := cliCtx.String("file")
			reportFile := cliCtx.String("report")

			skip := make([]glob.Glob, 0)
			for _, p := range cliCtx.StringSlice("skip") {
				pattern, err := glob.Compile(p)
				if err != nil {
					return errors.Wrapf(err, "invalid skip pattern '%s'", p)
				}

				skip = append(skip, pattern)
			}

			finder, closeFinder, err := common.NewFinder(cliCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			defer closeFinder()

			ctx := logx.WithAttrs(cliCtx.Context, slog.String("file", file))
			out := cliCtx.App.Writer

			fmt.Fprintln(out, "Welcome to the Company Founder Finder!")

			slog.InfoContext(ctx, "processing file")

			entries, err := founder.ProcessFile(ctx, file, finder, out, founder.WithSkip(skip...))

			result := report.Report{
				Source:      file,
				GeneratedAt: time.Now(),
				Entries:     entries,
			}

			// A failing batch is reported, not signaled through the exit code
			if err != nil {
				slog.DebugContext(ctx, "batch aborted", slog.String("error", fmt.Sprintf("%+v", err)))
				fmt.Fprintf(out, "An error occurred while processing the file: %s\n", err)
				result.Error = err.Error()
			}

			if reportFile == "" {
				return nil
			}

			if reportFile == "auto" {
				reportFile = report.Filename(file)
			}

			if err := writeReport(reportFile, result); err != nil {
				return errors.WithStack(err)
			}

			slog.InfoContext(ctx, "report written", slog.String("report", reportFile))

			return nil
		},
	}
}

func writeReport(filename string, r report.Report) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "could not create report file")
	}

	defer f.Close()

	if err := report.Write(f, r); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
