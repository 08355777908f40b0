package infobox

import (
	"fmt"
	"strings"

	"github.com/bornholm/founderfinder/internal/command"
	"github.com/bornholm/founderfinder/internal/command/common"
	"github.com/bornholm/founderfinder/pkg/infobox"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.yaml.in/yaml/v3"
)

const (
	formatYAML     = "yaml"
	formatMarkdown = "markdown"
)

func Infobox() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Value:   formatYAML,
			Aliases: []string{"F"},
			EnvVars: []string{command.EnvPrefix + "FORMAT"},
			Usage:   "Output format (yaml, markdown)",
		},
	}

	return &cli.Command{
		Name:      "infobox",
		Usage:     "Print the infobox of the page found for the given company",
		ArgsUsage: "<company>",
		Flags:     append(flags, common.FinderFlags()...),
		Action: func(cliCtx *cli.Context) error {
			company := strings.TrimSpace(strings.Join(cliCtx.Args().Slice(), " "))
			if company == "" {
				return errors.New("a company name is required")
			}

			format := cliCtx.String("format")
			if format != formatYAML && format != formatMarkdown {
				return errors.Errorf("unknown format '%s'", format)
			}

			finder, closeFinder, err := common.NewFinder(cliCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			defer closeFinder()

			pageURL, body, err := finder.Page(cliCtx.Context, company)
			if err != nil {
				return errors.WithStack(err)
			}

			defer body.Close()

			parser := infobox.NewHTMLParser()
			out := cliCtx.App.Writer

			if format == formatMarkdown {
				markdown, err := parser.RenderMarkdown(body)
				if err != nil {
					return errors.Wrapf(err, "could not render infobox of '%s'", pageURL)
				}

				fmt.Fprintf(out, "<!-- %s -->\n\n%s\n", pageURL, markdown)

				return nil
			}

			fields, err := parser.Parse(body)
			if err != nil {
				return errors.Wrapf(err, "could not parse infobox of '%s'", pageURL)
			}

			document := struct {
				URL    string         `yaml:"url"`
				Fields infobox.Fields `yaml:"fields"`
			}{
				URL:    pageURL,
				Fields: fields,
			}

			encoder := yaml.NewEncoder(out)
			encoder.SetIndent(2)

			if err := encoder.Encode(document); err != nil {
				return errors.WithStack(err)
			}

			return errors.WithStack(encoder.Close())
		},
	}
}
