package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const prompt = "trapseq> "

func newREPLCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read commands interactively, keeping computed scans between lines",
		Long: "repl reads one command per line, for example `subword 5` or\n" +
			"`collinear 0 48 13 --algo naive`. Global flags given to repl apply to\n" +
			"every line unless the line overrides them. `exit` or `quit` ends the session.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var base []string
			cmd.InheritedFlags().VisitAll(func(f *pflag.Flag) {
				if f.Changed {
					base = append(base, "--"+f.Name+"="+f.Value.String())
				}
			})

			ctx := cmd.Context()
			sc := bufio.NewScanner(a.in)
			for {
				fmt.Fprint(a.out, prompt)
				if !sc.Scan() {
					fmt.Fprintln(a.out)

					return sc.Err()
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				fields := strings.Fields(sc.Text())
				if len(fields) == 0 {
					continue
				}
				if fields[0] == "exit" || fields[0] == "quit" {
					return nil
				}
				a.line(append(base[:len(base):len(base)], fields...))
			}
		},
	}
}

// line runs one REPL line on a fresh command tree. Errors are reported and
// the session continues.
func (a *app) line(args []string) {
	sub := &app{
		in:         a.in,
		out:        a.out,
		errOut:     a.errOut,
		configPath: a.configPath,
		engines:    a.engines,
		inREPL:     true,
	}
	cmd := newRootCommand(sub)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		report(sub, err)
	}
}
