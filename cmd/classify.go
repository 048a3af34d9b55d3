package main

import (
	"fmt"
	"os"
	"recap/pkg/domain"
	"recap/pkg/pacer"
	"recap/pkg/pacer/htmldoc"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
)

// encodePage writes page as JSON. Identifiers that could not be extracted are
// omitted.
func encodePage(e *jx.Encoder, page domain.Page) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("url", func(e *jx.Encoder) { e.Str(page.URL) })
		e.Field("kind", func(e *jx.Encoder) { e.Str(string(page.Kind)) })
		e.Field("pacer", func(e *jx.Encoder) { e.Bool(page.Kind.IsPacer()) })
		for _, f := range []struct{ key, value string }{
			{"court", page.Court},
			{"canonicalCourt", page.CanonicalCourt},
			{"courtAbbreviation", page.CourtAbbreviation},
			{"caseNumber", page.CaseNumber},
			{"documentId", page.DocumentID},
			{"baseName", page.BaseName},
		} {
			if f.value != "" {
				e.Field(f.key, func(e *jx.Encoder) { e.Str(f.value) })
			}
		}
		e.Field("appellate", func(e *jx.Encoder) { e.Bool(page.Appellate) })
	})
}

// classifyCommand constructs the 'classify' subcommand that classifies a URL
// offline, optionally with the saved HTML of the page.
func classifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <url>",
		Short: "Classifies a PACER URL and prints the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			htmlPath, _ := cmd.Flags().GetString("html")
			referrers, _ := cmd.Flags().GetStringSlice("referrer")

			var doc pacer.InputSource
			if htmlPath != "" {
				f, err := os.Open(htmlPath)
				if err != nil {
					return fmt.Errorf("could not open html file: %w", err)
				}
				defer f.Close()

				parsed, err := htmldoc.Parse(f)
				if err != nil {
					return err
				}
				doc = parsed
			}

			e := jx.GetEncoder()
			defer jx.PutEncoder(e)
			e.SetIdent(2)
			encodePage(e, pacer.Classify(args[0], doc, referrers...))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), e.String())

			return err
		},
	}

	cmd.Flags().String("html", "", "Path to the saved HTML of the page")
	cmd.Flags().StringSlice("referrer", nil, "Referrer URL consulted for the case number (repeatable)")

	return cmd
}
