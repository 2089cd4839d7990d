package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/prettydoc/internal/ui/pretty"
	"github.com/yaklabco/prettydoc/pkg/config"
	"github.com/yaklabco/prettydoc/pkg/doc"
	"github.com/yaklabco/prettydoc/pkg/render"
)

// scenario is a built-in document shown by the demo command.
type scenario struct {
	name string
	doc  *doc.Doc
}

// scenarios returns the built-in documents in display order.
func scenarios() []scenario {
	one := doc.Text("1")
	spread := doc.Align(doc.Spread("lol", "very long thing", "toto"))
	args := doc.SoftBreak().Cat("1,").Line("2,").Line("3")

	return []scenario{
		{"spaces", one.Spaced("+").Spaced("2")},
		{"soft-line", one.Spaced("+").Line("2")},
		{"group", doc.Group(one.Spaced("+").Line("2"))},
		{"hard-line", doc.Group(one.Spaced("+").Hard("2"))},
		{"spread", doc.Cat("println(", spread, ")")},
		{"spread-own-line", doc.Group(doc.Cat("println(", spread).Soft(")"))},
		{"nest-fixed", doc.Cat("math.min(", doc.Nest(2, args)).Line(")").Spaced("+").Spaced("10")},
		{"nest-aligned", doc.Cat("math.min(", doc.Align(args)).Line(")").Spaced("+").Spaced("10")},
		{"fill", doc.Cat("words: ", doc.Align(doc.FillWords(
			"a soft line inside fill breaks only when the next word does not fit")))},
	}
}

//nolint:gochecknoglobals // Default demo widths used by the flag definition
var defaultDemoWidths = []int{80, 20, 5}

func newDemoCommand() *cobra.Command {
	var widths []int

	cmd := &cobra.Command{
		Use:   "demo [SCENARIO...]",
		Short: "Render the built-in scenarios at several widths",
		Long: `Render the built-in scenarios at several page widths, each under a
column ruler, to show how groups, nesting and alignment respond to the width.

Scenarios: spaces, soft-line, group, hard-line, spread, spread-own-line,
nest-fixed, nest-aligned, fill.

Examples:
  prettydoc demo                      # Every scenario at 80, 20 and 5 columns
  prettydoc demo spread --widths 35,5 # One scenario at two widths`,
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := cmd.Flags().GetString("color")
			if err != nil {
				color = config.ColorAuto
			}
			return runDemo(cmd.OutOrStdout(), color, args, widths)
		},
	}

	cmd.Flags().IntSliceVar(&widths, "widths", defaultDemoWidths, "page widths to render at")

	return cmd
}

func runDemo(w io.Writer, color string, names []string, widths []int) error {
	selected, err := selectScenarios(names)
	if err != nil {
		return err
	}

	for _, width := range widths {
		if width < 1 {
			return fmt.Errorf("invalid width %d: must be at least 1", width)
		}
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(color, w))
	for _, s := range selected {
		for _, width := range widths {
			if err := writeScenario(w, styles, s, width); err != nil {
				return err
			}
		}
	}
	return nil
}

// selectScenarios returns the scenarios named, or all of them.
func selectScenarios(names []string) ([]scenario, error) {
	all := scenarios()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]scenario, len(all))
	for _, s := range all {
		byName[s.name] = s
	}

	selected := make([]scenario, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// writeScenario renders s at width under a heading and a ruler as wide as
// the page.
func writeScenario(w io.Writer, styles *pretty.Styles, s scenario, width int) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n\n",
		styles.Heading.Render(fmt.Sprintf("%s (width %d)", s.name, width)),
		styles.FormatRuler(width),
		render.Render(s.doc, width),
	)
	return err
}
