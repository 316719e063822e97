// Package main provides the CLI entry point for gridsheet-go.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.alis.build/alog"

	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet"
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/engine"
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/models"
	"github.com/skanda-gowda/gridsheet-go/pkg/gridsheet/output"
)

var (
	sheetName  string
	noHeader   bool
	pretty     bool
	verbose    bool
	outputPath string

	rows int
	cols int

	evalOp     string
	rangeRef   string
	startLabel string
	endLabel   string

	transformOp string
	findText    string
	replaceText string

	styleSpecs   []string
	baselineSpec string
	chartKind    string
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridsheet",
		Short: "Evaluate, transform and style spreadsheet grids",
		Long: `gridsheet-go loads a sheet of an xlsx workbook as a grid of cells,
evaluates range aggregates, applies data quality transforms and writes
range styles back to xlsx.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				alog.SetLevel(alog.LevelDebug)
			} else {
				alog.SetLevel(alog.LevelWarning)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Sheet to read and write (default: first sheet)")
	rootCmd.PersistentFlags().BoolVar(&noHeader, "no-header", false, "Treat the first row as data, not column captions")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages to stderr")

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Write a blank grid to a new workbook",
		Args:  cobra.NoArgs,
		RunE:  runNew,
	}
	newCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path")
	newCmd.Flags().IntVar(&rows, "rows", gridsheet.DefaultRows, "Number of rows")
	newCmd.Flags().IntVar(&cols, "cols", gridsheet.DefaultCols, "Number of columns (1-26)")
	newCmd.MarkFlagRequired("output")

	evalCmd := &cobra.Command{
		Use:   "eval [input.xlsx]",
		Short: "Evaluate an aggregate over a cell range",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}
	evalCmd.Flags().StringVar(&evalOp, "op", "SUM", "Aggregate: SUM, AVERAGE, MAX, MIN, COUNT")
	evalCmd.Flags().StringVar(&rangeRef, "range", "", "Cell range such as A1:B3")
	evalCmd.Flags().StringVar(&startLabel, "start", "", "Start cell label")
	evalCmd.Flags().StringVar(&endLabel, "end", "", "End cell label")
	evalCmd.MarkFlagsMutuallyExclusive("range", "start")
	evalCmd.MarkFlagsMutuallyExclusive("range", "end")

	transformCmd := &cobra.Command{
		Use:   "transform [input.xlsx]",
		Short: "Apply a data quality transform to the whole grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runTransform,
	}
	transformCmd.Flags().StringVar(&transformOp, "op", "", "Transform: TRIM, UPPER, LOWER, REMOVE_DUPLICATES, FIND_AND_REPLACE")
	transformCmd.Flags().StringVar(&findText, "find", "", "Regular expression to find (FIND_AND_REPLACE)")
	transformCmd.Flags().StringVar(&replaceText, "replace", "", `Replacement text; \1 or \g<name> refers to a group, $ is literal (FIND_AND_REPLACE)`)
	transformCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path (default: print the grid as JSON)")
	transformCmd.MarkFlagRequired("op")

	styleCmd := &cobra.Command{
		Use:   "style [input.xlsx]",
		Short: "Paint range styles and write the styled workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runStyle,
	}
	styleCmd.Flags().StringArrayVar(&styleSpecs, "style", nil, `Range style "A1:B2,SIZE_PX,COLOR,normal|bold|italic" (repeatable, later wins)`)
	styleCmd.Flags().StringVar(&baselineSpec, "baseline", "", `Style for unpainted cells "SIZE_PX,COLOR,normal|bold|italic"`)
	styleCmd.Flags().StringVar(&chartKind, "chart", "none", "Column totals chart: none, bar, line, area")
	styleCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path")
	styleCmd.MarkFlagRequired("output")

	infoCmd := &cobra.Command{
		Use:   "info [input.xlsx]",
		Short: "Describe a grid: size, used range and column totals",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	rootCmd.AddCommand(newCmd, evalCmd, transformCmd, styleCmd, infoCmd)
	return rootCmd
}

func options() gridsheet.Options {
	opts := gridsheet.DefaultOptions()
	opts.Sheet = sheetName
	if noHeader {
		header := false
		opts.ReadHeader = &header
	}
	return opts
}

func load(ctx context.Context, opts gridsheet.Options, path string) (*gridsheet.Session, error) {
	session := gridsheet.NewSession(opts)
	if err := session.Load(ctx, path); err != nil {
		if errors.Is(err, gridsheet.ErrFileNotFound) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}
	return session, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runNew(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	session := gridsheet.NewSession(options())
	if err := session.Reset(ctx, rows, cols); err != nil {
		return err
	}
	if err := session.Save(ctx, outputPath); err != nil {
		return err
	}
	return printJSON(cmd, session.Summary())
}

func runEval(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	opts := options()

	start, end, err := evalRange(&opts)
	if err != nil {
		return err
	}
	session, err := load(ctx, opts, args[0])
	if err != nil {
		return err
	}

	// Unknown names still go to the engine, which reports them as invalid.
	op, _ := engine.ParseAggregate(evalOp)
	res := session.Evaluate(ctx, op, start, end)
	if err := printJSON(cmd, output.NewEvalReport(op, start, end, res)); err != nil {
		return err
	}
	if !res.OK() {
		return errors.New(res.String())
	}
	return nil
}

// evalRange picks the label pair from --range or --start/--end. A sheet
// prefix on --range selects the sheet unless --sheet is set.
func evalRange(opts *gridsheet.Options) (start, end string, err error) {
	if rangeRef == "" {
		if startLabel == "" || endLabel == "" {
			return "", "", errors.New("either --range or both --start and --end are required")
		}
		return startLabel, endLabel, nil
	}
	sheet, start, end, err := parseRange(rangeRef)
	if err != nil {
		return "", "", err
	}
	if sheet != "" && opts.Sheet == "" {
		opts.Sheet = sheet
	}
	return start, end, nil
}

func runTransform(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	session, err := load(ctx, options(), args[0])
	if err != nil {
		return err
	}

	op, ok := engine.ParseTransform(transformOp)
	if !ok {
		alog.Warnf(ctx, "unknown transform %q: grid left unchanged", transformOp)
	}
	session.Transform(ctx, op, findText, replaceText)

	if outputPath == "" {
		return printJSON(cmd, output.NewGridView(session.Grid()))
	}
	if err := session.Save(ctx, outputPath); err != nil {
		return err
	}
	return printJSON(cmd, session.Summary())
}

func runStyle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	opts := options()

	kind, ok := models.ParseChartKind(chartKind)
	if !ok {
		return fmt.Errorf("invalid chart: %s (must be none, bar, line or area)", chartKind)
	}
	opts.Chart = kind
	if baselineSpec != "" {
		baseline, err := parseBaseline(baselineSpec)
		if err != nil {
			return err
		}
		opts.Baseline = &baseline
	}

	decls := make([]styleDecl, 0, len(styleSpecs))
	for _, spec := range styleSpecs {
		decl, err := parseStyleDecl(spec)
		if err != nil {
			return err
		}
		decls = append(decls, decl)
	}

	session, err := load(ctx, opts, args[0])
	if err != nil {
		return err
	}
	for _, decl := range decls {
		if err := session.ApplyStyle(ctx, decl.start, decl.end, decl.style); err != nil {
			return fmt.Errorf("style %s:%s: %w", decl.start, decl.end, err)
		}
	}

	if err := session.Save(ctx, outputPath); err != nil {
		return err
	}
	return printJSON(cmd, output.StyledCells(session.ResolveStyles(ctx)))
}

func runInfo(cmd *cobra.Command, args []string) error {
	session, err := load(cmd.Context(), options(), args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, session.Summary())
}
