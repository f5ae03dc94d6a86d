package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/reloop/catalog"
	"github.com/s0up4200/reloop/filter"
	"github.com/s0up4200/reloop/tmdb"
)

var formatter catalog.MovieFormatter = catalog.NewConsoleFormatter()

var (
	// Command flags
	page         int
	filterExpr   string
	outputFormat string
	showOverview bool
	showImages   bool
)

// moviesCmd represents the movies command
var moviesCmd = &cobra.Command{
	Use:       "movies <category>",
	Short:     "List one page of a movie category",
	Long:      `List one page of now_playing, popular, top_rated or upcoming movies from TMDB.`,
	ValidArgs: categoryNames(),
	Args:      cobra.ExactArgs(1),
	Example: `  reloop movies popular
  reloop movies top-rated --page 2 --filter 'Year >= 2000 and Rating > 8'
  reloop movies upcoming --output json`,
	PreRunE: initializeApp,
	RunE:    runMovies,
}

// homeCmd represents the home command
var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the first page of every category",
	Long: `Fetch the first page of all four categories concurrently. The command fails
if any of the fetches fails.`,
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runHome,
}

func init() {
	rootCmd.AddCommand(moviesCmd)
	rootCmd.AddCommand(homeCmd)

	moviesCmd.Flags().IntVarP(&page, "page", "p", 0, "page number (default is the first page)")

	for _, c := range []*cobra.Command{moviesCmd, homeCmd} {
		c.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'Rating > 7 and hasPoster()'")
		c.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format (text, json, yaml)")
		c.Flags().BoolVar(&showOverview, "overview", false, "show movie overviews in text output")
		c.Flags().BoolVar(&showImages, "images", false, "show poster and backdrop paths in text output")
	}
}

func runMovies(cmd *cobra.Command, args []string) error {
	category, err := catalog.ParseCategory(args[0])
	if err != nil {
		return err
	}
	if err := checkOutputFormat(); err != nil {
		return err
	}

	f, err := compileFilter()
	if err != nil {
		return err
	}

	result, err := service.Fetch(cmd.Context(), category, page)
	if err != nil {
		return upstreamHint(err)
	}
	result = filter.ApplyPage(f, result)

	if outputFormat != "text" {
		return writeStructured(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatter.FormatPage(category, result, formatOptions()))
	if result.HasMorePages() {
		fmt.Fprintf(out, "More results: reloop movies %s --page %d\n", category, result.Page+1)
	}
	return nil
}

func runHome(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(); err != nil {
		return err
	}

	f, err := compileFilter()
	if err != nil {
		return err
	}

	home, err := service.Home(cmd.Context())
	if err != nil {
		return upstreamHint(err)
	}
	home = filter.ApplyHome(f, home)

	if outputFormat != "text" {
		return writeStructured(cmd.OutOrStdout(), home)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHome(home, formatOptions()))
	return err
}

// upstreamHint points at the setting to check when TMDB rejects the key or
// does not know the path
func upstreamHint(err error) error {
	var terr *tmdb.TransportError
	if !errors.As(err, &terr) {
		return err
	}
	switch {
	case terr.IsUnauthorized():
		return fmt.Errorf("%w (check tmdb.api_key)", err)
	case terr.IsNotFound():
		return fmt.Errorf("%w (check tmdb.base_url)", err)
	}
	return err
}

func compileFilter() (filter.Filter, error) {
	if strings.TrimSpace(filterExpr) == "" {
		return nil, nil
	}
	logger.Debug().Str("filter", filterExpr).Msg("Compiling filter")

	f, err := filter.CompileFilter(filterExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

func checkOutputFormat() error {
	switch outputFormat {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (must be text, json or yaml)", outputFormat)
	}
}

func writeStructured(w io.Writer, v any) error {
	if outputFormat == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func formatOptions() catalog.FormatOptions {
	return catalog.FormatOptions{
		ShowOverview: showOverview,
		ShowImages:   showImages,
	}
}

func categoryNames() []string {
	categories := catalog.Categories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.String())
	}
	return names
}
