package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apikit/internal/core/domain"
	"github.com/custodia-labs/apikit/internal/util"
)

var (
	searchFile  string
	searchSplit bool
	searchLoose bool
	searchLimit int
	searchKinds string
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Fuzzy search requests, collections and workspaces",
	Long: `Ranks items by how well they fuzzy match the query.

Items are read from a TOML file given with --file, or one per line from
standard input. With word splitting every word of the query must match
some field of an item unless --loose is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchFile, "file", "f", "", "TOML file with [[items]] to search")
	searchCmd.Flags().BoolVar(&searchSplit, "split", true, "match each query word separately")
	searchCmd.Flags().BoolVar(&searchLoose, "loose", false, "accept items matching any word")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results (0 for all)")
	searchCmd.Flags().StringVar(&searchKinds, "kind", "", "comma-separated item kinds to include")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts, err := searchOptions(cmd)
	if err != nil {
		return err
	}

	items, err := readItems(cmd.InOrStdin())
	if err != nil {
		return err
	}

	results, err := searchService.Search(cmd.Context(), args[0], items, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	outputSearchTable(cmd, results)
	return nil
}

// searchOptions starts from the configured settings and applies any flags
// the user set explicitly.
func searchOptions(cmd *cobra.Command) (domain.SearchOptions, error) {
	opts := settings.Search.Options()

	flags := cmd.Flags()
	if flags.Changed("split") {
		opts.SplitOnSpace = searchSplit
	}
	if flags.Changed("loose") {
		opts.Loose = searchLoose
	}
	if flags.Changed("limit") {
		if searchLimit < 0 {
			return opts, fmt.Errorf("limit must not be negative: %w", domain.ErrInvalidInput)
		}
		opts.Limit = searchLimit
	}

	if searchKinds != "" {
		for _, name := range strings.Split(searchKinds, ",") {
			kind, err := domain.ParseItemKind(name)
			if err != nil {
				return opts, fmt.Errorf("kind %q: %w", name, err)
			}
			opts.Kinds = append(opts.Kinds, kind)
		}
	}
	return opts, nil
}

func readItems(stdin io.Reader) ([]domain.Item, error) {
	if searchFile != "" {
		if loadItems == nil {
			return nil, errors.New("item loader not configured")
		}
		items, err := loadItems(searchFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load items: %w", err)
		}
		return items, nil
	}

	var items []domain.Item
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, domain.Item{
			ID:   strconv.Itoa(len(items) + 1),
			Kind: domain.ItemKindRequest,
			Name: line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.RankedItem) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.RankedItem) {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return
	}

	cmd.Printf("%s:\n\n", util.Pluralize(len(results), "result"))
	for i := range results {
		r := &results[i]
		// Format: [N] kind  highlighted (score)
		cmd.Printf("  [%d] %-10s %s (%d)\n", i+1, r.Item.Kind, display(r), r.Match.Score)
	}
}

// display returns the text to show for a result. Positions are relative to
// the text they matched in, so only single-text items are highlighted.
func display(r *domain.RankedItem) string {
	texts := r.Item.SearchTexts()
	if len(texts) == 1 {
		return highlight(texts[0], r.Match.Indexes)
	}
	return r.Match.Target
}

// highlight wraps the runes at the given positions in brackets.
func highlight(text string, indexes []int) string {
	marked := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		marked[i] = true
	}

	var b strings.Builder
	open := false
	for i, r := range []rune(text) {
		switch {
		case marked[i] && !open:
			b.WriteByte('[')
			open = true
		case !marked[i] && open:
			b.WriteByte(']')
			open = false
		}
		b.WriteRune(r)
	}
	if open {
		b.WriteByte(']')
	}
	return b.String()
}
