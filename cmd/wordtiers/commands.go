package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/domino14/wordtiers/config"
	"github.com/domino14/wordtiers/dbexport"
	"github.com/domino14/wordtiers/index"
	"github.com/domino14/wordtiers/report"
	"github.com/domino14/wordtiers/stats"
	"github.com/domino14/wordtiers/tiers"
)

var (
	// 0 means every tier
	tierFlag   int
	lengthFlag int
)

var trimCmd = &cobra.Command{
	Use:   "trim",
	Short: "Build the tiered word list from the configured sources",
	Args:  cobra.NoArgs,
	RunE:  runTrim,
}

var checkCmd = &cobra.Command{
	Use:   "check WORD",
	Short: "Tell whether a word is in the list at a difficulty",
	Args:  cobra.MatchAll(cobra.ExactArgs(1), nonEmptyWord),
	RunE:  runCheck,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick a random word of a given length",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

var searchCmd = &cobra.Command{
	Use:   "search PATTERN",
	Short: "Search words matching a pattern",
	Long: `Search words matching a pattern.

Letters and * give the word shape; * matches any letter.
Letters in () must fill some of the * positions; add * inside ()
to allow other letters as well. Letters in [] may not appear in
the * positions.

Examples:
  wordtiers search '*****'            # every five-letter word
  wordtiers search 'g*e**(su)'        # g?e?? using exactly s and u
  wordtiers search '*****(e*)[ast]'   # has an e, no a, s or t`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show word counts per tier and a length histogram",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var exportDBCmd = &cobra.Command{
	Use:   "export-db PATH",
	Short: "Write the tiered word list into a SQLite database",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportDB,
}

func init() {
	for _, c := range []*cobra.Command{checkCmd, randomCmd, searchCmd} {
		c.Flags().IntVarP(&tierFlag, "tier", "t", 0, "hardest tier allowed (default all)")
	}
	randomCmd.Flags().IntVarP(&lengthFlag, "length", "l", config.DefaultMinLength, "word length")

	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportDBCmd)
}

func runTrim(cmd *cobra.Command, args []string) error {
	res, err := tiers.Run(cfg)
	if err != nil {
		return err
	}
	digest, err := report.Digest(res.OutputPath)
	if err != nil {
		return err
	}
	rep := report.New(res, digest)
	rep.Log()
	if p := cfg.ReportPath(); p != "" {
		if err := rep.WriteFile(p); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}

func maxTier(idx *index.Index) int {
	if tierFlag <= 0 {
		return idx.MaxTier()
	}
	return tierFlag
}

var errEmptyWord = errors.New("word must not be empty")

func nonEmptyWord(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(args[0]) == "" {
		return errEmptyWord
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	idx, err := index.Get(cfg)
	if err != nil {
		return err
	}
	word := args[0]
	err = idx.Check(word, maxTier(idx))
	switch {
	case err == nil:
		tier, _ := idx.Tier(word)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (tier %d)\n", word, tier)
	case errors.Is(err, index.ErrTooDifficult):
		tier, _ := idx.Tier(word)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v (tier %d)\n", word, err, tier)
	case errors.Is(err, index.ErrNotFound):
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", word, err)
	default:
		return err
	}
	return nil
}

func runRandom(cmd *cobra.Command, args []string) error {
	idx, err := index.Get(cfg)
	if err != nil {
		return err
	}
	word, err := idx.Random(lengthFlag, maxTier(idx))
	if err != nil {
		return fmt.Errorf("no %d-letter word up to tier %d: %w", lengthFlag, maxTier(idx), err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), word)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	idx, err := index.Get(cfg)
	if err != nil {
		return err
	}
	res, err := idx.Search(args[0], maxTier(idx))
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if res.Count() == 0 {
		fmt.Fprintln(w, "Found 0 result(s).")
		return nil
	}
	fmt.Fprintf(w, "Found %d result(s):\n", res.Count())
	for _, word := range res.Words {
		fmt.Fprintln(w, word)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	entries, err := tiers.ReadFile(cfg.OutputPath())
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	perTier := lo.CountValuesBy(entries, func(e tiers.Entry) int { return e.Rank })
	ts := lo.Keys(perTier)
	slices.Sort(ts)
	fmt.Fprintf(w, "%d words\n", len(entries))
	for _, t := range ts {
		fmt.Fprintf(w, "  tier %d: %d\n", t, perTier[t])
	}

	lengths := lo.Map(entries, func(e tiers.Entry, _ int) int {
		return utf8.RuneCountInString(e.Word)
	})
	fmt.Fprintln(w, "word lengths:")
	return stats.LengthHistogram(w, lengths, 50)
}

func runExportDB(cmd *cobra.Command, args []string) error {
	entries, err := tiers.ReadFile(cfg.OutputPath())
	if err != nil {
		return err
	}
	return dbexport.Export(cmd.Context(), args[0], entries)
}
