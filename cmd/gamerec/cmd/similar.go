package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rushteam/gamerec/core"
)

var (
	similarTop      int
	similarMinScore float64
)

var similarCmd = &cobra.Command{
	Use:   "similar <name>",
	Short: "List games most similar to a given game",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSimilar,
}

func init() {
	similarCmd.Flags().IntVarP(&similarTop, "top", "n", 0, "number of results (default ranker.similar_top_n)")
	similarCmd.Flags().Float64Var(&similarMinScore, "min-score", 0, "drop results scoring below this value (default ranker.min_score)")
}

func runSimilar(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	top := a.settings.Ranker.SimilarTopN
	if cmd.Flags().Changed("top") {
		top = similarTop
	}
	var minScore *float64
	if cmd.Flags().Changed("min-score") {
		minScore = &similarMinScore
	} else if a.settings.Ranker.MinScore > 0 {
		v := a.settings.Ranker.MinScore
		minScore = &v
	}

	res, err := a.engine.RecommendSimilarTo(cmd.Context(), strings.Join(args, " "), top, minScore)
	if err != nil {
		var nf *core.NotFoundError
		if errors.As(err, &nf) && !jsonOutput {
			writeNotFound(cmd.ErrOrStderr(), nf)
		}
		return err
	}
	return writeResult(cmd.OutOrStdout(), res)
}
