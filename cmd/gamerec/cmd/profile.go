package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rushteam/gamerec/core"
)

var (
	profileGenres    []string
	profilePlatforms []string
	profileModes     []string
	profileTop       int
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Recommend games for a set of preferred genres, platforms and modes",
	Example: `  gamerec profile --genre RPG --genre Ação --platform PC --mode Single-player
  gamerec profile --genre "FPS,Battle Royale" --top 3 --json`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

func init() {
	f := profileCmd.Flags()
	f.StringSliceVarP(&profileGenres, "genre", "g", nil, "preferred genre (repeatable or comma separated)")
	f.StringSliceVarP(&profilePlatforms, "platform", "p", nil, "preferred platform")
	f.StringSliceVarP(&profileModes, "mode", "m", nil, "preferred play mode")
	f.IntVarP(&profileTop, "top", "n", 0, "number of results (default ranker.top_n)")
}

func runProfile(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	top := a.settings.Ranker.TopN
	if cmd.Flags().Changed("top") {
		top = profileTop
	}
	res, err := a.engine.RecommendForProfile(cmd.Context(), core.Profile{
		Genres:    profileGenres,
		Platforms: profilePlatforms,
		Modes:     profileModes,
	}, top)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), res)
}
