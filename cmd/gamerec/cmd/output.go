package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rushteam/gamerec/core"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeResult(w io.Writer, res *core.Result) error {
	if jsonOutput {
		return writeJSON(w, res)
	}
	q := res.Query
	switch q.Kind {
	case core.QuerySimilar:
		fmt.Fprintf(w, "Similar to %q", q.Resolved)
		if q.Tier != "exact" {
			fmt.Fprintf(w, " (%s match for %q, ratio %.2f)", q.Tier, q.Name, q.Ratio)
		}
		fmt.Fprintln(w)
		if len(q.Alternatives) > 0 {
			fmt.Fprintf(w, "Other close names: %s\n", strings.Join(q.Alternatives, ", "))
		}
	case core.QueryProfile:
		fmt.Fprintf(w, "Profile: %s\n", q.Document)
	}

	if len(res.Recommendations) == 0 {
		fmt.Fprintln(w, "No recommendations.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSCORE\tNAME\tGENRES\tPLATFORMS\tMODES")
	for i, r := range res.Recommendations {
		fmt.Fprintf(tw, "%d\t%.4f\t%s\t%s\t%s\t%s\n", i+1, r.Score, r.Item.Name,
			strings.Join(r.Item.Genres, ", "),
			strings.Join(r.Item.Platforms, ", "),
			strings.Join(r.Item.Modes, ", "))
	}
	return tw.Flush()
}

func writeItems(w io.Writer, items []*core.CatalogItem) error {
	if jsonOutput {
		return writeJSON(w, items)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGENRES\tPLATFORMS\tMODES")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", it.ID, it.Name,
			strings.Join(it.Genres, ", "),
			strings.Join(it.Platforms, ", "),
			strings.Join(it.Modes, ", "))
	}
	return tw.Flush()
}

func writeInfo(w io.Writer, info core.SystemInfo) error {
	if jsonOutput {
		return writeJSON(w, info)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ready\t%v\n", info.Ready)
	fmt.Fprintf(tw, "items\t%d\n", info.ItemCount)
	fmt.Fprintf(tw, "vocabulary\t%d\n", info.VocabularySize)
	fmt.Fprintf(tw, "matrix\t%dx%d\n", info.MatrixShape[0], info.MatrixShape[1])
	fmt.Fprintf(tw, "excluded\t%d\n", info.Excluded)
	fmt.Fprintf(tw, "build_id\t%s\n", info.BuildID)
	fmt.Fprintf(tw, "fingerprint\t%s\n", info.Fingerprint)
	fmt.Fprintf(tw, "built_at\t%s\n", info.BuiltAt.Format("2006-01-02 15:04:05"))
	return tw.Flush()
}

// writeNotFound 在未找到时列出近似名称。
func writeNotFound(w io.Writer, nf *core.NotFoundError) {
	if len(nf.Suggestions) == 0 {
		return
	}
	fmt.Fprintln(w, "Did you mean:")
	for _, s := range nf.Suggestions {
		fmt.Fprintf(w, "  %s\n", s)
	}
}
