// Package cmd 实现 gamerec 命令行的根命令与各子命令。
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rushteam/gamerec/core"
)

var (
	configPath  string
	catalogPath string
	jsonOutput  bool
)

var rootCmd = &cobra.Command{
	Use:           "gamerec",
	Short:         "gamerec: content-based game recommender",
	Long:          "Recommends games by TF-IDF similarity over genre, platform and play-mode tags.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute 以进程参数运行根命令。
func Execute() error {
	return ExecuteContext(context.Background(), os.Args[1:])
}

// ExecuteContext 以给定参数运行命令，错误打印到 stderr。
func ExecuteContext(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
	}
	return err
}

// ExitCode 把错误映射为进程退出码：2 参数/查询问题，3 未找到，1 其它。
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case core.IsNotFound(err):
		return 3
	case core.IsInvalidQuery(err), core.IsInvalidInput(err), core.IsSchema(err):
		return 2
	default:
		var de *core.DomainError
		if errors.As(err, &de) && de.Code == core.ErrorCodeNotSupported {
			return 2
		}
		return 1
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default $GAMEREC_CONFIG)")
	pf.StringVar(&catalogPath, "catalog", "", "catalog file (.csv, .tsv, .xlsx); overrides catalog.path")
	pf.BoolVar(&jsonOutput, "json", false, "print results as JSON")

	rootCmd.AddCommand(similarCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
}
