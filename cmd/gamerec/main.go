// gamerec 是基于 TF-IDF 内容相似度的游戏推荐命令行工具。
package main

import (
	"os"

	"github.com/rushteam/gamerec/cmd/gamerec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
