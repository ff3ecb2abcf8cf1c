package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/nowplaying-cli/nowplaying/adapter"
	"github.com/nowplaying-cli/nowplaying/color"
	"github.com/nowplaying-cli/nowplaying/constant"
	"github.com/nowplaying-cli/nowplaying/style"
	"github.com/nowplaying-cli/nowplaying/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify(cmd.Context(), cmd.OutOrStdout())

		players := lo.Map(adapter.Kinds(), func(k adapter.Kind, _ int) string {
			return k.Player()
		})

		rows := [][2]string{
			{"Version", constant.Version},
			{"Git Commit", constant.Revision},
			{"Build Date", strings.TrimSpace(constant.BuiltAt)},
			{"Built By", constant.BuiltBy},
			{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
			{"Players", strings.Join(players, ", ")},
		}

		cmd.Printf("%s %s\n\n", style.Fg(color.Purple)("▇▇▇"), style.Fg(color.Purple)(constant.App))
		for _, row := range rows {
			cmd.Printf("  %s %s\n", style.Faint(fmt.Sprintf("%-12s", row[0])), style.Bold(row[1]))
		}
	},
}
