// Package cmd implements the command-line interface for nowplaying.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/nowplaying-cli/nowplaying/adapter"
	"github.com/nowplaying-cli/nowplaying/color"
	"github.com/nowplaying-cli/nowplaying/config"
	"github.com/nowplaying-cli/nowplaying/constant"
	"github.com/nowplaying-cli/nowplaying/icon"
	"github.com/nowplaying-cli/nowplaying/key"
	"github.com/nowplaying-cli/nowplaying/log"
	"github.com/nowplaying-cli/nowplaying/playground"
	"github.com/nowplaying-cli/nowplaying/style"
	"github.com/nowplaying-cli/nowplaying/tui"
	"github.com/nowplaying-cli/nowplaying/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionSamples(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return playground.Samples(), cobra.ShellCompDirectiveDefault
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("fixture", "F", "", "Fixture with the host state for the page (defaults to the page path with a .json extension)")
	rootCmd.PersistentFlags().StringP("site", "S", "", "Adapter to use instead of detecting it from the page URL")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("site", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(adapter.Kinds(), func(k adapter.Kind, _ int) string {
			return k.String()
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	rootCmd.PersistentFlags().StringP("url", "U", "", "Navigate the page to this URL before attaching")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(context.Background(), cmd.OutOrStdout())
	})
}

// rootCmd watches a player page in the terminal.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [page]",
	Short: "Watch and control web media players from the terminal",
	Long: style.New().Bold(true).Foreground(color.HiPurple).Render(constant.App) + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Watch and control YouTube and YouTube Music players from the terminal"),
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionSamples,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.SetContext(cmd.Context())
			versionCmd.Run(versionCmd, args)
			return
		}

		o, err := openSite(cmd, args)
		handleErr(err)

		options := tui.Options{
			Site:     o.site,
			Interval: 2 * config.Load().PollInterval(),
			Advance:  o.playground.Advance,
		}
		handleErr(tui.Run(cmd.Context(), &options))
	},
}

// Execute runs the command line until it finishes or the process is interrupted.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
