package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/nowplaying-cli/nowplaying/adapter"
	"github.com/nowplaying-cli/nowplaying/config"
	"github.com/nowplaying-cli/nowplaying/cover"
	"github.com/nowplaying-cli/nowplaying/log"
	"github.com/nowplaying-cli/nowplaying/playground"
	"github.com/nowplaying-cli/nowplaying/site"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// opened is a loaded page with the adapter attached to it.
type opened struct {
	playground *playground.Playground
	site       site.Site
	url        string
}

func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// openSite loads the page named by args, or asks for a sample, and attaches the adapter the
// --site flag or the page URL selects.
func openSite(cmd *cobra.Command, args []string) (*opened, error) {
	page, err := pageArg(args)
	if err != nil {
		return nil, err
	}

	fixture := lo.Must(cmd.Flags().GetString("fixture"))
	p, err := playground.Load(page, fixture)
	if err != nil {
		return nil, err
	}

	if link := lo.Must(cmd.Flags().GetString("url")); link != "" {
		if err := p.Navigate(link); err != nil {
			return nil, fmt.Errorf("navigate: %w", err)
		}
	}

	kind, err := pickKind(lo.Must(cmd.Flags().GetString("site")), p)
	if err != nil {
		return nil, err
	}
	log.Infof("attaching %s to %s", kind, p.Page.URL())

	s, err := adapter.New(kind, adapter.Deps{
		Page:     p.Page,
		YouTube:  p.Host,
		Music:    p.Host,
		Session:  p.Host,
		Prober:   cover.FromConfig(),
		Settings: config.Load(),
	})
	if err != nil {
		return nil, err
	}

	return &opened{playground: p, site: s, url: p.Page.URL().String()}, nil
}

func pageArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !interactive() {
		return "", errors.New("page is required")
	}

	var name string
	err := survey.AskOne(&survey.Select{
		Message: "Pick a sample page",
		Options: playground.Samples(),
	}, &name)
	return name, err
}

func pickKind(name string, p *playground.Playground) (adapter.Kind, error) {
	if name != "" {
		kind, ok := adapter.Lookup(name)
		if !ok {
			return "", fmt.Errorf("%w: %q", adapter.ErrUnsupported, name)
		}
		return kind, nil
	}

	if kind, ok := adapter.Detect(p.Page.URL()); ok {
		return kind, nil
	}
	if !interactive() {
		return "", fmt.Errorf("%w: %s", adapter.ErrUnsupported, p.Page.URL())
	}

	var answer string
	err := survey.AskOne(&survey.Select{
		Message: fmt.Sprintf("Which player is %s?", p.Page.URL()),
		Options: lo.Map(adapter.Kinds(), func(k adapter.Kind, _ int) string {
			return k.Player()
		}),
	}, &answer)
	if err != nil {
		return "", err
	}

	kind, _ := adapter.Lookup(answer)
	return kind, nil
}
