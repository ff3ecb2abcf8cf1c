// Package icon renders the playback symbols in the icon variant the user picked.
package icon

import (
	"github.com/nowplaying-cli/nowplaying/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies one symbol.
type Icon int

const (
	Playing Icon = iota
	Paused
	Stopped
	Liked
	Disliked
	RepeatAll
	RepeatOne
	Shuffle
	Volume
	Muted
	Chapter
	Success
	Fail
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Playing:   {emoji: "▶️", nerd: "", plain: ">", kaomoji: "ヽ(>∀<☆)ノ", squares: "▶"},
	Paused:    {emoji: "⏸️", nerd: "", plain: "||", kaomoji: "(￣o￣) zzZ", squares: "⏸"},
	Stopped:   {emoji: "⏹️", nerd: "", plain: "[]", kaomoji: "(・_・)", squares: "■"},
	Liked:     {emoji: "👍", nerd: "", plain: "+1", kaomoji: "(b ᵔ▽ᵔ)b", squares: "▲"},
	Disliked:  {emoji: "👎", nerd: "", plain: "-1", kaomoji: "(╥﹏╥)", squares: "▼"},
	RepeatAll: {emoji: "🔁", nerd: "\U000f0456", plain: "rep", kaomoji: "(↻)", squares: "⟳"},
	RepeatOne: {emoji: "🔂", nerd: "\U000f0458", plain: "rep1", kaomoji: "(↻1)", squares: "①"},
	Shuffle:   {emoji: "🔀", nerd: "\U000f049d", plain: "shuf", kaomoji: "(~‾▿‾)~", squares: "⤮"},
	Volume:    {emoji: "🔊", nerd: "", plain: "vol", kaomoji: "♪~(´ε` )", squares: "◉"},
	Muted:     {emoji: "🔇", nerd: "", plain: "mute", kaomoji: "(-_-)", squares: "◎"},
	Chapter:   {emoji: "📑", nerd: "", plain: "#", kaomoji: "φ(..)", squares: "▣"},
	Success:   {emoji: "✅", nerd: "", plain: "ok", kaomoji: "(ﾉ◕ヮ◕)ﾉ*:･ﾟ✧", squares: "▪"},
	Fail:      {emoji: "💀", nerd: "", plain: "X", kaomoji: "(×_×)", squares: "□"},
}

// Get retrieves the visual representation for the receiver Def based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	if d, ok := icons[i]; ok {
		return d.Get()
	}
	return ""
}
