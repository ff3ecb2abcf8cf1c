package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/nowplaying-cli/nowplaying/color"
	"github.com/nowplaying-cli/nowplaying/constant"
	"github.com/nowplaying-cli/nowplaying/key"
	"github.com/nowplaying-cli/nowplaying/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is one registered setting with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

var fields = []Field{
	{key.UpdateFrequencyMs2, 250, "Base update frequency in milliseconds.\nAdapters refresh their cached state at half of this interval"},
	{key.YouTubeSkipChapters, true, "Make next/previous on YouTube jump between chapters when the video has them"},
	{key.CoverProbe, true, "Probe YouTube Music thumbnails for a higher resolution cover"},
	{key.CoverCache, true, "Remember probed cover resolutions between runs"},
	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, nerd (nerd-font required), plain, kaomoji, squares"},
	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},
	{key.CliColored, true, "Enable colored CLI output"},
	{key.CliVersionCheck, false, "Check for a newer release when showing help or the version"},
}

// Default maps every registered key to its field.
var Default = lo.KeyBy(fields, func(f Field) string { return f.Key })

// EnvExposed lists the keys bound to environment variables.
var EnvExposed = lo.Map(fields, func(f Field, _ int) string { return f.Key })

func init() {
	if len(Default) != len(fields) {
		panic("duplicate config key")
	}
}

// Env returns the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Type names the kind of value the field holds.
func (f *Field) Type() string {
	return fmt.Sprintf("%T", f.Value)
}

// Pretty renders the field for the config info command.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	type entry struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}

	return json.Marshal(entry{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.Type(),
	})
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)(strconv.FormatBool(value))
		}
		return style.Fg(color.Red)(strconv.FormatBool(value))
	case string:
		return style.Fg(color.Yellow)(strconv.Quote(value))
	default:
		return style.Fg(color.Cyan)(fmt.Sprint(value))
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"label":  style.Fg(color.Blue),
	"name":   style.Fg(color.Purple),
	"hl":     highlight,
	"lookup": viper.Get,
}).Parse(`{{ name .Key }} {{ faint .Type }}
{{ faint .Description }}
{{ label "env" }}     {{ .Env }}
{{ label "current" }} {{ hl (lookup .Key) }}
{{ label "default" }} {{ hl .Value }}`))
