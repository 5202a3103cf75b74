package options

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/horizon/pkg/place"
)

// MoodOptions selects the mood used to filter places.
type MoodOptions struct {
	Mood place.Mood
}

// moodValue adapts a place.Mood to pflag.Value so bad moods fail at parse
// time.
type moodValue struct {
	mood *place.Mood
}

func (v *moodValue) String() string {
	if v.mood == nil {
		return ""
	}
	return v.mood.String()
}

func (v *moodValue) Set(s string) error {
	m, err := place.ParseMood(s)
	if err != nil {
		return err
	}
	*v.mood = m
	return nil
}

func (v *moodValue) Type() string {
	return "mood"
}

// AddMoodArg registers --mood on cmd.
func AddMoodArg(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().VarP(&moodValue{mood: &o.Mood}, "mood", "m",
		"Only show places matching the mood ("+strings.Join(MoodNames(), ", ")+").")
	_ = cmd.RegisterFlagCompletionFunc("mood", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return MoodNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

// MoodNames lists every accepted mood id, starting with "all".
func MoodNames() []string {
	names := []string{"all"}
	for _, m := range place.Moods() {
		names = append(names, string(m.ID))
	}
	return names
}

// PromptMood asks the user to pick a mood from a menu.
func PromptMood(in io.Reader, out io.Writer) (place.Mood, error) {
	items := append([]place.MoodInfo{{
		ID:          place.NoMood,
		Label:       "All Moods",
		Emoji:       "🧭",
		Description: "Everything along the way",
	}}, place.Moods()...)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Emoji }} {{ .Label | bold }} {{ .Description | green }}",
		Inactive: "   {{ .Emoji }} {{ .Label }} {{ .Description | cyan }}",
		Selected: "{{ .Emoji }} {{ .Label | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.Replace(strings.ToLower(items[index].Label), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Mood",
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     io.NopCloser(in),
		Stdout:    nopWriteCloser{out},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return place.NoMood, err
	}
	return items[i].ID, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
