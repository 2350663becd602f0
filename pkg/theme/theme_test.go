package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge_Identity(t *testing.T) {
	t.Parallel()

	def := Default()
	require.Equal(t, def, Merge(def, Theme{}), "merging the zero theme must change nothing")
}

func TestMerge_OverridePrecedence(t *testing.T) {
	t.Parallel()

	def := Default()
	merged := Merge(def, Theme{
		Colors: Colors{Link: "#ff0000"},
		Button: Button{Background: "#ff0000", PaddingX: 40},
		Font:   Font{Size: 18},
	})

	// Overridden leaves win.
	require.Equal(t, "#ff0000", merged.Colors.Link)
	require.Equal(t, "#ff0000", merged.Button.Background)
	require.Equal(t, 40, merged.Button.PaddingX)
	require.Equal(t, 18, merged.Font.Size)

	// Unset leaves keep defaults, including siblings of overridden ones.
	require.Equal(t, def.Colors.Text, merged.Colors.Text)
	require.Equal(t, def.Button.Text, merged.Button.Text)
	require.Equal(t, def.Button.PaddingY, merged.Button.PaddingY)
	require.Equal(t, def.Font.Family, merged.Font.Family)
	require.Equal(t, def.Container, merged.Container)
}

func TestMerge_Pure(t *testing.T) {
	t.Parallel()

	def := Default()
	_ = Merge(def, Theme{Colors: Colors{Text: "#000"}})
	require.Equal(t, Default(), def, "merge must not mutate its inputs")
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	override, err := FromYAML([]byte(`
colors:
  link: "#0ea5e9"
button:
  background: "#0ea5e9"
  paddingX: 32
`))
	require.NoError(t, err)

	merged := Merge(Default(), override)
	require.Equal(t, "#0ea5e9", merged.Colors.Link)
	require.Equal(t, "#0ea5e9", merged.Button.Background)
	require.Equal(t, 32, merged.Button.PaddingX)
	require.Equal(t, Default().Container.Width, merged.Container.Width)
}

func TestFromYAML_JSONIsYAML(t *testing.T) {
	t.Parallel()

	override, err := FromYAML([]byte(`{"font": {"size": 18}}`))
	require.NoError(t, err)
	require.Equal(t, 18, override.Font.Size)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := FromYAML([]byte("colors: [not: a: mapping"))
	require.Error(t, err)
}
