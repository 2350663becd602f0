// Package theme holds the style configuration consumed by the email
// renderer: colors, typography, container geometry, and button geometry,
// with documented defaults and a deep-merge for partial overrides.
//
// Merge is explicit per field over typed structs rather than a dynamic
// walk over maps, which keeps override behavior auditable: a zero value
// means "unset, keep the default", any other value wins.
//
//	effective := theme.Merge(theme.Default(), theme.Theme{
//		Colors: theme.Colors{Link: "#0ea5e9"},
//		Button: theme.Button{Background: "#0ea5e9"},
//	})
//
// Overrides commonly ship as config files; FromYAML parses a partial theme
// (JSON is a YAML subset, so .json theme files work too).
package theme
