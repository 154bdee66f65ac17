package sysknife

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/sysknife/pkg/output"
	"github.com/arthur-debert/sysknife/pkg/output/styles"
	"github.com/spf13/cobra"
)

// formatBold renders s with the Heading style when stdout is a terminal.
func formatBold(s string) string {
	if !output.SupportsColor(os.Stdout) {
		return s
	}
	return styles.GetStyle("Heading").Render(s)
}

func formatUpper(s string) string {
	return strings.ToUpper(s)
}

func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}
