// Package htmltomarkdown converts rendered faculty views to Markdown for
// terminal output.
package htmltomarkdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/facdir"
)

// Ensure Converter implements facdir.Converter at compile time.
var _ facdir.Converter = (*Converter)(nil)

var blankLines = regexp.MustCompile(`\n{3,}`)

// nbsp covers both the character and the entity form the library may emit.
var nbsp = strings.NewReplacer("\u00a0", " ", "&nbsp;", " ")

// Converter renders detail views as Markdown suited to a terminal.
type Converter struct {
	conv *converter.Converter
}

// NewConverter returns a Converter with the CommonMark rules enabled.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML into Markdown. Non-breaking spaces become plain
// spaces and runs of blank lines collapse to one.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", facdir.Errorf(facdir.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting to markdown: %w", err)
	}

	result = nbsp.Replace(result)
	result = blankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result), nil
}
