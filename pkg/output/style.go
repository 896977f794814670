// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var styleModifiers = map[string]color.Attribute{
	"bold":      color.Bold,
	"dimmed":    color.Faint,
	"italic":    color.Italic,
	"underline": color.Underline,
	"blink":     color.BlinkSlow,
	"inverted":  color.ReverseVideo,
}

var styleColors = map[string]color.Attribute{
	"black":  color.FgBlack,
	"red":    color.FgRed,
	"green":  color.FgGreen,
	"yellow": color.FgYellow,
	"blue":   color.FgBlue,
	"purple": color.FgMagenta,
	"cyan":   color.FgCyan,
	"white":  color.FgWhite,
}

// Foreground to high intensity / background offsets, see https://en.wikipedia.org/wiki/ANSI_escape_code#Colors
const (
	brightOffset     = color.FgHiBlack - color.FgBlack
	backgroundOffset = color.BgBlack - color.FgBlack
)

// Style is a set of terminal text attributes applied to a rendered module.
//
// The zero value renders text unchanged.
type Style struct {
	tokens []string
	attrs  []color.Attribute
}

// NewStyle builds a style from its textual tokens, see ParseStyle.
func NewStyle(tokens ...string) Style {
	s, err := ParseStyle(strings.Join(tokens, " "))
	if err != nil {
		panic(err)
	}

	return s
}

// ParseStyle parses a whitespace separated style string such as "bold blue", "bright-cyan underline" or
// "bg:black yellow". Tokens are case-insensitive.
func ParseStyle(value string) (Style, error) {
	var s Style

	for _, token := range strings.Fields(strings.ToLower(value)) {
		attr, ok := styleAttribute(token)
		if !ok {
			return Style{}, fmt.Errorf("unknown style token '%s'", token)
		}

		s.tokens = append(s.tokens, token)
		s.attrs = append(s.attrs, attr)
	}

	return s, nil
}

func styleAttribute(token string) (color.Attribute, bool) {
	if attr, has := styleModifiers[token]; has {
		return attr, true
	}

	background := false
	if rest, has := strings.CutPrefix(token, "bg:"); has {
		background = true
		token = rest
	}

	offset := color.Attribute(0)
	if rest, has := strings.CutPrefix(token, "bright-"); has {
		offset = brightOffset
		token = rest
	}

	attr, has := styleColors[token]
	if !has {
		return 0, false
	}

	attr += offset
	if background {
		attr += backgroundOffset
	}

	return attr, true
}

// IsZero returns true when the style carries no attributes.
func (s Style) IsZero() bool {
	return len(s.attrs) == 0
}

// Sprint applies the style to text. Colors are omitted when color output is disabled.
func (s Style) Sprint(text string) string {
	if s.IsZero() || text == "" {
		return text
	}

	return color.New(s.attrs...).Sprint(text)
}

func (s Style) String() string {
	return strings.Join(s.tokens, " ")
}
