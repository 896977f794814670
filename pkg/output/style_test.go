// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func Test_ParseStyle(t *testing.T) {
	tests := []struct {
		value string
		attrs []color.Attribute
	}{
		{value: "bold blue", attrs: []color.Attribute{color.Bold, color.FgBlue}},
		{value: "Bold  PURPLE", attrs: []color.Attribute{color.Bold, color.FgMagenta}},
		{value: "bright-cyan underline", attrs: []color.Attribute{color.FgHiCyan, color.Underline}},
		{value: "bg:black yellow", attrs: []color.Attribute{color.BgBlack, color.FgYellow}},
		{value: "bg:bright-white dimmed", attrs: []color.Attribute{color.BgHiWhite, color.Faint}},
		{value: "", attrs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			s, err := ParseStyle(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.attrs, s.attrs)
		})
	}
}

func Test_ParseStyle_Unknown(t *testing.T) {
	for _, value := range []string{"bold chartreuse", "bright-", "bg:", "fg:blue"} {
		_, err := ParseStyle(value)
		require.Error(t, err, value)
	}
}

func Test_Style_String(t *testing.T) {
	s, err := ParseStyle("  Bold   Blue ")
	require.NoError(t, err)
	require.Equal(t, "bold blue", s.String())
	require.Equal(t, NewStyle("bold", "blue"), s)
}

func Test_Style_Sprint(t *testing.T) {
	t.Run("Color", func(t *testing.T) {
		color.NoColor = false
		defer func() { color.NoColor = true }()

		expected := color.New(color.Bold, color.FgBlue).Sprint("•NET v7.0.100")
		require.Equal(t, expected, NewStyle("bold", "blue").Sprint("•NET v7.0.100"))
		require.NotEqual(t, "•NET v7.0.100", expected)
	})

	t.Run("NoColor", func(t *testing.T) {
		color.NoColor = true
		require.Equal(t, "•NET v7.0.100", NewStyle("bold", "blue").Sprint("•NET v7.0.100"))
	})

	t.Run("ZeroStyle", func(t *testing.T) {
		color.NoColor = false
		defer func() { color.NoColor = true }()

		var s Style
		require.True(t, s.IsZero())
		require.Equal(t, "plain", s.Sprint("plain"))
	})
}
