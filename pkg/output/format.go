// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type Format string

const (
	NoneFormat Format = "none"
	JsonFormat Format = "json"
)

// ParseFormat accepts one of the supported formats, case-insensitively.
func ParseFormat(value string, supported ...Format) (Format, error) {
	desired := Format(strings.ToLower(strings.TrimSpace(value)))

	names := make([]string, len(supported))
	for i, f := range supported {
		if f == desired {
			return f, nil
		}
		names[i] = string(f)
	}

	return "", fmt.Errorf("unsupported output format '%s', supported formats are %s", value, strings.Join(names, ", "))
}

// FormatJson writes obj as indented JSON followed by a newline.
func FormatJson(obj any, writer io.Writer) error {
	b, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	_, err = writer.Write([]byte("\n"))
	return err
}
