package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

// Format is a supported document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatFor picks the decoder from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// ParseConfig reads, decodes, defaults and validates the widget file at path.
func ParseConfig(path string) (*File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, overlayerrors.NewParseError(path, "", 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, overlayerrors.NewParseError(path, string(format), 0, err)
	}

	return Parse(path, data, format)
}

// Parse decodes data in the given format. path is only used in errors.
// Unknown keys are rejected in both formats.
func Parse(path string, data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, overlayerrors.NewParseError(path, string(format), extractLine(err), err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, overlayerrors.NewParseError(path, string(format), tomlLine(err), err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, overlayerrors.NewParseError(path, string(format), 0, fmt.Errorf("unknown key %q", undecoded[0].String()))
		}
	default:
		return nil, overlayerrors.NewParseError(path, string(format), 0, fmt.Errorf("unknown format %q", format))
	}

	f.ApplyDefaults()
	if err := ValidateConfig(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return perr.Position.Line
	}
	return 0
}
