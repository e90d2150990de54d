package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a project file from disk, validates it and applies defaults.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fcerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a project document. path is only used in
// error messages.
func Parse(data []byte, path string) (*Project, error) {
	var project Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fcerrors.NewParseError(path, extractLine(err), err)
	}

	applyDefaults(&project)

	if err := ValidateProject(&project); err != nil {
		return nil, err
	}

	return &project, nil
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
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
