package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/fluidcss/internal/config"
)

func loadProject(path string) (*config.Project, error) {
	if strings.TrimSpace(path) == "" {
		return nil, newCommandError("load project", "no config given", fmt.Errorf("config file is required"),
			"Pass --config pointing at a project YAML file")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, newCommandError("load project", path, fmt.Errorf("resolve config path: %w", err), "Check the path")
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, newCommandError("load project", abs, fmt.Errorf("config file does not exist: %w", err),
			"Check the path or create the file")
	}
	if info.IsDir() {
		return nil, newCommandError("load project", abs, fmt.Errorf("%s is a directory, not a file", abs),
			"Point --config at a YAML file")
	}

	project, err := config.Load(abs)
	if err != nil {
		return nil, newCommandError("load project", abs, err, "Fix the reported field and try again")
	}
	return project, nil
}
