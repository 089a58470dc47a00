package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultPresetsFile = ".aligner.yaml"

// loadPresets reads a YAML mapping of preset name to raw pattern spec:
//
//	assign: "=/n"
//	commas: ",/g"
//	arrows: "r/[-=]>/r"
func loadPresets(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	presets := map[string]string{}
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("presets %s: %w", path, err)
	}
	return presets, nil
}

func lookupPreset(path, name string) (string, error) {
	presets, err := loadPresets(path)
	if err != nil {
		return "", err
	}
	raw, ok := presets[name]
	if !ok {
		names := make([]string, 0, len(presets))
		for n := range presets {
			names = append(names, n)
		}
		sort.Strings(names)
		return "", fmt.Errorf("unknown preset %q in %s (have: %s)", name, path, strings.Join(names, ", "))
	}
	return raw, nil
}
