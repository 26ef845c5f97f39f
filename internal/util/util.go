// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"os/exec"
)

// ExecutableInPath finds file in PATH, used to decide if a package manager is present on the node
func ExecutableInPath(file string) (string, bool, error) {
	f, err := exec.LookPath(file)

	return f, err == nil, err
}

// FileExists determines if path exists, used to find optional configuration files
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDirectory determines if path exists and is a directory, symlinks are followed
func IsDirectory(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}

	return stat.IsDir()
}

// DeepMergeMap merges source into a copy of target, used to layer configuration files.
// Maps are merged, lists are concatenated and other values from source win.
func DeepMergeMap(target map[string]any, source map[string]any) map[string]any {
	result := CloneMap(target)
	for key, value := range source {
		if existing, ok := result[key]; ok {
			switch existingTyped := existing.(type) {
			case map[string]any:
				if incomingMap, ok := value.(map[string]any); ok {
					result[key] = DeepMergeMap(existingTyped, incomingMap)
					continue
				}
			case []any:
				if incomingSlice, ok := value.([]any); ok {
					result[key] = append(cloneSlice(existingTyped), incomingSlice...)
					continue
				}
			}
		}
		result[key] = cloneValue(value)
	}

	return result
}

// CloneMap creates a copy of the provided map with maps and slices cloned recursively
func CloneMap(source map[string]any) map[string]any {
	result := make(map[string]any, len(source))
	for key, value := range source {
		result[key] = cloneValue(value)
	}
	return result
}

func cloneSlice(source []any) []any {
	result := make([]any, len(source))
	for i, value := range source {
		result[i] = cloneValue(value)
	}
	return result
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return CloneMap(typed)
	case []any:
		return cloneSlice(typed)
	default:
		return typed
	}
}
