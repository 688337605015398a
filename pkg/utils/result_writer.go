/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: result_writer.go
Description: Utility for writing machine-readable toolkit results. Each result lands in a
kind-specific subdirectory under a timestamped, versioned file name so repeated runs never
overwrite each other.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteResult writes result as indented JSON to dir/kind/<timestamp>_<kind>_v<version>.json
// and returns the file path
func WriteResult(dir, kind, version string, result interface{}) (string, error) {
	return writeResultAt(dir, kind, version, result, time.Now())
}

func writeResultAt(dir, kind, version string, result interface{}, now time.Time) (string, error) {
	resultDir := filepath.Join(dir, kind)
	if err := os.MkdirAll(resultDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create result directory: %w", err)
	}

	// e.g. 2024-06-11_01-30-00.000_classify_v1.0.0.json
	timestamp := now.Format("2006-01-02_15-04-05.000")
	filePath := filepath.Join(resultDir, fmt.Sprintf("%s_%s_v%s.json", timestamp, kind, version))

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write result file: %w", err)
	}
	return filePath, nil
}
