package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// SaveTestResults serializes results to results/<testName>_<timestamp>.json,
// creating the directory if absent, and returns the written path.
func SaveTestResults(testName string, results any) (string, error) {
	return SaveTestResultsIn("results", testName, results)
}

// SaveTestResultsIn is SaveTestResults with an explicit results directory.
func SaveTestResultsIn(dir, testName string, results any) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", testName, timestamp))

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write results file: %w", err)
	}

	logrus.Infof("📁 Results saved to %s", path)
	return path, nil
}

// WaitSeconds pauses the calling test for the given number of seconds.
func WaitSeconds(seconds int) {
	time.Sleep(time.Duration(seconds) * time.Second)
}
