package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTestResults(t *testing.T) {
	t.Chdir(t.TempDir())

	before := time.Now()
	path, err := SaveTestResults("login_test", map[string]any{
		"status":   "passed",
		"duration": 1.5,
	})
	require.NoError(t, err)

	//results directory is created on demand
	info, err := os.Stat("results")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	//filename embeds the test name and a second-resolution timestamp
	name := filepath.Base(path)
	pattern := regexp.MustCompile(`^login_test_(\d{8}_\d{6})\.json$`)
	match := pattern.FindStringSubmatch(name)
	require.NotNil(t, match, "unexpected filename %q", name)

	stamp, err := time.ParseInLocation("20060102_150405", match[1], time.Local)
	require.NoError(t, err)
	assert.WithinDuration(t, before, stamp, 2*time.Second)

	//file content round-trips
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var results map[string]any
	require.NoError(t, json.Unmarshal(data, &results))
	assert.Equal(t, "passed", results["status"])
}

func TestSaveTestResultsIn(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")

	path, err := SaveTestResultsIn(dir, "search_test", []string{"ok"})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Lowercases",
			input:    "Software Engineer",
			expected: "software engineer",
		},
		{
			name:     "Strips diacritics",
			input:    "Lập Trình Viên",
			expected: "lap trinh vien",
		},
		{
			name:     "Plain ascii unchanged",
			input:    "dhaka",
			expected: "dhaka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}
