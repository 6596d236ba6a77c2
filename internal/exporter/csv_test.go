package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) (bool, [][]string) {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	hasBOM := strings.HasPrefix(string(data), string(utf8BOM))
	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), string(utf8BOM)))).ReadAll()
	require.NoError(t, err)
	return hasBOM, records
}

func TestCSVWriter_WriteCSV(t *testing.T) {
	tests := []struct {
		name     string
		options  WriteOptions
		wantBOM  bool
		wantRows int
	}{
		{
			name: "headers and records with BOM",
			options: WriteOptions{
				Headers:   []string{"a", "b"},
				Records:   [][]string{{"1", "2"}, {"3", "4"}},
				BOMPrefix: true,
			},
			wantBOM:  true,
			wantRows: 3,
		},
		{
			name: "records only",
			options: WriteOptions{
				Records: [][]string{{"1", "2"}},
			},
			wantBOM:  false,
			wantRows: 1,
		},
		{
			name: "quoted values",
			options: WriteOptions{
				Headers: []string{"name"},
				Records: [][]string{{"Lima, Ana"}, {`say "hi"`}},
			},
			wantRows: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writer := NewCSVWriter(dir, nil)

			path, err := writer.WriteCSV("out.csv", tt.options)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "out.csv"), path)

			hasBOM, records := readCSV(t, path)
			assert.Equal(t, tt.wantBOM, hasBOM)
			assert.Len(t, records, tt.wantRows)
		})
	}
}

func TestCSVWriter_Overwrites(t *testing.T) {
	writer := NewCSVWriter(t.TempDir(), nil)

	_, err := writer.WriteSimpleCSV("out.csv", []string{"h"}, [][]string{{"1"}, {"2"}, {"3"}})
	require.NoError(t, err)
	path, err := writer.WriteSimpleCSV("out.csv", []string{"h"}, [][]string{{"9"}})
	require.NoError(t, err)

	_, records := readCSV(t, path)
	assert.Equal(t, [][]string{{"h"}, {"9"}}, records)
}

func TestCSVWriter_ResolvePath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "x.csv")

	assert.Equal(t, abs, NewCSVWriter("/base", nil).resolvePath(abs))
	assert.Equal(t, filepath.Join("/base", "x.csv"), NewCSVWriter("/base", nil).resolvePath("x.csv"))
	assert.Equal(t, "x.csv", NewCSVWriter("", nil).resolvePath("x.csv"))
}

func TestCSVWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	path, err := NewCSVWriter(dir, nil).WriteSimpleCSV("out.csv", []string{"h"}, nil)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
