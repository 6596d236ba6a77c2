package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo represents information about a discovered gradebook export
type FileInfo struct {
	Path       string
	Name       string
	CourseCode string
	Size       int64
	ModTime    time.Time
}

// Discovery finds gradebook exports on disk
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindGradebooks lists the .xlsx gradebook exports in dir, oldest
// modification first. Excel lock files ("~$...") and files without a
// course code in their name are skipped.
func (d *Discovery) FindGradebooks(dir string) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, "~$") || !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
			continue
		}
		code, ok := ExtractCourseCode(name)
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:       filepath.Join(fullPath, name),
			Name:       name,
			CourseCode: code,
			Size:       info.Size(),
			ModTime:    info.ModTime(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].ModTime.Before(files[j].ModTime)
	})

	return files, nil
}

// GroupByCourse buckets files by course code, keeping their order.
func GroupByCourse(files []FileInfo) map[string][]FileInfo {
	groups := make(map[string][]FileInfo)
	for _, f := range files {
		groups[f.CourseCode] = append(groups[f.CourseCode], f)
	}
	return groups
}
