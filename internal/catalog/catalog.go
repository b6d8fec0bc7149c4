package catalog

import (
	"io/fs"
	"sort"
	"strings"
	"sync"
)

// Catalog is the read interface over the loaded recipe set. The only
// mutation is Reload, which builds a complete new map and swaps it in one
// step; readers never observe a half-updated catalog.
type Catalog struct {
	fsys fs.FS
	dir  string

	mu        sync.RWMutex
	libraries map[string]Library
}

// Open loads the catalog from a directory of recipe YAML files on disk.
func Open(dir string) (*Catalog, error) {
	c := &Catalog{dir: dir}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// OpenFS loads the catalog from a directory inside the given filesystem.
func OpenFS(fsys fs.FS, dir string) (*Catalog, error) {
	c := &Catalog{fsys: fsys, dir: dir}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads every recipe and atomically replaces the library map.
func (c *Catalog) Reload() error {
	libraries, err := loadDir(c.fsys, c.dir)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.libraries = libraries
	c.mu.Unlock()
	return nil
}

// Get returns the library with the given ID.
func (c *Catalog) Get(id string) (Library, bool) {
	c.mu.RLock()
	lib, ok := c.libraries[id]
	c.mu.RUnlock()
	if !ok {
		return Library{}, false
	}
	return lib.clone(), true
}

// All returns every library, sorted by ID.
func (c *Catalog) All() []Library {
	c.mu.RLock()
	libraries := make([]Library, 0, len(c.libraries))
	for _, lib := range c.libraries {
		libraries = append(libraries, lib.clone())
	}
	c.mu.RUnlock()

	sort.Slice(libraries, func(i, j int) bool { return libraries[i].ID < libraries[j].ID })
	return libraries
}

// ByCategory returns every library in the given category, sorted by ID.
func (c *Catalog) ByCategory(category string) []Library {
	var result []Library
	for _, lib := range c.All() {
		if lib.Category == category {
			result = append(result, lib)
		}
	}
	return result
}

// Search returns libraries whose name, description, or tags contain the
// query, case-insensitively, sorted by ID.
func (c *Catalog) Search(query string) []Library {
	query = strings.ToLower(query)
	var result []Library
	for _, lib := range c.All() {
		if strings.Contains(strings.ToLower(lib.Name), query) ||
			strings.Contains(strings.ToLower(lib.Description), query) {
			result = append(result, lib)
			continue
		}
		for _, tag := range lib.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				result = append(result, lib)
				break
			}
		}
	}
	return result
}

// Len returns the number of loaded libraries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.libraries)
}
