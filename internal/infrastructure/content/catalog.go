package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"cpptutor/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed en.yaml ar.yaml
var embedded embed.FS

var files = map[domain.Language]string{
	domain.English: "en.yaml",
	domain.Arabic:  "ar.yaml",
}

// Load reads both language catalogs from dir, or from the built-in tables
// when dir is empty. Each call returns fresh catalogs that can be edited
// without affecting later loads.
func Load(dir string) (map[domain.Language]*domain.Catalog, error) {
	var fsys fs.FS = embedded
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	return LoadFS(fsys)
}

func LoadFS(fsys fs.FS) (map[domain.Language]*domain.Catalog, error) {
	catalogs := make(map[domain.Language]*domain.Catalog, len(files))
	for lang, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", name, err)
		}
		var c domain.Catalog
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
		catalogs[lang] = &c
	}
	return catalogs, nil
}
