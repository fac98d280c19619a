package fontstash

import (
	"fmt"

	"github.com/flopp/go-findfont"
)

// AddSystemFont locates a font installed on the system by file name (for
// example "DejaVuSans.ttf" or just "arial") and registers it under the
// given alias. The search walks the platform's font directories.
func (s *Stash) AddSystemFont(name, fileName string) (int, error) {
	path, err := findfont.Find(fileName)
	if err != nil {
		return FontInvalid, fmt.Errorf("fontstash: system font %q not found: %w", fileName, err)
	}
	Logger().Debug("system font located", "query", fileName, "path", path)
	return s.AddFontFromFile(name, path)
}
