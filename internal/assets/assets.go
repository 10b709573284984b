package assets

import (
	"fmt"
	"os"
)

// ReadFile reads an asset given as an explicit file path, as opposed to a
// name resolved under a base directory. notFound is wrapped when the file
// does not exist.
func ReadFile(path string, notFound error) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided asset path
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", notFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}
