package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kraitsura/storefront/pkg/model"
)

// CatalogFile is the catalog file name looked up inside a directory.
const CatalogFile = "products.jsonl"

// LoadProducts reads the catalog from the products.jsonl file in the given directory.
func LoadProducts(dir string) ([]model.Product, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
	}

	return LoadProductsFromFile(filepath.Join(dir, CatalogFile))
}

// LoadProductsFromFile reads products directly from a specific JSONL file path.
// Blank, malformed and invalid lines are skipped; a repeated id keeps the first
// occurrence so slide keys stay unique.
func LoadProductsFromFile(path string) ([]model.Product, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no product catalog found at %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	var products []model.Product
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	// Full descriptions can be long markdown documents
	const maxCapacity = 1024 * 1024 * 4 // 4MB
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var p model.Product
		if err := json.Unmarshal(line, &p); err != nil {
			continue
		}
		if err := p.Validate(); err != nil {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		products = append(products, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	return products, nil
}
