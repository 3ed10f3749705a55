package config

import (
	"fmt"
	"os"

	"storefront/internal/domain/model"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

// LoadStoreDefaults returns the compiled-in store record, overridden by the YAML
// file at path when path is not empty. Keys missing from the file keep their default.
func LoadStoreDefaults(path string) (model.StoreConfig, error) {
	def := model.DefaultStoreConfig()
	if path == "" {
		return def, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &def); err != nil {
		return model.DefaultStoreConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if _, err := currency.ParseISO(def.Currency); err != nil {
		return model.DefaultStoreConfig(), fmt.Errorf("%s: currency %q: %w", path, def.Currency, err)
	}
	return def, nil
}
