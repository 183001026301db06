package i18n

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed translations.json
var translationsJson []byte

// Translation is one localizable string with all its language variants.
type Translation struct {
	Key string
	En  string
	De  string
}

// AllTranslations returns the bundled translation table, sorted by key.
// The bundled file maps each key to a [english, german] pair.
func AllTranslations() ([]Translation, error) {
	var raw map[string][]string
	if err := json.Unmarshal(translationsJson, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal bundled translations: %w", err)
	}

	translations := make([]Translation, 0, len(raw))
	for key, values := range raw {
		if len(values) != 2 {
			return nil, fmt.Errorf("translation %s: expected 2 values, got %d", key, len(values))
		}
		translations = append(translations, Translation{
			Key: key,
			En:  values[0],
			De:  values[1],
		})
	}

	sort.Slice(translations, func(i, j int) bool {
		return translations[i].Key < translations[j].Key
	})
	return translations, nil
}
