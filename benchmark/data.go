package benchmark

import (
	"fmt"
	"strings"
)

// Deterministic string generators
func generateName(i int) string {
	firstNames := []string{"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry", "Ivy", "Jack"}
	lastNames := []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	return firstNames[i%len(firstNames)] + " " + lastNames[(i*7)%len(lastNames)]
}

func generateCity(i int) string {
	cities := []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego", "Dallas", "Austin"}
	return cities[i%len(cities)]
}

func generateTheme(i int) string {
	themes := []string{"light", "dark", "system", "custom"}
	return themes[i%len(themes)]
}

// GenerateSettingsJSON creates a settings document keyed by user, so every
// value is reachable through a dotted path such as "users.u42.profile.city".
func GenerateSettingsJSON(count int) []byte {
	var sb strings.Builder
	sb.Grow(count * 220)

	sb.WriteString(`{"meta":{"version":"1.0","count":`)
	sb.WriteString(fmt.Sprintf("%d", count))
	sb.WriteString(`},"users":{`)

	for i := 0; i < count; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(fmt.Sprintf(`"u%d":{"name":"%s","age":%d,"active":%t,"profile":{"city":"%s","zip":"%05d"},"settings":{"theme":"%s","fontSize":%d,"tags":["t%d","t%d"]}}`,
			i,
			generateName(i),
			18+(i%62),
			i%3 != 0,
			generateCity(i),
			10000+(i%90000),
			generateTheme(i),
			12+(i%8),
			i%5, i%7,
		))
	}

	sb.WriteString(`}}`)
	return []byte(sb.String())
}

// GenerateDefaults returns a defaults mapping shaped like one user's settings.
func GenerateDefaults() map[string]any {
	return map[string]any{
		"active": true,
		"settings": map[string]any{
			"theme":    "light",
			"fontSize": 14,
			"language": "en",
		},
	}
}
