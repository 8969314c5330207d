package game

import (
	"regexp"
	"strings"

	"github.com/BruksfildServices01/venue-site/internal/models"
)

var whitespace = regexp.MustCompile(`\s+`)

// DeriveKey lowercases name and strips every whitespace run: "FC 24" -> "fc24".
func DeriveKey(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name), "")
}

// Normalize trims the record and fills in the key from the name when the
// caller left it empty.
func Normalize(g *models.Game) {
	g.Name = strings.TrimSpace(g.Name)
	g.Key = strings.ToLower(strings.TrimSpace(g.Key))
	if g.Key == "" && g.Name != "" {
		g.Key = DeriveKey(g.Name)
	}
}
