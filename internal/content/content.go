// Package content carries the static bootstrap catalog used to seed the
// store on first run. The catalog is authored in CUE so the entries are
// schema-checked at load time, and ships embedded in the binary.
package content

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/language"

	"github.com/Fsince94/PortfolioApp/internal/model"
)

//go:embed catalog.cue
var catalogCUE []byte

// Bootstrap admin credential, inserted exactly once on first-ever init.
// Plain text on purpose - see the data service's Login contract.
const (
	AdminUsername = "04124828842"
	AdminPassword = "1234"
)

// Catalog is the bootstrap content for one language.
type Catalog struct {
	Projects []model.Project  `json:"projects"`
	Posts    []model.BlogPost `json:"posts"`
}

// supported lists the catalog languages in priority order. English first:
// it is the bootstrap language and the fallback for everything else.
var supported = []language.Tag{
	language.English,
	language.Spanish,
}

// Load compiles the embedded catalog and returns the entries for the best
// match of the requested language tag ("en", "es", "es-VE", ...).
// Unrecognized or unsupported tags fall back to English.
func Load(lang string) (Catalog, error) {
	tag := match(lang)

	ctx := cuecontext.New()
	val := ctx.CompileBytes(catalogCUE)
	if err := val.Err(); err != nil {
		return Catalog{}, fmt.Errorf("compile catalog: %w", err)
	}
	if err := val.Validate(cue.Concrete(true)); err != nil {
		return Catalog{}, fmt.Errorf("validate catalog: %w", err)
	}

	entry := val.LookupPath(cue.ParsePath("catalog." + key(tag)))
	if !entry.Exists() {
		return Catalog{}, fmt.Errorf("catalog has no %q entry", key(tag))
	}

	var c Catalog
	if err := entry.Decode(&c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog %q: %w", key(tag), err)
	}
	return c, nil
}

// Bootstrap returns the English catalog used for first-run seeding.
func Bootstrap() (Catalog, error) {
	return Load("en")
}

// match resolves a user-supplied tag against the supported catalogs.
func match(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	matcher := language.NewMatcher(supported)
	_, idx, _ := matcher.Match(tag)
	return supported[idx]
}

// key maps a supported tag to its catalog field name.
func key(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
