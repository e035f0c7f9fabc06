package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fsince94/PortfolioApp/internal/model"
)

func TestBootstrap(t *testing.T) {
	c, err := Bootstrap()
	require.NoError(t, err)

	require.Len(t, c.Projects, 3)
	require.Len(t, c.Posts, 3)

	first := c.Projects[0]
	assert.Equal(t, "E-commerce Platform", first.Title)
	assert.Equal(t, []model.Role{model.RoleFrontend, model.RoleBackend, model.RoleAPI}, first.Roles)
	assert.Equal(t, []string{"React", "Next.js", "TypeScript", "Node.js"}, first.Technologies)
	assert.Equal(t, "https://example.com/buy-ecommerce", first.BuyURL)
	assert.InDelta(t, 199.99, first.Price, 1e-9)

	// The third project has no buy URL in the catalog.
	assert.Empty(t, c.Projects[2].BuyURL)
	assert.InDelta(t, 49.99, c.Projects[2].Price, 1e-9)

	assert.Equal(t, "Mastering React Server Components", c.Posts[0].Title)
	assert.Equal(t, "5 min read", c.Posts[0].ReadTime)
}

func TestLoad_Spanish(t *testing.T) {
	c, err := Load("es")
	require.NoError(t, err)

	require.Len(t, c.Projects, 3)
	assert.Equal(t, "Plataforma de E-commerce", c.Projects[0].Title)
	assert.Equal(t, "Dominando React Server Components", c.Posts[0].Title)
}

func TestLoad_RegionalVariantMatches(t *testing.T) {
	c, err := Load("es-VE")
	require.NoError(t, err)
	assert.Equal(t, "Plataforma de E-commerce", c.Projects[0].Title)
}

func TestLoad_UnknownFallsBackToEnglish(t *testing.T) {
	for _, lang := range []string{"fr", "zz-not-a-tag", ""} {
		c, err := Load(lang)
		require.NoError(t, err, "lang %q", lang)
		assert.Equal(t, "E-commerce Platform", c.Projects[0].Title, "lang %q", lang)
	}
}

func TestCatalogs_AgreeOnPricing(t *testing.T) {
	en, err := Load("en")
	require.NoError(t, err)
	es, err := Load("es")
	require.NoError(t, err)

	require.Len(t, es.Projects, len(en.Projects))
	for i := range en.Projects {
		assert.InDelta(t, en.Projects[i].Price, es.Projects[i].Price, 1e-9)
	}
}

func TestAdminCredentials(t *testing.T) {
	assert.Equal(t, "04124828842", AdminUsername)
	assert.Equal(t, "1234", AdminPassword)
}
