package overpass

import (
	"strings"
	"testing"

	"github.com/activity-finder/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildQuery(t *testing.T) {
	base := domain.ActivityQuery{
		Lat:    41.3851,
		Lon:    2.1734,
		Radius: 500,
	}

	t.Run("single category", func(t *testing.T) {
		q := base
		q.Categories = []string{"park"}

		result := BuildQuery(q)
		assert.Equal(t,
			`[out:json][timeout:25];(node["leisure"="park"](around:500,41.3851,2.1734););out body;`,
			result)
	})

	t.Run("one clause per category in input order", func(t *testing.T) {
		q := base
		q.Categories = []string{"zoo", "playground", "museum"}

		result := BuildQuery(q)
		zoo := strings.Index(result, `node["tourism"="zoo"]`)
		playground := strings.Index(result, `node["leisure"="playground"]`)
		museum := strings.Index(result, `node["tourism"="museum"]`)

		assert.NotEqual(t, -1, zoo)
		assert.NotEqual(t, -1, playground)
		assert.NotEqual(t, -1, museum)
		assert.Less(t, zoo, playground)
		assert.Less(t, playground, museum)
		assert.Equal(t, 3, strings.Count(result, "node["))
	})

	t.Run("all known categories", func(t *testing.T) {
		q := base
		q.Categories = domain.KnownCategories()

		result := BuildQuery(q)
		assert.True(t, strings.HasPrefix(result, "[out:json][timeout:25];("))
		assert.True(t, strings.HasSuffix(result, ");out body;"))
		assert.Equal(t, len(q.Categories), strings.Count(result, "node["))
	})

	t.Run("unrecognized category contributes nothing", func(t *testing.T) {
		q := base
		q.Categories = []string{"casino"}

		result := BuildQuery(q)
		assert.Equal(t, "[out:json][timeout:25];();out body;", result)
	})

	t.Run("length grows only with recognized categories", func(t *testing.T) {
		q := base
		q.Categories = []string{"park"}
		one := BuildQuery(q)

		q.Categories = []string{"park", "casino"}
		oneWithUnknown := BuildQuery(q)

		q.Categories = []string{"park", "zoo"}
		two := BuildQuery(q)

		assert.Equal(t, len(one), len(oneWithUnknown))
		assert.Greater(t, len(two), len(one))
	})

	t.Run("deterministic", func(t *testing.T) {
		q := base
		q.Categories = []string{"museum", "water_park"}

		assert.Equal(t, BuildQuery(q), BuildQuery(q))
	})
}
