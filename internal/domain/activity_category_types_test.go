package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name     string
		tags     map[string]string
		expected string
	}{
		{
			name:     "playground",
			tags:     map[string]string{"leisure": "playground"},
			expected: CategoryPlayground,
		},
		{
			name:     "park",
			tags:     map[string]string{"leisure": "park"},
			expected: CategoryPark,
		},
		{
			name:     "theme park",
			tags:     map[string]string{"tourism": "theme_park"},
			expected: CategoryThemePark,
		},
		{
			name:     "zoo",
			tags:     map[string]string{"tourism": "zoo"},
			expected: CategoryZoo,
		},
		{
			name:     "museum",
			tags:     map[string]string{"tourism": "museum"},
			expected: CategoryMuseum,
		},
		{
			name:     "water park",
			tags:     map[string]string{"leisure": "water_park"},
			expected: CategoryWaterPark,
		},
		{
			name:     "first matching rule wins",
			tags:     map[string]string{"leisure": "park", "tourism": "zoo"},
			expected: CategoryPark,
		},
		{
			name:     "playground beats everything",
			tags:     map[string]string{"leisure": "playground", "tourism": "museum"},
			expected: CategoryPlayground,
		},
		{
			name:     "no matching tags",
			tags:     map[string]string{"amenity": "restaurant"},
			expected: CategoryUnknown,
		},
		{
			name:     "nil tags",
			tags:     nil,
			expected: CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferCategory(tt.tags))
		})
	}
}

func TestInferCategory_Deterministic(t *testing.T) {
	tags := map[string]string{"leisure": "park", "tourism": "zoo"}
	for i := 0; i < 100; i++ {
		assert.Equal(t, CategoryPark, InferCategory(tags))
	}
}

func TestIsKnownCategory(t *testing.T) {
	for _, category := range KnownCategories() {
		assert.True(t, IsKnownCategory(category), category)
	}
	assert.False(t, IsKnownCategory("unknown"))
	assert.False(t, IsKnownCategory("casino"))
	assert.False(t, IsKnownCategory(""))
}

func TestTagFilter(t *testing.T) {
	key, value, ok := TagFilter(CategoryZoo)
	assert.True(t, ok)
	assert.Equal(t, "tourism", key)
	assert.Equal(t, "zoo", value)

	_, _, ok = TagFilter("casino")
	assert.False(t, ok)
}
