package domain

// Activity category constants
const (
	CategoryPlayground = "playground"
	CategoryPark       = "park"
	CategoryThemePark  = "theme_park"
	CategoryZoo        = "zoo"
	CategoryMuseum     = "museum"
	CategoryWaterPark  = "water_park"
	CategoryUnknown    = "unknown"
)

// TagRule maps one OSM tag pair to an activity category
type TagRule struct {
	Key      string
	Value    string
	Category string
}

// CategoryTagRules is the fixed priority order for category inference:
// the first rule whose tag pair is present on an element wins.
var CategoryTagRules = []TagRule{
	{Key: "leisure", Value: "playground", Category: CategoryPlayground},
	{Key: "leisure", Value: "park", Category: CategoryPark},
	{Key: "tourism", Value: "theme_park", Category: CategoryThemePark},
	{Key: "tourism", Value: "zoo", Category: CategoryZoo},
	{Key: "tourism", Value: "museum", Category: CategoryMuseum},
	{Key: "leisure", Value: "water_park", Category: CategoryWaterPark},
}

// InferCategory возвращает категорию по OSM тегам элемента
func InferCategory(tags map[string]string) string {
	for _, rule := range CategoryTagRules {
		if tags[rule.Key] == rule.Value {
			return rule.Category
		}
	}
	return CategoryUnknown
}

// TagFilter returns the OSM tag pair that selects a category, with ok=false
// for category names outside the known set.
func TagFilter(category string) (key, value string, ok bool) {
	for _, rule := range CategoryTagRules {
		if rule.Category == category {
			return rule.Key, rule.Value, true
		}
	}
	return "", "", false
}

// KnownCategories returns list of valid activity categories
func KnownCategories() []string {
	result := make([]string, 0, len(CategoryTagRules))
	for _, rule := range CategoryTagRules {
		result = append(result, rule.Category)
	}
	return result
}

// IsKnownCategory checks if category is valid
func IsKnownCategory(category string) bool {
	_, _, ok := TagFilter(category)
	return ok
}
