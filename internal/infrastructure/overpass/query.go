package overpass

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/activity-finder/internal/domain"
)

// queryTimeoutSec is the server-side evaluation timeout embedded in each
// Overpass QL query.
const queryTimeoutSec = 25

// BuildQuery собирает Overpass QL запрос для поиска активностей в радиусе.
// По одному node-фильтру на каждую известную категорию, в порядке входного
// списка; неизвестные категории не добавляют ничего.
func BuildQuery(q domain.ActivityQuery) string {
	radius := formatFloat(q.Radius)
	lat := formatFloat(q.Lat)
	lon := formatFloat(q.Lon)

	var sb strings.Builder
	fmt.Fprintf(&sb, "[out:json][timeout:%d];(", queryTimeoutSec)

	for _, category := range q.Categories {
		key, value, ok := domain.TagFilter(category)
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "node[%q=%q](around:%s,%s,%s);", key, value, radius, lat, lon)
	}

	sb.WriteString(");out body;")
	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
