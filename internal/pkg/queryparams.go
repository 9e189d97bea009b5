package pkg

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storalia/bodega/internal/domain"
)

// reservedParams lists query parameter names used for search, sorting,
// paging and lifecycle selection, not for field filtering.
var reservedParams = map[string]bool{
	"q":         true,
	"sort":      true,
	"dir":       true,
	"page":      true,
	"page_size": true,
	"state":     true,
}

// ParseQuerySpec extracts a normalized QuerySpec from request query params.
//
//	?q=term&status=Available&sort=area&dir=desc&page=2&page_size=25
//
// Every non-reserved parameter becomes a field filter; the listing engine
// drops the ones outside the entity's whitelist. Bad paging values normalize
// rather than fail.
func ParseQuerySpec(c *gin.Context) domain.QuerySpec {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(domain.DefaultPage)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(domain.DefaultPageSize)))

	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	spec := domain.QuerySpec{
		Search:   c.Query("q"),
		Filters:  filters,
		SortKey:  c.Query("sort"),
		SortDesc: strings.EqualFold(c.Query("dir"), "desc"),
		Page:     page,
		PageSize: pageSize,
	}
	return spec.Normalized()
}

// ParseActiveSelector maps the "state" query parameter to an ActiveSelector.
// Listings default to active rows; showing inactive rows is always an
// explicit opt-in, never a forgotten filter.
func ParseActiveSelector(c *gin.Context) domain.ActiveSelector {
	switch strings.ToLower(strings.TrimSpace(c.Query("state"))) {
	case "inactive":
		return domain.InactiveOnly
	case "all":
		return domain.IgnoreActiveFlag
	default:
		return domain.ActiveOnly
	}
}
