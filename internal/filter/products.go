package filter

import (
	"fmt"
	"slices"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
)

// ProductGroup is a product tab grouping one or more categories.
type ProductGroup string

const (
	GroupAll       ProductGroup = "all"
	GroupApps      ProductGroup = "apps"
	GroupTools     ProductGroup = "tools"
	GroupResources ProductGroup = "resources"
	GroupAI        ProductGroup = "ai"
	GroupAffiliate ProductGroup = "affiliate"
)

var groupCategories = map[ProductGroup][]string{
	GroupApps:      {"iOS App", "Android App"},
	GroupTools:     {"Web Tool"},
	GroupResources: {"Downloadable PDF", "Resource"},
	GroupAI:        {"AI Product"},
}

// ProductGroups returns the groups in tab order.
func ProductGroups() []ProductGroup {
	return []ProductGroup{GroupAll, GroupApps, GroupTools, GroupResources, GroupAI, GroupAffiliate}
}

// ParseProductGroup converts user input into a [ProductGroup]. Empty input is "all".
func ParseProductGroup(s string) (ProductGroup, error) {
	if s == "" {
		return GroupAll, nil
	}
	g := ProductGroup(s)
	if !slices.Contains(ProductGroups(), g) {
		return "", fmt.Errorf("%w: product group %q", shared.ErrInvalidArgument, s)
	}
	return g, nil
}

// Includes reports whether p belongs to the group.
func (g ProductGroup) Includes(p models.Product) bool {
	switch g {
	case GroupAll, "":
		return true
	case GroupAffiliate:
		return p.IsAffiliate
	}
	return slices.Contains(groupCategories[g], p.Category)
}

// ProductState is the product filter selection.
type ProductState struct {
	SearchQuery string       `json:"search_query"`
	Group       ProductGroup `json:"group"`
}

// Products returns the products visible under s; search covers title, description and tags.
func Products(products []models.Product, s ProductState) []models.Product {
	query := lower(shared.NormalizeSearch(s.SearchQuery))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if s.Group.Includes(p) && MatchesSearch(query, p.Title, p.Description, p.Tags) {
			out = append(out, p)
		}
	}
	return out
}
