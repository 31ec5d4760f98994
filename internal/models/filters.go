package models

// CollectionFilter holds the optional facets for collection listings
type CollectionFilter struct {
	Search    string
	Set       string
	Rarity    string
	Condition string
	Type      string
	Series    string
	Page      int
	Limit     int
}

// CatalogFilter holds the optional facets for catalog listings
type CatalogFilter struct {
	Search string
	Set    string
	Rarity string
	Series string
	Type   string
	Page   int
	Limit  int
}

// CollectionFilterOptions lists the values available for each collection facet
type CollectionFilterOptions struct {
	Sets       []string `json:"sets"`
	Rarities   []string `json:"rarities"`
	Conditions []string `json:"conditions"`
	Types      []string `json:"types"`
}

// CatalogFilterOptions lists the values available for each catalog facet
type CatalogFilterOptions struct {
	Sets     []string `json:"sets"`
	Rarities []string `json:"rarities"`
	Series   []string `json:"series"`
	Types    []string `json:"types"`
}
