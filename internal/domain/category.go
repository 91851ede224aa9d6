package domain

import (
	"cmp"
	"slices"
	"time"
)

// Category is an immutable snapshot of a category. A category is a root
// iff ParentID is nil.
type Category struct {
	ID          CategoryID
	Name        CategoryName
	Slug        Slug
	Description CategoryDescription
	ParentID    *CategoryID
	Order       CategoryOrder
	Timestamps  Timestamps
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool {
	return c.ParentID == nil
}

// CategoryRecord is the primitive form of a category at persistence boundaries.
type CategoryRecord struct {
	ID          string
	Name        string
	Slug        string
	Description string
	ParentID    *string
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RehydrateCategory rebuilds a category from stored primitives.
func RehydrateCategory(r CategoryRecord) (Category, error) {
	corrupt := func(err error) (Category, error) {
		return Category{}, ErrCorrupted("category", r.ID, err)
	}

	id, err := NewCategoryID(r.ID)
	if err != nil {
		return corrupt(err)
	}
	name, err := NewCategoryName(r.Name)
	if err != nil {
		return corrupt(err)
	}
	slug, err := NewSlug(r.Slug)
	if err != nil {
		return corrupt(err)
	}
	desc, err := NewCategoryDescription(r.Description)
	if err != nil {
		return corrupt(err)
	}
	order, err := NewCategoryOrder(r.Order)
	if err != nil {
		return corrupt(err)
	}
	ts, err := NewTimestamps(r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return corrupt(err)
	}

	c := Category{ID: id, Name: name, Slug: slug, Description: desc, Order: order, Timestamps: ts}
	if r.ParentID != nil {
		parent, err := NewCategoryID(*r.ParentID)
		if err != nil {
			return corrupt(err)
		}
		c.ParentID = &parent
	}
	return c, nil
}

// Record converts the snapshot into its primitive form.
func (c Category) Record() CategoryRecord {
	r := CategoryRecord{
		ID:          string(c.ID),
		Name:        string(c.Name),
		Slug:        string(c.Slug),
		Description: string(c.Description),
		Order:       int(c.Order),
		CreatedAt:   c.Timestamps.CreatedAt,
		UpdatedAt:   c.Timestamps.UpdatedAt,
	}
	if c.ParentID != nil {
		p := string(*c.ParentID)
		r.ParentID = &p
	}
	return r
}

// Category tree depth bounds. Roots are depth 1.
const (
	DefaultCategoryTreeDepth = 3
	MaxCategoryTreeDepth     = 10
)

// CategoryNode is a category with its children, used by tree queries.
type CategoryNode struct {
	Category Category
	Depth    int
	Children []CategoryNode
}

// BuildCategoryTree arranges a flat list into a forest ordered by Order then
// Name, cutting branches deeper than maxDepth (roots are depth 1). Categories
// whose parent is missing from the list are treated as roots.
func BuildCategoryTree(categories []Category, maxDepth int) []CategoryNode {
	byParent := make(map[CategoryID][]Category)
	known := make(map[CategoryID]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}
	var roots []Category
	for _, c := range categories {
		if c.ParentID == nil || !known[*c.ParentID] {
			roots = append(roots, c)
			continue
		}
		byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
	}

	visited := make(map[CategoryID]bool, len(categories))
	var build func(list []Category, depth int) []CategoryNode
	build = func(list []Category, depth int) []CategoryNode {
		if depth > maxDepth || len(list) == 0 {
			return nil
		}
		slices.SortStableFunc(list, compareCategories)
		nodes := make([]CategoryNode, 0, len(list))
		for _, c := range list {
			if visited[c.ID] {
				continue
			}
			visited[c.ID] = true
			nodes = append(nodes, CategoryNode{
				Category: c,
				Depth:    depth,
				Children: build(byParent[c.ID], depth+1),
			})
		}
		return nodes
	}
	return build(roots, 1)
}

func compareCategories(a, b Category) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}
