package repository_test

import (
	"context"
	"testing"

	"github.com/neelamenterprises/sajawatdesigns/internal/dto"
	"github.com/neelamenterprises/sajawatdesigns/internal/mockdata"
	"github.com/neelamenterprises/sajawatdesigns/internal/model"
	"github.com/neelamenterprises/sajawatdesigns/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens an in-memory sqlite database seeded with the built-in
// dataset, so the live query path is exercised without postgres.
func newTestStore(t *testing.T) repository.CatalogStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Category{}, &model.Product{}))

	for _, c := range mockdata.Categories() {
		c := c
		require.NoError(t, db.Create(&c).Error)
	}
	for _, p := range mockdata.Products() {
		p := p
		require.NoError(t, db.Create(&p).Error)
	}

	return repository.NewGormCatalog(db)
}

func slugs(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Slug
	}
	return out
}

// TestGormMatchesStaticSemantics runs the same filters against the live
// (sqlite) and static backends and requires identical results — the mock
// provider is the effective contract for the whole engine.
func TestGormMatchesStaticSemantics(t *testing.T) {
	live := newTestStore(t)
	static := repository.NewStaticCatalog()
	ctx := context.Background()

	filters := map[string]dto.ProductFilter{
		"defaults":           {Page: 1, Limit: 12},
		"price band":         {MinPrice: dec(1000), MaxPrice: dec(2000), Page: 1, Limit: 50},
		"amazon only":        {Platforms: []string{"amazon"}, Page: 1, Limit: 50},
		"two platforms":      {Platforms: []string{"flipkart", "meesho"}, Page: 1, Limit: 50},
		"unknown platform":   {Platforms: []string{"myntra"}, Page: 1, Limit: 50},
		"rings category":     {CategorySlug: "rings", Page: 1, Limit: 50},
		"phantom category":   {CategorySlug: "watches", Page: 1, Limit: 50},
		"price ascending":    {Sort: dto.SortPriceLowHigh, Page: 1, Limit: 50},
		"price descending":   {Sort: dto.SortPriceHighLow, Page: 1, Limit: 50},
		"second page":        {Page: 2, Limit: 5},
		"past the end":       {Page: 99, Limit: 12},
		"band plus platform": {MinPrice: dec(500), MaxPrice: dec(3000), Platforms: []string{"amazon"}, Sort: dto.SortPriceLowHigh, Page: 1, Limit: 50},
	}

	for name, f := range filters {
		t.Run(name, func(t *testing.T) {
			liveItems, liveTotal, err := live.ListProducts(ctx, f)
			require.NoError(t, err)
			staticItems, staticTotal, err := static.ListProducts(ctx, f)
			require.NoError(t, err)

			assert.Equal(t, staticTotal, liveTotal)
			assert.Equal(t, slugs(staticItems), slugs(liveItems))
		})
	}
}

func TestGormSearchMatchesStatic(t *testing.T) {
	live := newTestStore(t)
	static := repository.NewStaticCatalog()
	ctx := context.Background()
	f := dto.ProductFilter{Page: 1, Limit: 50}

	// "daily_wear" and "50%" carry LIKE metacharacters: unescaped, the
	// underscore would match the "daily-wear" tag on the live backend only.
	for _, q := range []string{"ring", "RING", "kundan", "daily-wear", "nosuchthing", "daily_wear", "50%"} {
		liveItems, liveTotal, err := live.SearchProducts(ctx, q, f)
		require.NoError(t, err)
		staticItems, staticTotal, err := static.SearchProducts(ctx, q, f)
		require.NoError(t, err)

		assert.Equal(t, staticTotal, liveTotal, "query %q", q)
		assert.Equal(t, slugs(staticItems), slugs(liveItems), "query %q", q)
	}
}

// Popularity ties are unordered, so the live backend is checked for rank
// monotonicity and set equality with the static backend rather than for an
// exact sequence.
func TestGormPopularitySort(t *testing.T) {
	live := newTestStore(t)
	static := repository.NewStaticCatalog()
	ctx := context.Background()
	f := dto.ProductFilter{Sort: dto.SortPopularity, Page: 1, Limit: 50}

	liveItems, liveTotal, err := live.ListProducts(ctx, f)
	require.NoError(t, err)

	rank := func(p model.Product) int {
		switch {
		case p.IsTrending:
			return 0
		case p.IsFeatured:
			return 1
		default:
			return 2
		}
	}
	for i := 1; i < len(liveItems); i++ {
		assert.LessOrEqual(t, rank(liveItems[i-1]), rank(liveItems[i]),
			"trending first, then featured-only, then the rest")
	}

	staticItems, staticTotal, err := static.ListProducts(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, staticTotal, liveTotal)
	assert.ElementsMatch(t, slugs(staticItems), slugs(liveItems))
}

// A product created inactive must stay inactive: column defaults would let
// the ORM drop the zero-valued flag on insert and publish a draft.
func TestGormCreatePreservesInactive(t *testing.T) {
	live := newTestStore(t)
	ctx := context.Background()

	p := &model.Product{
		Name: "Raw Emerald Pendant", Slug: "raw-emerald-pendant",
		CategoryID: mockdata.CategoryID(5),
		Price:      decimal.NewFromInt(2499), MRP: decimal.NewFromInt(2999),
		IsActive:   false,
	}
	require.NoError(t, live.CreateProduct(ctx, p))

	stored, err := live.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.IsActive, "draft product must persist as inactive")

	hidden, err := live.GetProductBySlug(ctx, "raw-emerald-pendant")
	require.NoError(t, err)
	assert.Nil(t, hidden)

	_, total, err := live.ListProducts(ctx, dto.ProductFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.EqualValues(t, activeMockCount, total, "draft must not appear in listings")
}

func TestGormLookupsAndCaps(t *testing.T) {
	live := newTestStore(t)
	ctx := context.Background()

	cat, err := live.GetCategoryBySlug(ctx, "earrings")
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, "Earrings", cat.Name)

	missing, err := live.GetCategoryBySlug(ctx, "watches")
	require.NoError(t, err)
	assert.Nil(t, missing)

	hidden, err := live.GetProductBySlug(ctx, "vintage-brass-ring")
	require.NoError(t, err)
	assert.Nil(t, hidden, "inactive products are invisible by slug")

	categories, err := live.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, "Anklets", categories[0].Name, "categories come back name-ascending")

	related, err := live.RelatedProducts(ctx, mockdata.ProductID(1), mockdata.CategoryID(1))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(related), repository.RelatedLimit)
	for _, p := range related {
		assert.NotEqual(t, mockdata.ProductID(1), p.ID)
		assert.Equal(t, mockdata.CategoryID(1), p.CategoryID)
		assert.True(t, p.IsActive)
	}
}

func TestGormWrites(t *testing.T) {
	live := newTestStore(t)
	ctx := context.Background()

	p := &model.Product{
		Name: "Navratna Ring", Slug: "navratna-ring",
		CategoryID: mockdata.CategoryID(1),
		Price:      decimal.NewFromInt(1899), MRP: decimal.NewFromInt(2499),
		Images: []string{"https://ik.imagekit.io/sajawat/products/navratna-1.jpg"},
		Tags:   []string{"navratna", "ring"},
		IsActive: true,
	}
	require.NoError(t, live.CreateProduct(ctx, p))
	require.NotEqual(t, uuid.Nil, p.ID, "id assigned client-side on create")

	got, err := live.GetProductBySlug(ctx, "navratna-ring")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"navratna", "ring"}, got.Tags)

	// Full-record replace.
	got.Name = "Navratna Stone Ring"
	got.Slug = "navratna-stone-ring"
	got.IsFeatured = true
	require.NoError(t, live.UpdateProduct(ctx, got))

	updated, err := live.GetProductByID(ctx, got.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "navratna-stone-ring", updated.Slug)
	assert.True(t, updated.IsFeatured)

	// Flag toggles hit exactly one whitelisted column.
	require.NoError(t, live.SetProductFlag(ctx, got.ID, "is_active", false))
	gone, err := live.GetProductBySlug(ctx, "navratna-stone-ring")
	require.NoError(t, err)
	assert.Nil(t, gone, "deactivated product drops out of shopper lookups")

	err = live.SetProductFlag(ctx, got.ID, "price", true)
	assert.Error(t, err, "non-flag columns must be rejected")

	require.NoError(t, live.DeleteProduct(ctx, got.ID))
	assert.Error(t, live.DeleteProduct(ctx, got.ID), "double delete reports not found")
}

func TestGormCategoryWrites(t *testing.T) {
	live := newTestStore(t)
	ctx := context.Background()

	c := &model.Category{Name: "Nose Pins", Slug: "nose-pins", ImageURL: "https://ik.imagekit.io/sajawat/categories/nose-pins.jpg"}
	require.NoError(t, live.CreateCategory(ctx, c))

	got, err := live.GetCategoryByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	got.Name = "Nose Rings"
	got.Slug = "nose-rings"
	require.NoError(t, live.UpdateCategory(ctx, got))

	bySlug, err := live.GetCategoryBySlug(ctx, "nose-rings")
	require.NoError(t, err)
	require.NotNil(t, bySlug)

	require.NoError(t, live.DeleteCategory(ctx, c.ID))
	assert.Error(t, live.DeleteCategory(ctx, c.ID))

	// Deleting a category never cascades to its products.
	before, _, err := live.ListProducts(ctx, dto.ProductFilter{CategorySlug: "rings", Page: 1, Limit: 50})
	require.NoError(t, err)
	ringCat, err := live.GetCategoryBySlug(ctx, "rings")
	require.NoError(t, err)
	require.NoError(t, live.DeleteCategory(ctx, ringCat.ID))

	after, total, err := live.ListProducts(ctx, dto.ProductFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.EqualValues(t, activeMockCount, total, "products survive their category")
	assert.NotEmpty(t, before)
	assert.NotEmpty(t, after)
}
