package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/neelamenterprises/sajawatdesigns/internal/dto"
	"github.com/neelamenterprises/sajawatdesigns/internal/mockdata"
	"github.com/neelamenterprises/sajawatdesigns/internal/model"
	"github.com/neelamenterprises/sajawatdesigns/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// activeMockCount is the number of is_active products in the built-in dataset.
const activeMockCount = 14

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestStaticListCategoriesOrdered(t *testing.T) {
	repo := repository.NewStaticCatalog()

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 6)

	for i := 1; i < len(categories); i++ {
		assert.LessOrEqual(t, categories[i-1].Name, categories[i].Name)
	}
}

func TestStaticGetCategoryBySlug(t *testing.T) {
	repo := repository.NewStaticCatalog()

	cat, err := repo.GetCategoryBySlug(context.Background(), "rings")
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, "Rings", cat.Name)

	missing, err := repo.GetCategoryBySlug(context.Background(), "watches")
	require.NoError(t, err)
	assert.Nil(t, missing, "unknown slug is absence, not an error")
}

func TestStaticListProductsDefaults(t *testing.T) {
	repo := repository.NewStaticCatalog()

	items, total, err := repo.ListProducts(context.Background(), dto.DecodeProductFilter(nil))
	require.NoError(t, err)

	assert.EqualValues(t, activeMockCount, total, "total counts active products before pagination")
	assert.Len(t, items, dto.DefaultLimit)
	for _, p := range items {
		assert.True(t, p.IsActive)
	}
}

func TestStaticPriceRangeInclusive(t *testing.T) {
	repo := repository.NewStaticCatalog()

	items, total, err := repo.ListProducts(context.Background(), dto.ProductFilter{
		MinPrice: dec(1000), MaxPrice: dec(2000), Page: 1, Limit: 50,
	})
	require.NoError(t, err)
	assert.EqualValues(t, len(items), total)

	var sawMin, sawMax bool
	for _, p := range items {
		assert.True(t, p.Price.Cmp(decimal.NewFromInt(1000)) >= 0)
		assert.True(t, p.Price.Cmp(decimal.NewFromInt(2000)) <= 0)
		sawMin = sawMin || p.Price.Equal(decimal.NewFromInt(1000))
		sawMax = sawMax || p.Price.Equal(decimal.NewFromInt(2000))
	}
	assert.True(t, sawMin, "a product at exactly the lower bound is included")
	assert.True(t, sawMax, "a product at exactly the upper bound is included")
}

func TestStaticPlatformFilter(t *testing.T) {
	repo := repository.NewStaticCatalog()

	items, _, err := repo.ListProducts(context.Background(), dto.ProductFilter{
		Platforms: []string{"amazon"}, Page: 1, Limit: 50,
	})
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, p := range items {
		assert.NotNil(t, p.AmazonURL, "every match has an amazon listing")
		assert.True(t, p.IsActive)
	}

	// A product qualifying via any one of several requested platforms counts.
	multi, _, err := repo.ListProducts(context.Background(), dto.ProductFilter{
		Platforms: []string{"flipkart", "meesho"}, Page: 1, Limit: 50,
	})
	require.NoError(t, err)
	for _, p := range multi {
		assert.True(t, p.FlipkartURL != nil || p.MeeshoURL != nil)
	}

	// Unknown platforms never match anything.
	none, total, err := repo.ListProducts(context.Background(), dto.ProductFilter{
		Platforms: []string{"myntra"}, Page: 1, Limit: 50,
	})
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Zero(t, total)
}

func TestStaticCategoryFilter(t *testing.T) {
	repo := repository.NewStaticCatalog()

	rings, _, err := repo.ListProducts(context.Background(), dto.ProductFilter{
		CategorySlug: "rings", Page: 1, Limit: 50,
	})
	require.NoError(t, err)
	require.NotEmpty(t, rings)
	for _, p := range rings {
		assert.Equal(t, mockdata.CategoryID(1), p.CategoryID)
	}

	// An unresolvable slug leaves the filter a no-op rather than emptying
	// the result set.
	all, total, err := repo.ListProducts(context.Background(), dto.ProductFilter{
		CategorySlug: "watches", Page: 1, Limit: 50,
	})
	require.NoError(t, err)
	assert.EqualValues(t, activeMockCount, total)
	assert.Len(t, all, activeMockCount)
}

func TestStaticSortOrders(t *testing.T) {
	repo := repository.NewStaticCatalog()
	ctx := context.Background()

	asc, _, err := repo.ListProducts(ctx, dto.ProductFilter{Sort: dto.SortPriceLowHigh, Page: 1, Limit: 50})
	require.NoError(t, err)
	for i := 1; i < len(asc); i++ {
		assert.True(t, asc[i-1].Price.Cmp(asc[i].Price) <= 0, "non-decreasing price order")
	}

	desc, _, err := repo.ListProducts(ctx, dto.ProductFilter{Sort: dto.SortPriceHighLow, Page: 1, Limit: 50})
	require.NoError(t, err)
	for i := 1; i < len(desc); i++ {
		assert.True(t, desc[i-1].Price.Cmp(desc[i].Price) >= 0, "non-increasing price order")
	}

	newest, _, err := repo.ListProducts(ctx, dto.ProductFilter{Sort: dto.SortNewest, Page: 1, Limit: 50})
	require.NoError(t, err)
	for i := 1; i < len(newest); i++ {
		assert.False(t, newest[i-1].CreatedAt.Before(newest[i].CreatedAt))
	}

	popular, _, err := repo.ListProducts(ctx, dto.ProductFilter{Sort: dto.SortPopularity, Page: 1, Limit: 50})
	require.NoError(t, err)
	// Trending block first, then featured-only, then the rest.
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
	for i := 1; i < len(popular); i++ {
		assert.LessOrEqual(t, rank(popular[i-1]), rank(popular[i]))
	}
}

func TestStaticPagination(t *testing.T) {
	repo := repository.NewStaticCatalog()
	ctx := context.Background()

	all, total, err := repo.ListProducts(ctx, dto.ProductFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	require.EqualValues(t, activeMockCount, total)

	page2, total2, err := repo.ListProducts(ctx, dto.ProductFilter{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.EqualValues(t, activeMockCount, total2, "total is unaffected by paging")
	require.Len(t, page2, 5)
	assert.Equal(t, all[5:10], page2, "page 2 is the second slice of the sorted set")

	// Paging past the end is empty, not an error.
	empty, total3, err := repo.ListProducts(ctx, dto.ProductFilter{Page: 99, Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.EqualValues(t, activeMockCount, total3)
}

func TestStaticGetProductBySlugVisibility(t *testing.T) {
	repo := repository.NewStaticCatalog()
	ctx := context.Background()

	p, err := repo.GetProductBySlug(ctx, "classic-gold-plated-ring")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Classic Gold Plated Ring", p.Name)

	// The record exists but is inactive — shopper-facing lookups miss it.
	hidden, err := repo.GetProductBySlug(ctx, "vintage-brass-ring")
	require.NoError(t, err)
	assert.Nil(t, hidden)
}

func TestStaticFeaturedAndTrending(t *testing.T) {
	repo := repository.NewStaticCatalog()
	ctx := context.Background()

	featured, err := repo.FeaturedProducts(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, featured)
	assert.LessOrEqual(t, len(featured), repository.FeaturedLimit)
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
		assert.True(t, p.IsActive)
	}

	trending, err := repo.TrendingProducts(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, trending)
	assert.LessOrEqual(t, len(trending), repository.TrendingLimit)
	for _, p := range trending {
		assert.True(t, p.IsTrending)
		assert.True(t, p.IsActive)
	}
}

func TestStaticTrendingCap(t *testing.T) {
	// A dataset with more trending products than the cap.
	var products []model.Product
	for i := 0; i < repository.TrendingLimit+3; i++ {
		p := mockdata.Products()[0]
		p.ID = mockdata.ProductID(100 + i)
		p.IsTrending = true
		products = append(products, p)
	}
	repo := repository.NewStaticCatalogWith(nil, products)

	trending, err := repo.TrendingProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, trending, repository.TrendingLimit)
}

func TestStaticRelatedProducts(t *testing.T) {
	repo := repository.NewStaticCatalog()

	related, err := repo.RelatedProducts(context.Background(), mockdata.ProductID(1), mockdata.CategoryID(1))
	require.NoError(t, err)

	assert.LessOrEqual(t, len(related), repository.RelatedLimit)
	assert.NotEmpty(t, related)
	for _, p := range related {
		assert.NotEqual(t, mockdata.ProductID(1), p.ID, "never includes the product itself")
		assert.Equal(t, mockdata.CategoryID(1), p.CategoryID)
		assert.True(t, p.IsActive)
	}
}

func TestStaticSearch(t *testing.T) {
	repo := repository.NewStaticCatalog()
	ctx := context.Background()

	items, total, err := repo.SearchProducts(ctx, "RING", dto.ProductFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.EqualValues(t, len(items), total)
	require.NotEmpty(t, items)

	for _, p := range items {
		assert.True(t, p.IsActive, "inactive products never surface in search")
		matched := strings.Contains(strings.ToLower(p.Name), "ring") ||
			strings.Contains(strings.ToLower(p.Description), "ring") ||
			strings.Contains(strings.ToLower(strings.Join(p.Tags, " ")), "ring")
		assert.True(t, matched, "product %s matched without containing the query", p.Slug)
		assert.NotEqual(t, "vintage-brass-ring", p.Slug)
	}

	// Tag-only matches count too.
	byTag, _, err := repo.SearchProducts(ctx, "daily-wear", dto.ProductFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "classic-gold-plated-ring", byTag[0].Slug)
}
