package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/neelamenterprises/sajawatdesigns/internal/dto"
	"github.com/neelamenterprises/sajawatdesigns/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormCatalog struct{ db *gorm.DB }

// NewGormCatalog returns the live CatalogStore backed by the hosted database.
func NewGormCatalog(db *gorm.DB) CatalogStore { return &gormCatalog{db: db} }

// ── Categories ───────────────────────────────────────────────────────────────

func (r *gormCatalog) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *gormCatalog) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *gormCatalog) GetCategoryByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *gormCatalog) CreateCategory(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gormCatalog) UpdateCategory(ctx context.Context, c *model.Category) error {
	res := r.db.WithContext(ctx).Save(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category %s not found", c.ID)
	}
	return nil
}

func (r *gormCatalog) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	// No cascade: products keep their (now dangling) category_id.
	res := r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category %s not found", id)
	}
	return nil
}

// ── Product reads ────────────────────────────────────────────────────────────

// productQuery applies the shared visibility rule plus the filter's
// constraints. The category slug is resolved first; an unresolvable slug is
// a no-op, not an empty result.
func (r *gormCatalog) productQuery(ctx context.Context, f dto.ProductFilter) (*gorm.DB, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("is_active = ?", true)

	if f.CategorySlug != "" {
		cat, err := r.GetCategoryBySlug(ctx, f.CategorySlug)
		if err != nil {
			return nil, err
		}
		if cat != nil {
			q = q.Where("category_id = ?", cat.ID)
		}
	}

	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	if len(f.Platforms) > 0 {
		or := r.db.Session(&gorm.Session{NewDB: true})
		matched := false
		for _, p := range f.Platforms {
			col, ok := platformColumns[p]
			if !ok {
				continue
			}
			or = or.Or(col + " IS NOT NULL")
			matched = true
		}
		if matched {
			q = q.Where(or)
		} else {
			// Every requested platform is unknown — nothing can match.
			q = q.Where("1 = 0")
		}
	}

	return q, nil
}

func orderFor(sort dto.SortOption) string {
	switch sort {
	case dto.SortPriceLowHigh:
		return "price ASC"
	case dto.SortPriceHighLow:
		return "price DESC"
	case dto.SortPopularity:
		return "is_trending DESC, is_featured DESC"
	default:
		return "created_at DESC"
	}
}

func (r *gormCatalog) ListProducts(ctx context.Context, f dto.ProductFilter) ([]model.Product, int64, error) {
	q, err := r.productQuery(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err = q.Order(orderFor(f.Sort)).
		Limit(f.PageSize()).Offset(f.Offset()).
		Find(&products).Error
	return products, total, err
}

func (r *gormCatalog) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormCatalog) GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormCatalog) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("is_featured = ? AND is_active = ?", true, true).
		Limit(FeaturedLimit).Find(&products).Error
	return products, err
}

func (r *gormCatalog) TrendingProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("is_trending = ? AND is_active = ?", true, true).
		Limit(TrendingLimit).Find(&products).Error
	return products, err
}

func (r *gormCatalog) RelatedProducts(ctx context.Context, productID, categoryID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND id <> ? AND is_active = ?", categoryID, productID, true).
		Limit(RelatedLimit).Find(&products).Error
	return products, err
}

func (r *gormCatalog) SearchProducts(ctx context.Context, query string, f dto.ProductFilter) ([]model.Product, int64, error) {
	q, err := r.productQuery(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	// Tags are stored as a JSON text column, so a substring match over the
	// raw column text covers them with the same portable LIKE as the rest.
	// ESCAPE is spelled out: sqlite LIKE has no default escape character.
	pattern := "%" + escapeLike(query) + "%"
	q = q.Where(
		r.db.Session(&gorm.Session{NewDB: true}).
			Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, pattern).
			Or(`LOWER(description) LIKE LOWER(?) ESCAPE '\'`, pattern).
			Or(`LOWER(tags) LIKE LOWER(?) ESCAPE '\'`, pattern),
	)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err = q.Order(orderFor(f.Sort)).
		Limit(f.PageSize()).Offset(f.Offset()).
		Find(&products).Error
	return products, total, err
}

// escapeLike neutralizes LIKE metacharacters in user-supplied search text.
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}

// ── Product writes ───────────────────────────────────────────────────────────

func (r *gormCatalog) CreateProduct(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *gormCatalog) UpdateProduct(ctx context.Context, p *model.Product) error {
	// Full-record replace: Save writes every column, zero values included.
	res := r.db.WithContext(ctx).Save(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s not found", p.ID)
	}
	return nil
}

func (r *gormCatalog) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s not found", id)
	}
	return nil
}

func (r *gormCatalog) SetProductFlag(ctx context.Context, id uuid.UUID, field string, value bool) error {
	if !toggleColumns[field] {
		return fmt.Errorf("field %q is not toggleable", field)
	}
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Update(field, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s not found", id)
	}
	return nil
}
