// Package mockdata holds the built-in catalog used whenever no live backend
// is configured, and as the backend of last resort when a live call fails.
// The records are deterministic: fixed IDs and staggered created-at stamps
// keep ordering assertions stable across runs.
package mockdata

import (
	"fmt"
	"time"

	"github.com/neelamenterprises/sajawatdesigns/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var base = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

// CategoryID returns the fixed ID of the n-th built-in category (1-based).
func CategoryID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("c0000000-0000-4000-8000-%012d", n))
}

// ProductID returns the fixed ID of the n-th built-in product (1-based).
func ProductID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("b0000000-0000-4000-8000-%012d", n))
}

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func ptr(s string) *string { return &s }

func img(path string) string {
	return "https://ik.imagekit.io/sajawat/" + path
}

// Categories returns a fresh copy of the built-in categories.
func Categories() []model.Category {
	return append([]model.Category(nil), categories...)
}

// Products returns a fresh copy of the built-in products.
func Products() []model.Product {
	return append([]model.Product(nil), products...)
}

var categories = []model.Category{
	{ID: CategoryID(1), Name: "Rings", Slug: "rings", ImageURL: img("categories/rings.jpg"), Description: ptr("Statement and everyday rings"), CreatedAt: base},
	{ID: CategoryID(2), Name: "Earrings", Slug: "earrings", ImageURL: img("categories/earrings.jpg"), Description: ptr("Jhumkas, studs and drops"), CreatedAt: base},
	{ID: CategoryID(3), Name: "Necklaces", Slug: "necklaces", ImageURL: img("categories/necklaces.jpg"), Description: ptr("Chokers, chains and layered sets"), CreatedAt: base},
	{ID: CategoryID(4), Name: "Bracelets", Slug: "bracelets", ImageURL: img("categories/bracelets.jpg"), CreatedAt: base},
	{ID: CategoryID(5), Name: "Pendants", Slug: "pendants", ImageURL: img("categories/pendants.jpg"), CreatedAt: base},
	{ID: CategoryID(6), Name: "Anklets", Slug: "anklets", ImageURL: img("categories/anklets.jpg"), CreatedAt: base},
}

// products are numbered so that a higher index is a newer record.
var products = []model.Product{
	{
		ID: ProductID(1), Name: "Classic Gold Plated Ring", Slug: "classic-gold-plated-ring",
		Description:      "Timeless 22K gold plated band with a mirror polish finish. Skin-friendly brass base suitable for daily wear.",
		ShortDescription: "22K gold plated everyday band",
		CategoryID:       CategoryID(1), Price: price(999), MRP: price(1499),
		Images: []string{img("products/classic-gold-ring-1.jpg"), img("products/classic-gold-ring-2.jpg")},
		Tags:   []string{"gold", "ring", "daily-wear"},
		AmazonURL: ptr("https://www.amazon.in/dp/B0CLASSIC1"), FlipkartURL: ptr("https://www.flipkart.com/classic-gold-ring/p/itm1"),
		IsFeatured: true, IsActive: true,
		CreatedAt: base.AddDate(0, 0, 1), UpdatedAt: base.AddDate(0, 0, 1),
	},
	{
		ID: ProductID(2), Name: "Rose Gold Heart Ring", Slug: "rose-gold-heart-ring",
		Description:      "Adjustable rose gold ring with a cubic zirconia heart. Comes gift boxed.",
		ShortDescription: "Adjustable CZ heart ring",
		CategoryID:       CategoryID(1), Price: price(1000), MRP: price(1999),
		Images: []string{img("products/rose-gold-heart-ring-1.jpg")},
		Tags:   []string{"rose-gold", "ring", "gift"},
		AmazonURL: ptr("https://www.amazon.in/dp/B0ROSEHRT2"),
		IsTrending: true, IsActive: true,
		CreatedAt: base.AddDate(0, 0, 2), UpdatedAt: base.AddDate(0, 0, 2),
	},
	{
		ID: ProductID(3), Name: "Kundan Bridal Ring", Slug: "kundan-bridal-ring",
		Description:      "Handcrafted kundan stone ring set in an antique gold tone base. Bridal collection.",
		ShortDescription: "Antique kundan bridal ring",
		CategoryID:       CategoryID(1), Price: price(2000), MRP: price(2999),
		Images: []string{img("products/kundan-bridal-ring-1.jpg")},
		Tags:   []string{"kundan", "bridal"},
		FlipkartURL: ptr("https://www.flipkart.com/kundan-bridal-ring/p/itm3"), MeeshoURL: ptr("https://www.meesho.com/kundan-bridal-ring/p/3"),
		IsFeatured: true, IsActive: true,
		CreatedAt: base.AddDate(0, 0, 3), UpdatedAt: base.AddDate(0, 0, 3),
	},
	{
		ID: ProductID(4), Name: "Oxidised Silver Ring", Slug: "oxidised-silver-ring",
		Description:      "Boho oxidised ring with tribal engraving. Pairs well with ethnic and indo-western outfits.",
		ShortDescription: "Tribal oxidised ring",
		CategoryID:       CategoryID(1), Price: price(499), MRP: price(799),
		Images: []string{img("products/oxidised-silver-ring-1.jpg")},
		Tags:   []string{"oxidised", "silver"},
		MeeshoURL: ptr("https://www.meesho.com/oxidised-silver-ring/p/4"),
		IsActive:  true,
		CreatedAt: base.AddDate(0, 0, 4), UpdatedAt: base.AddDate(0, 0, 4),
	},
	{
		ID: ProductID(5), Name: "American Diamond Solitaire Ring", Slug: "american-diamond-solitaire-ring",
		Description:      "Brilliant-cut american diamond solitaire on a rhodium plated band. Anniversary favourite.",
		ShortDescription: "AD solitaire on rhodium band",
		CategoryID:       CategoryID(1), Price: price(2999), MRP: price(3999),
		Images: []string{img("products/ad-solitaire-ring-1.jpg"), img("products/ad-solitaire-ring-2.jpg")},
		Tags:   []string{"american-diamond", "solitaire"},
		AmazonURL: ptr("https://www.amazon.in/dp/B0ADSOLIT5"), FlipkartURL: ptr("https://www.flipkart.com/ad-solitaire-ring/p/itm5"), MeeshoURL: ptr("https://www.meesho.com/ad-solitaire-ring/p/5"),
		IsTrending: true, IsActive: true,
		CreatedAt: base.AddDate(0, 0, 5), UpdatedAt: base.AddDate(0, 0, 5),
	},
	{
		ID: ProductID(6), Name: "Emerald Statement Ring", Slug: "emerald-statement-ring",
		Description:      "Lab-created emerald centrepiece surrounded by pave-set stones. Cocktail party statement piece.",
		ShortDescription: "Emerald cocktail ring",
		CategoryID:       CategoryID(1), Price: price(3499), MRP: price(4999),
		Images: []string{img("products/emerald-statement-ring-1.jpg")},
		Tags:   []string{"emerald", "statement"},
		AmazonURL: ptr("https://www.amazon.in/dp/B0EMERALD6"),
		IsActive:  true,
		CreatedAt: base.AddDate(0, 0, 6), UpdatedAt: base.AddDate(0, 0, 6),
	},
	{
		ID: ProductID(7), Name: "Vintage Brass Ring", Slug: "vintage-brass-ring",
		Description:      "Retired design. Antique brass ring with patina finish.",
		ShortDescription: "Antique brass ring",
		CategoryID:       CategoryID(1), Price: price(899), MRP: price(1299),
		Images: []string{img("products/vintage-brass-ring-1.jpg")},
		Tags:   []string{"vintage", "brass"},
		AmazonURL: ptr("https://www.amazon.in/dp/B0VINTAGE7"),
		IsActive:  false,
		CreatedAt: base.AddDate(0, 0, 7), UpdatedAt: base.AddDate(0, 0, 7),
	},
	{
		ID: ProductID(8), Name: "Pearl Drop Earrings", Slug: "pearl-drop-earrings",
		Description:      "Freshwater-look pearl drops on gold plated hooks. Office to occasion wear.",
		ShortDescription: "Gold plated pearl drops",
		CategoryID:       CategoryID(2), Price: price(1299), MRP: price(1999),
		Images: []string{img("products/pearl-drop-earrings-1.jpg")},
		Tags:   []string{"pearl", "drops"},
		AmazonURL: ptr("https://www.amazon.in/dp/B0PEARLDR8"), MeeshoURL: ptr("https://www.meesho.com/pearl-drop-earrings/p/8"),
		IsFeatured: true, IsActive: true,
		CreatedAt: base.AddDate(0, 0, 8), UpdatedAt: base.AddDate(0, 0, 8),
	},
	{
		ID: ProductID(9), Name: "Oxidised Jhumkas", Slug: "oxidised-jhumkas",
		Description:      "Classic temple style jhumkas in oxidised german silver with ghungroo detailing.",
		ShortDescription: "Temple style oxidised jhumkas",
		CategoryID:       CategoryID(2), Price: price(649), MRP: price(999),
		Images: []string{img("products/oxidised-jhumkas-1.jpg"), img("products/oxidised-jhumkas-2.jpg")},
		Tags:   []string{"jhumka", "oxidised"},
		MeeshoURL:  ptr("https://www.meesho.com/oxidised-jhumkas/p/9"),
		IsTrending: true, IsActive: true,
		CreatedAt: base.AddDate(0, 0, 9), UpdatedAt: base.AddDate(0, 0, 9),
	},
	{
		ID: ProductID(10), Name: "Chandbali Earrings", Slug: "chandbali-earrings",
		Description:      "Crescent chandbali earrings with meenakari enamel work and hanging pearls. Festive wear.",
		ShortDescription: "Meenakari chandbali pair",
		CategoryID:       CategoryID(2), Price: price(1799), MRP: price(2499),
		Images: []string{img("products/chandbali-earrings-1.jpg")},
		Tags:   []string{"chandbali", "festive"},
		FlipkartURL: ptr("https://www.flipkart.com/chandbali-earrings/p/itm10"),
		IsActive:    true,
		CreatedAt: base.AddDate(0, 0, 10), UpdatedAt: base.AddDate(0, 0, 10),
	},
	{
		ID: ProductID(11), Name: "Layered Gold Necklace", Slug: "layered-gold-necklace",
		Description:      "Three-layer gold plated chain necklace with coin charms. Tarnish resistant coating.",
		ShortDescription: "Triple layered coin necklace",
		CategoryID:       CategoryID(3), Price: price(1599), MRP: price(2199),
		Images: []string{img("products/layered-gold-necklace-1.jpg")},
		Tags:   []string{"layered", "gold"},
		AmazonURL: ptr("https://www.amazon.in/dp/B0LAYERED11"), FlipkartURL: ptr("https://www.flipkart.com/layered-gold-necklace/p/itm11"),
		IsFeatured: true, IsActive: true,
		CreatedAt: base.AddDate(0, 0, 11), UpdatedAt: base.AddDate(0, 0, 11),
	},
	{
		ID: ProductID(12), Name: "Kundan Choker Set", Slug: "kundan-choker-set",
		Description:      "Bridal kundan choker with matching earrings and maang tikka. Semi-precious stones.",
		ShortDescription: "Bridal kundan choker set",
		CategoryID:       CategoryID(3), Price: price(2499), MRP: price(3499),
		Images: []string{img("products/kundan-choker-set-1.jpg")},
		Tags:   []string{"kundan", "choker", "bridal"},
		FlipkartURL: ptr("https://www.flipkart.com/kundan-choker-set/p/itm12"), MeeshoURL: ptr("https://www.meesho.com/kundan-choker-set/p/12"),
		IsTrending: true, IsActive: true,
		CreatedAt: base.AddDate(0, 0, 12), UpdatedAt: base.AddDate(0, 0, 12),
	},
	{
		ID: ProductID(13), Name: "Minimal Pendant Chain", Slug: "minimal-pendant-chain",
		Description:      "Dainty gold plated chain with a single solitaire pendant. Everyday minimalist pick.",
		ShortDescription: "Dainty solitaire chain",
		CategoryID:       CategoryID(3), Price: price(799), MRP: price(1199),
		Images: []string{img("products/minimal-pendant-chain-1.jpg")},
		Tags:   []string{"minimal", "chain"},
		AmazonURL: ptr("https://www.amazon.in/dp/B0MINIMAL13"),
		IsActive:  true,
		CreatedAt: base.AddDate(0, 0, 13), UpdatedAt: base.AddDate(0, 0, 13),
	},
	{
		ID: ProductID(14), Name: "Silver Charm Bracelet", Slug: "silver-charm-bracelet",
		Description:      "Silver tone bracelet with detachable charms and a toggle-ring closure.",
		ShortDescription: "Charm bracelet, toggle closure",
		CategoryID:       CategoryID(4), Price: price(1199), MRP: price(1799),
		Images: []string{img("products/silver-charm-bracelet-1.jpg")},
		Tags:   []string{"charm", "silver"},
		AmazonURL: ptr("https://www.amazon.in/dp/B0CHARMBR14"), FlipkartURL: ptr("https://www.flipkart.com/silver-charm-bracelet/p/itm14"),
		IsActive:  true,
		CreatedAt: base.AddDate(0, 0, 14), UpdatedAt: base.AddDate(0, 0, 14),
	},
	{
		ID: ProductID(15), Name: "Evil Eye Pendant", Slug: "evil-eye-pendant",
		Description:      "Enamel evil eye pendant on an adjustable black cord. Unisex.",
		ShortDescription: "Enamel evil eye pendant",
		CategoryID:       CategoryID(5), Price: price(599), MRP: price(899),
		Images: []string{img("products/evil-eye-pendant-1.jpg")},
		Tags:   []string{"evil-eye", "protection"},
		MeeshoURL: ptr("https://www.meesho.com/evil-eye-pendant/p/15"),
		IsActive:  true,
		CreatedAt: base.AddDate(0, 0, 15), UpdatedAt: base.AddDate(0, 0, 15),
	},
	{
		ID: ProductID(16), Name: "Beaded Anklet Pair", Slug: "beaded-anklet-pair",
		Description:      "Colourful glass bead anklets with bell accents. Sold as a pair.",
		ShortDescription: "Glass bead anklet pair",
		CategoryID:       CategoryID(6), Price: price(449), MRP: price(699),
		Images: []string{img("products/beaded-anklet-pair-1.jpg")},
		Tags:   []string{"anklet", "beads"},
		FlipkartURL: ptr("https://www.flipkart.com/beaded-anklet-pair/p/itm16"),
		IsActive:    false,
		CreatedAt: base.AddDate(0, 0, 16), UpdatedAt: base.AddDate(0, 0, 16),
	},
}
