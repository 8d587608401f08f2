// internal/seed/fixtures.go
package seed

import (
	"fmt"
	"math"
	"strings"

	"goldvault/internal/domain"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// fixtureJewelry is the shared catalog: one 22k piece per category.
func fixtureJewelry() []domain.JewelryItem {
	fixtures := []struct {
		category string
		arabic   string
		price    int64
		weight   int64
	}{
		{"necklace", "قلادة", 2500, 25},
		{"ring", "خاتم", 800, 8},
		{"bracelet", "سوار", 1800, 18},
		{"earrings", "أقراط", 1200, 12},
	}

	items := make([]domain.JewelryItem, 0, len(fixtures))
	for i, f := range fixtures {
		n := i + 1
		items = append(items, domain.JewelryItem{
			ItemID:        fmt.Sprintf("jewelry_%d", n),
			Name:          fmt.Sprintf("Gold %s %d", f.category, n),
			NameAr:        fmt.Sprintf("%s ذهبي %d", f.arabic, n),
			Description:   fmt.Sprintf("Beautiful 22K gold %s", f.category),
			DescriptionAr: fmt.Sprintf("%s ذهبي عيار 22", f.arabic),
			Price:         decimal.NewFromInt(f.price),
			WeightGrams:   decimal.NewFromInt(f.weight),
			Karat:         22,
			Category:      f.category,
			InStock:       true,
		})
	}
	return items
}

// fixtureStores are the four seed jewelry stores.
func fixtureStores() []domain.Store {
	return []domain.Store{
		{
			StoreID:       "store_1",
			Name:          "Lazurde Jewelry",
			NameAr:        "لازوردي للمجوهرات",
			Description:   "Premium gold jewelry store",
			DescriptionAr: "محل مجوهرات ذهبية فاخرة",
			Rating:        4.8,
			TotalProducts: 45,
			Location:      strPtr("Doha, Qatar"),
			Phone:         strPtr("+974 4444 5555"),
			IsVerified:    true,
		},
		{
			StoreID:       "store_2",
			Name:          "Damas Jewellery",
			NameAr:        "داماس للمجوهرات",
			Description:   "Luxury jewelry collection",
			DescriptionAr: "تشكيلة مجوهرات راقية",
			Rating:        4.7,
			TotalProducts: 38,
			Location:      strPtr("The Pearl, Doha"),
			Phone:         strPtr("+974 4444 6666"),
			IsVerified:    true,
		},
		{
			StoreID:       "store_3",
			Name:          "Al Fardan Jewellery",
			NameAr:        "الفردان للمجوهرات",
			Description:   "Fine gold and diamond jewelry",
			DescriptionAr: "مجوهرات ذهبية وماسية فاخرة",
			Rating:        4.9,
			TotalProducts: 52,
			Location:      strPtr("Katara, Doha"),
			Phone:         strPtr("+974 4444 7777"),
			IsVerified:    true,
		},
		{
			StoreID:       "store_4",
			Name:          "Gold Souk",
			NameAr:        "سوق الذهب",
			Description:   "Traditional gold market",
			DescriptionAr: "سوق الذهب التقليدي",
			Rating:        4.5,
			TotalProducts: 68,
			Location:      strPtr("Souq Waqif, Doha"),
			Phone:         strPtr("+974 4444 8888"),
			IsVerified:    true,
		},
	}
}

var jewelryImages = map[string]string{
	"necklace": "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=400",
	"ring":     "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=400",
	"bracelet": "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=400",
	"earrings": "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=400",
}

type productTemplate struct {
	category string
	arabic   string
	arabicAd string
	weights  []int64
	karats   []int
	prices   []int64
}

var productTemplates = []productTemplate{
	{"necklace", "قلادة", "قلادة ذهبية فاخرة", []int64{20, 25, 30}, []int{22, 24}, []int64{2800, 3200, 3600, 4200}},
	{"ring", "خاتم", "خاتم ذهبي أنيق", []int64{5, 7, 10}, []int{18, 22, 24}, []int64{800, 1200, 1600, 2000}},
	{"bracelet", "سوار", "سوار ذهبي راقي", []int64{15, 18, 22}, []int{18, 22}, []int64{2000, 2400, 2800, 3200}},
	{"earrings", "أقراط", "أقراط ذهبية مميزة", []int64{8, 10, 12}, []int{18, 22}, []int64{1200, 1500, 1800, 2200}},
}

// fixtureStoreProducts builds the deterministic per-store catalog: three
// products per category, cycling over the template weights, karats and prices.
func fixtureStoreProducts(store domain.Store) []domain.JewelryItem {
	products := make([]domain.JewelryItem, 0, 3*len(productTemplates))
	for _, tpl := range productTemplates {
		for i := 0; i < 3; i++ {
			weight := tpl.weights[i%len(tpl.weights)]
			karat := tpl.karats[i%len(tpl.karats)]
			price := tpl.prices[i%len(tpl.prices)]
			imageURL := jewelryImages[tpl.category]

			products = append(products, domain.JewelryItem{
				ItemID:        fmt.Sprintf("%s_%s_%d", store.StoreID, tpl.category, i+1),
				StoreID:       store.StoreID,
				StoreName:     store.NameAr,
				Name:          fmt.Sprintf("Gold %s %d", titleCase(tpl.category), i+1),
				NameAr:        fmt.Sprintf("%s %s - %d", tpl.arabic, store.NameAr, i+1),
				Description:   fmt.Sprintf("Beautiful %dK gold %s", karat, tpl.category),
				DescriptionAr: fmt.Sprintf("%s عيار %d من %s", tpl.arabicAd, karat, store.NameAr),
				Price:         decimal.NewFromInt(price),
				WeightGrams:   decimal.NewFromInt(weight),
				Karat:         karat,
				Category:      tpl.category,
				ImageURL:      &imageURL,
				InStock:       true,
				Rating:        math.Round((4.3+float64(i)*0.2)*10) / 10,
			})
		}
	}
	return products
}
