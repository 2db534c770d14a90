package infrastructure

import "storefront/internal/model"

// SeedProducts is the catalog served until the admin saves their own. The
// four entries mirror the original store's demo data; p4 ships with zero
// stock so the out-of-stock path is visible from the first run.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:          "p1",
			Name:        "منتج جزائري رائع",
			Price:       2500,
			Image:       "https://placehold.co/600x400/3b82f6/FFFFFF?text=منتج+1",
			Description: "هذا وصف تجريبي للمنتج. هنا يمكنك وضع تفاصيل كاملة حول المنتج، مميزاته، والمواد المصنوع منها لتعريف العميل به بشكل أفضل.",
			Quantity:    10,
		},
		{
			ID:          "p2",
			Name:        "منتج مميز وعصري",
			Price:       4200,
			Image:       "https://placehold.co/600x400/4B5563/FFFFFF?text=منتج+2",
			Description: "وصف مفصل للمنتج المميز يبرز جودته العالية واستخداماته المتعددة التي تجعله الخيار الأول للعملاء الباحثين عن التميز.",
			Quantity:    5,
		},
		{
			ID:          "p3",
			Name:        "منتج أنيق وفاخر",
			Price:       6000,
			Image:       "https://placehold.co/600x400/10B981/FFFFFF?text=منتج+3",
			Description: "تصميم عصري وأنيق يواكب آخر صيحات الموضة. مصنوع من مواد عالية الجودة لضمان أفضل تجربة استخدام ممكنة.",
			Quantity:    15,
		},
		{
			ID:          "p4",
			Name:        "منتج تقليدي أصيل",
			Price:       3500,
			Image:       "https://placehold.co/600x400/F97316/FFFFFF?text=منتج+4",
			Description: "منتج فاخر يجمع بين الحرفية المتقنة والمواد النادرة. الخيار الأمثل لمن يبحث عن الفخامة والجودة التي لا تضاهى.",
			Quantity:    0,
		},
	}
}
