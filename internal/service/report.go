package service

import (
	"context"
	"sort"
	"time"

	"storefront/internal/model"
	"storefront/internal/store"
)

// ProductSales is units sold per product, by snapshot name.
type ProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// WilayaCount is orders placed per shipping region.
type WilayaCount struct {
	Wilaya string `json:"wilaya"`
	Orders int    `json:"orders"`
}

// DailyCount is orders placed on one calendar day.
type DailyCount struct {
	Date   string `json:"date"`
	Orders int    `json:"orders"`
}

// SalesReport aggregates the order history for the admin reports screen.
type SalesReport struct {
	TotalRevenue float64        `json:"totalRevenue"`
	BestSellers  []ProductSales `json:"bestSellers"`
	TopWilayas   []WilayaCount  `json:"topWilayas"`
	DailyOrders  []DailyCount   `json:"dailyOrders"`
}

// ReportService computes sales aggregates on demand from the order history.
type ReportService struct {
	store *store.Store
	now   func() time.Time
}

// NewReportService creates a report service over the persisted store.
func NewReportService(store *store.Store) *ReportService {
	return &ReportService{store: store, now: time.Now}
}

// Sales builds the full report. Revenue counts delivered orders only, at
// snapshot prices; best sellers and wilaya counts span all orders; daily
// counts cover the last seven days with zero-filled buckets.
func (s *ReportService) Sales(ctx context.Context) SalesReport {
	orders := s.store.Orders(ctx)

	var revenue float64
	sales := map[string]int{}
	wilayas := map[string]int{}
	for _, o := range orders {
		if o.Status == model.StatusDelivered {
			revenue += o.Product.Price * float64(o.Product.Quantity)
		}
		sales[o.Product.Name] += o.Product.Quantity
		if o.Customer.Wilaya != "" {
			wilayas[o.Customer.Wilaya]++
		}
	}

	bestSellers := make([]ProductSales, 0, len(sales))
	for name, quantity := range sales {
		bestSellers = append(bestSellers, ProductSales{Name: name, Quantity: quantity})
	}
	sort.Slice(bestSellers, func(i, j int) bool {
		if bestSellers[i].Quantity != bestSellers[j].Quantity {
			return bestSellers[i].Quantity > bestSellers[j].Quantity
		}
		return bestSellers[i].Name < bestSellers[j].Name
	})
	if len(bestSellers) > 5 {
		bestSellers = bestSellers[:5]
	}

	topWilayas := make([]WilayaCount, 0, len(wilayas))
	for wilaya, count := range wilayas {
		topWilayas = append(topWilayas, WilayaCount{Wilaya: wilaya, Orders: count})
	}
	sort.Slice(topWilayas, func(i, j int) bool {
		if topWilayas[i].Orders != topWilayas[j].Orders {
			return topWilayas[i].Orders > topWilayas[j].Orders
		}
		return topWilayas[i].Wilaya < topWilayas[j].Wilaya
	})
	if len(topWilayas) > 5 {
		topWilayas = topWilayas[:5]
	}

	return SalesReport{
		TotalRevenue: revenue,
		BestSellers:  bestSellers,
		TopWilayas:   topWilayas,
		DailyOrders:  s.dailyOrders(orders),
	}
}

// dailyOrders buckets orders by calendar day for the last seven days,
// oldest first, including empty days. Bucket keys and order days are both
// formatted in the clock's location, so an order placed just after local
// midnight lands in the newest bucket.
func (s *ReportService) dailyOrders(orders []model.Order) []DailyCount {
	now := s.now()
	counts := map[string]int{}
	days := make([]string, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		days = append(days, day)
		counts[day] = 0
	}

	for _, o := range orders {
		day := o.Timestamp.In(now.Location()).Format("2006-01-02")
		if _, ok := counts[day]; ok {
			counts[day]++
		}
	}

	daily := make([]DailyCount, 0, 7)
	for _, day := range days {
		daily = append(daily, DailyCount{Date: day, Orders: counts[day]})
	}
	return daily
}
