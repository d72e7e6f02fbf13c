package usecase

import (
	"context"
	"sort"
	"strings"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

// OrderBucket is the counting bucket an order status classifies into.
//
// It is distinct from both OrderStatus (the raw lifecycle label) and
// GuestCustomerStatus (the customer-level label): a "pending" order counts
// towards the abandoned bucket, while a customer with nothing in either
// bucket is labeled "new".

type OrderBucket int

const (
	BucketCompleted OrderBucket = iota
	BucketAbandoned
	BucketPending
)

const guestKeyDomain = "placeholder.local"

// IGuestCustomerUseCase exposes the guest aggregation dashboards.
//
// Everything here is recomputed from the full order set on each call; there
// is no cache or materialized view behind it.

type IGuestCustomerUseCase interface {
	GetGuestCustomers(ctx context.Context) ([]entities.GuestCustomer, error)
	GetGuestCustomerStats(ctx context.Context) (entities.GuestStats, error)
	GetGuestContactStats(ctx context.Context) (entities.ContactStats, error)
}

type GuestCustomerUseCase struct {
	orderRepo interfaces.IOrderRepository
}

var _ IGuestCustomerUseCase = (*GuestCustomerUseCase)(nil)

func NewGuestCustomerUseCase(orderRepo interfaces.IOrderRepository) *GuestCustomerUseCase {
	return &GuestCustomerUseCase{orderRepo: orderRepo}
}

func (u *GuestCustomerUseCase) GetGuestCustomers(ctx context.Context) ([]entities.GuestCustomer, error) {
	orders, err := u.guestOrders(ctx)
	if err != nil {
		return nil, err
	}

	byKey := AggregateGuestCustomers(orders)
	customers := make([]entities.GuestCustomer, 0, len(byKey))
	for _, c := range byKey {
		customers = append(customers, *c)
	}
	// Map iteration order is incidental; present most recent activity first.
	sort.Slice(customers, func(i, j int) bool {
		if !customers[i].LastOrder.Equal(customers[j].LastOrder) {
			return customers[i].LastOrder.After(customers[j].LastOrder)
		}
		return customers[i].Key < customers[j].Key
	})
	return customers, nil
}

func (u *GuestCustomerUseCase) GetGuestCustomerStats(ctx context.Context) (entities.GuestStats, error) {
	customers, orders, err := u.aggregate(ctx)
	if err != nil {
		return entities.GuestStats{}, err
	}
	return ReduceGuestStats(customers, orders), nil
}

func (u *GuestCustomerUseCase) GetGuestContactStats(ctx context.Context) (entities.ContactStats, error) {
	customers, orders, err := u.aggregate(ctx)
	if err != nil {
		return entities.ContactStats{}, err
	}
	return ReduceContactStats(customers, orders), nil
}

func (u *GuestCustomerUseCase) aggregate(ctx context.Context) ([]entities.GuestCustomer, []entities.Order, error) {
	orders, err := u.guestOrders(ctx)
	if err != nil {
		return nil, nil, err
	}
	byKey := AggregateGuestCustomers(orders)
	customers := make([]entities.GuestCustomer, 0, len(byKey))
	for _, c := range byKey {
		customers = append(customers, *c)
	}
	return customers, orders, nil
}

func (u *GuestCustomerUseCase) guestOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	guests := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsGuest() {
			guests = append(guests, o)
		}
	}
	return guests, nil
}

// ResolveGuestKey derives the stable identity key for an order's customer.
//
// Precedence: normalized phone digits, then the email verbatim, then a
// synthetic address built from the order id. Always returns a key.
func ResolveGuestKey(o entities.Order) string {
	if digits := NormalizePhone(o.Shipping.Phone); digits != "" {
		return digits
	}
	if email := strings.TrimSpace(o.Shipping.Email); email != "" {
		return email
	}
	return "guest_" + o.ID + "@" + guestKeyDomain
}

// NormalizePhone strips everything but digits. A phone with no digits at all
// normalizes to "" and is treated as absent.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ClassifyOrder maps an order status to its counting bucket.
func ClassifyOrder(status entities.OrderStatus) OrderBucket {
	switch status {
	case entities.OrderStatusDelivered, entities.OrderStatusShipped, entities.OrderStatusProcessing:
		return BucketCompleted
	case entities.OrderStatusPending, entities.OrderStatusCancelled:
		return BucketAbandoned
	default:
		return BucketPending
	}
}

// AggregateGuestCustomers folds guest orders into one GuestCustomer per
// resolved key. Orders with a UserID are skipped. Contact info is the union
// of what every order for the key provided; a later order can fill in a
// channel the first one lacked. Input orders are never mutated.
func AggregateGuestCustomers(orders []entities.Order) map[string]*entities.GuestCustomer {
	customers := make(map[string]*entities.GuestCustomer)

	for _, o := range orders {
		if !o.IsGuest() {
			continue
		}

		key := ResolveGuestKey(o)
		c, ok := customers[key]
		if !ok {
			c = &entities.GuestCustomer{
				Key:        key,
				FirstOrder: o.CreatedAt,
				LastOrder:  o.CreatedAt,
			}
			customers[key] = c
		}

		if c.Name == "" {
			c.Name = strings.TrimSpace(o.Shipping.Name)
		}
		if c.Phone == "" {
			c.Phone = NormalizePhone(o.Shipping.Phone)
		}
		if c.Email == "" {
			c.Email = strings.TrimSpace(o.Shipping.Email)
		}

		c.TotalOrders++
		c.TotalSpent += o.Total

		switch ClassifyOrder(o.Status) {
		case BucketCompleted:
			c.CompletedOrders++
		case BucketAbandoned:
			c.AbandonedCarts++
		default:
			c.PendingOrders++
		}

		if o.CreatedAt.Before(c.FirstOrder) {
			c.FirstOrder = o.CreatedAt
		}
		if o.CreatedAt.After(c.LastOrder) {
			c.LastOrder = o.CreatedAt
		}
	}

	for _, c := range customers {
		c.ContactType = contactTypeOf(c.Phone, c.Email)
		c.Status = customerStatusOf(c.CompletedOrders, c.AbandonedCarts)
	}
	return customers
}

func contactTypeOf(phone, email string) entities.ContactType {
	switch {
	case phone != "" && email != "":
		return entities.ContactTypeBoth
	case phone != "":
		return entities.ContactTypePhoneOnly
	case email != "":
		return entities.ContactTypeEmailOnly
	default:
		return entities.ContactTypeNone
	}
}

func customerStatusOf(completed, abandoned int) entities.GuestCustomerStatus {
	switch {
	case completed > 0 && abandoned > 0:
		return entities.GuestCustomerStatusMixed
	case completed > 0:
		return entities.GuestCustomerStatusCompleted
	case abandoned > 0:
		return entities.GuestCustomerStatusAbandoned
	default:
		return entities.GuestCustomerStatusNew
	}
}

// ReduceGuestStats derives store-wide counters from the aggregate. All ratios
// are zero when their denominator is zero. Pure and deterministic.
func ReduceGuestStats(customers []entities.GuestCustomer, orders []entities.Order) entities.GuestStats {
	stats := entities.GuestStats{
		TotalGuests: len(customers),
		TotalOrders: len(orders),
	}

	for _, o := range orders {
		switch ClassifyOrder(o.Status) {
		case BucketCompleted:
			stats.CompletedOrders++
			stats.TotalRevenue += o.Total
		case BucketAbandoned:
			stats.AbandonedCarts++
		}
	}

	if stats.CompletedOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.CompletedOrders)
	}
	if stats.TotalOrders > 0 {
		stats.ConversionRate = float64(stats.CompletedOrders) / float64(stats.TotalOrders) * 100
	}
	return stats
}

// ReduceContactStats breaks resolved guests down by contact method. The
// percentage denominator is the guest order count, matching what the admin
// dashboard has always displayed.
func ReduceContactStats(customers []entities.GuestCustomer, orders []entities.Order) entities.ContactStats {
	var stats entities.ContactStats

	for _, c := range customers {
		switch c.ContactType {
		case entities.ContactTypePhoneOnly:
			stats.PhoneOnly.Count++
		case entities.ContactTypeEmailOnly:
			stats.EmailOnly.Count++
		case entities.ContactTypeBoth:
			stats.Both.Count++
		default:
			stats.None.Count++
		}
	}

	if total := len(orders); total > 0 {
		pct := func(n int) float64 { return float64(n) / float64(total) * 100 }
		stats.PhoneOnly.Percentage = pct(stats.PhoneOnly.Count)
		stats.EmailOnly.Percentage = pct(stats.EmailOnly.Count)
		stats.Both.Percentage = pct(stats.Both.Count)
		stats.None.Percentage = pct(stats.None.Count)
	}
	return stats
}
