package dataset

import (
	"math"
	"math/rand/v2"
	"time"
)

// statusBucket maps an order-age band to its status distribution.
// Making the bias an explicit table keeps it easy to tune and test.
type statusBucket struct {
	maxAge   time.Duration
	statuses []OrderStatus
	weights  []float64
}

var statusByAge = []statusBucket{
	{24 * time.Hour, []OrderStatus{OrderStatusPending, OrderStatusProcessing}, []float64{0.5, 0.5}},
	{3 * 24 * time.Hour, []OrderStatus{OrderStatusProcessing, OrderStatusShipped}, []float64{0.5, 0.5}},
	{7 * 24 * time.Hour, []OrderStatus{OrderStatusShipped, OrderStatusDelivered}, []float64{0.5, 0.5}},
	{math.MaxInt64, []OrderStatus{OrderStatusDelivered, OrderStatusReturned, OrderStatusCancelled}, []float64{0.85, 0.10, 0.05}},
}

// statusForAge resolves an order status from how long ago the order
// was placed: recent orders are still pending or in flight, old ones
// have settled into delivered/returned/cancelled.
func statusForAge(rng *rand.Rand, age time.Duration) OrderStatus {
	for _, b := range statusByAge {
		if age < b.maxAge {
			return b.statuses[pickWeighted(rng, b.weights)]
		}
	}
	last := statusByAge[len(statusByAge)-1]
	return last.statuses[pickWeighted(rng, last.weights)]
}

// Basket sizing: half the orders hold a single line item.
var itemCountWeights = []float64{0.50, 0.35, 0.15}

func (g *Generator) generateOrders(rng *rand.Rand, users []User, products []Product) ([]Order, []OrderItem) {
	orders := make([]Order, g.cfg.Orders)
	items := make([]OrderItem, 0, g.cfg.Orders*2)

	for i := range orders {
		user := pick(rng, users)
		orderDate := dayOf(dateBetween(rng, user.SignupDate, g.now))

		order := Order{
			ID:         i + 1,
			UserID:     user.ID,
			OrderDate:  orderDate,
			Status:     statusForAge(rng, g.now.Sub(orderDate)),
			Payment:    user.Payment,
			ShippingTo: user.Address,
		}

		// Line items first; the total is derived from them, never
		// sampled on its own.
		var totalCents int64
		for n := pickWeighted(rng, itemCountWeights) + 1; n > 0; n-- {
			product := pick(rng, products)
			qty := quantityFor(rng, product.Price)
			items = append(items, OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  qty,
			})
			totalCents += toCents(product.Price) * int64(qty)
		}
		order.TotalAmount = float64(totalCents) / 100

		orders[i] = order
	}
	return orders, items
}

// quantityFor leans on single units, with cheap items bought in small
// multiples.
func quantityFor(rng *rand.Rand, price float64) int {
	if price < 20 {
		return intBetween(rng, 1, 3)
	}
	if rng.Float64() < 0.8 {
		return 1
	}
	return 2
}
