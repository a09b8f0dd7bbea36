package dataset

import (
	"testing"
	"time"
)

func TestOrderStatusMatchesAge(t *testing.T) {
	tables := generate(t, testConfig())

	for _, o := range tables.Orders {
		age := testNow.Sub(o.OrderDate)
		switch o.Status {
		case OrderStatusPending:
			if age >= 24*time.Hour {
				t.Errorf("order %d is %s old but still pending", o.ID, age)
			}
		case OrderStatusProcessing:
			if age >= 3*24*time.Hour {
				t.Errorf("order %d is %s old but still processing", o.ID, age)
			}
		case OrderStatusShipped:
			if age >= 7*24*time.Hour {
				t.Errorf("order %d is %s old but still shipped", o.ID, age)
			}
		case OrderStatusDelivered, OrderStatusReturned, OrderStatusCancelled:
			// Terminal states can appear at any age past the first day.
		default:
			t.Errorf("order %d has unknown status %q", o.ID, o.Status)
		}
	}
}

func TestOrderBasketSizes(t *testing.T) {
	tables := generate(t, testConfig())

	perOrder := make(map[int]int)
	for _, it := range tables.OrderItems {
		if it.Quantity < 1 || it.Quantity > 3 {
			t.Errorf("item in order %d has quantity %d, want 1..3", it.OrderID, it.Quantity)
		}
		perOrder[it.OrderID]++
	}

	for _, o := range tables.Orders {
		n := perOrder[o.ID]
		if n < 1 || n > 3 {
			t.Errorf("order %d has %d items, want 1..3", o.ID, n)
		}
	}
}

func TestOrderCopiesUserDetails(t *testing.T) {
	tables := generate(t, testConfig())

	for _, o := range tables.Orders {
		u := tables.Users[o.UserID-1]
		if o.Payment != u.Payment {
			t.Errorf("order %d payment %q differs from user's preferred %q", o.ID, o.Payment, u.Payment)
		}
		if o.ShippingTo != u.Address {
			t.Errorf("order %d ships to %q, user lives at %q", o.ID, o.ShippingTo, u.Address)
		}
	}
}

func TestStatusForAgeBuckets(t *testing.T) {
	gen, err := New(testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	fresh := map[OrderStatus]bool{OrderStatusPending: true, OrderStatusProcessing: true}
	for i := 0; i < 50; i++ {
		if s := statusForAge(gen.rng, 6*time.Hour); !fresh[s] {
			t.Fatalf("six-hour-old order got status %q", s)
		}
	}

	settled := map[OrderStatus]bool{
		OrderStatusDelivered: true,
		OrderStatusReturned:  true,
		OrderStatusCancelled: true,
	}
	for i := 0; i < 50; i++ {
		if s := statusForAge(gen.rng, 30*24*time.Hour); !settled[s] {
			t.Fatalf("month-old order got status %q", s)
		}
	}
}
