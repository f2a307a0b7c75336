package pos

import (
	"fmt"
	"math/rand"
	"time"
)

// timestampLayout renders order creation time as localized hour:minute.
const timestampLayout = "03:04 PM"

// Store holds the volatile point-of-sale state: tables, chefs, the
// cart being built, and placed orders. It is owned by the composition
// root and handed to consumers by reference; state resets on restart.
//
// The store must be confined to the goroutine running the UI event
// loop. Operations never block, error, or log; an unknown ID is a
// silent no-op.
type Store struct {
	tables    []Table
	chefs     []Chef
	cart      []CartItem
	orders    []Order
	orderType OrderType

	tz  *time.Location
	rng *rand.Rand
}

// NewStore builds a store seeded with the given tables and chefs.
// A nil tz falls back to the local timezone.
func NewStore(tables []Table, chefs []Chef, tz *time.Location) *Store {
	if tz == nil {
		tz = time.Local
	}
	return &Store{
		tables:    append([]Table(nil), tables...),
		chefs:     append([]Chef(nil), chefs...),
		orderType: DineIn,
		tz:        tz,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Tables returns the current table list.
func (s *Store) Tables() []Table { return s.tables }

// Chefs returns the seeded chef list.
func (s *Store) Chefs() []Chef { return s.chefs }

// Cart returns the cart being built.
func (s *Store) Cart() []CartItem { return s.cart }

// Orders returns all placed orders, oldest first.
func (s *Store) Orders() []Order { return s.orders }

// PendingType returns the order type the next CreateOrder will use
// unless overridden by its argument.
func (s *Store) PendingType() OrderType { return s.orderType }

// CartTotal returns the sum of price times quantity over the cart.
func (s *Store) CartTotal() int64 {
	var total int64
	for _, it := range s.cart {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

// SetOrderType records the type for the order being built. Pure
// setter, no side effects.
func (s *Store) SetOrderType(t OrderType) {
	s.orderType = t
}

// AddToCart merges an item into the cart. An existing entry with the
// same ID gains quantity 1, whatever quantity the argument carries; a
// new entry is appended with quantity forced to 1.
func (s *Store) AddToCart(item CartItem) {
	for i := range s.cart {
		if s.cart[i].ID == item.ID {
			s.cart[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	s.cart = append(s.cart, item)
}

// RemoveFromCart deletes the entry with the given ID if present.
func (s *Store) RemoveFromCart(id string) {
	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// UpdateItemQuantity sets the entry's quantity outright. A quantity of
// zero or less removes the entry instead, keeping the cart free of
// dead lines.
func (s *Store) UpdateItemQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(id)
		return
	}
	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart[i].Quantity = quantity
			return
		}
	}
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.cart = nil
}

// CreateOrder commits the cart as a new order for the given table.
// An empty cart is a no-op returning nil. Otherwise the order is
// appended, the table is marked Reserved when the type is Dine In, and
// the cart is cleared — one logical step with no intermediate state
// observable by other operations.
//
// Order IDs are "#" plus a random three-digit number. Collisions are
// possible and unguarded; a later update by ID then touches every
// match.
func (s *Store) CreateOrder(tableID string, t OrderType) *Order {
	if len(s.cart) == 0 {
		return nil
	}
	o := Order{
		ID:        fmt.Sprintf("#%d", 100+s.rng.Intn(900)),
		TableID:   tableID,
		Timestamp: time.Now().In(s.tz).Format(timestampLayout),
		Items:     append([]CartItem(nil), s.cart...),
		Status:    OrderProcessing,
		Type:      t,
		Duration:  0,
		ChefID:    nil,
	}
	s.orders = append(s.orders, o)
	if t == DineIn {
		s.UpdateTableStatus(tableID, TableReserved)
	}
	s.cart = nil
	return &s.orders[len(s.orders)-1]
}

// UpdateOrderStatus sets the order's status as one read-modify-write
// over the order list: the table side effect is derived from the
// updated record, not a stale snapshot. Serving a Dine-In order frees
// its table.
func (s *Store) UpdateOrderStatus(orderID string, status OrderStatus) {
	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		s.orders[i].Status = status
		updated := s.orders[i]
		if updated.Status == OrderServed && updated.Type == DineIn {
			s.UpdateTableStatus(updated.TableID, TableAvailable)
		}
		return
	}
}

// AssignChef records the chef on the order. The chef ID is not checked
// against the chef list.
func (s *Store) AssignChef(orderID, chefID string) {
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].ChefID = &chefID
			return
		}
	}
}

// AddTable appends a table, assigning the next sequential ID
// zero-padded to at least two digits ("01", "10", "100"). The
// argument's ID and any duplicate name are ignored.
func (s *Store) AddTable(t Table) {
	t.ID = fmt.Sprintf("%02d", len(s.tables)+1)
	s.tables = append(s.tables, t)
}

// UpdateTableStatus sets the table's status directly.
func (s *Store) UpdateTableStatus(tableID string, status TableStatus) {
	for i := range s.tables {
		if s.tables[i].ID == tableID {
			s.tables[i].Status = status
			return
		}
	}
}
