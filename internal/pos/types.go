package pos

// TableStatus is the reservation state of a dining table.
type TableStatus string

const (
	TableAvailable TableStatus = "Available"
	TableReserved  TableStatus = "Reserved"
)

// OrderStatus is the kitchen-side state of an order. No transition
// graph is enforced; any status may follow any other.
type OrderStatus string

const (
	OrderProcessing  OrderStatus = "Processing"
	OrderDone        OrderStatus = "Done"
	OrderServed      OrderStatus = "Served"
	OrderNotPickedUp OrderStatus = "Not Picked Up"
)

// OrderType distinguishes dine-in from take-away orders. Fixed at
// order creation.
type OrderType string

const (
	DineIn   OrderType = "Dine In"
	TakeAway OrderType = "Take Away"
)

// CartItem is one line of the cart being built. Quantity is at least 1
// while the item is present; an item is removed outright rather than
// kept at zero.
type CartItem struct {
	ID       string
	Name     string
	Price    int64
	Quantity int
	Category string
}

// Table represents a dining table.
type Table struct {
	ID     string
	Name   string
	Chairs int
	Status TableStatus
}

// Chef represents a kitchen staff member. Seeded at startup; the store
// never mutates OrdersTaken.
type Chef struct {
	ID          string
	Name        string
	OrdersTaken int
}

// Order is a committed cart. Items is a snapshot taken at creation;
// later cart edits never reach it. ChefID is nil until a chef is
// assigned.
type Order struct {
	ID        string
	TableID   string
	Timestamp string
	Items     []CartItem
	Status    OrderStatus
	Type      OrderType
	Duration  int
	ChefID    *string
}
