package pos

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func soupItem() CartItem {
	return CartItem{ID: "i1", Name: "Soup", Price: 5, Quantity: 1, Category: "Starter"}
}

func seedTables(n int) []Table {
	tables := make([]Table, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("%02d", i)
		tables = append(tables, Table{ID: id, Name: "T" + id, Chairs: 4, Status: TableAvailable})
	}
	return tables
}

func TestAddToCartMergesByID(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, nil, time.UTC)
	s.AddToCart(soupItem())
	// Second add carries different fields; only quantity may change.
	s.AddToCart(CartItem{ID: "i1", Name: "Cold Soup", Price: 99, Quantity: 7, Category: "Main"})

	require.Len(t, s.Cart(), 1)
	got := s.Cart()[0]
	require.Equal(t, 2, got.Quantity)
	require.Equal(t, "Soup", got.Name)
	require.Equal(t, int64(5), got.Price)
	require.Equal(t, "Starter", got.Category)
}

func TestAddToCartForcesQuantityOne(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, nil, time.UTC)
	item := soupItem()
	item.Quantity = 5
	s.AddToCart(item)

	require.Len(t, s.Cart(), 1)
	require.Equal(t, 1, s.Cart()[0].Quantity)
}

func TestUpdateItemQuantity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		quantity int
		wantLen  int
		wantQty  int
	}{
		{name: "zero removes", quantity: 0, wantLen: 0},
		{name: "negative removes", quantity: -1, wantLen: 0},
		{name: "positive sets outright", quantity: 3, wantLen: 1, wantQty: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := NewStore(nil, nil, time.UTC)
			s.AddToCart(soupItem())
			s.AddToCart(soupItem()) // quantity 2 before the update
			s.UpdateItemQuantity("i1", tc.quantity)

			require.Len(t, s.Cart(), tc.wantLen)
			if tc.wantLen > 0 {
				require.Equal(t, tc.wantQty, s.Cart()[0].Quantity)
			}
		})
	}
}

func TestUpdateItemQuantityUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, nil, time.UTC)
	s.AddToCart(soupItem())
	s.UpdateItemQuantity("ghost", 4)

	require.Len(t, s.Cart(), 1)
	require.Equal(t, 1, s.Cart()[0].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, nil, time.UTC)
	s.AddToCart(soupItem())
	s.RemoveFromCart("ghost") // absent ID, no-op
	require.Len(t, s.Cart(), 1)

	s.RemoveFromCart("i1")
	require.Empty(t, s.Cart())
}

func TestClearCart(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, nil, time.UTC)
	s.AddToCart(soupItem())
	s.AddToCart(CartItem{ID: "i2", Name: "Bread", Price: 3})
	s.ClearCart()

	require.Empty(t, s.Cart())
}

func TestCartTotal(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, nil, time.UTC)
	require.Zero(t, s.CartTotal())

	s.AddToCart(soupItem())
	s.AddToCart(soupItem())
	s.AddToCart(CartItem{ID: "i2", Name: "Bread", Price: 3})
	require.Equal(t, int64(13), s.CartTotal())
}

func TestSetOrderType(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, nil, time.UTC)
	require.Equal(t, DineIn, s.PendingType())

	s.SetOrderType(TakeAway)
	require.Equal(t, TakeAway, s.PendingType())
}

func TestCreateOrderEmptyCart(t *testing.T) {
	t.Parallel()

	s := NewStore(seedTables(2), nil, time.UTC)
	o := s.CreateOrder("01", DineIn)

	require.Nil(t, o)
	require.Empty(t, s.Orders())
	require.Equal(t, TableAvailable, s.Tables()[0].Status)
}

func TestCreateOrderDineIn(t *testing.T) {
	t.Parallel()

	s := NewStore(seedTables(2), nil, time.UTC)
	s.AddToCart(soupItem())
	o := s.CreateOrder("01", DineIn)

	require.NotNil(t, o)
	require.Len(t, s.Orders(), 1)
	require.Regexp(t, regexp.MustCompile(`^#\d{3}$`), o.ID)
	require.Equal(t, "01", o.TableID)
	require.Equal(t, OrderProcessing, o.Status)
	require.Equal(t, DineIn, o.Type)
	require.Zero(t, o.Duration)
	require.Nil(t, o.ChefID)
	_, err := time.Parse("03:04 PM", o.Timestamp)
	require.NoError(t, err)

	require.Equal(t, TableReserved, s.Tables()[0].Status)
	require.Equal(t, TableAvailable, s.Tables()[1].Status)
	require.Empty(t, s.Cart())
}

func TestCreateOrderSnapshotsCart(t *testing.T) {
	t.Parallel()

	s := NewStore(seedTables(1), nil, time.UTC)
	s.AddToCart(soupItem())
	o := s.CreateOrder("01", DineIn)
	require.NotNil(t, o)

	// Later cart edits must not reach the committed order.
	s.AddToCart(soupItem())
	s.AddToCart(CartItem{ID: "i2", Name: "Bread", Price: 3})
	s.UpdateItemQuantity("i1", 9)

	require.Equal(t, []CartItem{soupItem()}, s.Orders()[0].Items)
}

func TestCreateOrderTakeAway(t *testing.T) {
	t.Parallel()

	s := NewStore(seedTables(3), nil, time.UTC)
	s.AddToCart(soupItem())
	o := s.CreateOrder("", TakeAway)

	require.NotNil(t, o)
	require.Len(t, s.Orders(), 1)
	for _, tb := range s.Tables() {
		require.Equal(t, TableAvailable, tb.Status)
	}
	require.Empty(t, s.Cart())
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Parallel()

	t.Run("served dine-in frees the table", func(t *testing.T) {
		t.Parallel()

		s := NewStore(seedTables(1), nil, time.UTC)
		s.AddToCart(soupItem())
		o := s.CreateOrder("01", DineIn)
		require.Equal(t, TableReserved, s.Tables()[0].Status)

		s.UpdateOrderStatus(o.ID, OrderDone)
		require.Equal(t, OrderDone, s.Orders()[0].Status)
		require.Equal(t, TableReserved, s.Tables()[0].Status)

		s.UpdateOrderStatus(o.ID, OrderServed)
		require.Equal(t, OrderServed, s.Orders()[0].Status)
		require.Equal(t, TableAvailable, s.Tables()[0].Status)
	})

	t.Run("served take-away leaves tables alone", func(t *testing.T) {
		t.Parallel()

		s := NewStore(seedTables(1), nil, time.UTC)
		s.UpdateTableStatus("01", TableReserved)
		s.AddToCart(soupItem())
		o := s.CreateOrder("", TakeAway)

		s.UpdateOrderStatus(o.ID, OrderServed)
		require.Equal(t, TableReserved, s.Tables()[0].Status)
	})

	t.Run("unknown order is a no-op", func(t *testing.T) {
		t.Parallel()

		s := NewStore(seedTables(1), nil, time.UTC)
		s.AddToCart(soupItem())
		s.CreateOrder("01", DineIn)

		s.UpdateOrderStatus("#000", OrderServed)
		require.Equal(t, OrderProcessing, s.Orders()[0].Status)
		require.Equal(t, TableReserved, s.Tables()[0].Status)
	})
}

func TestAssignChef(t *testing.T) {
	t.Parallel()

	s := NewStore(seedTables(1), []Chef{{ID: "c1", Name: "Ana"}}, time.UTC)
	s.AddToCart(soupItem())
	o := s.CreateOrder("01", DineIn)
	require.Nil(t, o.ChefID)

	s.AssignChef(o.ID, "c1")
	require.NotNil(t, s.Orders()[0].ChefID)
	require.Equal(t, "c1", *s.Orders()[0].ChefID)

	// No validation against the chef list.
	s.AssignChef(o.ID, "nobody")
	require.Equal(t, "nobody", *s.Orders()[0].ChefID)

	// Unknown order, no-op.
	s.AssignChef("#000", "c1")
	require.Len(t, s.Orders(), 1)
}

func TestAddTable(t *testing.T) {
	t.Parallel()

	s := NewStore(seedTables(9), nil, time.UTC)
	s.AddTable(Table{Name: "T5", Chairs: 4, Status: TableAvailable})

	require.Len(t, s.Tables(), 10)
	added := s.Tables()[9]
	require.Equal(t, "10", added.ID)
	require.Equal(t, "T5", added.Name)
	require.Equal(t, 4, added.Chairs)
}

func TestAddTableZeroPadding(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, nil, time.UTC)
	for i := 0; i < 100; i++ {
		s.AddTable(Table{Name: "T", Chairs: 2, Status: TableAvailable})
	}

	require.Equal(t, "01", s.Tables()[0].ID)
	require.Equal(t, "09", s.Tables()[8].ID)
	require.Equal(t, "10", s.Tables()[9].ID)
	require.Equal(t, "100", s.Tables()[99].ID)
}

func TestUpdateTableStatusUnknownID(t *testing.T) {
	t.Parallel()

	s := NewStore(seedTables(1), nil, time.UTC)
	s.UpdateTableStatus("42", TableReserved)
	require.Equal(t, TableAvailable, s.Tables()[0].Status)
}

func TestDineInScenario(t *testing.T) {
	t.Parallel()

	s := NewStore([]Table{{ID: "01", Name: "T1", Chairs: 4, Status: TableAvailable}}, nil, time.UTC)
	s.AddToCart(CartItem{ID: "i1", Name: "Soup", Price: 5, Quantity: 1, Category: "Starter"})
	s.CreateOrder("01", DineIn)

	require.Len(t, s.Orders(), 1)
	require.Equal(t, []CartItem{{ID: "i1", Name: "Soup", Price: 5, Quantity: 1, Category: "Starter"}}, s.Orders()[0].Items)
	require.Equal(t, TableReserved, s.Tables()[0].Status)
	require.Empty(t, s.Cart())
}
