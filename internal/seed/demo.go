package seed

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"

	"github.com/jask/tableside/internal/pos"
)

var fake = faker.New()

var menuCategories = []string{"Starter", "Main", "Salad", "Dessert", "Drink"}

var menuNames = map[string][]string{
	"Starter": {"Tomato Soup", "Garlic Bread", "Bruschetta", "Spring Rolls", "Hummus"},
	"Main":    {"Margherita Pizza", "Spaghetti Carbonara", "Grilled Salmon", "Classic Cheeseburger", "Chicken Tikka Masala", "Pad Thai"},
	"Salad":   {"Caesar Salad", "Greek Salad", "Cobb Salad", "Quinoa Salad"},
	"Dessert": {"Tiramisu", "Apple Pie", "Baklava", "Mango Sticky Rice"},
	"Drink":   {"Lemonade", "Espresso", "Iced Tea", "Mango Lassi"},
}

// Demo generates a randomized seed for trying the app out. Sizes of
// zero or less fall back to the default counts.
func Demo(tables, chefs, menuItems int) Data {
	if tables <= 0 {
		tables = 9
	}
	if chefs <= 0 {
		chefs = 4
	}
	if menuItems <= 0 {
		menuItems = 16
	}

	var d Data
	for i := 1; i <= tables; i++ {
		id := fmt.Sprintf("%02d", i)
		d.Tables = append(d.Tables, pos.Table{
			ID:     id,
			Name:   "Table " + id,
			Chairs: 2 + 2*rand.Intn(3),
			Status: pos.TableAvailable,
		})
	}
	for i := 0; i < chefs; i++ {
		d.Chefs = append(d.Chefs, pos.Chef{
			ID:   uuid.NewString(),
			Name: fake.Person().FirstName(),
		})
	}
	for i := 0; i < menuItems; i++ {
		cat := menuCategories[i%len(menuCategories)]
		names := menuNames[cat]
		d.Menu = append(d.Menu, pos.CartItem{
			ID:       uuid.NewString(),
			Name:     names[rand.Intn(len(names))],
			Price:    int64(fake.IntBetween(3, 25)),
			Quantity: 1,
			Category: cat,
		})
	}
	return d
}
