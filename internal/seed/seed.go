// Package seed supplies the startup data for the store: tables, chefs
// and the menu catalog. Data comes from built-in defaults, a TOML seed
// file, or generated demo data.
package seed

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jask/tableside/internal/pos"
)

// Data is everything the composition root seeds the app with. Tables
// and Chefs go into the store; Menu is the catalog the UI adds to the
// cart from.
type Data struct {
	Tables []pos.Table
	Chefs  []pos.Chef
	Menu   []pos.CartItem
}

// Defaults returns the built-in seed so the app is usable with no
// config at all.
func Defaults() Data {
	tables := make([]pos.Table, 0, 9)
	for i := 1; i <= 9; i++ {
		id := fmt.Sprintf("%02d", i)
		chairs := 4
		if i%3 == 0 {
			chairs = 6
		}
		tables = append(tables, pos.Table{ID: id, Name: "Table " + id, Chairs: chairs, Status: pos.TableAvailable})
	}
	chefs := []pos.Chef{
		{ID: "c1", Name: "Manesh", OrdersTaken: 0},
		{ID: "c2", Name: "Pritam", OrdersTaken: 0},
		{ID: "c3", Name: "Yash", OrdersTaken: 0},
		{ID: "c4", Name: "Amrita", OrdersTaken: 0},
	}
	menu := []pos.CartItem{
		{ID: "m01", Name: "Tomato Soup", Price: 6, Quantity: 1, Category: "Starter"},
		{ID: "m02", Name: "Garlic Bread", Price: 5, Quantity: 1, Category: "Starter"},
		{ID: "m03", Name: "Bruschetta", Price: 7, Quantity: 1, Category: "Starter"},
		{ID: "m04", Name: "Margherita Pizza", Price: 14, Quantity: 1, Category: "Main"},
		{ID: "m05", Name: "Spaghetti Carbonara", Price: 16, Quantity: 1, Category: "Main"},
		{ID: "m06", Name: "Grilled Salmon", Price: 21, Quantity: 1, Category: "Main"},
		{ID: "m07", Name: "Classic Cheeseburger", Price: 15, Quantity: 1, Category: "Main"},
		{ID: "m08", Name: "Caesar Salad", Price: 11, Quantity: 1, Category: "Salad"},
		{ID: "m09", Name: "Greek Salad", Price: 10, Quantity: 1, Category: "Salad"},
		{ID: "m10", Name: "Tiramisu", Price: 8, Quantity: 1, Category: "Dessert"},
		{ID: "m11", Name: "Apple Pie", Price: 7, Quantity: 1, Category: "Dessert"},
		{ID: "m12", Name: "Lemonade", Price: 4, Quantity: 1, Category: "Drink"},
		{ID: "m13", Name: "Espresso", Price: 3, Quantity: 1, Category: "Drink"},
	}
	return Data{Tables: tables, Chefs: chefs, Menu: menu}
}

// fileData mirrors the TOML seed file layout.
type fileData struct {
	Tables []fileTable    `mapstructure:"table"`
	Chefs  []fileChef     `mapstructure:"chef"`
	Menu   []fileMenuItem `mapstructure:"menu_item"`
}

type fileTable struct {
	Name   string `mapstructure:"name"`
	Chairs int    `mapstructure:"chairs"`
}

type fileChef struct {
	ID          string `mapstructure:"id"`
	Name        string `mapstructure:"name"`
	OrdersTaken int    `mapstructure:"orders_taken"`
}

type fileMenuItem struct {
	ID       string `mapstructure:"id"`
	Name     string `mapstructure:"name"`
	Price    int64  `mapstructure:"price"`
	Category string `mapstructure:"category"`
}

// LoadFile reads a TOML seed file. Tables get sequential zero-padded
// IDs in file order; their status always starts Available.
func LoadFile(path string) (Data, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Data{}, fmt.Errorf("read seed file: %w", err)
	}

	var f fileData
	if err := v.Unmarshal(&f); err != nil {
		return Data{}, fmt.Errorf("unmarshal seed file: %w", err)
	}

	var d Data
	for i, t := range f.Tables {
		d.Tables = append(d.Tables, pos.Table{
			ID:     fmt.Sprintf("%02d", i+1),
			Name:   t.Name,
			Chairs: t.Chairs,
			Status: pos.TableAvailable,
		})
	}
	for _, c := range f.Chefs {
		d.Chefs = append(d.Chefs, pos.Chef{ID: c.ID, Name: c.Name, OrdersTaken: c.OrdersTaken})
	}
	for _, m := range f.Menu {
		d.Menu = append(d.Menu, pos.CartItem{
			ID:       m.ID,
			Name:     m.Name,
			Price:    m.Price,
			Quantity: 1,
			Category: m.Category,
		})
	}
	return d, nil
}
