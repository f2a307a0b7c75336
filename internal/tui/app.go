// Package tui is the terminal front end. All store mutations happen
// synchronously inside Update, keeping the store confined to the
// Bubble Tea event loop.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tableside/internal/config"
	"github.com/jask/tableside/internal/pos"
)

// App ties the store to the views.
type App struct {
	store    *pos.Store
	menu     []pos.CartItem
	cfg      config.Config
	state    appState
	modal    modalState
	status   string
	currency string
	width    int
	keys     keyMap

	tableCursor  int
	menuCursor   int
	orderCursor  int
	chefCursor   int
	pickerCursor int

	searching   bool
	searchTerm  string
	inputBuffer string
}

type appState string

const (
	viewTables appState = "tables"
	viewMenu   appState = "menu"
	viewOrders appState = "orders"
	viewChefs  appState = "chefs"
)

type modalState string

const (
	modalNone        modalState = ""
	modalTablePicker modalState = "tablePicker"
	modalChefPicker  modalState = "chefPicker"
	modalAddTable    modalState = "addTable"
)

type keyMap struct {
	Tables key.Binding
	Menu   key.Binding
	Orders key.Binding
	Chefs  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Tables: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tables")),
		Menu:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Orders: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "orders")),
		Chefs:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chefs")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// New builds the app around an already-constructed store. The menu is
// the catalog items are added to the cart from; the store never sees
// it.
func New(store *pos.Store, menu []pos.CartItem, cfg config.Config) *App {
	return &App{
		store:    store,
		menu:     menu,
		cfg:      cfg,
		state:    viewTables,
		currency: cfg.UI.CurrencySymbol,
		keys:     defaultKeyMap(),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.modal != modalNone {
		return a.handleModalKey(m)
	}
	if a.searching {
		return a.handleSearchKey(m)
	}

	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Tables):
		a.state = viewTables
		a.status = ""
		return a, nil
	case key.Matches(m, a.keys.Menu):
		a.state = viewMenu
		a.status = ""
		return a, nil
	case key.Matches(m, a.keys.Orders):
		a.state = viewOrders
		a.status = ""
		return a, nil
	case key.Matches(m, a.keys.Chefs):
		a.state = viewChefs
		a.status = ""
		return a, nil
	}

	switch a.state {
	case viewTables:
		return a.handleTablesKey(m)
	case viewMenu:
		return a.handleMenuKey(m)
	case viewOrders:
		return a.handleOrdersKey(m)
	case viewChefs:
		switch m.String() {
		case "up", "k":
			if a.chefCursor > 0 {
				a.chefCursor--
			}
		case "down", "j":
			if a.chefCursor < len(a.store.Chefs())-1 {
				a.chefCursor++
			}
		}
	}
	return a, nil
}

func (a *App) handleTablesKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	tables := a.store.Tables()
	switch m.String() {
	case "up", "k":
		if a.tableCursor > 0 {
			a.tableCursor--
		}
	case "down", "j":
		if a.tableCursor < len(tables)-1 {
			a.tableCursor++
		}
	case "n":
		a.modal = modalAddTable
		a.inputBuffer = ""
	case "r":
		if len(tables) > 0 {
			a.store.UpdateTableStatus(tables[a.tableCursor].ID, pos.TableReserved)
			a.status = "table " + tables[a.tableCursor].ID + " reserved"
		}
	case "f":
		if len(tables) > 0 {
			a.store.UpdateTableStatus(tables[a.tableCursor].ID, pos.TableAvailable)
			a.status = "table " + tables[a.tableCursor].ID + " freed"
		}
	}
	return a, nil
}

func (a *App) handleMenuKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := a.visibleMenu()
	switch m.String() {
	case "up", "k":
		if a.menuCursor > 0 {
			a.menuCursor--
		}
	case "down", "j":
		if a.menuCursor < len(visible)-1 {
			a.menuCursor++
		}
	case "/":
		a.searching = true
		a.searchTerm = ""
		a.menuCursor = 0
	case "enter", "+":
		if len(visible) > 0 {
			item := visible[a.menuCursor]
			a.store.AddToCart(item)
			a.status = item.Name + " added"
		}
	case "-":
		if len(visible) > 0 {
			a.decrementCartItem(visible[a.menuCursor].ID)
		}
	case "x":
		if len(visible) > 0 {
			a.store.RemoveFromCart(visible[a.menuCursor].ID)
			a.status = "removed from cart"
		}
	case "C":
		a.store.ClearCart()
		a.status = "cart cleared"
	case "T":
		if a.store.PendingType() == pos.DineIn {
			a.store.SetOrderType(pos.TakeAway)
		} else {
			a.store.SetOrderType(pos.DineIn)
		}
		a.status = "order type: " + string(a.store.PendingType())
	case "p":
		return a.placeOrder()
	}
	return a, nil
}

func (a *App) decrementCartItem(id string) {
	for _, it := range a.store.Cart() {
		if it.ID == id {
			a.store.UpdateItemQuantity(id, it.Quantity-1)
			return
		}
	}
}

func (a *App) placeOrder() (tea.Model, tea.Cmd) {
	if len(a.store.Cart()) == 0 {
		a.status = "cart is empty"
		return a, nil
	}
	if a.store.PendingType() == pos.DineIn {
		if len(a.availableTables()) == 0 {
			a.status = "no available tables"
			return a, nil
		}
		a.modal = modalTablePicker
		a.pickerCursor = 0
		return a, nil
	}
	o := a.store.CreateOrder("", pos.TakeAway)
	if o != nil {
		a.status = "order " + o.ID + " placed (take away)"
		a.state = viewOrders
	}
	return a, nil
}

func (a *App) handleOrdersKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	orders := a.store.Orders()
	switch m.String() {
	case "up", "k":
		if a.orderCursor > 0 {
			a.orderCursor--
		}
	case "down", "j":
		if a.orderCursor < len(orders)-1 {
			a.orderCursor++
		}
	case "1", "2", "3", "4":
		if len(orders) == 0 {
			return a, nil
		}
		status := map[string]pos.OrderStatus{
			"1": pos.OrderProcessing,
			"2": pos.OrderDone,
			"3": pos.OrderServed,
			"4": pos.OrderNotPickedUp,
		}[m.String()]
		a.store.UpdateOrderStatus(orders[a.orderCursor].ID, status)
		a.status = "order " + orders[a.orderCursor].ID + " marked " + string(status)
	case "a":
		if len(orders) > 0 && len(a.store.Chefs()) > 0 {
			a.modal = modalChefPicker
			a.pickerCursor = 0
		}
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.searching = false
		a.searchTerm = ""
		a.menuCursor = 0
	case tea.KeyEnter:
		a.searching = false
	case tea.KeyBackspace:
		if len(a.searchTerm) > 0 {
			a.searchTerm = a.searchTerm[:len(a.searchTerm)-1]
			a.menuCursor = 0
		}
	case tea.KeyRunes, tea.KeySpace:
		a.searchTerm += string(m.Runes)
		a.menuCursor = 0
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.modal == modalAddTable {
		return a.handleAddTableKey(m)
	}

	var size int
	switch a.modal {
	case modalTablePicker:
		size = len(a.availableTables())
	case modalChefPicker:
		size = len(a.store.Chefs())
	}

	switch m.String() {
	case "esc":
		a.modal = modalNone
	case "up", "k":
		if a.pickerCursor > 0 {
			a.pickerCursor--
		}
	case "down", "j":
		if a.pickerCursor < size-1 {
			a.pickerCursor++
		}
	case "enter":
		switch a.modal {
		case modalTablePicker:
			tables := a.availableTables()
			if len(tables) == 0 {
				a.modal = modalNone
				return a, nil
			}
			o := a.store.CreateOrder(tables[a.pickerCursor].ID, pos.DineIn)
			a.modal = modalNone
			if o != nil {
				a.status = "order " + o.ID + " placed at table " + o.TableID
				a.state = viewOrders
			}
		case modalChefPicker:
			chefs := a.store.Chefs()
			orders := a.store.Orders()
			if len(chefs) == 0 || len(orders) == 0 {
				a.modal = modalNone
				return a, nil
			}
			chef := chefs[a.pickerCursor]
			a.store.AssignChef(orders[a.orderCursor].ID, chef.ID)
			a.modal = modalNone
			a.status = chef.Name + " assigned to " + orders[a.orderCursor].ID
		}
	}
	return a, nil
}

func (a *App) handleAddTableKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.modal = modalNone
		a.inputBuffer = ""
	case tea.KeyEnter:
		name, chairs := parseTableInput(a.inputBuffer)
		if name == "" {
			a.status = "table name required"
			return a, nil
		}
		a.store.AddTable(pos.Table{Name: name, Chairs: chairs, Status: pos.TableAvailable})
		added := a.store.Tables()[len(a.store.Tables())-1]
		a.modal = modalNone
		a.inputBuffer = ""
		a.status = "table " + added.ID + " added"
	case tea.KeyBackspace:
		if len(a.inputBuffer) > 0 {
			a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		a.inputBuffer += string(m.Runes)
	}
	return a, nil
}

// parseTableInput splits "Patio 6" into a name and a chair count. A
// missing or non-numeric last word means four chairs.
func parseTableInput(s string) (string, int) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", 0
	}
	chairs := 4
	if n, err := strconv.Atoi(fields[len(fields)-1]); err == nil && len(fields) > 1 {
		chairs = n
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " "), chairs
}

func (a *App) availableTables() []pos.Table {
	var out []pos.Table
	for _, t := range a.store.Tables() {
		if t.Status == pos.TableAvailable {
			out = append(out, t)
		}
	}
	return out
}
