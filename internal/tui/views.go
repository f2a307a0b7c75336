package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tableside/internal/pos"
)

// styles
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	reservedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	availableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

var _ tea.Model = (*App)(nil)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewMenu:
		body = a.renderMenu()
	case viewOrders:
		body = a.renderOrders()
	case viewChefs:
		body = a.renderChefs()
	default:
		body = a.renderTables()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	return body
}

func statusLabel(s pos.TableStatus) string {
	if s == pos.TableReserved {
		return reservedStyle.Render(string(s))
	}
	return availableStyle.Render(string(s))
}

func (a *App) renderTables() string {
	title := titleStyle.Render("Tables")
	out := title + "\n"
	tables := a.store.Tables()
	if len(tables) == 0 {
		out += "(no tables yet)\n"
	}
	for i, t := range tables {
		marker := " "
		if i == a.tableCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %s  %-16s  %d chairs  %s\n", marker, t.ID, t.Name, t.Chairs, statusLabel(t.Status))
	}
	out += "\n[n] New table  [r] Reserve  [f] Free  [m] Menu  [o] Orders  [c] Chefs  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderMenu() string {
	title := titleStyle.Render("Menu — " + string(a.store.PendingType()))
	out := title + "\n"
	if a.searching || a.searchTerm != "" {
		out += "search: " + a.searchTerm + "▌\n"
	}
	visible := a.visibleMenu()
	if len(visible) == 0 {
		out += "(no matching items)\n"
	}
	for i, it := range visible {
		marker := " "
		if i == a.menuCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-28s %s%-4d %s\n", marker, it.Name, a.currency, it.Price, it.Category)
	}

	out += "\n" + titleStyle.Render("Cart") + "\n"
	cart := a.store.Cart()
	if len(cart) == 0 {
		out += "(empty)\n"
	}
	for _, it := range cart {
		out += fmt.Sprintf("  %dx %-26s %s%d\n", it.Quantity, it.Name, a.currency, it.Price*int64(it.Quantity))
	}
	if len(cart) > 0 {
		out += fmt.Sprintf("  total %s%d\n", a.currency, a.store.CartTotal())
	}

	out += "\n[enter/+] Add  [-] Less  [x] Remove  [C] Clear  [T] Toggle type  [p] Place order  [/] Search  [t] Tables  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderOrders() string {
	title := titleStyle.Render("Orders")
	out := title + "\n"
	orders := a.store.Orders()
	if len(orders) == 0 {
		out += "(no orders yet)\n"
	}
	for i, o := range orders {
		marker := " "
		if i == a.orderCursor {
			marker = "▶"
		}
		where := "take away"
		if o.Type == pos.DineIn {
			where = "table " + o.TableID
		}
		out += fmt.Sprintf("%s %s  %s  %-10s  %d items  %-13s  %s\n",
			marker, o.ID, o.Timestamp, where, len(o.Items), o.Status, a.chefLabel(o.ChefID))
	}
	out += "\n[1] Processing  [2] Done  [3] Served  [4] Not Picked Up  [a] Assign chef  [t] Tables  [m] Menu  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderChefs() string {
	title := titleStyle.Render("Chefs")
	out := title + "\n"
	for i, c := range a.store.Chefs() {
		marker := " "
		if i == a.chefCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-16s  %d orders taken\n", marker, c.Name, c.OrdersTaken)
	}
	out += "\n[t] Tables  [m] Menu  [o] Orders  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalTablePicker:
		out := titleStyle.Render("Select a table") + "\n"
		for i, t := range a.availableTables() {
			marker := " "
			if i == a.pickerCursor {
				marker = "▶"
			}
			out += fmt.Sprintf("%s %s  %s (%d chairs)\n", marker, t.ID, t.Name, t.Chairs)
		}
		out += "[enter] Place order  [esc] Cancel"
		return out
	case modalChefPicker:
		out := titleStyle.Render("Assign a chef") + "\n"
		for i, c := range a.store.Chefs() {
			marker := " "
			if i == a.pickerCursor {
				marker = "▶"
			}
			out += fmt.Sprintf("%s %s\n", marker, c.Name)
		}
		out += "[enter] Assign  [esc] Cancel"
		return out
	case modalAddTable:
		return titleStyle.Render("New table (name, optional chair count)") +
			fmt.Sprintf("\n%s▌\n[enter] Add  [esc] Cancel", a.inputBuffer)
	default:
		return ""
	}
}

func (a *App) chefLabel(id *string) string {
	if id == nil {
		return "[unassigned]"
	}
	for _, c := range a.store.Chefs() {
		if c.ID == *id {
			return c.Name
		}
	}
	return *id
}
