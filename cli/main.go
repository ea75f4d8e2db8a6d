package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skillslab/internal/dashboard"
	"skillslab/internal/models"
	"skillslab/internal/status"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)
)

// Model defines the application state
type Model struct {
	mainMenu         list.Model
	equipmentTable   table.Model
	consumablesTable table.Model
	reservationTable table.Model
	spinner          spinner.Model
	client           *ApiClient
	stats            string
	currentView      string
	error            string
}

// item represents a main menu entry
type item struct {
	title, desc string
}

func (i item) FilterValue() string { return i.title }
func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }

func initialModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	items := []list.Item{
		item{title: "Equipment", desc: "Inventory and maintenance status"},
		item{title: "Consumables", desc: "Stock levels and expiry"},
		item{title: "Reservations", desc: "Bookings and overdue returns"},
		item{title: "Dashboard", desc: "Lab-wide statistics"},
		item{title: "Exit", desc: "Exit the application"},
	}

	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "SkillsLab CLI"

	equipmentTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 28},
			{Title: "Type", Width: 16},
			{Title: "Location", Width: 20},
			{Title: "Maintenance", Width: 20},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	consumablesTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 28},
			{Title: "Category", Width: 20},
			{Title: "Stock", Width: 12},
			{Title: "Level", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	reservationTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Title", Width: 28},
			{Title: "Start", Width: 12},
			{Title: "End", Width: 12},
			{Title: "Status", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return Model{
		mainMenu:         mainMenu,
		equipmentTable:   equipmentTable,
		consumablesTable: consumablesTable,
		reservationTable: reservationTable,
		spinner:          s,
		client:           NewApiClient(),
		currentView:      "main",
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if m.currentView == "main" {
				if selected, ok := m.mainMenu.SelectedItem().(item); ok {
					switch selected.title {
					case "Exit":
						return m, tea.Quit
					case "Equipment":
						m.currentView = "equipment"
						return m, fetchEquipment(m.client)
					case "Consumables":
						m.currentView = "consumables"
						return m, fetchConsumables(m.client)
					case "Reservations":
						m.currentView = "reservations"
						return m, fetchReservations(m.client)
					case "Dashboard":
						m.currentView = "dashboard"
						return m, fetchStats(m.client)
					}
				}
			}
		case "esc":
			if m.currentView != "main" {
				m.currentView = "main"
				m.error = ""
			}
		case "r":
			switch m.currentView {
			case "equipment":
				return m, fetchEquipment(m.client)
			case "consumables":
				return m, fetchConsumables(m.client)
			case "reservations":
				return m, fetchReservations(m.client)
			case "dashboard":
				return m, fetchStats(m.client)
			}
		}
	case equipmentMsg:
		m.equipmentTable.SetRows(equipmentRows(msg.items))
		return m, nil
	case consumablesMsg:
		m.consumablesTable.SetRows(consumableRows(msg.items))
		return m, nil
	case reservationsMsg:
		m.reservationTable.SetRows(reservationRows(msg.items))
		return m, nil
	case statsMsg:
		m.stats = msg.rendered
		return m, nil
	case errorMsg:
		m.error = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "equipment":
		m.equipmentTable, cmd = m.equipmentTable.Update(msg)
	case "consumables":
		m.consumablesTable, cmd = m.consumablesTable.Update(msg)
	case "reservations":
		m.reservationTable, cmd = m.reservationTable.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	help := "\nPress 'r' to refresh, 'esc' to go back, 'q' to quit\n"
	if m.error != "" {
		help += errorStyle.Render(m.error) + "\n"
	}

	switch m.currentView {
	case "main":
		return docStyle.Render(m.mainMenu.View())
	case "equipment":
		return docStyle.Render(titleStyle.Render("Equipment") + "\n\n" + m.equipmentTable.View() + help)
	case "consumables":
		return docStyle.Render(titleStyle.Render("Consumables") + "\n\n" + m.consumablesTable.View() + help)
	case "reservations":
		return docStyle.Render(titleStyle.Render("Reservations") + "\n\n" + m.reservationTable.View() + help)
	case "dashboard":
		if m.stats == "" {
			return docStyle.Render(titleStyle.Render("Dashboard") + "\n\n" + m.spinner.View() + " Loading..." + help)
		}
		return docStyle.Render(titleStyle.Render("Dashboard") + "\n\n" + m.stats + help)
	default:
		return "Loading..."
	}
}

// Custom message types for the tea.Model
type equipmentMsg struct {
	items []models.Equipment
}

type consumablesMsg struct {
	items []models.Consumable
}

type reservationsMsg struct {
	items []models.Reservation
}

type statsMsg struct {
	rendered string
}

type errorMsg struct {
	err string
}

func fetchEquipment(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		items, err := client.GetEquipment("")
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching equipment: %v", err)}
		}
		return equipmentMsg{items: items}
	}
}

func fetchConsumables(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		items, err := client.GetConsumables()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching consumables: %v", err)}
		}
		return consumablesMsg{items: items}
	}
}

func fetchReservations(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		items, err := client.GetReservations()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching reservations: %v", err)}
		}
		return reservationsMsg{items: items}
	}
}

func fetchStats(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		equipment, err := client.GetEquipmentStats()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching stats: %v", err)}
		}
		consumables, err := client.GetConsumableStats()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching stats: %v", err)}
		}
		reservations, err := client.GetReservationStats()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Error fetching stats: %v", err)}
		}
		return statsMsg{rendered: renderStats(equipment, consumables, reservations)}
	}
}

func renderStats(e *dashboard.EquipmentStats, c *dashboard.ConsumableStats, r *dashboard.ReservationStats) string {
	out := fmt.Sprintf("Equipment:    %d total, %d due soon, %d overdue\n", e.Total, e.MaintenanceDue, e.Overdue)
	out += fmt.Sprintf("Consumables:  %d total, %d low stock, %d expired, value %.2f\n", c.Total, c.LowStock, c.Expired, c.TotalValue)
	out += fmt.Sprintf("Reservations: %d total, %d active, %d overdue, %d upcoming\n", r.Total, r.Active, r.Overdue, r.Upcoming)
	return out
}

func equipmentRows(items []models.Equipment) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, e := range items {
		maintenance := status.Maintenance(time.Now(), e)
		rows = append(rows, table.Row{e.Name, e.Type, e.Location, maintenance.Label})
	}
	return rows
}

func consumableRows(items []models.Consumable) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, c := range items {
		level := status.StockLevel(c)
		stock := fmt.Sprintf("%.0f / %.0f", c.CurrentStock, c.MinimumStock)
		rows = append(rows, table.Row{c.Name, c.Category, stock, level.Label})
	}
	return rows
}

func reservationRows(items []models.Reservation) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, r := range items {
		rows = append(rows, table.Row{
			r.Title,
			status.FormatDate(r.StartDate),
			status.FormatDate(r.EndDate),
			string(r.Status),
		})
	}
	return rows
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
