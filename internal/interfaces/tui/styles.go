package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/videeinfotech/sultan-super-admin-app/internal/application/notify"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
)

// Paleta de la consola.
var (
	colorPrimary = lipgloss.Color("#4F46E5")
	colorMuted   = lipgloss.Color("241")
	colorSuccess = lipgloss.Color("#16A34A")
	colorWarning = lipgloss.Color("#D97706")
	colorDanger  = lipgloss.Color("#DC2626")
	colorInfo    = lipgloss.Color("#2563EB")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")).Background(colorPrimary)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle    = lipgloss.NewStyle().Foreground(colorMuted).Width(22)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	errorStyle    = lipgloss.NewStyle().Foreground(colorDanger)
	bannerStyle   = lipgloss.NewStyle().Foreground(colorDanger).Border(lipgloss.NormalBorder()).BorderForeground(colorDanger).Padding(0, 1)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorPrimary).Padding(1, 2)
	buttonStyle   = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(colorMuted)
	focusedButton = buttonStyle.BorderForeground(colorPrimary).Foreground(colorPrimary).Bold(true)
	activeTab     = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorPrimary).Padding(0, 1)
	inactiveTab   = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	barStyle      = lipgloss.NewStyle().Foreground(colorPrimary)
)

func toastStyle(k notify.Kind) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))
	switch k {
	case notify.Success:
		return base.Background(colorSuccess)
	case notify.Error:
		return base.Background(colorDanger)
	default:
		return base.Background(colorInfo)
	}
}

// statusStyle color del badge según el estado de stock, orden, tienda o turno.
func statusStyle(status string) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch status {
	case entity.StockIn, entity.OrderCompleted, entity.StoreStatusOpen, entity.ShiftOnShift:
		return s.Foreground(colorSuccess)
	case entity.StockLow, entity.OrderPending, entity.StoreStatusMaintenance, entity.ShiftOnBreak:
		return s.Foreground(colorWarning)
	case entity.StockOut, entity.OrderRefunded, entity.StoreStatusClosed:
		return s.Foreground(colorDanger)
	case entity.OrderInTransit:
		return s.Foreground(colorInfo)
	}
	return s.Foreground(colorMuted)
}
