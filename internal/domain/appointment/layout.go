package appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SalonHelios/salon-scheduler/internal/models"
	"github.com/SalonHelios/salon-scheduler/internal/timeutil"
)

// ======================================================
// GRID LAYOUT
// ======================================================
//
// The calendar places each appointment as a block on a time axis, one
// column per employee. The computation is a pure function of the fetched
// appointment list and the config; it performs no I/O and can be re-derived
// at any time.

type LayoutConfig struct {
	// OpeningHour is the grid's first visible hour.
	OpeningHour int
	// UnitsPerMinute converts minutes to display units.
	UnitsPerMinute float64
	// Gutter is subtracted from every block's extent so adjacent blocks
	// show a visible seam.
	Gutter float64
}

// DefaultLayout matches the reference UI: 40 units per 30 minutes on a
// grid opening at 08:00, with a 4-unit seam.
var DefaultLayout = LayoutConfig{
	OpeningHour:    8,
	UnitsPerMinute: 40.0 / 30.0,
	Gutter:         4,
}

type Block struct {
	AppointmentID uint    `json:"appointment_id"`
	Date          string  `json:"date"`
	Column        int     `json:"column"`
	Top           float64 `json:"top"`
	Height        float64 `json:"height"`
	Label         string  `json:"label"`
	Category      string  `json:"category"`
}

// Layout lays out appointments on the grid. The employees slice fixes the
// column order; employees seen in the data but not listed get columns after
// the fixed ones, in order of first appearance. Appointments must carry
// their Service and Clients associations.
func Layout(appointments []models.Appointment, employees []uint, cfg LayoutConfig) []Block {
	columns := make(map[uint]int, len(employees))
	for i, id := range employees {
		columns[id] = i
	}

	blocks := make([]Block, 0, len(appointments))
	for _, ap := range appointments {
		col, ok := columns[ap.UserID]
		if !ok {
			col = len(columns)
			columns[ap.UserID] = col
		}

		minutes := (ap.StartTime.Hour()-cfg.OpeningHour)*60 + ap.StartTime.Minute()

		blocks = append(blocks, Block{
			AppointmentID: ap.ID,
			Date:          timeutil.FormatDate(ap.StartTime),
			Column:        col,
			Top:           float64(minutes) * cfg.UnitsPerMinute,
			Height:        float64(ap.Service.DurationMin)*cfg.UnitsPerMinute - cfg.Gutter,
			Label:         BlockLabel(&ap),
			Category:      Category(Status(ap.Status), ap.Service.IsGroup, col),
		})
	}

	return blocks
}

// Category picks the block color class. Cancelled and finished win over
// group and employee coloring.
func Category(status Status, isGroup bool, column int) string {
	switch status {
	case StatusCancelled:
		return "cancelled"
	case StatusFinished:
		return "finished"
	}
	if isGroup {
		return "group"
	}
	return fmt.Sprintf("employee-%d", column+1)
}

// BlockLabel builds the short text shown on a block: the first client's
// first name, a "+K" suffix for group bookings with extra participants,
// and the abbreviated service name.
func BlockLabel(ap *models.Appointment) string {
	service := AbbreviateService(ap.Title)
	if len(ap.Clients) == 0 {
		return service
	}

	name := firstName(ap.Clients[0].Name)
	if ap.Service.IsGroup && len(ap.Clients) > 1 {
		name = fmt.Sprintf("%s +%d", name, len(ap.Clients)-1)
	}

	return name + ", " + service
}

// AbbreviateService shortens long words so the label fits a narrow block.
func AbbreviateService(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		if utf8.RuneCountInString(w) > 6 {
			r := []rune(w)
			words[i] = string(r[:4]) + "."
		}
	}
	return strings.Join(words, " ")
}

func firstName(full string) string {
	if fields := strings.Fields(full); len(fields) > 0 {
		return fields[0]
	}
	return full
}
