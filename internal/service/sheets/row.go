package sheets

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"SentiPulse/internal/domain/models"
	"SentiPulse/pkg/util"
)

// Header is the first row of the history worksheet.
var Header = []interface{}{
	"Timestamp", "IST_Time", "Nifty_ISS", "Bank_ISS",
	"Nifty_Status", "Bank_Status", "Session",
	"Nifty_Price_Action", "Bank_Price_Action",
	"Nifty_PA_Zone", "Bank_PA_Zone",
}

// marshalRow converts a history point into the worksheet column layout.
// Absent price action values become empty cells, never zeros.
func marshalRow(p *models.HistoryPoint) []interface{} {
	return []interface{}{
		p.Timestamp.In(util.IST).Format(util.HistoryTimeLayout),
		p.Timestamp.In(util.IST).Format("15:04"),
		round4(p.NiftyISS),
		round4(p.BankISS),
		p.NiftyStatus,
		p.BankStatus,
		p.Session,
		paCell(p.NiftyPA),
		paCell(p.BankPA),
		p.NiftyPAZone,
		p.BankPAZone,
	}
}

// parseRow converts one worksheet row back into a history point. Rows
// missing a parseable timestamp or either ISS value are malformed.
func parseRow(row []interface{}) (*models.HistoryPoint, error) {
	if len(row) < 4 {
		return nil, fmt.Errorf("row too short: %d columns", len(row))
	}

	ts, err := time.ParseInLocation(util.HistoryTimeLayout, cellString(row[0]), util.IST)
	if err != nil {
		return nil, fmt.Errorf("timestamp: %w", err)
	}

	niftyISS, err := cellFloat(row[2])
	if err != nil {
		return nil, fmt.Errorf("nifty iss: %w", err)
	}
	bankISS, err := cellFloat(row[3])
	if err != nil {
		return nil, fmt.Errorf("bank iss: %w", err)
	}

	p := &models.HistoryPoint{
		Timestamp:   ts,
		NiftyISS:    niftyISS,
		BankISS:     bankISS,
		NiftyStatus: "Neutral",
		BankStatus:  "Neutral",
		Session:     "Unknown",
		NiftyPAZone: "Neutral",
		BankPAZone:  "Neutral",
	}

	if s := cellAt(row, 4); s != "" {
		p.NiftyStatus = s
	}
	if s := cellAt(row, 5); s != "" {
		p.BankStatus = s
	}
	if s := cellAt(row, 6); s != "" {
		p.Session = s
	}
	if v, ok := util.ParseFloat(cellAt(row, 7)); ok {
		p.NiftyPA = &v
	}
	if v, ok := util.ParseFloat(cellAt(row, 8)); ok {
		p.BankPA = &v
	}
	if s := cellAt(row, 9); s != "" {
		p.NiftyPAZone = s
	}
	if s := cellAt(row, 10); s != "" {
		p.BankPAZone = s
	}

	return p, nil
}

func paCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return round4(*v)
}

func cellAt(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	return cellString(row[i])
}

func cellString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func cellFloat(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case string:
		return strconv.ParseFloat(x, 64)
	default:
		return 0, fmt.Errorf("unexpected cell type %T", v)
	}
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
