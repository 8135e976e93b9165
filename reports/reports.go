// Package reports computes the dashboard's summary widgets from the
// in-memory appointment collection. Everything is recomputed on demand.
package reports

import (
	"math"
	"sort"
	"time"

	"dentadmin_back_end_go/models"
)

// AveragePrice is the flat per-treatment figure used for estimated revenue.
const AveragePrice = 25000.0

const dateFormat = "2006-01-02"

// Weekday and month names shown on the reports page. time.Weekday indexes
// the weekday slice directly (Sunday = 0).
var weekdayNames = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

var monthNames = [12]string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// rate returns part/total as a percentage with one decimal. Zero on an empty
// set, never NaN.
func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

// When parses an appointment's independent date and time fields into one
// instant in the given zone. An unparseable time component falls back to
// midnight. Callers comparing against time.Now() must pass now.Location()
// so the boundary does not shift by the zone offset.
func When(a models.Appointment, loc *time.Location) time.Time {
	t, err := time.ParseInLocation(dateFormat+" 15:04", a.Date+" "+a.Time, loc)
	if err == nil {
		return t
	}
	t, err = time.ParseInLocation(dateFormat, a.Date, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// InRange keeps appointments whose date falls within [from, to]. Empty
// bounds are open ends.
func InRange(list []models.Appointment, from, to string) []models.Appointment {
	var out []models.Appointment
	for _, a := range list {
		if from != "" && a.Date < from {
			continue
		}
		if to != "" && a.Date > to {
			continue
		}
		out = append(out, a)
	}
	return out
}

type StatusBreakdown struct {
	Total            int            `json:"Total"`
	Counts           map[string]int `json:"Counts"`
	CompletionRate   float64        `json:"CompletionRate"`
	CancellationRate float64        `json:"CancellationRate"`
}

// Status counts appointments per status and derives the completion and
// cancellation rates.
func Status(list []models.Appointment) StatusBreakdown {
	counts := make(map[string]int)
	for _, a := range list {
		counts[a.Status]++
	}
	return StatusBreakdown{
		Total:            len(list),
		Counts:           counts,
		CompletionRate:   rate(counts[models.StatusCompletada], len(list)),
		CancellationRate: rate(counts[models.StatusCancelada], len(list)),
	}
}

type DoctorReport struct {
	DoctorID         string  `json:"DoctorId"`
	DoctorName       string  `json:"DoctorName"`
	Total            int     `json:"Total"`
	Completed        int     `json:"Completed"`
	CompletionRate   float64 `json:"CompletionRate"`
	EstimatedRevenue float64 `json:"EstimatedRevenue"`
}

// Doctors ranks every doctor by appointment volume, descending. Ties keep
// the input order. Revenue is completed visits times the flat average price.
func Doctors(appointments []models.Appointment, doctors []models.Doctor) []DoctorReport {
	out := make([]DoctorReport, 0, len(doctors))
	for _, d := range doctors {
		report := DoctorReport{DoctorID: d.DoctorID, DoctorName: d.Name}
		for _, a := range appointments {
			if a.DoctorID != d.DoctorID {
				continue
			}
			report.Total++
			if a.Status == models.StatusCompletada {
				report.Completed++
			}
		}
		report.CompletionRate = rate(report.Completed, report.Total)
		report.EstimatedRevenue = float64(report.Completed) * AveragePrice
		out = append(out, report)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

type WeekdayCount struct {
	Weekday    string  `json:"Weekday"`
	Count      int     `json:"Count"`
	Percentage float64 `json:"Percentage"`
}

// Weekdays buckets appointments into the seven calendar weekdays, Monday
// first, with each bucket's share of the total.
func Weekdays(list []models.Appointment) []WeekdayCount {
	var counts [7]int
	total := 0
	for _, a := range list {
		day, err := time.Parse(dateFormat, a.Date)
		if err != nil {
			continue
		}
		counts[day.Weekday()]++
		total++
	}
	out := make([]WeekdayCount, 0, 7)
	for i := 1; i <= 7; i++ {
		idx := i % 7
		out = append(out, WeekdayCount{
			Weekday:    weekdayNames[idx],
			Count:      counts[idx],
			Percentage: rate(counts[idx], total),
		})
	}
	return out
}

type MonthPoint struct {
	Month            string  `json:"Month"`
	Label            string  `json:"Label"`
	Total            int     `json:"Total"`
	Completed        int     `json:"Completed"`
	Cancelled        int     `json:"Cancelled"`
	EstimatedRevenue float64 `json:"EstimatedRevenue"`
}

// MonthlyTrend covers the trailing six calendar months including the current
// one, regardless of any active date-range filter.
func MonthlyTrend(list []models.Appointment, now time.Time) []MonthPoint {
	out := make([]MonthPoint, 0, 6)
	for i := 5; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		prefix := month.Format("2006-01")
		point := MonthPoint{
			Month: prefix,
			Label: monthNames[month.Month()-1] + " " + month.Format("2006"),
		}
		for _, a := range list {
			if len(a.Date) < 7 || a.Date[:7] != prefix {
				continue
			}
			point.Total++
			switch a.Status {
			case models.StatusCompletada:
				point.Completed++
			case models.StatusCancelada:
				point.Cancelled++
			}
		}
		point.EstimatedRevenue = float64(point.Completed) * AveragePrice
		out = append(out, point)
	}
	return out
}

// OnDay returns the appointments scheduled on a single date, used to render
// calendar day cells.
func OnDay(list []models.Appointment, date string) []models.Appointment {
	var out []models.Appointment
	for _, a := range list {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

// Upcoming returns appointments strictly after now, soonest first.
// Appointment timestamps are interpreted in now's zone.
func Upcoming(list []models.Appointment, now time.Time) []models.Appointment {
	loc := now.Location()
	var out []models.Appointment
	for _, a := range list {
		if When(a, loc).After(now) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return When(out[i], loc).Before(When(out[j], loc))
	})
	return out
}
