package services

import (
	"net/http"
	"time"

	"dentadmin_back_end_go/filter"
	"dentadmin_back_end_go/provider"
	"dentadmin_back_end_go/reports"

	"github.com/gin-gonic/gin"
)

// GetReportSummary powers the Reports page: status breakdown, per-doctor
// ranking and weekday distribution over the requested range, plus the
// trailing six-month trend which ignores the range on purpose.
func GetReportSummary(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	from := c.DefaultQuery("from", "")
	to := c.DefaultQuery("to", "")

	appointments := p.Appointments()
	ranged := reports.InRange(appointments, from, to)

	c.JSON(http.StatusOK, gin.H{
		"Status":   reports.Status(ranged),
		"Doctors":  reports.Doctors(ranged, p.Doctors()),
		"Weekdays": reports.Weekdays(ranged),
		"Trend":    reports.MonthlyTrend(appointments, time.Now()),
	})
}

// GetCalendarDay returns the appointments of one date, after the calendar's
// status and doctor filters have been applied.
func GetCalendarDay(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	f := filter.AppointmentFilter{
		Status:   c.DefaultQuery("status", filter.All),
		DoctorID: c.DefaultQuery("doctorId", filter.All),
	}
	filtered := filter.Appointments(p.Appointments(), f)
	c.JSON(http.StatusOK, reports.OnDay(filtered, date))
}

// GetUpcoming returns strictly future appointments, soonest first, for the
// "upcoming" widget.
func GetUpcoming(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	f := filter.AppointmentFilter{
		Status:   c.DefaultQuery("status", filter.All),
		DoctorID: c.DefaultQuery("doctorId", filter.All),
	}
	filtered := filter.Appointments(p.Appointments(), f)
	c.JSON(http.StatusOK, reports.Upcoming(filtered, time.Now()))
}
