package services

import (
	"errors"
	"net/http"

	"dentadmin_back_end_go/filter"
	"dentadmin_back_end_go/models"
	"dentadmin_back_end_go/provider"

	"github.com/gin-gonic/gin"
)

func GetAppointments(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	f := filter.AppointmentFilter{
		Search:   c.DefaultQuery("search", ""),
		Status:   c.DefaultQuery("status", filter.All),
		DoctorID: c.DefaultQuery("doctorId", filter.All),
	}
	appointments := filter.Appointments(p.Appointments(), f)
	c.JSON(http.StatusOK, appointments)
}

// GetAppointmentTypes returns the fixed list of treatment types.
func GetAppointmentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, models.AppointmentTypes)
}

func CreateAppointment(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	created, err := p.CreateAppointment(c, appointment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func UpdateAppointment(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	appointmentId := c.Param("appointmentId")

	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	err := p.UpdateAppointment(c, appointmentId, appointment)
	if err != nil {
		if errors.Is(err, provider.ErrBadTransition) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Illegal status transition"})
			return
		}
		if errors.Is(err, provider.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Appointment updated successfully"})
}

func DeleteAppointment(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	appointmentId := c.Param("appointmentId")

	if err := p.DeleteAppointment(c, appointmentId); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Appointment deleted successfully"})
}
