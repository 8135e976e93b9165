package services

import (
	"net/http"
	"time"

	"dentadmin_back_end_go/filter"
	"dentadmin_back_end_go/models"
	"dentadmin_back_end_go/provider"

	"github.com/gin-gonic/gin"
)

// GetPatients lists the session's patients, filtered by the search box and
// the categorical dropdowns.
func GetPatients(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	f := filter.PatientFilter{
		Search:     c.DefaultQuery("search", ""),
		Gender:     c.DefaultQuery("gender", filter.All),
		AgeBracket: c.DefaultQuery("ageBracket", filter.All),
	}
	patients := filter.Patients(p.Patients(), f, time.Now())
	c.JSON(http.StatusOK, patients)
}

func CreatePatient(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	created, err := p.CreatePatient(c, patient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func UpdatePatient(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	patientId := c.Param("patientId")

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if err := p.UpdatePatient(c, patientId, patient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Patient updated successfully"})
}

func DeletePatient(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	patientId := c.Param("patientId")

	if err := p.DeletePatient(c, patientId); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Patient deleted successfully"})
}
