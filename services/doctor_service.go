package services

import (
	"net/http"

	"dentadmin_back_end_go/filter"
	"dentadmin_back_end_go/models"
	"dentadmin_back_end_go/provider"

	"github.com/gin-gonic/gin"
)

func GetDoctors(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	f := filter.DoctorFilter{
		Search:    c.DefaultQuery("search", ""),
		Specialty: c.DefaultQuery("specialty", filter.All),
		Status:    c.DefaultQuery("status", filter.All),
	}
	doctors := filter.Doctors(p.Doctors(), f)
	c.JSON(http.StatusOK, doctors)
}

// GetSpecialties returns the fixed list the doctor form offers.
func GetSpecialties(c *gin.Context) {
	c.JSON(http.StatusOK, models.Specialties)
}

func CreateDoctor(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	created, err := p.CreateDoctor(c, doctor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func UpdateDoctor(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	doctorId := c.Param("doctorId")

	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if err := p.UpdateDoctor(c, doctorId, doctor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Doctor updated successfully"})
}

func DeleteDoctor(c *gin.Context, p *provider.Provider) {
	if loadFailed(c, p) {
		return
	}
	doctorId := c.Param("doctorId")

	if err := p.DeleteDoctor(c, doctorId); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Doctor deleted successfully"})
}
