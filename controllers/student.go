package controllers

import (
	"net/http"
	"strconv"

	"playjazz-backend/config"
	"playjazz-backend/models"
	"playjazz-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateStudentInput defines the expected JSON structure for creating a
// student. The timeline always starts empty; entries are appended by
// the system afterwards.
type CreateStudentInput struct {
	UnitID          uint   `json:"unitId" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email"`
	BirthDate       string `json:"birthDate"`
	ResponsibleName string `json:"responsibleName"`
	Course          string `json:"course"`
	Status          string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// GetStudents retrieves students with their nested timelines,
// optionally scoped to one unit
func GetStudents(c *gin.Context) {
	query := config.DB.Preload("Timeline")
	if unitID := c.Query("unitId"); unitID != "" {
		id, err := strconv.Atoi(unitID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid unit ID format")
			return
		}
		query = query.Where("unit_id = ?", id)
	}

	var students []models.Student
	if err := query.Find(&students).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch students")
		return
	}

	c.JSON(http.StatusOK, students)
}

// CreateStudent creates a new student
func CreateStudent(c *gin.Context) {
	var input CreateStudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	status := input.Status
	if status == "" {
		status = "Active"
	}

	student := models.Student{
		UnitID:          input.UnitID,
		Name:            input.Name,
		Phone:           input.Phone,
		Email:           input.Email,
		BirthDate:       input.BirthDate,
		ResponsibleName: input.ResponsibleName,
		Course:          input.Course,
		Status:          status,
	}

	if err := config.DB.Create(&student).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create student")
		return
	}

	c.JSON(http.StatusCreated, student)
}

// DeleteStudent deletes a student and cascades its timeline entries.
// Dependent timeline rows go first so a failure never strands logs
// pointing at a missing student.
func DeleteStudent(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid student ID format")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("student_id = ?", studentID).Delete(&models.TimelineLog{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete timeline entries")
		return
	}

	result := tx.Delete(&models.Student{}, studentID)
	if result.Error != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete student")
		return
	}

	if result.RowsAffected == 0 {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusNotFound, "Student not found")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"success": true})
}
