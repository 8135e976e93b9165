package services

import (
	"net/http"

	"dentadmin_back_end_go/auth"
	"dentadmin_back_end_go/models"
	"dentadmin_back_end_go/validators"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
	"golang.org/x/crypto/bcrypt"

	log "github.com/sirupsen/logrus"
)

// RegisterUser creates a staff account and mails the activation link.
func RegisterUser(c *gin.Context, pool *pgxpool.Pool) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	// checking if the email already exists
	var email string
	err := pool.QueryRow(c, "SELECT email FROM clinic_users WHERE email = $1", req.Email).Scan(&email)
	if err != nil {
		if err.Error() != "no rows in result set" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	_, err = pool.Exec(c, `
		INSERT INTO clinic_users (name, email, hashed_password)
		VALUES ($1, $2, $3)`,
		req.Name, req.Email, hashedPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	verificationLink := validators.GenerateVerificationLink(req.Email, c, pool)
	if verificationLink == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate verification link"})
		return
	}

	err = validators.SendVerificationEmail(req.Email, verificationLink)
	if err != nil {
		log.Errorf("Failed to send verification email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification email"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": "true",
		"message": "Account created successfully. Please check your email to verify your account.",
	})
}

// ActivateAccount flips the verified flag for the email behind a one-time
// token, then burns the token.
func ActivateAccount(c *gin.Context, pool *pgxpool.Pool) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token"})
		return
	}

	var email string
	err := pool.QueryRow(c, "SELECT email FROM verification_tokens WHERE token = $1", token).Scan(&email)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Token is no longer valid"})
		return
	}

	_, err = pool.Exec(c, "UPDATE clinic_users SET is_verified = true, update_at = NOW() WHERE email = $1", email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	_, err = pool.Exec(c, "DELETE FROM verification_tokens WHERE token = $1", token)
	if err != nil {
		// not fatal, token just lingers
		log.Errorf("Failed to delete verification token: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account activated successfully"})
}

// LoginUser checks credentials and returns a session token.
func LoginUser(c *gin.Context, pool *pgxpool.Pool) {
	var loginReq models.LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var user models.ClinicUser
	var hashedPassword string
	err := pool.QueryRow(c, `
		SELECT user_id, name, email, hashed_password, is_verified
		FROM clinic_users WHERE email = $1`, loginReq.Email).Scan(
		&user.UserID, &user.Name, &user.Email, &hashedPassword, &user.IsVerified)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	if !user.IsVerified {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Account Not Verified, Please check your email to verify your account."})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(loginReq.Password))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(auth.User{ID: user.UserID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user_id": user.UserID, "name": user.Name})
}

// LogoutUser ends the session. Tokens are stateless, the client drops it.
func LogoutUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// GetCurrentUser returns the identity behind the session token.
func GetCurrentUser(c *gin.Context, pool *pgxpool.Pool) {
	userId := c.GetString("userId")

	var user models.ClinicUser
	err := pool.QueryRow(c, `
		SELECT user_id, name, email, is_verified
		FROM clinic_users WHERE user_id = $1`, userId).Scan(
		&user.UserID, &user.Name, &user.Email, &user.IsVerified)
	if err != nil {
		if err.Error() == "no rows in result set" {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Errorf("Database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the profile metadata of the current user.
func UpdateProfile(c *gin.Context, pool *pgxpool.Pool) {
	userId := c.GetString("userId")

	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	_, err := pool.Exec(c, "UPDATE clinic_users SET name = $1, update_at = NOW() WHERE user_id = $2", req.Name, userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated"})
}
