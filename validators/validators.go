package validators

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	log "github.com/sirupsen/logrus"
)

// GenerateVerificationLink mints a one-time token, persists it and returns
// the activation link. Returns "" when the token could not be stored.
func GenerateVerificationLink(email string, c *gin.Context, pool *pgxpool.Pool) string {
	token := uuid.NewString()
	_, err := pool.Exec(c, "INSERT INTO verification_tokens (token, email) VALUES ($1, $2)", token, email)
	if err != nil {
		log.Errorf("Failed to store verification token: %v", err)
		return ""
	}
	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3001"
	}
	return baseURL + "/api/v1/auth/activate?token=" + token
}

// SendVerificationEmail mails the activation link through SendGrid.
func SendVerificationEmail(email string, verificationLink string) error {
	from := mail.NewEmail("Clínica Dental", os.Getenv("SENDGRID_FROM_EMAIL"))
	to := mail.NewEmail("", email)
	subject := "Activa tu cuenta"
	plainText := "Activa tu cuenta: " + verificationLink
	htmlContent := fmt.Sprintf(`<p>Activa tu cuenta haciendo clic <a href="%s">aquí</a>.</p>`, verificationLink)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}
