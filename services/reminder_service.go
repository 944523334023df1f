// services/reminder_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"playjazz-backend/models"
	"playjazz-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// DueSoonWindowDays is how far ahead of the due date a pending payment
// triggers a reminder.
const DueSoonWindowDays = 5

type ReminderService struct {
	db         *gorm.DB
	twilio     *twilio.RestClient
	httpClient *http.Client
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		twilio: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDueReminders(time.Now())
	})

	c.Start()
	log.Println("Billing reminder scheduler started")
}

// PaymentDueSoon reports whether a payment should trigger a reminder:
// still pending and due within the window, but not past due. Status is
// never changed here; OVERDUE classification stays external.
func PaymentDueSoon(p models.Payment, now time.Time) bool {
	if p.Status != models.PaymentStatusPending {
		return false
	}
	due, err := time.ParseInLocation("2006-01-02", p.DueDate, now.Location())
	if err != nil {
		return false
	}
	days := utils.DaysBetween(now, due)
	return days >= 0 && days <= DueSoonWindowDays
}

// DueSoon selects the qualifying subset of payments, preserving order.
func DueSoon(payments []models.Payment, now time.Time) []models.Payment {
	var out []models.Payment
	for _, p := range payments {
		if PaymentDueSoon(p, now) {
			out = append(out, p)
		}
	}
	return out
}

// SendDueReminders sends a WhatsApp reminder for every payment due
// within the window and records the send on the student's timeline.
func (s *ReminderService) SendDueReminders(now time.Time) {
	log.Println("Starting billing reminder processing...")

	var pending []models.Payment
	if err := s.db.Where("status = ?", models.PaymentStatusPending).Find(&pending).Error; err != nil {
		log.Printf("Failed to fetch pending payments: %v", err)
		return
	}

	cfg := s.loadConfig()

	sent := 0
	for _, payment := range DueSoon(pending, now) {
		var student models.Student
		if err := s.db.First(&student, payment.StudentID).Error; err != nil {
			log.Printf("Payment %d: student %d not found: %v", payment.ID, payment.StudentID, err)
			continue
		}

		message := fmt.Sprintf("Olá %s! Lembrete: %s de R$ %s vence em %s.",
			student.Name, payment.Description, payment.Amount.StringFixed(2), payment.DueDate)

		if err := s.sendWhatsApp(cfg, student.Phone, message); err != nil {
			log.Printf("Failed to send reminder to %s: %v", student.Phone, err)
			continue
		}
		sent++

		entry := models.TimelineLog{
			StudentID: student.ID,
			Date:      now,
			Type:      models.LogTypeFinancial,
			Message:   "Lembrete de cobrança enviado: " + payment.Description,
		}
		if err := s.db.Create(&entry).Error; err != nil {
			log.Printf("Failed to log reminder for student %d: %v", student.ID, err)
		}
	}

	log.Printf("Billing reminder processing completed: %d messages sent", sent)
}

func (s *ReminderService) loadConfig() models.SystemConfig {
	var rows []models.SystemConfig
	if err := s.db.Limit(1).Find(&rows).Error; err != nil || len(rows) == 0 {
		return models.SystemConfig{WhatsappProvider: "gateway"}
	}
	return rows[0]
}

func (s *ReminderService) sendWhatsApp(cfg models.SystemConfig, phone, message string) error {
	if cfg.WhatsappProvider == "gateway" && cfg.WhatsappBaseURL != "" {
		return s.sendViaGateway(cfg, phone, message)
	}
	return s.sendViaTwilio(phone, message)
}

// sendViaGateway posts to a z-api style gateway configured in the
// settings screen.
func (s *ReminderService) sendViaGateway(cfg models.SystemConfig, phone, message string) error {
	body, err := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, cfg.WhatsappBaseURL+"/send-text", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.WhatsappAPIKey != "" {
		req.Header.Set("Client-Token", cfg.WhatsappAPIKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}
	return nil
}

func (s *ReminderService) sendViaTwilio(phone, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:+" + phone)
	params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	params.SetBody(message)

	resp, err := s.twilio.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", phone, *resp.Sid)
	}
	return nil
}
