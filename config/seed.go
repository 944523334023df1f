package config

import (
	"log"

	"github.com/shopspring/decimal"

	"playjazz-backend/models"
)

// SeedDB inserts the reference dataset on a fresh database. It is
// idempotent: when units already exist the call is a no-op.
func SeedDB() {
	var count int64
	if err := DB.Model(&models.Unit{}).Count(&count).Error; err != nil {
		log.Printf("Seed check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	log.Println("Seeding database...")

	units := []models.Unit{
		{Name: "PlayJazz Centro"},
		{Name: "PlayJazz Zona Sul"},
	}
	if err := DB.Create(&units).Error; err != nil {
		log.Printf("Failed to seed units: %v", err)
		return
	}
	centro, zonaSul := units[0].ID, units[1].ID

	users := []models.User{
		{Name: "Admin Principal", Email: "admin@playjazz.com", Role: models.RoleAdmin},
		{Name: "Gerente Centro", Email: "gerente.centro@playjazz.com", Role: models.RoleManager, UnitID: &centro},
		{Name: "Secretária Sul", Email: "sec.sul@playjazz.com", Role: models.RoleManager, UnitID: &zonaSul},
	}
	if err := DB.Create(&users).Error; err != nil {
		log.Printf("Failed to seed users: %v", err)
	}

	leads := []models.Lead{
		{UnitID: centro, Name: "Ana Silva", Phone: "5511999999999", Email: "ana@test.com", Instrument: "Piano", Source: "Instagram", Status: models.LeadStatusNew},
		{UnitID: centro, Name: "Carlos Souza", Phone: "5511988888888", Email: "carlos@test.com", Instrument: "Guitarra", Source: "Google", Status: models.LeadStatusContacted},
		{UnitID: zonaSul, Name: "Beatriz Lima", Phone: "5521977777777", Email: "bia@test.com", Instrument: "Canto", Source: "Indicação", Status: models.LeadStatusTrial},
		{UnitID: centro, Name: "João Paulo", Phone: "5511966666666", Email: "jp@test.com", Instrument: "Bateria", Source: "Instagram", Status: models.LeadStatusNegotiation},
		{UnitID: zonaSul, Name: "Mariana Costa", Phone: "5521955555555", Email: "mari@test.com", Instrument: "Saxofone", Source: "Google", Status: models.LeadStatusNew},
	}
	if err := DB.Create(&leads).Error; err != nil {
		log.Printf("Failed to seed leads: %v", err)
	}

	students := []models.Student{
		{UnitID: centro, Name: "Pedro Alcantara", Phone: "5511944444444", Email: "pedro@test.com", BirthDate: "2010-05-15", ResponsibleName: "Marcos Alcantara", Course: "Piano Clássico", Status: "Active"},
		{UnitID: zonaSul, Name: "Julia Roberts", Phone: "5521933333333", Email: "julia@test.com", BirthDate: "1995-12-20", Course: "Canto Popular", Status: "Active"},
	}
	if err := DB.Create(&students).Error; err != nil {
		log.Printf("Failed to seed students: %v", err)
		return
	}

	logs := []models.TimelineLog{
		{StudentID: students[0].ID, Type: models.LogTypeSystem, Message: "Matrícula realizada"},
		{StudentID: students[0].ID, Type: models.LogTypeWhatsApp, Message: "Lembrete de aula enviado"},
		{StudentID: students[1].ID, Type: models.LogTypeSystem, Message: "Lead convertido em aluno"},
	}
	if err := DB.Create(&logs).Error; err != nil {
		log.Printf("Failed to seed timeline logs: %v", err)
	}

	monthly := decimal.NewFromFloat(350.00)
	payments := []models.Payment{
		{UnitID: centro, StudentID: students[0].ID, Amount: monthly, DueDate: "2023-10-10", Status: models.PaymentStatusPaid, Description: "Mensalidade Outubro"},
		{UnitID: centro, StudentID: students[0].ID, Amount: monthly, DueDate: "2023-11-10", Status: models.PaymentStatusPending, Description: "Mensalidade Novembro"},
		{UnitID: zonaSul, StudentID: students[1].ID, Amount: decimal.NewFromFloat(400.00), DueDate: "2023-11-15", Status: models.PaymentStatusPending, Description: "Mensalidade Novembro"},
		{UnitID: centro, StudentID: students[0].ID, Amount: monthly, DueDate: "2023-09-10", Status: models.PaymentStatusOverdue, Description: "Mensalidade Setembro"},
	}
	if err := DB.Create(&payments).Error; err != nil {
		log.Printf("Failed to seed payments: %v", err)
	}

	log.Println("Database seeded")
}
