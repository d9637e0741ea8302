package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"hostelhelper/backend/internal/complaint"
	"hostelhelper/backend/internal/config"
	"hostelhelper/backend/internal/models"
	"hostelhelper/backend/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "create-admin":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin create-admin <email> <name>")
			os.Exit(1)
		}
		student := &models.Student{
			Email:      os.Args[2],
			Name:       os.Args[3],
			Complaints: []string{},
			IsAdmin:    true,
		}
		if err := storageSvc.SaveStudent(student); err != nil {
			log.Fatalf("Error creating admin: %v", err)
		}
		fmt.Printf("Admin %s created with id %s.\n", student.Email, student.ID)

	case "resolve-complaint":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin resolve-complaint <ticket_id> [resolution]")
			os.Exit(1)
		}
		ticketID := os.Args[2]
		resolution := ""
		if len(os.Args) > 3 {
			resolution = strings.Join(os.Args[3:], " ")
		}
		svc := complaint.NewService(storageSvc, nil)
		updated, err := svc.UpdateComplaintStatus(ticketID, models.ComplaintStatusResolved, resolution)
		if err != nil {
			log.Fatalf("Error resolving complaint: %v", err)
		}
		if !updated {
			log.Fatalf("No complaint with id %s", ticketID)
		}
		fmt.Printf("Complaint %s has been resolved.\n", ticketID)

	case "list-escalations":
		escalations, err := storageSvc.ListEscalations()
		if err != nil {
			log.Fatalf("Error listing escalations: %v", err)
		}
		if len(escalations) == 0 {
			fmt.Println("No escalations.")
			return
		}
		for _, e := range escalations {
			fmt.Printf("%s  %-12s  complaint=%s  %s\n", e.ID, e.Status, e.ComplaintID, e.Description)
		}

	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}
