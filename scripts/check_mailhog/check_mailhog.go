package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"pharmaguard/functions/internal/config"
	"pharmaguard/functions/internal/domain"
	"pharmaguard/functions/internal/mailer"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file — using system environment variables")
	}

	cfg := config.Load()
	m := mailer.New(cfg)

	fmt.Printf("Using SMTP relay %s\n", m.Addr())

	probe := step1_send_probe(m)
	step2_verify(probe)

	fmt.Println("\n✅ MailHog smoke check passed")
	fmt.Println("   MailHog UI: http://localhost:8025")
}

func step1_send_probe(m *mailer.Mailer) string {
	fmt.Println("\n── Step 1: Sending probe alert ─────────────────")

	subject := fmt.Sprintf("PharmaGuard smoke check %d", time.Now().Unix())
	confirmation, err := m.SendAlert(&domain.AlertPayload{
		TruckID: "SMOKE-TEST",
		Subject: subject,
		Message: "Probe message from scripts/check_mailhog. Safe to delete.",
	})
	if err != nil {
		log.Fatalf("Probe send failed: %v\n\nMake sure MailHog is running:\n  docker-compose up -d mailhog", err)
	}
	fmt.Printf("  ✓ %s → %s\n", confirmation.Status, confirmation.To)

	return subject
}

func step2_verify(subject string) {
	fmt.Println("\n── Step 2: Verification ────────────────────────")

	api := mailhogGetEnv("MAILHOG_API", "http://localhost:8025")
	resp, err := http.Get(api + "/api/v2/messages?limit=50")
	if err != nil {
		log.Fatalf("MailHog API unreachable at %s: %v", api, err)
	}
	defer resp.Body.Close()

	var messages struct {
		Total int `json:"total"`
		Items []struct {
			Content struct {
				Headers map[string][]string `json:"Headers"`
			} `json:"Content"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		log.Fatalf("Failed to decode MailHog response: %v", err)
	}
	fmt.Printf("  ✓ %d messages in MailHog\n", messages.Total)

	for _, item := range messages.Items {
		for _, s := range item.Content.Headers["Subject"] {
			if s == subject {
				fmt.Printf("  ✓ probe found: %q\n", subject)
				return
			}
		}
	}
	log.Fatalf("Probe %q not found in the latest %d messages", subject, len(messages.Items))
}

func mailhogGetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
