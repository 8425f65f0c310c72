// Command mailcheck sends a sample subscription confirmation through SendGrid
// so the sender identity and API key can be verified without going through
// the HTTP API.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/core"
	"github.com/wuquf/wuquf-backend/pkg/mailer"
)

func main() {
	to := flag.String("to", "", "recipient e-mail address")
	company := flag.String("company", "Wuquf Test Company", "company name used in the message")
	tier := flag.String("tier", "basic", "subscription tier used in the message")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize Zap logger: %v", err)
	}
	defer logger.Sync()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SENDGRID_FROM_NAME", "Wuquf")
	apiKey := v.GetString("SENDGRID_API_KEY")
	fromEmail := v.GetString("SENDGRID_FROM_EMAIL")

	if *to == "" {
		logger.Fatal("-to is required")
	}
	if apiKey == "" || fromEmail == "" {
		logger.Fatal("SENDGRID_API_KEY and SENDGRID_FROM_EMAIL must be set")
	}

	m := mailer.NewSendGridMailer(apiKey, fromEmail, v.GetString("SENDGRID_FROM_NAME"))
	msg := core.SubscriptionConfirmation(*company, *to, *tier, 30*24*time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Info("Sending test e-mail", zap.String("to", *to), zap.String("from", fromEmail))
	if err := m.Send(ctx, msg); err != nil {
		logger.Fatal("Error sending e-mail", zap.Error(err))
	}
	logger.Info("E-mail accepted by SendGrid")
}
