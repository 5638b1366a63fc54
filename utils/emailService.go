package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"coursehub/config"
	"coursehub/models"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CourseHub <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.content h2 { color: #1A1A2E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4F8EF7; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>COURSEHUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 CourseHub. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendPurchaseReceiptEmail sends the order confirmation after a purchase
// is recorded. Best-effort: failures are logged only.
func SendPurchaseReceiptEmail(email, name string, purchase *models.Purchase) {
	var details struct {
		Name           string `json:"name"`
		PriceInDollars int    `json:"price_in_dollars"`
	}
	if err := json.Unmarshal(purchase.ProductDetails, &details); err != nil {
		log.Printf("Error decoding product details for receipt: %v", err)
		return
	}

	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Thanks for your purchase! Your course access is now active.</p>
		<div class="info-box">
			<strong>%s</strong><br>
			Amount paid: $%d.%02d<br>
			Order id: %s
		</div>
		<p>Happy learning!</p>
	`, name, details.Name, purchase.PricePaidInCents/100, purchase.PricePaidInCents%100, purchase.ID)

	if err := SendEmail([]string{email}, "Your CourseHub receipt", getEmailTemplate("Purchase Confirmed", body)); err != nil {
		log.Printf("Error sending purchase receipt to %s: %v", email, err)
	}
}
