package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"

	"banksampah-backend/internal/domain"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendMonthlyStatement emails a unit leader the previous month's activity
// summary together with the current collective balance.
func (s *emailService) SendMonthlyStatement(ctx context.Context, toEmail, toName, unitNumber, period string, agg *domain.PeriodAggregate, balance decimal.Decimal) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	subject := fmt.Sprintf("Laporan Bank Sampah RT %s - %s", unitNumber, period)

	plainText := fmt.Sprintf(
		"Halo %s,\n\nRingkasan bank sampah RT %s untuk periode %s:\n\n"+
			"Total sampah disetor: %s kg\nTotal setoran: Rp %s\nTotal penarikan: Rp %s\n"+
			"Jumlah transaksi: %d\n\nSaldo tabungan saat ini: Rp %s\n\nTerima kasih.",
		toName, unitNumber, period,
		agg.TotalWeight.String(), agg.TotalDeposited.String(), agg.TotalWithdrawn.String(),
		agg.TransactionCount, balance.String(),
	)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send statement email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
