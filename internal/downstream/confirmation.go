package downstream

import (
	"context"
	"fmt"

	"github.com/shopantik/payment-service/config"
	"github.com/shopantik/payment-service/internal/domain"
	"gopkg.in/gomail.v2"
)

type EmailConfirmationSender struct {
	config *config.Config
}

func CreateEmailConfirmationSender(config *config.Config) *EmailConfirmationSender {
	return &EmailConfirmationSender{
		config: config,
	}
}

func (s *EmailConfirmationSender) SendOrderConfirmation(ctx context.Context, order domain.Order) error {
	smtp := s.config.SMTPConfig

	message := gomail.NewMessage()
	message.SetHeader("From", smtp.Sender)
	message.SetHeader("To", order.CustomerEmail)
	message.SetHeader("Subject", fmt.Sprintf("Order #%d confirmed", order.ID))

	body := fmt.Sprintf("Dear %s,\n\nYour payment for order #%d has been received. We are preparing your order for shipment.\n\nThank you for shopping with ShopAntik.", order.CustomerName, order.ID)
	message.SetBody("text/plain", body)

	d := gomail.NewDialer(smtp.Host, smtp.Port, smtp.Sender, smtp.Password)

	return d.DialAndSend(message)
}
