// Package mailer composes bill emails and delivers them over SMTP.
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"travel-cms/billing"
	"travel-cms/model"
)

const senderName = "PAVAN KRISHNA TRAVELS"

type Attachment struct {
	Name        string
	ContentType string
	Content     []byte
}

type Message struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// BillMail carries what a bill email needs to say.
type BillMail struct {
	Tour         bool
	BillNo       string
	CustomerName string
	Email        string
	Destination  string
	GrandTotal   float64
	Phones       []string
}

func FromBill(b model.Bill, phones []string) BillMail {
	return BillMail{
		BillNo:       b.BillNo.String(),
		CustomerName: b.CustomerName,
		Email:        strings.TrimSpace(b.CustomerEmail),
		Destination:  b.Destination,
		GrandTotal:   b.GrandTotal.Float(),
		Phones:       phones,
	}
}

func FromTourBill(b model.TourBill, phones []string) BillMail {
	destination := b.Destination
	if destination == "" {
		destination = b.TourName
	}
	return BillMail{
		Tour:         true,
		BillNo:       b.BillNo.String(),
		CustomerName: b.CustomerName,
		Email:        strings.TrimSpace(b.CustomerEmail),
		Destination:  destination,
		GrandTotal:   b.GrandTotal.Float(),
		Phones:       phones,
	}
}

// CheckRecipient rejects addresses that cannot possibly be delivered to.
func CheckRecipient(addr string) error {
	if !strings.Contains(addr, "@") {
		return model.Invalid("customer email is missing or invalid")
	}
	return nil
}

func (b BillMail) AttachmentName() string {
	if b.Tour {
		return fmt.Sprintf("TourBill_%s.pdf", b.BillNo)
	}
	return fmt.Sprintf("Bill_%s.pdf", b.BillNo)
}

func (b BillMail) subject() string {
	if b.Tour {
		return fmt.Sprintf("Tour Bill %s - %s", b.BillNo, senderName)
	}
	return fmt.Sprintf("Bill %s - %s", b.BillNo, senderName)
}

func (b BillMail) text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dear %s,\n\n", b.CustomerName)
	fmt.Fprintf(&sb, "Thank you for choosing %s.\n\n", senderName)
	fmt.Fprintf(&sb, "Please find attached your bill for the journey to %s.\n\n", b.Destination)
	fmt.Fprintf(&sb, "Bill Number: %s\n", b.BillNo)
	fmt.Fprintf(&sb, "Grand Total: Rs. %s\n\n", billing.FormatINR(b.GrandTotal))
	sb.WriteString("For any queries, please contact us at:\n")
	sb.WriteString(strings.Join(b.Phones, " | "))
	fmt.Fprintf(&sb, "\n\nBest Regards,\n%s", senderName)
	return sb.String()
}

var htmlBody = template.Must(template.New("bill").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1e40af;">{{.Sender}}</h2>
  <p>Dear <strong>{{.CustomerName}}</strong>,</p>
  <p>Thank you for choosing {{.Sender}}.</p>
  <p>Please find attached your bill for the journey to <strong>{{.Destination}}</strong>.</p>
  <div style="background: #f3f4f6; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <p style="margin: 5px 0;"><strong>Bill Number:</strong> {{.BillNo}}</p>
    <p style="margin: 5px 0;"><strong>Grand Total:</strong> &#8377;{{.GrandTotal}}</p>
  </div>
  <p>For any queries, please contact us at:</p>
  <p><strong>{{.Phones}}</strong></p>
  <p style="margin-top: 30px;">Best Regards,<br><strong>{{.Sender}}</strong></p>
</div>`))

func (b BillMail) html() (string, error) {
	var buf bytes.Buffer
	err := htmlBody.Execute(&buf, map[string]string{
		"Sender":       senderName,
		"CustomerName": b.CustomerName,
		"Destination":  b.Destination,
		"BillNo":       b.BillNo,
		"GrandTotal":   billing.FormatINR(b.GrandTotal),
		"Phones":       strings.Join(b.Phones, " | "),
	})
	if err != nil {
		return "", fmt.Errorf("render email body: %w", err)
	}
	return buf.String(), nil
}

// Compose builds the message with pdf attached.
func (b BillMail) Compose(pdf []byte) (Message, error) {
	if err := CheckRecipient(b.Email); err != nil {
		return Message{}, err
	}
	html, err := b.html()
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      b.Email,
		Subject: b.subject(),
		Text:    b.text(),
		HTML:    html,
		Attachments: []Attachment{{
			Name:        b.AttachmentName(),
			ContentType: "application/pdf",
			Content:     pdf,
		}},
	}, nil
}
