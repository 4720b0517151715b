package mailer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-cms/model"
)

var phones = []string{"98494 58582", "98499 44429", "98496 58850"}

func TestComposeTravelBill(t *testing.T) {
	mail := FromBill(model.Bill{
		BillNo:        "17",
		CustomerName:  "Ravi",
		CustomerEmail: " ravi@example.com ",
		Destination:   "Tirupati",
		GrandTotal:    125000,
	}, phones)

	msg, err := mail.Compose([]byte("%PDF-1.3"))
	require.NoError(t, err)

	assert.Equal(t, "ravi@example.com", msg.To)
	assert.Equal(t, "Bill 17 - PAVAN KRISHNA TRAVELS", msg.Subject)
	assert.Contains(t, msg.Text, "Dear Ravi,")
	assert.Contains(t, msg.Text, "journey to Tirupati")
	assert.Contains(t, msg.Text, "Bill Number: 17")
	assert.Contains(t, msg.Text, "Grand Total: Rs. 1,25,000")
	assert.Contains(t, msg.Text, "98494 58582 | 98499 44429 | 98496 58850")
	assert.Contains(t, msg.HTML, "<strong>Ravi</strong>")
	assert.Contains(t, msg.HTML, "1,25,000")

	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "Bill_17.pdf", msg.Attachments[0].Name)
	assert.Equal(t, "application/pdf", msg.Attachments[0].ContentType)
}

func TestComposeTourBill(t *testing.T) {
	mail := FromTourBill(model.TourBill{
		BillNo:        "T4",
		CustomerName:  "Sita",
		CustomerEmail: "sita@example.com",
		TourName:      "Kashmir Delight",
	}, phones)

	msg, err := mail.Compose(nil)
	require.NoError(t, err)

	assert.Equal(t, "Tour Bill T4 - PAVAN KRISHNA TRAVELS", msg.Subject)
	assert.Contains(t, msg.Text, "journey to Kashmir Delight")
	assert.Equal(t, "TourBill_T4.pdf", msg.Attachments[0].Name)
}

func TestComposeEscapesHTML(t *testing.T) {
	mail := FromBill(model.Bill{BillNo: "1", CustomerName: "<b>x</b>", CustomerEmail: "a@b.c"}, phones)

	msg, err := mail.Compose(nil)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<b>x</b>")
}

func TestCheckRecipient(t *testing.T) {
	tests := []struct {
		description string
		addr        string
		valid       bool
	}{
		{"empty", "", false},
		{"no at sign", "ravi.example.com", false},
		{"plain address", "ravi@example.com", true},
	}

	for _, test := range tests {
		err := CheckRecipient(test.addr)
		if test.valid {
			assert.NoErrorf(t, err, test.description)
		} else {
			assert.Truef(t, errors.Is(err, model.ErrValidation), test.description)
		}
	}
}
