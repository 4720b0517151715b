package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-cms/billing"
	"travel-cms/invoice"
	"travel-cms/mailer"
	"travel-cms/metrics"
	"travel-cms/model"
	"travel-cms/service/ports"
)

// delivery renders bill PDFs and mails them.
type delivery struct {
	renderer ports.Renderer
	sender   mailer.Sender
	phones   []string
	logger   logger.Logger
}

// send checks the recipient before doing any work, so a bill without an
// email address never reaches the renderer or the SMTP server.
func (d delivery) send(ctx context.Context, mail mailer.BillMail, doc invoice.Document) error {
	kind := string(doc.Kind)
	if err := mailer.CheckRecipient(mail.Email); err != nil {
		return err
	}

	pdf, err := d.renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("render bill %s: %w", mail.BillNo, err)
	}
	metrics.BillPDFs.WithLabelValues(kind).Inc()

	msg, err := mail.Compose(pdf)
	if err != nil {
		return err
	}
	if err = d.sender.Send(ctx, msg); err != nil {
		metrics.BillEmails.WithLabelValues(kind, "error").Inc()
		d.logger.Error("failed to send bill email",
			logger.String("bill_no", mail.BillNo),
			logger.String("kind", kind),
			logger.String("error", err.Error()),
		)
		return err
	}
	metrics.BillEmails.WithLabelValues(kind, "sent").Inc()
	return nil
}

type BillService struct {
	repo ports.BillRepo
	delivery
	now func() time.Time
}

func NewBillService(repo ports.BillRepo, renderer ports.Renderer, sender mailer.Sender, phones []string, logger logger.Logger) *BillService {
	return &BillService{
		repo:     repo,
		delivery: delivery{renderer: renderer, sender: sender, phones: phones, logger: logger},
		now:      time.Now,
	}
}

// List returns bills ordered by bill number, numeric ones first.
func (s *BillService) List(ctx context.Context) ([]model.Bill, error) {
	bills, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	billing.SortBills(bills, func(b model.Bill) billing.SortKey {
		return billing.SortKey{BillNo: b.BillNo.String(), Date: b.Date.Time}
	})
	return bills, nil
}

func (s *BillService) Get(ctx context.Context, id string) (model.Bill, error) {
	return s.repo.Get(ctx, id)
}

func (s *BillService) NextNumber(ctx context.Context) (string, error) {
	numbers, err := s.repo.BillNumbers(ctx)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(billing.NextBillNo(numbers), 10), nil
}

func (s *BillService) Create(ctx context.Context, b model.Bill) (model.Bill, error) {
	if b.BillNo == "" {
		next, err := s.NextNumber(ctx)
		if err != nil {
			return model.Bill{}, fmt.Errorf("allocate bill number: %w", err)
		}
		b.BillNo = model.FlexString(next)
	}

	now := s.now().UTC()
	if b.Date.IsZero() {
		b.Date = model.NewDate(now)
	}
	if err := model.Validate(b); err != nil {
		return model.Bill{}, err
	}

	b.Id = primitive.NewObjectID()
	b.CreatedAt = model.NewDate(now)
	applyBillTotals(&b)

	if err := s.repo.Create(ctx, b); err != nil {
		return model.Bill{}, fmt.Errorf("create bill: %w", err)
	}
	s.logger.Info("bill created",
		logger.String("bill_no", b.BillNo.String()),
		logger.String("grand_total", billing.FormatINR(b.GrandTotal.Float())),
	)
	return b, nil
}

// Update applies patch to the stored bill and saves the result. The id
// and creation time cannot be changed by the patch.
func (s *BillService) Update(ctx context.Context, id string, patch func(*model.Bill) error) (model.Bill, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.Bill{}, err
	}
	storedID, createdAt := b.Id, b.CreatedAt
	if err = patch(&b); err != nil {
		return model.Bill{}, err
	}
	b.Id, b.CreatedAt = storedID, createdAt
	if err = model.Validate(b); err != nil {
		return model.Bill{}, err
	}

	applyBillTotals(&b)
	if err = s.repo.Replace(ctx, b); err != nil {
		return model.Bill{}, fmt.Errorf("update bill: %w", err)
	}
	return b, nil
}

func (s *BillService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SendEmail mails the bill PDF to the customer and returns the address used.
func (s *BillService) SendEmail(ctx context.Context, id string) (string, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	mail := mailer.FromBill(b, s.phones)
	if err = s.send(ctx, mail, invoice.FromBill(b)); err != nil {
		return "", err
	}
	return mail.Email, nil
}

func applyBillTotals(b *model.Bill) {
	t := billing.TravelBillTotals(b.TotalAmount.Float(), b.Advance.Float(), b.DriverBatta.Float(), b.ExtraCharges.Float())
	b.Balance = model.Amount(t.Balance)
	b.GrandTotal = model.Amount(t.GrandTotal)
	b.AmountWords = t.AmountWords
}

type TourBillService struct {
	repo ports.TourBillRepo
	delivery
	now func() time.Time
}

func NewTourBillService(repo ports.TourBillRepo, renderer ports.Renderer, sender mailer.Sender, phones []string, logger logger.Logger) *TourBillService {
	return &TourBillService{
		repo:     repo,
		delivery: delivery{renderer: renderer, sender: sender, phones: phones, logger: logger},
		now:      time.Now,
	}
}

func (s *TourBillService) List(ctx context.Context) ([]model.TourBill, error) {
	bills, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	billing.SortBills(bills, func(b model.TourBill) billing.SortKey {
		return billing.SortKey{BillNo: b.BillNo.String(), Date: b.Date.Time}
	})
	return bills, nil
}

func (s *TourBillService) Get(ctx context.Context, id string) (model.TourBill, error) {
	return s.repo.Get(ctx, id)
}

func (s *TourBillService) NextNumber(ctx context.Context) (string, error) {
	numbers, err := s.repo.BillNumbers(ctx)
	if err != nil {
		return "", err
	}
	return billing.NextTourBillNo(numbers), nil
}

func (s *TourBillService) Create(ctx context.Context, b model.TourBill) (model.TourBill, error) {
	if b.BillNo == "" {
		next, err := s.NextNumber(ctx)
		if err != nil {
			return model.TourBill{}, fmt.Errorf("allocate tour bill number: %w", err)
		}
		b.BillNo = model.FlexString(next)
	}

	now := s.now().UTC()
	if b.Date.IsZero() {
		b.Date = model.NewDate(now)
	}
	if err := model.Validate(b); err != nil {
		return model.TourBill{}, err
	}

	b.Id = primitive.NewObjectID()
	b.CreatedAt = model.NewDate(now)
	applyTourBillTotals(&b)

	if err := s.repo.Create(ctx, b); err != nil {
		return model.TourBill{}, fmt.Errorf("create tour bill: %w", err)
	}
	s.logger.Info("tour bill created",
		logger.String("bill_no", b.BillNo.String()),
		logger.String("grand_total", billing.FormatINR(b.GrandTotal.Float())),
	)
	return b, nil
}

// Update applies patch to the stored tour bill and saves the result. The id
// and creation time cannot be changed by the patch.
func (s *TourBillService) Update(ctx context.Context, id string, patch func(*model.TourBill) error) (model.TourBill, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.TourBill{}, err
	}
	storedID, createdAt := b.Id, b.CreatedAt
	if err = patch(&b); err != nil {
		return model.TourBill{}, err
	}
	b.Id, b.CreatedAt = storedID, createdAt
	if err = model.Validate(b); err != nil {
		return model.TourBill{}, err
	}

	applyTourBillTotals(&b)
	if err = s.repo.Replace(ctx, b); err != nil {
		return model.TourBill{}, fmt.Errorf("update tour bill: %w", err)
	}
	return b, nil
}

func (s *TourBillService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *TourBillService) SendEmail(ctx context.Context, id string) (string, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	mail := mailer.FromTourBill(b, s.phones)
	if err = s.send(ctx, mail, invoice.FromTourBill(b)); err != nil {
		return "", err
	}
	return mail.Email, nil
}

func applyTourBillTotals(b *model.TourBill) {
	t := billing.TourBillTotals(b.PricePerPerson.Float(), b.NumberOfPersons.Float(), b.Advance.Float(), b.ExtraCharges.Float())
	b.TotalAmount = model.Amount(t.TotalAmount)
	b.Balance = model.Amount(t.Balance)
	b.GrandTotal = model.Amount(t.GrandTotal)
	b.AmountWords = t.AmountWords
	if b.Itinerary == nil {
		b.Itinerary = []model.ItineraryDay{}
	}
	if b.Inclusions == nil {
		b.Inclusions = []string{}
	}
	if b.Exclusions == nil {
		b.Exclusions = []string{}
	}
}
