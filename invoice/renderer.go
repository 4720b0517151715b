package invoice

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"travel-cms/billing"
)

// Core PDF fonts have no rupee glyph.
const currency = "Rs."

var (
	brandBlue  = &props.Color{Red: 30, Green: 64, Blue: 175}
	bandFill   = &props.Color{Red: 219, Green: 234, Blue: 254}
	panelFill  = &props.Color{Red: 248, Green: 250, Blue: 252}
	termsFill  = &props.Color{Red: 254, Green: 243, Blue: 199}
	paidGreen  = &props.Color{Red: 22, Green: 101, Blue: 52}
	mutedGrey  = &props.Color{Red: 100, Green: 116, Blue: 139}
	dividerRed = &props.Color{Red: 185, Green: 28, Blue: 28}
)

type Renderer struct {
	letterhead Letterhead
	compress   bool
}

func NewRenderer(l Letterhead) *Renderer {
	return &Renderer{letterhead: l, compress: true}
}

// Render lays out the document on a single A4 flow and returns the PDF bytes.
func (r *Renderer) Render(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(12).
		WithTopMargin(10).
		WithRightMargin(12).
		WithCompression(r.compress).
		Build()

	m := maroto.New(cfg)

	r.addLetterhead(m)
	r.addTitle(m, doc)
	r.addFields(m, "Customer Details", doc.Customer)
	r.addFields(m, doc.DetailsTitle, doc.Details)
	r.addItinerary(m, doc)
	r.addSummary(m, doc)
	r.addTerms(m)
	r.addRoute(m, doc)
	r.addFooter(m)

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return pdf.GetBytes(), nil
}

func (r *Renderer) addLetterhead(m core.Maroto) {
	l := r.letterhead
	m.AddRow(24,
		col.New(3).Add(
			text.New("Prop: "+l.Proprietor, props.Text{
				Size:  8,
				Style: fontstyle.Italic,
				Align: align.Left,
			}),
		),
		col.New(6).Add(
			text.New(l.CompanyName, props.Text{
				Size:  16,
				Style: fontstyle.Bold,
				Align: align.Center,
				Color: brandBlue,
			}),
			text.New(l.Address, props.Text{
				Size:  8,
				Top:   9,
				Align: align.Center,
			}),
		),
		col.New(3).Add(
			text.New("Cell: "+strings.Join(l.Phones, " / "), props.Text{
				Size:  8,
				Align: align.Right,
			}),
		),
	)
	m.AddRow(1.5, line.NewCol(12, props.Line{Thickness: 0.8, Color: brandBlue}))
	m.AddRow(1.5, line.NewCol(12, props.Line{Thickness: 0.3, Color: brandBlue}))
}

func (r *Renderer) addTitle(m core.Maroto, doc Document) {
	title, badge := doc.Title()

	m.AddRow(4)
	m.AddRow(11,
		col.New(12).Add(
			text.New(title, props.Text{
				Size:  14,
				Top:   2,
				Style: fontstyle.Bold,
				Align: align.Center,
				Color: brandBlue,
			}),
		),
	).WithStyle(&props.Cell{BackgroundColor: bandFill})

	if badge != "" {
		m.AddRow(7,
			col.New(12).Add(
				text.New(badge, props.Text{
					Size:  10,
					Top:   1.5,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: paidGreen,
				}),
			),
		)
	}

	m.AddRow(9,
		col.New(6).Add(
			text.New("Bill No: "+doc.BillNo, props.Text{
				Size:  10,
				Top:   3,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
		),
		col.New(6).Add(
			text.New("Date: "+billing.FormatDate(doc.Date), props.Text{
				Size:  10,
				Top:   3,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		),
	)
}

func (r *Renderer) addHeading(m core.Maroto, heading string) {
	m.AddRow(9,
		col.New(12).Add(
			text.New(heading, props.Text{
				Size:  10,
				Top:   3,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: brandBlue,
			}),
		),
	)
	m.AddRow(1, line.NewCol(12, props.Line{Thickness: 0.2, Color: mutedGrey}))
}

// addFields prints label/value pairs two to a row.
func (r *Renderer) addFields(m core.Maroto, heading string, fields []Field) {
	r.addHeading(m, heading)
	for i := 0; i < len(fields); i += 2 {
		cols := fieldCols(fields[i])
		if i+1 < len(fields) {
			cols = append(cols, fieldCols(fields[i+1])...)
		} else {
			cols = append(cols, col.New(6))
		}
		m.AddRow(6, cols...)
	}
}

func fieldCols(f Field) []core.Col {
	value := f.Value
	if strings.TrimSpace(value) == "" {
		value = "-"
	}
	return []core.Col{
		col.New(2).Add(text.New(f.Label+":", props.Text{
			Size:  9,
			Style: fontstyle.Bold,
			Align: align.Left,
		})),
		col.New(4).Add(text.New(value, props.Text{
			Size:  9,
			Align: align.Left,
		})),
	}
}

func (r *Renderer) addItinerary(m core.Maroto, doc Document) {
	if len(doc.Itinerary) == 0 {
		return
	}
	r.addHeading(m, "Itinerary")
	for _, day := range doc.Itinerary {
		m.AddRow(6,
			col.New(2).Add(text.New(fmt.Sprintf("Day %d", day.Day), props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(10).Add(text.New(day.Title, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
		)
		if strings.TrimSpace(day.Description) != "" {
			m.AddRow(6,
				col.New(2),
				col.New(10).Add(text.New(day.Description, props.Text{
					Size:  8,
					Align: align.Left,
					Color: mutedGrey,
				})),
			)
		}
	}
}

func (r *Renderer) addSummary(m core.Maroto, doc Document) {
	r.addHeading(m, "Billing Summary")
	panel := &props.Cell{BackgroundColor: panelFill}

	m.AddRow(2).WithStyle(panel)
	for _, s := range doc.Summary {
		m.AddRow(6,
			col.New(1),
			col.New(6).Add(text.New(s.Label, props.Text{
				Size:  9,
				Align: align.Left,
			})),
			col.New(4).Add(text.New(money(s.Amount), props.Text{
				Size:  9,
				Align: align.Right,
			})),
			col.New(1),
		).WithStyle(panel)
	}
	m.AddRow(3, col.New(1), line.NewCol(10, props.Line{Thickness: 0.4, Color: dividerRed}), col.New(1)).
		WithStyle(panel)
	m.AddRow(9,
		col.New(1),
		col.New(6).Add(text.New("GRAND TOTAL", props.Text{
			Size:  11,
			Top:   2,
			Style: fontstyle.Bold,
			Align: align.Left,
		})),
		col.New(4).Add(text.New(money(doc.GrandTotal), props.Text{
			Size:  11,
			Top:   2,
			Style: fontstyle.Bold,
			Align: align.Right,
			Color: brandBlue,
		})),
		col.New(1),
	).WithStyle(&props.Cell{BackgroundColor: bandFill, BorderType: border.Full, BorderColor: brandBlue})
	m.AddRow(8,
		col.New(12).Add(text.New("("+doc.AmountWords+")", props.Text{
			Size:  9,
			Top:   2,
			Style: fontstyle.Italic,
			Align: align.Center,
		})),
	).WithStyle(panel)
}

func (r *Renderer) addTerms(m core.Maroto) {
	m.AddRow(4)
	m.AddRow(6,
		col.New(12).Add(text.New("Terms & Conditions", props.Text{
			Size:  9,
			Top:   1,
			Left:  2,
			Style: fontstyle.Bold,
			Align: align.Left,
		})),
	).WithStyle(&props.Cell{BackgroundColor: termsFill})
	for _, term := range r.letterhead.Terms {
		m.AddRow(5,
			col.New(12).Add(text.New("* "+term, props.Text{
				Size:  8,
				Left:  2,
				Align: align.Left,
			})),
		).WithStyle(&props.Cell{BackgroundColor: termsFill})
	}
}

func (r *Renderer) addRoute(m core.Maroto, doc Document) {
	if doc.RouteDetails == "" {
		return
	}
	r.addHeading(m, "Route Details / Remarks")
	m.AddRow(12,
		col.New(12).Add(text.New(doc.RouteDetails, props.Text{
			Size:  9,
			Align: align.Left,
		})),
	)
}

func (r *Renderer) addFooter(m core.Maroto) {
	m.AddRow(6)
	m.AddRow(2, line.NewCol(12, props.Line{Thickness: 0.2, Color: mutedGrey}))
	m.AddRow(6,
		col.New(12).Add(text.New(r.letterhead.ThankYou, props.Text{
			Size:  10,
			Top:   1,
			Style: fontstyle.Bold,
			Align: align.Center,
			Color: brandBlue,
		})),
	)
	m.AddRow(5,
		col.New(12).Add(text.New(r.letterhead.ContactNote, props.Text{
			Size:  8,
			Align: align.Center,
			Color: mutedGrey,
		})),
	)
}

func money(v float64) string {
	return currency + " " + billing.FormatINR(v)
}
