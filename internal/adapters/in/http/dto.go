package http

import (
	"time"

	"negoce/internal/core/application/usecases/queries"
	"negoce/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// apiError is the uniform error envelope returned by every endpoint.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// lineRequest is one product row as submitted by the capture forms. Numeric
// fields arrive already parsed; omitted values default to zero and the
// domain normalization rules apply.
type lineRequest struct {
	Designation       string  `json:"designation"`
	ProductURL        string  `json:"product_url"`
	ImageURL          string  `json:"image_url"`
	DisplayedPrice    float64 `json:"displayed_price"`
	CommissionPercent float64 `json:"commission_percent"`
	WeightKg          float64 `json:"weight_kg"`
	HeightCm          float64 `json:"height_cm"`
	WidthCm           float64 `json:"width_cm"`
	LengthCm          float64 `json:"length_cm"`
	Quantity          int     `json:"quantity"`
}

func (r lineRequest) toDomain() product.Line {
	return product.Line{
		Designation:       r.Designation,
		ProductURL:        r.ProductURL,
		ImageURL:          r.ImageURL,
		DisplayedPrice:    r.DisplayedPrice,
		CommissionPercent: r.CommissionPercent,
		WeightKg:          r.WeightKg,
		HeightCm:          r.HeightCm,
		WidthCm:           r.WidthCm,
		LengthCm:          r.LengthCm,
		Quantity:          r.Quantity,
	}
}

func linesToDomain(reqs []lineRequest) []product.Line {
	lines := make([]product.Line, len(reqs))
	for i, r := range reqs {
		lines[i] = r.toDomain()
	}
	return lines
}

type lineResponse struct {
	Designation       string  `json:"designation"`
	ProductURL        string  `json:"product_url,omitempty"`
	ImageURL          string  `json:"image_url,omitempty"`
	DisplayedPrice    float64 `json:"displayed_price"`
	CommissionPercent float64 `json:"commission_percent"`
	WeightKg          float64 `json:"weight_kg"`
	HeightCm          float64 `json:"height_cm"`
	WidthCm           float64 `json:"width_cm"`
	LengthCm          float64 `json:"length_cm"`
	Quantity          int     `json:"quantity"`
}

func linesToResponse(lines []product.Line) []lineResponse {
	resp := make([]lineResponse, len(lines))
	for i, l := range lines {
		resp[i] = lineResponse{
			Designation:       l.Designation,
			ProductURL:        l.ProductURL,
			ImageURL:          l.ImageURL,
			DisplayedPrice:    l.DisplayedPrice,
			CommissionPercent: l.CommissionPercent,
			WeightKg:          l.WeightKg,
			HeightCm:          l.HeightCm,
			WidthCm:           l.WidthCm,
			LengthCm:          l.LengthCm,
			Quantity:          l.Quantity,
		}
	}
	return resp
}

type createClientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type clientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type createOrderRequest struct {
	ClientID uuid.UUID     `json:"client_id"`
	Mode     string        `json:"mode"`
	Lines    []lineRequest `json:"lines"`
}

type orderResponse struct {
	ID          uuid.UUID      `json:"id"`
	Number      string         `json:"number"`
	ClientName  string         `json:"client_name"`
	Mode        string         `json:"mode"`
	Total       float64        `json:"total"`
	CreatedAt   time.Time      `json:"created_at"`
	Step        string         `json:"step"`
	StepLabel   string         `json:"step_label"`
	Percent     int            `json:"percent"`
	DaysElapsed int            `json:"days_elapsed"`
	Lines       []lineResponse `json:"lines,omitempty"`
}

func orderToResponse(o queries.GetOrdersQueryResponse) orderResponse {
	return orderResponse{
		ID:          o.ID.Bytes(),
		Number:      o.Number,
		ClientName:  o.ClientName,
		Mode:        o.Mode,
		Total:       o.Total,
		CreatedAt:   o.CreatedAt,
		Step:        o.Progress.Step.String(),
		StepLabel:   o.Progress.Step.Label(),
		Percent:     o.Progress.Percent,
		DaysElapsed: o.Progress.DaysElapsed,
	}
}

// changeStepRequest updates the admin override. An empty step clears the
// override and hands control back to the time-derived classification.
type changeStepRequest struct {
	Step string `json:"step"`
}

type createCotationRequest struct {
	ClientID uuid.UUID     `json:"client_id"`
	Mode     string        `json:"mode"`
	Lines    []lineRequest `json:"lines"`
}

type cotationResponse struct {
	ID          uuid.UUID      `json:"id"`
	ClientName  string         `json:"client_name"`
	Mode        string         `json:"mode"`
	Lines       []lineResponse `json:"lines"`
	TotalGlobal float64        `json:"total_global"`
	CreatedAt   time.Time      `json:"created_at"`
}

type recordTransactionRequest struct {
	Kind   string  `json:"kind"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type financeEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Label     string    `json:"label"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type financeSummaryResponse struct {
	Entries          []financeEntryResponse `json:"entries"`
	Revenue          float64                `json:"revenue"`
	Expense          float64                `json:"expense"`
	Balance          float64                `json:"balance"`
	FormattedRevenue string                 `json:"formatted_revenue"`
	FormattedExpense string                 `json:"formatted_expense"`
	FormattedBalance string                 `json:"formatted_balance"`
}

type createdResponse struct {
	ID uuid.UUID `json:"id"`
}
