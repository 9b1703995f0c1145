package usecases

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"laundrylink.backend/internal/domain/entities"
	"laundrylink.backend/internal/domain/repositories"
)

// ReceiptUsecase renders order receipts
type ReceiptUsecase struct {
	orders   *OrderUsecase
	merchant repositories.MerchantRepository
	users    repositories.UserRepository
}

// NewReceiptUsecase creates a new receipt usecase
func NewReceiptUsecase(
	orders *OrderUsecase,
	merchant repositories.MerchantRepository,
	users repositories.UserRepository,
) *ReceiptUsecase {
	return &ReceiptUsecase{
		orders:   orders,
		merchant: merchant,
		users:    users,
	}
}

// OrderReceipt renders a PDF receipt for an order the caller may see
func (u *ReceiptUsecase) OrderReceipt(ctx context.Context, callerID uuid.UUID, callerRole string, orderID uuid.UUID) ([]byte, error) {
	order, err := u.orders.Get(ctx, callerID, callerRole, orderID)
	if err != nil {
		return nil, err
	}

	merchant, err := u.merchant.GetByID(ctx, order.MerchantID)
	if err != nil {
		return nil, err
	}

	customer, err := u.users.GetByID(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}

	return renderOrderReceipt(order, merchant, customer)
}

func renderOrderReceipt(order *entities.Order, merchant *entities.Merchant, customer *entities.User) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Laundry Order Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "LaundryLink Receipt")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 6, fmt.Sprintf("Order %s", order.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Issued %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(12)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, merchant.BusinessName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, merchant.Address)
	pdf.Ln(12)

	rows := [][2]string{
		{"Customer", customer.Name},
		{"Service", string(order.ServiceType)},
		{"Status", string(order.Status)},
		{"Pickup", order.PickupAddress},
		{"Delivery", order.DeliveryAddress},
		{"Scheduled", order.ScheduledDate + " " + order.ScheduledTime},
	}
	if order.WeightKg.Valid {
		rows = append(rows, [2]string{"Weight", fmt.Sprintf("%.1f kg", order.WeightKg.Float64)})
	}
	if order.Instructions.Valid {
		rows = append(rows, [2]string{"Instructions", order.Instructions.String})
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 7, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 7, row[1], "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	if order.TotalPrice.Valid {
		pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", order.TotalPrice.Float64))
	} else {
		pdf.Cell(0, 8, "Total: to be weighed on pickup")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
