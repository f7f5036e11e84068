package payslip

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/autodazzle/detailing-backend-go/internal/domain/payroll"
)

// Service renders salary slips for finalized months. Draft months have
// no slips: numbers still move until the month is locked.
type Service struct {
	runRepo  payroll.RunRepository
	shopName string
	outDir   string
}

func NewService(runRepo payroll.RunRepository, shopName, outDir string) *Service {
	return &Service{runRepo: runRepo, shopName: shopName, outDir: outDir}
}

// Render writes a PDF payslip for one staff member of a finalized month
// and returns the file path.
func (s *Service) Render(ctx context.Context, month, staffID string) (string, error) {
	run, err := s.runRepo.GetByMonth(ctx, month)
	if err != nil {
		return "", err
	}

	var item *payroll.LineItem
	for i := range run.Items {
		if run.Items[i].StaffID == staffID {
			item = &run.Items[i]
			break
		}
	}
	if item == nil {
		return "", payroll.ErrRunNotFound
	}

	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(s.outDir, fmt.Sprintf("%s-%s.pdf", month, staffID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, s.shopName)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Salary Slip - %s", month))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Name: %s", item.StaffName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Role: %s", item.Role))
	pdf.Ln(10)

	line := func(label string, amount decimal.Decimal) {
		pdf.Cell(100, 7, label)
		pdf.CellFormat(40, 7, amount.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	line("Base Salary", item.BaseSalary)
	line("Daily Limit Incentive", item.DailyLimitIncentive)
	line("Evening Incentive", item.TotalEvening())
	line("Sunday Profit Share", item.SundayProfitShare)
	line("Referral Commission", item.ReferralCommission)
	line("Premium Service Bonus", item.PremiumIncentive)
	line("Washing Pool Share", item.WashingPoolShare)
	line("Shift Bonus", item.ShiftBonus)
	pdf.Ln(3)
	line("Gross Pay", item.GrossPay)
	line("Total Deductions", item.TotalDeduction)
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	line("Net Pay", item.NetPay)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
