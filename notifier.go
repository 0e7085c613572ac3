package main

import (
	"fmt"
	"net/smtp"
	"strings"

	"redflag/analysis"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Notifier tells a user that their scan finished.
type Notifier interface {
	ScanCompleted(to string, report *analysis.Report) error
}

// emailNotifier sends completion emails via SMTP
type emailNotifier struct {
	cfg    *Config
	logger *logrus.Logger
}

func newEmailNotifier(cfg *Config, logger *logrus.Logger) *emailNotifier {
	return &emailNotifier{cfg: cfg, logger: logger}
}

// completionEmail builds the message announcing a finished report.
func completionEmail(from, to string, report *analysis.Report) *email.Email {
	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = fmt.Sprintf("RedFlag report ready: %s", report.CompanyName)

	var body strings.Builder
	fmt.Fprintf(&body, "Your Quality of Earnings scan of %s is complete.\n\n", report.CompanyName)
	fmt.Fprintf(&body, "Risk score: %d (%s)\n", report.RiskScore, report.RiskLevel)
	if report.RevenueAnalysis.DiscrepancyFound {
		fmt.Fprintf(&body, "Revenue discrepancy: %s in %s\n",
			analysis.FormatCurrency(report.RevenueAnalysis.DiscrepancyAmount),
			strings.Join(report.RevenueAnalysis.FlaggedMonths, ", "))
	}
	fmt.Fprintf(&body, "Personal expenses flagged: %d\n", len(report.PersonalExpenses))
	if report.CustomerChurn.ChurnRisk {
		fmt.Fprintf(&body, "Customers at risk: %d\n", len(report.CustomerChurn.AtRiskCustomers))
	}
	fmt.Fprintf(&body, "Adjusted EBITDA: %s\n", analysis.FormatCurrency(report.EBITDABridge.TrueAdjustedEBITDA))
	body.WriteString("\nSign in to RedFlag to view the full report.\n")
	e.Text = []byte(body.String())
	return e
}

func (n *emailNotifier) ScanCompleted(to string, report *analysis.Report) error {
	if to == "" {
		return nil
	}

	e := completionEmail(n.cfg.SenderEmail, to, report)
	addr := fmt.Sprintf("%s:%s", n.cfg.SMTPHost, n.cfg.SMTPPort)
	auth := smtp.PlainAuth("", n.cfg.SMTPUsername, n.cfg.SMTPPassword, n.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	n.logger.WithFields(logrus.Fields{"to": to, "scan_id": report.ScanID}).Info("Completion email sent")
	return nil
}

// noopNotifier is used when SMTP is not configured.
type noopNotifier struct{}

func (noopNotifier) ScanCompleted(string, *analysis.Report) error { return nil }
