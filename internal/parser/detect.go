package parser

import (
	"path/filepath"
	"strings"
)

type DetectResult struct {
	IsInvoice bool
	Score     float64
	Reason    string
}

var invoiceKeywords = []string{"invoice", "factura", "pedimento", "cove", "aduana", "customs", "embarque", "acuity"}

// DetectInvoiceEmail scores whether an email looks like it carries an Acuity
// invoice. Subject keywords weigh more than body hits; a spreadsheet
// attachment is the strongest signal.
func DetectInvoiceEmail(subject, text string, attachmentNames []string) DetectResult {
	subject = strings.ToLower(subject)
	text = strings.ToLower(text)

	score := 0.0
	for _, kw := range invoiceKeywords {
		if strings.Contains(subject, kw) {
			score += 0.2
		}
		if strings.Contains(text, kw) {
			score += 0.1
		}
	}

	for _, name := range attachmentNames {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".xlsx", ".xls", ".html", ".htm":
			score += 0.35
		}
	}
	if score > 1 {
		score = 1
	}

	isInvoice := score >= 0.4
	reason := "rules_negative"
	if isInvoice {
		reason = "rules_positive"
	}
	return DetectResult{IsInvoice: isInvoice, Score: score, Reason: reason}
}
