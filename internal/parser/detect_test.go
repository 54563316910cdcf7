package parser

import "testing"

func TestDetectInvoiceEmail(t *testing.T) {
	cases := []struct {
		name        string
		subject     string
		text        string
		attachments []string
		want        bool
	}{
		{name: "subject and spreadsheet", subject: "Factura ACME enero", attachments: []string{"invoice.xlsx"}, want: true},
		{name: "spreadsheet plus body keyword", text: "se adjunta el pedimento", attachments: []string{"export.xls"}, want: true},
		{name: "spreadsheet alone", attachments: []string{"data.xlsx"}, want: false},
		{name: "keywords only in body", text: "invoice pedimento cove aduana", want: true},
		{name: "newsletter", subject: "Weekly digest", text: "news", attachments: []string{"photo.png"}, want: false},
		{name: "empty", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectInvoiceEmail(tc.subject, tc.text, tc.attachments)
			if got.IsInvoice != tc.want {
				t.Fatalf("score=%v reason=%s", got.Score, got.Reason)
			}
			if got.Score < 0 || got.Score > 1 {
				t.Fatalf("score out of range: %v", got.Score)
			}
		})
	}
}
