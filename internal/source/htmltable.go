package source

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLTable reads the first <table> of an HTML document, for invoice
// manifests that arrive as HTML email bodies instead of workbooks. Cell
// positions follow <td>/<th> order; an empty cell is present-but-empty,
// positions past the row width are absent.
type HTMLTable struct {
	path string
	blob []byte
}

func OpenHTMLTable(path string) *HTMLTable { return &HTMLTable{path: path} }

func HTMLTableFromBytes(blob []byte) *HTMLTable { return &HTMLTable{blob: blob} }

func (s *HTMLTable) Rows() ([]Row, error) {
	blob := s.blob
	if blob == nil {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, err
		}
		blob = b
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("document has no table")
	}

	out := []Row{}
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			// Leading header row of the fixed layout.
			return
		}
		row := Row{}
		tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			text := strings.TrimSpace(cell.Text())
			row = append(row, Cell{Raw: text, Present: true})
		})
		out = append(out, row)
	})
	return out, nil
}
