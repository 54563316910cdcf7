package source

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleTable = `<html><body>
<p>Invoice manifest</p>
<table>
  <tr><th>SKU</th><th>Qty</th><th>Unit</th></tr>
  <tr><td>ABC</td><td>10</td><td>PZS</td></tr>
  <tr><td>DEF</td><td></td><td>KGS</td></tr>
</table>
</body></html>`

func TestHTMLTableRows(t *testing.T) {
	rows, err := HTMLTableFromBytes([]byte(sampleTable)).Rows()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("len=%d", len(rows))
	}
	if rows[0].Cell(0).Raw != "ABC" || rows[0].Cell(1).Raw != "10" {
		t.Fatalf("row 0: %v", rows[0])
	}
	// Empty <td> is present-but-empty, unlike a blank spreadsheet cell.
	if !rows[1].Cell(1).Present || rows[1].Cell(1).Raw != "" {
		t.Fatalf("empty td: %+v", rows[1].Cell(1))
	}
	if rows[1].Cell(5).Present {
		t.Fatal("out-of-range cell flagged present")
	}
}

func TestHTMLTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.html")
	if err := os.WriteFile(path, []byte(sampleTable), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, err := OpenHTMLTable(path).Rows()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("len=%d", len(rows))
	}
}

func TestHTMLTableMissing(t *testing.T) {
	if _, err := HTMLTableFromBytes([]byte("<html><body>no table</body></html>")).Rows(); err == nil {
		t.Fatal("expected error")
	}
}
