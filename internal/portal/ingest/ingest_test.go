package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/internal/portal/ingest"
)

var uploader = domain.Account{
	Username:    "contratista1",
	Password:    "contra123",
	Role:        domain.RoleContractor,
	DisplayName: "Constructora Norte SpA",
}

func TestInferAmountColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers []string
		want    string
	}{
		{"clp header", []string{"Nombre", "Monto Bruto CLP", "Fecha"}, "Monto Bruto CLP"},
		{"first matching header wins", []string{"Sueldo Base", "Total CLP"}, "Sueldo Base"},
		{"case insensitive", []string{"Nombre", "monto líquido"}, "monto líquido"},
		{"total", []string{"RUT", "Total"}, "Total"},
		{"no match", []string{"Nombre", "RUT", "Cargo"}, ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ingest.InferAmountColumn(tt.headers))
		})
	}
}

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{"$1.234.567", 1234567},
		{"1234,56", 1234.56},
		{" $12.500 ", 12500},
		{"450000", 450000},
		{"$1.250.000,75", 1250000.75},
		{"n/a", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ingest.ParseCurrency(tt.in))
		})
	}
}

func TestFromUploadCSV(t *testing.T) {
	t.Parallel()

	csvData := []byte("Nombre,Total\nJuan,100\nMaría,200\nPedro,300\n")

	rec, err := ingest.FromUpload(csvData, "nomina_marzo.csv", uploader)
	require.NoError(t, err)

	require.Equal(t, "nomina_marzo.csv", rec.Filename)
	require.Equal(t, "contratista1", rec.Contractor)
	require.Equal(t, "Constructora Norte SpA", rec.ContractorName)
	require.Equal(t, domain.StatusPending, rec.Status)
	require.Equal(t, 3, rec.RowCount)
	require.Len(t, rec.Rows, 3)
	require.Equal(t, float64(600), rec.TotalAmount)
	require.NotEmpty(t, rec.ID)
	require.False(t, rec.UploadedAt.IsZero())
}

func TestCSVDropsFullyEmptyRows(t *testing.T) {
	t.Parallel()

	csvData := []byte("a,b\n1,\n,\n2,\n")

	rows, err := ingest.ParseRows(csvData, "datos.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestCSVCurrencyFormattedValues(t *testing.T) {
	t.Parallel()

	csvData := []byte("Nombre,Monto CLP\nJuan,\"$1.234.567\"\nMaría,\"1234,56\"\nPedro,n/a\n")

	rows, err := ingest.ParseRows(csvData, "nomina.csv")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// The unparseable value contributes exactly 0, never aborts the sum.
	require.Equal(t, 1234567+1234.56, ingest.Total(rows))
}

func TestFallbackAmountFields(t *testing.T) {
	t.Parallel()

	// "Monto" is inferred but empty on the second row; the literal "TOTAL"
	// field backs it up.
	csvData := []byte("Descripción,Monto,TOTAL\nobra,1000,9999\nturno,,500\n")

	rows, err := ingest.ParseRows(csvData, "pagos.csv")
	require.NoError(t, err)
	require.Equal(t, float64(1500), ingest.Total(rows))
}

func TestEmptyFileYieldsEmptyRecord(t *testing.T) {
	t.Parallel()

	rec, err := ingest.FromUpload([]byte("Nombre,Total\n"), "vacia.csv", uploader)
	require.NoError(t, err)
	require.Equal(t, 0, rec.RowCount)
	require.Equal(t, float64(0), rec.TotalAmount)
	require.Equal(t, domain.StatusPending, rec.Status)
}

func TestFromUploadXLSX(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Nombre", "Sueldo Líquido"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Juan Pérez", 450000}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"María Soto", 380000}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rec, err := ingest.FromUpload(buf.Bytes(), "nomina_abril.xlsx", uploader)
	require.NoError(t, err)
	require.Equal(t, 2, rec.RowCount)
	require.Equal(t, float64(830000), rec.TotalAmount)
	require.Equal(t, []string{"Nombre", "Sueldo Líquido"}, rec.Rows[0].Keys())
}

func TestXLSXSkipsEmptyRows(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Nombre", "Total"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Juan", 100}))
	// Row 3 left completely empty.
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]any{"Pedro", 200}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ingest.ParseRows(buf.Bytes(), "nomina.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, float64(300), ingest.Total(rows))
}

func TestUnreadableFileReportsParseFailure(t *testing.T) {
	t.Parallel()

	_, err := ingest.FromUpload([]byte("this is not a workbook"), "nomina.xlsx", uploader)
	require.ErrorIs(t, err, ingest.ErrParse)

	_, err = ingest.FromUpload([]byte{0x00, 0x01}, "viejo.xls", uploader)
	require.ErrorIs(t, err, ingest.ErrParse)
}
