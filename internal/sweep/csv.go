package sweep

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteCSV writes a sweep result as CSV: the swept parameter in the
// first column, one metric per remaining column.
func WriteCSV(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, 0, len(res.MetricNames)+1)
	header = append(header, res.Parameter)
	header = append(header, res.MetricNames...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range res.Rows {
		row := make([]string, 0, len(r.Metrics)+1)
		row = append(row, fmtFloat(r.Value))
		for _, m := range r.Metrics {
			row = append(row, fmtFloat(m.Value))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
