package orchestrator

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

var csvHeader = []string{"ref speaker", "text", "words count", "result speaker", "text", "error words"}

// WriteCSV stores the result table. The error words column is left empty on
// rows where both sides name the same speaker.
func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := EncodeCSV(f, rows); err != nil {
		return err
	}
	return f.Close()
}

func EncodeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		errWords := ""
		if r.Mismatch() {
			errWords = strconv.Itoa(r.ErrorWords)
		}
		rec := []string{r.RefSpeaker, r.RefText, strconv.Itoa(r.WordCount), r.HypSpeaker, r.HypText, errWords}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV loads a table written by WriteCSV.
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeCSV(f)
}

func DecodeCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("csv: missing header")
	}
	rows := make([]Row, 0, len(recs)-1)
	for i, rec := range recs[1:] {
		n, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: words count: %w", i+2, err)
		}
		row := Row{RefSpeaker: rec[0], RefText: rec[1], WordCount: n, HypSpeaker: rec[3], HypText: rec[4]}
		if rec[5] != "" {
			if row.ErrorWords, err = strconv.Atoi(rec[5]); err != nil {
				return nil, fmt.Errorf("csv: line %d: error words: %w", i+2, err)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func writeYAML(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// PrintSummary writes the three console lines of a run.
func PrintSummary(w io.Writer, r *Result) error {
	_, err := fmt.Fprintf(w, "Word in ref text: %d\nWord with error speaker: %d\nDER: %s\n",
		r.Score.ReferenceWords, r.Score.ErrorWords, strconv.FormatFloat(r.DER, 'f', -1, 64))
	return err
}
