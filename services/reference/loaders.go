package reference

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var errNoHeader = errors.New("dataset has no header row")

type coefficientRow struct {
	Trait        string `mapstructure:"trait"`
	Rsid         string `mapstructure:"rsid"`
	Beta         string `mapstructure:"beta"`
	EffectAllele string `mapstructure:"effect_allele"`
}

type pathogenicRow struct {
	Rsid                 string `mapstructure:"RSID"`
	GeneSymbol           string `mapstructure:"GeneSymbol"`
	VariantName          string `mapstructure:"VariantName"`
	ClinicalSignificance string `mapstructure:"ClinicalSignificance"`
	ModeOfInheritance    string `mapstructure:"ModeOfInheritance"`
}

// readCoefficients reads a {trait, rsid, beta, effect_allele} CSV.
// Rows without an rsid or a numeric beta are skipped.
func readCoefficients(r io.Reader) (coefficientTable, error) {
	table := coefficientTable{}
	err := eachRow(r, ',', func(raw map[string]interface{}) {
		var row coefficientRow
		if decodeRow(raw, &row) != nil {
			return
		}
		rsid := strings.TrimSpace(row.Rsid)
		if rsid == "" || strings.TrimSpace(row.Beta) == "" {
			return
		}
		beta, err := strconv.ParseFloat(strings.TrimSpace(row.Beta), 64)
		if err != nil {
			return
		}

		trait := strings.ToLower(strings.TrimSpace(row.Trait))
		if table[trait] == nil {
			table[trait] = map[string]Coefficient{}
		}
		table[trait][rsid] = Coefficient{
			EffectAllele: strings.ToUpper(strings.TrimSpace(row.EffectAllele)),
			Weight:       beta,
		}
	})
	return table, err
}

// readPathogenic reads the tab-delimited pathogenic-variant export.
func readPathogenic(r io.Reader) (pathogenicDatabase, error) {
	db := pathogenicDatabase{}
	err := eachRow(r, '\t', func(raw map[string]interface{}) {
		var row pathogenicRow
		if decodeRow(raw, &row) != nil {
			return
		}
		rsid := strings.TrimSpace(row.Rsid)
		if rsid == "" {
			return
		}
		gene := strings.TrimSpace(row.GeneSymbol)
		if gene == "" {
			gene = "Unknown"
		}
		db[rsid] = PathogenicVariant{
			Gene:         gene,
			Name:         row.VariantName,
			Significance: strings.ToLower(row.ClinicalSignificance),
			Inheritance:  strings.ToLower(row.ModeOfInheritance),
		}
	})
	return db, err
}

func decodeRow(raw map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// eachRow hands every data row to fn keyed by the header names.
func eachRow(r io.Reader, comma rune, fn func(map[string]interface{})) error {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return errNoHeader
	}
	if err != nil {
		return err
	}
	header = append([]string(nil), header...)
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return err
		}

		raw := make(map[string]interface{}, len(header))
		for i, h := range header {
			if i < len(record) {
				raw[h] = record[i]
			}
		}
		fn(raw)
	}
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openDataset opens a plain or gzip-compressed file. Gzip is detected by
// magic number (1F 8B) or by .gz suffix.
func openDataset(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}
