// Package ingestion turns raw consumer genotype exports into a genome.Genome.
package ingestion

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/odurisile/DNA-Insight/models/constants"
	"github.com/odurisile/DNA-Insight/models/constants/chromosome"
	"github.com/odurisile/DNA-Insight/models/constants/vendor"
	"github.com/odurisile/DNA-Insight/models/genome"
)

const commentMarker = "#"

// vendor exports run to ~1M lines; allow long preamble lines
const maxLineBytes = 1024 * 1024

type Stats struct {
	Lines      int  `json:"lines"`
	Comments   int  `json:"comments"`
	Header     bool `json:"header"`
	Parsed     int  `json:"parsed"`
	Skipped    int  `json:"skipped"`
	Dropped    int  `json:"dropped"`
	Duplicates int  `json:"duplicates"`
	// rows kept whose chromosome label is not a standard human one
	NonStandardChromosomes int `json:"nonStandardChromosomes"`
}

type Result struct {
	Genome genome.Genome       `json:"-"`
	Vendor constants.Vendor    `json:"vendor"`
	Tier   constants.ParseTier `json:"tier"`
	Stats  Stats               `json:"stats"`
}

// Strict reports whether the file was recognised, as opposed to salvaged.
func (r *Result) Strict() bool {
	return r.Tier == vendor.Strict
}

// Parse reads a raw genotype export. Malformed rows are skipped; only a
// failure of the underlying reader is returned as an error.
func Parse(r io.Reader) (*Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	res := &Result{Genome: genome.Genome{}}

	var (
		preamble  []string
		layout    Layout
		delimiter rune
		detected  bool
	)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		res.Stats.Lines++

		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, commentMarker) {
			res.Stats.Comments++
			if !detected {
				preamble = append(preamble, line)
			}
			continue
		}

		if !detected {
			res.Vendor = vendor.Detect(preamble, line)
			res.Tier = vendor.TierOf(res.Vendor)
			layout = LayoutFor(res.Vendor)
			delimiter = ','
			if strings.Contains(line, "\t") {
				delimiter = '\t'
			}
			detected = true

			row := splitRow(line, delimiter)
			if len(row) > layout.Position {
				if _, err := strconv.Atoi(strings.TrimSpace(row[layout.Position])); err != nil {
					res.Stats.Header = true
					continue
				}
			}
		}

		parseRow(res, layout, splitRow(line, delimiter))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading genotype stream: %w", err)
	}

	if !detected {
		res.Vendor = vendor.Detect(preamble, "")
		res.Tier = vendor.TierOf(res.Vendor)
	}

	return res, nil
}

func parseRow(res *Result, layout Layout, row []string) {
	if len(row) < layout.minColumns() {
		res.Stats.Skipped++
		return
	}

	pos, err := strconv.Atoi(strings.TrimSpace(row[layout.Position]))
	if err != nil || pos < 0 {
		res.Stats.Skipped++
		return
	}

	rsid := strings.TrimSpace(row[layout.Rsid])
	gt := genome.NormalizeGenotype(layout.rawGenotype(row))
	if rsid == "" || gt == "" {
		res.Stats.Dropped++
		return
	}

	chrom := chromosome.Normalize(row[layout.Chromosome])
	if !chromosome.IsValidHumanChromosome(chrom) {
		res.Stats.NonStandardChromosomes++
	}

	if res.Genome.Has(rsid) {
		res.Stats.Duplicates++
	}
	res.Genome[rsid] = genome.Call{
		Genotype:   gt,
		Chromosome: chrom,
		Position:   pos,
	}
	res.Stats.Parsed++
}

// splitRow splits on tabs directly; comma rows go through encoding/csv so
// quoted fields survive. A row csv cannot read comes back empty.
func splitRow(line string, delimiter rune) []string {
	if delimiter == '\t' {
		return strings.Split(line, "\t")
	}

	cr := csv.NewReader(strings.NewReader(line))
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	row, err := cr.Read()
	if err != nil {
		return nil
	}
	return row
}
