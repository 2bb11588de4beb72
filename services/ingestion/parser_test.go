package ingestion

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/odurisile/DNA-Insight/models/constants/vendor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twentyThreeAndMeFile = `# This data file generated by 23andMe at: Mon Jan 01 00:00:00 2024
# rsid	chromosome	position	genotype
rs12913832	15	28365618	AG
rs1805007	16	89986117	--
i3000001	MT	100	A
rs99	1	notanumber	AA
rs98	1	5
rs12913832	15	28365618	GG
`

const ancestryFile = `#AncestryDNA raw data download
rsid	chromosome	position	allele1	allele2
rs4988235	2	136608646	A	G
rs671	12	112241766	0	0
`

const genericCsvFile = `RSID,CHROMOSOME,POSITION,RESULT
"rs1","1","100","AG"
"rs2","chr2","200","C C"
"","3","300","TT"
`

func TestParse23andMe(t *testing.T) {
	res, err := Parse(strings.NewReader(twentyThreeAndMeFile))
	require.NoError(t, err)

	assert.Equal(t, vendor.TwentyThreeAndMe, res.Vendor)
	assert.True(t, res.Strict())
	assert.Len(t, res.Genome, 3)

	// last write wins
	assert.Equal(t, "G/G", res.Genome["rs12913832"].Genotype)
	assert.Equal(t, "15", res.Genome["rs12913832"].Chromosome)
	assert.Equal(t, 28365618, res.Genome["rs12913832"].Position)
	assert.Equal(t, "N/N", res.Genome["rs1805007"].Genotype)
	assert.Equal(t, "A", res.Genome["i3000001"].Genotype)

	assert.Equal(t, 8, res.Stats.Lines)
	assert.Equal(t, 2, res.Stats.Comments)
	assert.False(t, res.Stats.Header)
	assert.Equal(t, 4, res.Stats.Parsed)
	assert.Equal(t, 2, res.Stats.Skipped)
	assert.Equal(t, 1, res.Stats.Duplicates)
}

func TestParseAncestrySplitAlleles(t *testing.T) {
	res, err := Parse(strings.NewReader(ancestryFile))
	require.NoError(t, err)

	assert.Equal(t, vendor.Ancestry, res.Vendor)
	assert.True(t, res.Stats.Header)
	assert.Equal(t, "A/G", res.Genome["rs4988235"].Genotype)
	assert.Equal(t, "N/N", res.Genome["rs671"].Genotype)
}

func TestParseGenericIsBestEffort(t *testing.T) {
	res, err := Parse(strings.NewReader(genericCsvFile))
	require.NoError(t, err)

	assert.Equal(t, vendor.Generic, res.Vendor)
	assert.Equal(t, vendor.BestEffort, res.Tier)
	assert.False(t, res.Strict())
	assert.True(t, res.Stats.Header)
	assert.Len(t, res.Genome, 2)
	assert.Equal(t, "A/G", res.Genome["rs1"].Genotype)
	assert.Equal(t, "2", res.Genome["rs2"].Chromosome)
	assert.Equal(t, "C/C", res.Genome["rs2"].Genotype)
	assert.Equal(t, 1, res.Stats.Dropped)
}

func TestParseUnrecognisedStillSucceeds(t *testing.T) {
	res, err := Parse(strings.NewReader("foo bar\nrs1 1 100 AG\n"))
	require.NoError(t, err)

	assert.Equal(t, vendor.Unknown, res.Vendor)
	assert.Equal(t, vendor.BestEffort, res.Tier)
	assert.Empty(t, res.Genome)
	assert.Equal(t, 2, res.Stats.Skipped)
}

func TestParseNonStandardChromosome(t *testing.T) {
	res, err := Parse(strings.NewReader("# 23andMe\nrs1\t1\t10\tAA\nrs2\tUn_gl000\t20\tCC\n"))
	require.NoError(t, err)

	assert.Len(t, res.Genome, 2)
	assert.Equal(t, 1, res.Stats.NonStandardChromosomes)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestParseSurfacesReadFailures(t *testing.T) {
	_, err := Parse(failingReader{})
	assert.Error(t, err)
}

func TestParseFileContainers(t *testing.T) {
	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	_, _ = w.Write([]byte(twentyThreeAndMeFile))
	require.NoError(t, w.Close())

	res, err := ParseFile("genome.txt.gz", gz.Bytes())
	require.NoError(t, err)
	assert.Len(t, res.Genome, 3)

	// magic number wins over a misleading extension
	res, err = ParseFile("genome.txt", gz.Bytes())
	require.NoError(t, err)
	assert.Len(t, res.Genome, 3)

	archive := zipOf(t, map[string]string{
		"README.md":       "not genotype data",
		"genome_v5.TXT":   ancestryFile,
		"zzz/another.csv": genericCsvFile,
	}, []string{"README.md", "genome_v5.TXT", "zzz/another.csv"})

	rc, name, err := OpenContainer("upload.zip", archive)
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "genome_v5.TXT", name)

	res, err = ParseFile("upload.zip", archive)
	require.NoError(t, err)
	assert.Equal(t, vendor.Ancestry, res.Vendor)
}

func TestOpenContainerFailures(t *testing.T) {
	_, _, err := OpenContainer("empty.txt", nil)
	assert.True(t, errors.Is(err, ErrEmptyUpload))

	_, _, err = OpenContainer("broken.zip", []byte("definitely not a zip archive"))
	assert.True(t, errors.Is(err, ErrUnreadableContainer))

	_, _, err = OpenContainer("broken.gz", []byte{0x1f, 0x8b, 0x00, 0x01})
	assert.True(t, errors.Is(err, ErrUnreadableContainer))

	noText := zipOf(t, map[string]string{"photo.png": "png"}, []string{"photo.png"})
	_, _, err = OpenContainer("upload.zip", noText)
	assert.True(t, errors.Is(err, ErrNoTextPayload))
}

func TestOpenContainerPlainText(t *testing.T) {
	rc, name, err := OpenContainer("genome.txt", []byte("rs1\t1\t1\tAA\n"))
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "genome.txt", name)
	assert.Equal(t, "rs1\t1\t1\tAA\n", string(body))
}

func zipOf(t *testing.T, files map[string]string, order []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range order {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(files[name]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
