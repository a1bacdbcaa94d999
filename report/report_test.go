package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nehilsa2/company_resolver/resolve"
)

func sampleResolutions() []resolve.Resolution {
	return []resolve.Resolution{
		{Name: "Acme Corp", Outcome: resolve.Resolved{Website: "https://acme.com/", LinkedIn: "https://www.linkedin.com/company/acme"}},
		{Name: "Globex, Inc", Outcome: resolve.Resolved{Website: "https://globex.com/"}},
		{Name: "Hooli", Outcome: resolve.Failed{Message: "timed out waiting for search results (30s)"}},
		{Name: "Acme Corp", Outcome: resolve.Resolved{}},
	}
}

func TestAssemble(t *testing.T) {
	rows := Assemble(sampleResolutions())

	assert.Equal(t, []Row{
		{Number: 1, Name: "Acme Corp", Website: "https://acme.com/", LinkedIn: "https://www.linkedin.com/company/acme"},
		{Number: 2, Name: "Globex, Inc", Website: "https://globex.com/"},
		{Number: 3, Name: "Hooli", Error: "timed out waiting for search results (30s)"},
		{Number: 4, Name: "Acme Corp"},
	}, rows)
}

func TestAssemble_NumbersArePositional(t *testing.T) {
	res := make([]resolve.Resolution, 25)
	for i := range res {
		res[i] = resolve.Resolution{Name: "same", Outcome: resolve.Resolved{}}
	}

	for i, row := range Assemble(res) {
		assert.Equal(t, i+1, row.Number)
	}
}

func TestAssemble_Empty(t *testing.T) {
	assert.Empty(t, Assemble(nil))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Assemble(sampleResolutions())))

	want := "S Number,Name,Website,LinkedIn,Error\n" +
		"1,Acme Corp,https://acme.com/,https://www.linkedin.com/company/acme,\n" +
		"2,\"Globex, Inc\",https://globex.com/,,\n" +
		"3,Hooli,,,timed out waiting for search results (30s)\n" +
		"4,Acme Corp,,,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "S Number,Name,Website,LinkedIn,Error\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV_WriteFailure(t *testing.T) {
	err := WriteCSV(failingWriter{}, Assemble(sampleResolutions()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
