package wcsp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agitter/meo/wcsp"
)

func TestWriteInstance_RejectsEmptyInstance(t *testing.T) {
	var buf bytes.Buffer
	err := wcsp.WriteInstance(&buf, wcsp.Instance{})
	assert.ErrorIs(t, err, wcsp.ErrEmptyInstance)
}

func TestWriteInstance_RejectsZeroArityRelation(t *testing.T) {
	inst := wcsp.Instance{
		Variables: []wcsp.Variable{{Name: "E0"}},
		Relations: []wcsp.Relation{{Name: "R0", Arity: 0}},
	}
	var buf bytes.Buffer
	err := wcsp.WriteInstance(&buf, inst)
	assert.ErrorIs(t, err, wcsp.ErrZeroArity)
}

func TestWriteInstance_ProducesWellFormedDocument(t *testing.T) {
	inst := wcsp.Instance{
		Variables: []wcsp.Variable{{Name: "E0"}, {Name: "E1"}},
		Relations: []wcsp.Relation{
			{Name: "R0", Arity: 1, DefaultCost: 300, Tuple: []int{1}},
		},
		Constraints: []wcsp.Constraint{
			{Name: "C0", RelationName: "R0", VarNames: []string{"E0"}},
		},
		MaximalCost: 1001,
	}

	var buf bytes.Buffer
	require.NoError(t, wcsp.WriteInstance(&buf, inst))

	doc := buf.String()
	assert.Contains(t, doc, `<instance type="WCSP">`)
	assert.Contains(t, doc, `name="E0"`)
	assert.Contains(t, doc, `name="E1"`)
	assert.Contains(t, doc, `defaultCost="300"`)
	assert.Contains(t, doc, "<maximalCost>1001</maximalCost>")
	assert.Contains(t, doc, `scope="E0"`)
}

func TestReadSolution_ParsesWhitespaceSeparatedTokens(t *testing.T) {
	sol, err := wcsp.ReadSolution(strings.NewReader("1 0  1\n0"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 0}, sol)
}

func TestReadSolution_RejectsNonBinaryToken(t *testing.T) {
	_, err := wcsp.ReadSolution(strings.NewReader("1 2 0"))
	assert.ErrorIs(t, err, wcsp.ErrMalformedSolution)
}

func TestReadSolution_EmptyInputYieldsEmptySlice(t *testing.T) {
	sol, err := wcsp.ReadSolution(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sol)
}
