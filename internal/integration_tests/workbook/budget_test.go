package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cellgrid/internal/app"
	"github.com/vk/cellgrid/internal/testutil"
)

const budgetSheet = `# item;# cost;# qty
rent;1200;1
food;45.5*4;4
Total # sum;Sum(Span([1,1],[2,1]));Sum(Span([1,2],[2,2]))
`

func TestWorkbook_BudgetSheet(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"workbook.hcl": `
sheet "budget" {
  delimiter = ";"
}
`,
		"data/budget.csv": budgetSheet,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{})

	// --- Assert ---
	require.NoError(t, result.Err)
	tables := testutil.Tables(t, result)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{
		"item  cost     qty",
		"",
		"",
		"rent  1200.000 1.000",
		"",
		"food  182.000  4.000",
		"sum",
		"Total 1382.000 5.000",
	}, tables[0])
	testutil.AssertLogged(t, result, "Sheet resolved.", "sheet=budget", "pending=0")
}

func TestWorkbook_DiscoveredSheetsAreSortedAndSeparated(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"workbook.hcl": `extension = "txt"`,
		"data/b.txt":   "2;[0,0]",
		"data/a.txt":   "1",
		"data/c.csv":   "ignored",
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{})

	// --- Assert ---
	require.NoError(t, result.Err)
	tables := testutil.Tables(t, result)
	require.Len(t, tables, 2)
	assert.Equal(t, []string{"", "1.000"}, tables[0])
	assert.Equal(t, []string{"", "2.000 2.000"}, tables[1])
}

func TestWorkbook_DetectsSeparatorAroundFormulaRows(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"workbook.hcl": `sheet "sum" {}`,
		"data/sum.csv": "1;2;3\nSum(Span([0,0],[0,2]))\n",
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{})

	// --- Assert ---
	require.NoError(t, result.Err)
	tables := testutil.Tables(t, result)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"", "1.000 2.000 3.000", "", "6.000"}, tables[0])
	testutil.AssertLogged(t, result, "Sheet resolved.", "sheet=sum", "pending=0")
}

func TestWorkbook_StuckAndMalformedCellsAreReported(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"workbook.hcl": `
passes = 3
sheet "broken" {
  delimiter = "|"
}
`,
		"data/broken.csv": "[7,7] # far away|[abc]|Span([0,0],[0,1])\n",
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{})

	// --- Assert ---
	require.NoError(t, result.Err)
	tables := testutil.Tables(t, result)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{
		"far away",
		"PENDING: [7, 7] PENDING: [abc] PENDING: Span([0, 0], [0, 1])",
	}, tables[0])
	testutil.AssertLogged(t, result, "Cell diagnostic.", "cell=\"[0, 1]\"", "malformed formula")
	testutil.AssertLogged(t, result, "Cell left pending.", "cell=\"[0, 0]\"")
}

func TestWorkbook_ErrorCellsAndText(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"workbook.hcl":   `sheet "mixed" { delimiter = ";" }`,
		"data/mixed.csv": "label;3;sqrt(-1)\nSum(Span([0,0],[0,2]));[0,0];1/0\n",
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{})

	// --- Assert ---
	require.NoError(t, result.Err)
	tables := testutil.Tables(t, result)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{
		"",
		"label 3.000 sqrt(-1)",
		"",
		"3.000 label +Inf",
	}, tables[0])
	testutil.AssertLogged(t, result, "Cell diagnostic.", "cell=\"[1, 0]\"", "non-numeric")
}
