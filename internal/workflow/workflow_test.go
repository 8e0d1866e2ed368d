package workflow_test

import (
	"errors"
	"testing"

	"coaltools/internal/workflow"

	"github.com/stretchr/testify/assert"
)

// allowedPayroll holds every legal payroll-run edge; any other from/to pair
// must be rejected.
var allowedPayroll = map[workflow.Status][]workflow.Status{
	workflow.StatusDraft:    {workflow.StatusReviewed, workflow.StatusArchived},
	workflow.StatusReviewed: {workflow.StatusApproved, workflow.StatusDraft, workflow.StatusArchived},
	workflow.StatusApproved: {workflow.StatusPaid, workflow.StatusArchived},
	workflow.StatusPaid:     {workflow.StatusArchived},
}

var allowedExpense = map[workflow.Status][]workflow.Status{
	workflow.StatusDraft:     {workflow.StatusSubmitted, workflow.StatusArchived},
	workflow.StatusSubmitted: {workflow.StatusReviewed, workflow.StatusDraft, workflow.StatusRejected},
	workflow.StatusReviewed:  {workflow.StatusApproved, workflow.StatusRejected, workflow.StatusArchived},
	workflow.StatusApproved:  {workflow.StatusArchived},
}

func contains(list []workflow.Status, s workflow.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func assertTableExhaustive(t *testing.T, table workflow.Table, allowed map[workflow.Status][]workflow.Status) {
	t.Helper()

	// Every from/to pair over the full status set, including self-transitions.
	for _, from := range workflow.All() {
		for _, to := range workflow.All() {
			want := contains(allowed[from], to)

			assert.Equal(t, want, table.Can(from, to),
				"transition %s -> %s", from, to)

			err := table.Step(from, to)
			if want {
				assert.NoError(t, err, "transition %s -> %s", from, to)
				continue
			}

			var invalid *workflow.InvalidTransitionError
			assert.Error(t, err, "transition %s -> %s", from, to)
			assert.True(t, errors.As(err, &invalid))
			assert.Equal(t, from, invalid.From)
			assert.Equal(t, to, invalid.To)
		}
	}
}

func TestPayrollRunTableExhaustive(t *testing.T) {
	assertTableExhaustive(t, workflow.PayrollRuns, allowedPayroll)
}

func TestExpenseTableExhaustive(t *testing.T) {
	assertTableExhaustive(t, workflow.Expenses, allowedExpense)
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, workflow.PayrollRuns.IsTerminal(workflow.StatusArchived))
	assert.False(t, workflow.PayrollRuns.IsTerminal(workflow.StatusDraft))

	assert.True(t, workflow.Expenses.IsTerminal(workflow.StatusArchived))
	assert.True(t, workflow.Expenses.IsTerminal(workflow.StatusRejected))
}

func TestInvalidTransitionErrorMessage(t *testing.T) {
	err := workflow.PayrollRuns.Step(workflow.StatusDraft, workflow.StatusApproved)
	assert.EqualError(t, err, "invalid status transition from DRAFT to APPROVED")
}
