package bugreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxlabs/courseware/internal/catalog"
)

func validReport() Report {
	return Report{
		ID:          "0d4f2c66-9a1b-4a4e-8f3c-2b7d6f3f9e10",
		Module:      "vending",
		Symptom:     "Purchase button stays disabled after adding credit.",
		RootCause:   RootCauseAttributeMismatch,
		FailingTest: "TestPurchaseAfterAddingCredit",
		Severity:    SeverityMedium,
		Diagnosis:   "The credit fragment targets #credit-display but the page renders #credit-total.",
		Snippet:     `<div id="credit-display">$0.25</div>`,
	}
}

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c
}

func TestDecodeStrictFields(t *testing.T) {
	_, err := Decode([]byte(`{"id": "x", "surprise": true}`))
	assert.ErrorContains(t, err, "surprise")
}

func TestDecodeRoundTrip(t *testing.T) {
	r, err := Decode([]byte(`{
		"id": "0d4f2c66-9a1b-4a4e-8f3c-2b7d6f3f9e10",
		"module": "vending",
		"symptom": "s",
		"root_cause": "typo",
		"failing_test": "TestX",
		"severity": "low",
		"diagnosis": "d"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "vending", r.Module)
	assert.Equal(t, RootCauseTypo, r.RootCause)
}

func TestValidateAcceptsGoodReport(t *testing.T) {
	assert.NoError(t, validReport().Validate(loadCatalog(t)))
}

func TestValidateRejections(t *testing.T) {
	c := loadCatalog(t)

	tests := []struct {
		name    string
		mutate  func(*Report)
		wantErr string
	}{
		{"bad uuid", func(r *Report) { r.ID = "not-a-uuid" }, "not a uuid"},
		{"unknown module", func(r *Report) { r.Module = "time-machine" }, "unknown module"},
		{"empty symptom", func(r *Report) { r.Symptom = " " }, "no symptom"},
		{"unknown root cause", func(r *Report) { r.RootCause = "gremlins" }, "unknown root cause"},
		{"missing failing test", func(r *Report) { r.FailingTest = "" }, "no failing test"},
		{"unknown severity", func(r *Report) { r.Severity = "catastrophic" }, "unknown severity"},
		{"empty diagnosis", func(r *Report) { r.Diagnosis = "" }, "no diagnosis"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := validReport()
			tc.mutate(&r)
			err := r.Validate(c)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestValidateAllowsEmptySnippet(t *testing.T) {
	r := validReport()
	r.Snippet = ""
	assert.NoError(t, r.Validate(loadCatalog(t)))
}
