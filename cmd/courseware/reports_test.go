package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const goodReport = `{
	"id": "0d4f2c66-9a1b-4a4e-8f3c-2b7d6f3f9e10",
	"module": "vending",
	"symptom": "Purchase button stays disabled after adding credit.",
	"root_cause": "attribute-mismatch",
	"failing_test": "TestPurchaseAfterAddingCredit",
	"severity": "medium",
	"diagnosis": "The credit fragment targets the wrong element id."
}`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestModulesListsCatalog(t *testing.T) {
	out, err := runCommand(t, "modules")

	require.NoError(t, err)
	assert.Contains(t, out, "kitchen")
	assert.Contains(t, out, "garden")
}

func TestReportsValidate(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "good.json", goodReport)

	out, err := runCommand(t, "reports", "validate", path)

	require.NoError(t, err)
	assert.Contains(t, out, "1 report(s) valid")
}

func TestReportsValidateRejectsUnknownModule(t *testing.T) {
	dir := t.TempDir()
	bad := writeFixture(t, dir, "bad.json", `{
		"id": "0d4f2c66-9a1b-4a4e-8f3c-2b7d6f3f9e10",
		"module": "time-machine",
		"symptom": "s",
		"root_cause": "typo",
		"failing_test": "TestX",
		"severity": "low",
		"diagnosis": "d"
	}`)

	_, err := runCommand(t, "reports", "validate", bad)

	assert.ErrorContains(t, err, "unknown module")
}

func TestReportsImportAndList(t *testing.T) {
	dir := t.TempDir()
	fixture := writeFixture(t, dir, "good.json", goodReport)
	db := filepath.Join(dir, "reports.db")

	out, err := runCommand(t, "reports", "import", "--db", db, fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 report(s)")

	out, err = runCommand(t, "reports", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "vending")
	assert.Contains(t, out, "attribute-mismatch")
	assert.Contains(t, out, "1 report(s)")
}
