package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, opts *RootOptions) {
	t.Helper()
	_, err := execute(t, NewLoginCommand(opts), "--username", "04124828842", "--password", "1234")
	require.NoError(t, err)
}

func TestSeedReportsCatalog(t *testing.T) {
	opts := testOpts(t)

	out, err := execute(t, NewSeedCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "3 projects, 3 posts")
}

func TestSeedJSON(t *testing.T) {
	opts := testOpts(t)
	opts.Format = "json"

	out, err := execute(t, NewSeedCommand(opts))
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestProjectsList(t *testing.T) {
	opts := testOpts(t)

	out, err := execute(t, NewProjectsCommand(opts), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "E-commerce Platform")
	assert.Contains(t, out, "$199.99")
}

func TestProjectsAddRequiresSession(t *testing.T) {
	opts := testOpts(t)

	_, err := execute(t, NewProjectsCommand(opts), "add", "--title", "Sneaky")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "not logged in")
}

func TestProjectsAddAndDelete(t *testing.T) {
	opts := testOpts(t)
	login(t, opts)

	_, err := execute(t, NewProjectsCommand(opts), "add",
		"--title", "API Gateway",
		"--description", "Edge service",
		"--role", "backend", "--role", "api",
		"--tech", "Go", "--tech", "SQLite",
		"--price", "99.99")
	require.NoError(t, err)

	out, err := execute(t, NewProjectsCommand(opts), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "API Gateway")

	_, err = execute(t, NewProjectsCommand(opts), "delete", "4")
	require.NoError(t, err)

	out, err = execute(t, NewProjectsCommand(opts), "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "API Gateway")
}

func TestProjectsDeleteRejectsBadID(t *testing.T) {
	opts := testOpts(t)
	login(t, opts)

	_, err := execute(t, NewProjectsCommand(opts), "delete", "abc")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestPostsAddAndList(t *testing.T) {
	opts := testOpts(t)
	login(t, opts)

	_, err := execute(t, NewPostsCommand(opts), "add",
		"--title", "Snapshots Everywhere",
		"--excerpt", "Persisting SQLite images",
		"--date", "2024-06-01",
		"--read-time", "4 min",
		"--category", "Backend")
	require.NoError(t, err)

	out, err := execute(t, NewPostsCommand(opts), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Snapshots Everywhere")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	opts := testOpts(t)

	_, err := execute(t, NewLoginCommand(opts), "--username", "04124828842", "--password", "wrong")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogoutEndsSession(t *testing.T) {
	opts := testOpts(t)
	login(t, opts)

	_, err := execute(t, NewLogoutCommand(opts))
	require.NoError(t, err)

	_, err = execute(t, NewOrdersCommand(opts), "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestCartFlow(t *testing.T) {
	opts := testOpts(t)

	out, err := execute(t, NewCartCommand(opts), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "cart is empty")

	_, err = execute(t, NewCartCommand(opts), "add", "1")
	require.NoError(t, err)
	_, err = execute(t, NewCartCommand(opts), "add", "1")
	require.NoError(t, err)

	out, err = execute(t, NewCartCommand(opts), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "x2")
	assert.Contains(t, out, "$399.98")

	_, err = execute(t, NewCartCommand(opts), "remove", "1")
	require.NoError(t, err)

	out, err = execute(t, NewCartCommand(opts), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "cart is empty")
}

func TestCartAddUnknownProject(t *testing.T) {
	opts := testOpts(t)

	_, err := execute(t, NewCartCommand(opts), "add", "999")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestCheckoutPlacesPendingOrder(t *testing.T) {
	opts := testOpts(t)

	_, err := execute(t, NewCartCommand(opts), "add", "2")
	require.NoError(t, err)

	out, err := execute(t, NewCartCommand(opts), "checkout",
		"--name", "Ada Lovelace",
		"--email", "ada@example.com",
		"--method", "binance",
		"--reference", "TX12345")
	require.NoError(t, err)
	assert.Contains(t, out, "order placed")

	login(t, opts)
	out, err = execute(t, NewOrdersCommand(opts), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "Ada Lovelace")

	out, err = execute(t, NewCartCommand(opts), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "cart is empty")
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	opts := testOpts(t)

	_, err := execute(t, NewCartCommand(opts), "checkout",
		"--name", "Ada Lovelace", "--email", "ada@example.com")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestOrdersApprove(t *testing.T) {
	opts := testOpts(t)

	_, err := execute(t, NewCartCommand(opts), "add", "1")
	require.NoError(t, err)
	_, err = execute(t, NewCartCommand(opts), "checkout",
		"--name", "Grace Hopper", "--email", "grace@example.com")
	require.NoError(t, err)

	login(t, opts)
	_, err = execute(t, NewOrdersCommand(opts), "approve", "1")
	require.NoError(t, err)

	out, err := execute(t, NewOrdersCommand(opts), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "approved")
	assert.NotContains(t, out, "pending")
}

func TestOrdersListJSON(t *testing.T) {
	opts := testOpts(t)
	opts.Format = "json"

	login(t, opts)
	out, err := execute(t, NewOrdersCommand(opts), "list")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}
