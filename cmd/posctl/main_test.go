package main

import (
	"bytes"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PeteShepley/simple-point-of-sale/configs"
	"github.com/PeteShepley/simple-point-of-sale/internal/testdb"
	"github.com/PeteShepley/simple-point-of-sale/routes"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &configs.Config{Environment: configs.EnvDevelopment, CORSOrigins: []string{"*"}}
	srv := httptest.NewServer(routes.NewRouter(cfg, testdb.New(t), zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv.URL
}

// run executes posctl with stdin and returns what it printed.
func run(t *testing.T, base, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--api-base", base}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestPosctl_MenuAndItems(t *testing.T) {
	base := newServer(t)

	out, err := run(t, base, "", "menus", "create", "--name", "Lunch", "--description", "weekdays")
	require.NoError(t, err)
	assert.Contains(t, out, "Lunch")
	assert.Contains(t, out, "No items found.")

	out, err = run(t, base, "", "items", "add", "1", "--name", "Burger", "--price", "9.99")
	require.NoError(t, err)
	assert.Contains(t, out, "$9.99")

	out, err = run(t, base, "", "items", "edit", "1", "1", "--price", "$10.50")
	require.NoError(t, err)
	assert.Contains(t, out, "$10.50")
	assert.Contains(t, out, "Burger")

	out, err = run(t, base, "", "menus", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "weekdays")
	assert.Contains(t, out, "$10.50")

	out, err = run(t, base, "", "menus", "edit", "1", "--name", "Brunch")
	require.NoError(t, err)
	assert.Contains(t, out, "Edit Brunch")

	_, err = run(t, base, "", "menus", "edit", "1", "--description", "")
	require.NoError(t, err)
	out, err = run(t, base, "", "menus", "show", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "weekdays")

	out, err = run(t, base, "", "menus", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Brunch")

	out, err = run(t, base, "", "items", "delete", "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "No items found.")
}

func TestPosctl_DeleteConfirms(t *testing.T) {
	base := newServer(t)
	_, err := run(t, base, "", "menus", "create", "--name", "Lunch")
	require.NoError(t, err)

	out, err := run(t, base, "n\n", "menus", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `Delete menu "Lunch"? This will also delete all its items.`)
	assert.Contains(t, out, "Cancelled.")

	out, err = run(t, base, "y\n", "menus", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted Lunch.")
	assert.Contains(t, out, "No menus found.")

	_, err = run(t, base, "", "menus", "delete", "1", "--yes")
	assert.EqualError(t, err, "menu not found")
}

func TestPosctl_Errors(t *testing.T) {
	base := newServer(t)

	_, err := run(t, base, "", "menus", "show", "7")
	assert.EqualError(t, err, "menu not found")

	_, err = run(t, base, "", "menus", "show", "abc")
	assert.Error(t, err)

	_, err = run(t, base, "", "menus", "create")
	assert.EqualError(t, err, "name is required")

	_, err = run(t, base, "", "menus", "create", "--name", "Lunch")
	require.NoError(t, err)
	_, err = run(t, base, "", "items", "add", "1", "--name", "Burger", "--price", "abc")
	assert.ErrorContains(t, err, "invalid amount")

	_, err = run(t, base, "", "items", "add", "1", "--name", "Burger", "--price", "5", "--recipe", "99")
	assert.EqualError(t, err, "recipe not found")
}
