package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ansarullah_backend/internals/features/tajneed/members/service"
)

func filterFor(t *testing.T, query string) service.MemberFilter {
	t.Helper()
	app := fiber.New()
	var got service.MemberFilter
	app.Get("/", func(c *fiber.Ctx) error {
		got = MemberFilterFromQuery(c)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/?"+query, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestMemberFilterFromQuery(t *testing.T) {
	f := filterFor(t, "region=Coast&majlis=Mombasa&category=General&status=active&q=omar")
	assert.Equal(t, "Coast", f.Region)
	assert.Equal(t, "Mombasa", f.Majlis)
	assert.Equal(t, "General", f.Category)
	assert.Equal(t, "active", f.Status)
	assert.Equal(t, "omar", f.Search)
}

func TestMemberFilterFromQuerySearchAlias(t *testing.T) {
	assert.Equal(t, "omar", filterFor(t, "search=omar").Search,
		"search works as an alias for q on the export endpoints")
	assert.Equal(t, "ali", filterFor(t, "q=ali&search=omar").Search, "q wins when both are set")
}
