package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, query string, opt Options) Params {
	t.Helper()
	app := fiber.New()
	var got Params
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "created_at", "desc", opt)
		return c.SendString("ok")
	})
	req := httptest.NewRequest("GET", "/?"+query, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParseFiberDefaults(t *testing.T) {
	p := parseQuery(t, "", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestParseFiberCapsPerPage(t *testing.T) {
	p := parseQuery(t, "page=3&per_page=9999", DefaultOpts)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 200, p.PerPage)
	assert.Equal(t, 400, p.Offset())
}

func TestParseFiberAll(t *testing.T) {
	p := parseQuery(t, "page=5&per_page=all", ExportOpts)
	assert.True(t, p.All)
	assert.Equal(t, 1, p.Page, "all resets paging")
	assert.Equal(t, 10_000, p.PerPage)

	p = parseQuery(t, "per_page=all", DefaultOpts)
	assert.False(t, p.All, "all is rejected unless the preset allows it")
	assert.Equal(t, 25, p.PerPage)
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(51, Params{Page: 2, PerPage: 25})
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 3, *meta.NextPage)

	meta = BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
