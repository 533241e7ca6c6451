package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ansarullah_backend/internals/constants"
)

func sectionApp(role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("role", role)
		}
		return c.Next()
	})

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }

	// Mounted per route, after the :section pattern, the way the department
	// report routes mount it.
	reports := app.Group("/department-reports")
	reports.Get("/", RequireSectionAccess(), ok)
	reports.Put("/:section", RequireSectionAccess(), ok)
	return app
}

func request(t *testing.T, app *fiber.App, method, target string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRequireSectionAccessBlocksForeignSection(t *testing.T) {
	app := sectionApp(constants.RoleTalim)

	assert.Equal(t, fiber.StatusForbidden,
		request(t, app, "PUT", "/department-reports/tabligh"),
		"a talim sub-user must not reach the tabligh section")
	assert.Equal(t, fiber.StatusOK,
		request(t, app, "PUT", "/department-reports/talim"))
}

func TestRequireSectionAccessQueryParam(t *testing.T) {
	app := sectionApp(constants.RoleSihat)

	assert.Equal(t, fiber.StatusForbidden,
		request(t, app, "GET", "/department-reports/?section=itaat"))
	assert.Equal(t, fiber.StatusOK,
		request(t, app, "GET", "/department-reports/?section=sihat"))
	assert.Equal(t, fiber.StatusOK,
		request(t, app, "GET", "/department-reports/"),
		"no section filter passes through; the controller narrows the list")
}

func TestRequireSectionAccessAdminSeesAll(t *testing.T) {
	app := sectionApp(constants.RoleAdmin)

	for _, section := range constants.AllSections {
		assert.Equal(t, fiber.StatusOK,
			request(t, app, "PUT", "/department-reports/"+section), section)
	}
}

func TestRequireRoles(t *testing.T) {
	newApp := func(role string) *fiber.App {
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("role", role)
			return c.Next()
		})
		app.Get("/x", RequireRoles(constants.RoleTajneed), func(c *fiber.Ctx) error {
			return c.SendString("ok")
		})
		return app
	}

	assert.Equal(t, fiber.StatusOK, request(t, newApp(constants.RoleTajneed), "GET", "/x"))
	assert.Equal(t, fiber.StatusOK, request(t, newApp(constants.RoleAdmin), "GET", "/x"), "admin passes every gate")
	assert.Equal(t, fiber.StatusForbidden, request(t, newApp(constants.RoleMaal), "GET", "/x"))
}
