package handlers

import "github.com/gofiber/fiber/v2"

// pageParams reads the page/limit query parameters with the API defaults.
func pageParams(c *fiber.Ctx) (page, limit int) {
	return c.QueryInt("page", 1), c.QueryInt("limit", 10)
}

// paginated wraps a result page in the {data, meta} envelope.
func paginated(items interface{}, total int64, page, limit int) fiber.Map {
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	lastPage := int((total + int64(limit) - 1) / int64(limit))
	if lastPage < 1 {
		lastPage = 1
	}
	return fiber.Map{
		"data": items,
		"meta": fiber.Map{
			"total":       total,
			"perPage":     limit,
			"currentPage": page,
			"lastPage":    lastPage,
		},
	}
}
