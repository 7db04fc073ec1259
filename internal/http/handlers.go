package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"bptracker/internal/domain"
	"bptracker/internal/service"
)

func Register(app *fiber.App, svc *service.Readings) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "BPTracker API is running"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	g := app.Group("/readings")

	g.Get("/", func(c *fiber.Ctx) error {
		skip := c.QueryInt("skip", 0)
		limit := c.QueryInt("limit", 100)
		items, err := svc.List(skip, limit)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"readings": items})
	})

	g.Post("/", func(c *fiber.Ctx) error {
		var in domain.NewReading
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "invalid request body"})
		}
		rd, err := svc.Create(in)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rd)
	})

	g.Delete("/", func(c *fiber.Ctx) error {
		if _, err := svc.DeleteAll(); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	g.Get("/:id", func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return notFound(c)
		}
		rd, err := svc.Get(id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(rd)
	})

	g.Delete("/:id", func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return notFound(c)
		}
		if err := svc.Delete(id); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

// fail maps service errors onto the response taxonomy: 422 with field
// detail for validation, 404 for unknown ids, opaque 500 for anything
// else.
func fail(c *fiber.Ctx, err error) error {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": verrs})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c)
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "internal server error"})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Reading not found"})
}
