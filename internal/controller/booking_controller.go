package controller

import (
	"rag-assessment-be/internal/dto"
	"rag-assessment-be/internal/pkg/serverutils"
	"rag-assessment-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBookingController interface {
	RegisterRoutes(r fiber.Router)
	Book(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
}

type bookingController struct {
	bookingService service.IBookingService
}

func NewBookingController(bookingService service.IBookingService) IBookingController {
	return &bookingController{
		bookingService: bookingService,
	}
}

func (c *bookingController) RegisterRoutes(r fiber.Router) {
	r.Post("/book-interview", c.Book)
	r.Get("/bookings", c.List)
	r.Delete("/bookings/:id", c.Cancel)
}

func (c *bookingController) Book(ctx *fiber.Ctx) error {
	var req dto.BookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.bookingService.Book(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success book interview", res))
}

func (c *bookingController) List(ctx *fiber.Ctx) error {
	req := dto.ListBookingsRequest{
		Skip:   ctx.QueryInt("skip", 0),
		Limit:  ctx.QueryInt("limit", 10),
		Status: ctx.Query("status", ""),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.bookingService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list bookings", res))
}

func (c *bookingController) Cancel(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid booking id")
	}

	res, err := c.bookingService.Cancel(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cancel booking", res))
}
