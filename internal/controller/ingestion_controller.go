package controller

import (
	"io"

	"rag-assessment-be/internal/dto"
	"rag-assessment-be/internal/pkg/serverutils"
	"rag-assessment-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IIngestionController interface {
	RegisterRoutes(r fiber.Router)
	Ingest(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type ingestionController struct {
	ingestionService service.IIngestionService
}

func NewIngestionController(ingestionService service.IIngestionService) IIngestionController {
	return &ingestionController{
		ingestionService: ingestionService,
	}
}

func (c *ingestionController) RegisterRoutes(r fiber.Router) {
	r.Post("/ingest", c.Ingest)
	r.Get("/documents", c.List)
	r.Delete("/documents/:id", c.Delete)
}

func (c *ingestionController) Ingest(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewBadRequest("No file provided")
	}
	if fileHeader.Filename == "" {
		return serverutils.NewBadRequest("No filename provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return serverutils.NewBadRequest("Failed to open uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return serverutils.NewBadRequest("Failed to read uploaded file")
	}

	req := dto.IngestDocumentRequest{
		Filename:         fileHeader.Filename,
		Content:          content,
		ChunkingStrategy: ctx.FormValue("chunking_strategy", "fixed"),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestionService.Ingest(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success ingest document", res))
}

func (c *ingestionController) List(ctx *fiber.Ctx) error {
	req := dto.ListDocumentsRequest{
		Skip:  ctx.QueryInt("skip", 0),
		Limit: ctx.QueryInt("limit", 10),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestionService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list documents", res))
}

func (c *ingestionController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid document id")
	}

	res, err := c.ingestionService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete document", res))
}
