package controller

import (
	"metro-chatbot-be/internal/dto"
	"metro-chatbot-be/internal/pkg/serverutils"
	"metro-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDirectoryController interface {
	RegisterRoutes(r fiber.Router)
}

type directoryController struct {
	directoryService service.IDirectoryService
}

func NewDirectoryController(directoryService service.IDirectoryService) IDirectoryController {
	return &directoryController{
		directoryService: directoryService,
	}
}

func (c *directoryController) RegisterRoutes(r fiber.Router) {
	products := r.Group("/products")
	products.Get("", c.SearchProducts)
	products.Get(":id", c.GetProduct)
	products.Post("", serverutils.JwtMiddleware, c.CreateProduct)
	products.Put(":id", serverutils.JwtMiddleware, c.UpdateProduct)
	products.Delete(":id", serverutils.JwtMiddleware, c.DeleteProduct)

	technicians := r.Group("/technicians")
	technicians.Get("", c.ListTechnicians)
	technicians.Get(":id", c.GetTechnician)
	technicians.Post("", serverutils.JwtMiddleware, c.CreateTechnician)
	technicians.Put(":id", serverutils.JwtMiddleware, c.UpdateTechnician)
	technicians.Delete(":id", serverutils.JwtMiddleware, c.DeleteTechnician)

	salesmen := r.Group("/salesmen")
	salesmen.Get("", c.ListSalesmen)
	salesmen.Get(":id", c.GetSalesman)
	salesmen.Post("", serverutils.JwtMiddleware, c.CreateSalesman)
	salesmen.Put(":id", serverutils.JwtMiddleware, c.UpdateSalesman)
	salesmen.Delete(":id", serverutils.JwtMiddleware, c.DeleteSalesman)

	employees := r.Group("/employees")
	employees.Get("", c.ListEmployees)
	employees.Get(":id", c.GetEmployee)
	employees.Post("", serverutils.JwtMiddleware, c.CreateEmployee)
	employees.Put(":id", serverutils.JwtMiddleware, c.UpdateEmployee)
	employees.Delete(":id", serverutils.JwtMiddleware, c.DeleteEmployee)
}

func (c *directoryController) SearchProducts(ctx *fiber.Ctx) error {
	req := dto.SearchDirectoryRequest{
		Query:    ctx.Query("query"),
		Category: ctx.Query("category"),
		Limit:    ctx.QueryInt("limit", 10),
	}

	res, err := c.directoryService.SearchProducts(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search products", res))
}

func (c *directoryController) CreateProduct(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.directoryService.CreateProduct(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create product", res))
}

func (c *directoryController) GetProduct(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid product ID"))
	}

	res, err := c.directoryService.GetProduct(ctx.Context(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get product", res))
}

func (c *directoryController) UpdateProduct(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid product ID"))
	}

	var req dto.UpdateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.directoryService.UpdateProduct(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update product", res))
}

func (c *directoryController) DeleteProduct(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid product ID"))
	}

	if err := c.directoryService.DeleteProduct(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete product", fiber.Map{"id": id}))
}

func (c *directoryController) ListTechnicians(ctx *fiber.Ctx) error {
	res, err := c.directoryService.ListTechnicians(ctx.Context(), ctx.Query("specialty"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list technicians", res))
}

func (c *directoryController) CreateTechnician(ctx *fiber.Ctx) error {
	var req dto.CreateTechnicianRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.directoryService.CreateTechnician(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create technician", res))
}

func (c *directoryController) GetTechnician(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid technician ID"))
	}

	res, err := c.directoryService.GetTechnician(ctx.Context(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get technician", res))
}

func (c *directoryController) UpdateTechnician(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid technician ID"))
	}

	var req dto.UpdateTechnicianRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.directoryService.UpdateTechnician(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update technician", res))
}

func (c *directoryController) DeleteTechnician(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid technician ID"))
	}

	if err := c.directoryService.DeleteTechnician(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete technician", fiber.Map{"id": id}))
}

func (c *directoryController) ListSalesmen(ctx *fiber.Ctx) error {
	res, err := c.directoryService.ListSalesmen(ctx.Context(), ctx.Query("specialty"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list salesmen", res))
}

func (c *directoryController) CreateSalesman(ctx *fiber.Ctx) error {
	var req dto.CreateSalesmanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.directoryService.CreateSalesman(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create salesman", res))
}

func (c *directoryController) GetSalesman(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid salesman ID"))
	}

	res, err := c.directoryService.GetSalesman(ctx.Context(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get salesman", res))
}

func (c *directoryController) UpdateSalesman(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid salesman ID"))
	}

	var req dto.UpdateSalesmanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.directoryService.UpdateSalesman(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update salesman", res))
}

func (c *directoryController) DeleteSalesman(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid salesman ID"))
	}

	if err := c.directoryService.DeleteSalesman(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete salesman", fiber.Map{"id": id}))
}

func (c *directoryController) ListEmployees(ctx *fiber.Ctx) error {
	res, err := c.directoryService.ListEmployees(ctx.Context(), ctx.Query("department"), ctx.Query("position"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list employees", res))
}

func (c *directoryController) CreateEmployee(ctx *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.directoryService.CreateEmployee(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create employee", res))
}

func (c *directoryController) GetEmployee(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid employee ID"))
	}

	res, err := c.directoryService.GetEmployee(ctx.Context(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get employee", res))
}

func (c *directoryController) UpdateEmployee(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid employee ID"))
	}

	var req dto.UpdateEmployeeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.directoryService.UpdateEmployee(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update employee", res))
}

func (c *directoryController) DeleteEmployee(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid employee ID"))
	}

	if err := c.directoryService.DeleteEmployee(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete employee", fiber.Map{"id": id}))
}
