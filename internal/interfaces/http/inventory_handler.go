package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-entregas/internal/application/dto"
	"github.com/jhoicas/Inventario-entregas/internal/application/inventory"
	"github.com/jhoicas/Inventario-entregas/internal/domain"
	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	stock "github.com/jhoicas/Inventario-entregas/internal/domain/inventory"
	"github.com/jhoicas/Inventario-entregas/pkg/money"
)

// InventoryHandler maneja las peticiones HTTP del libro de stock.
type InventoryHandler struct {
	ledger        *inventory.Ledger
	replenishment *inventory.ReplenishmentUseCase
	report        *inventory.ReportUseCase
	money         *money.Formatter
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	ledger *inventory.Ledger,
	replenishment *inventory.ReplenishmentUseCase,
	report *inventory.ReportUseCase,
	formatter *money.Formatter,
) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, replenishment: replenishment, report: report, money: formatter}
}

// List godoc
// @Summary      Listar o buscar artículos
// @Description  Sin filtros devuelve el catálogo completo en orden de alta.
// @Tags         inventory
// @Produce      json
// @Param        q         query  string  false  "Texto a buscar (sin distinguir mayúsculas)"
// @Param        fields    query  string  false  "Campos: name,category,supplier (por defecto todos)"
// @Param        category  query  string  false  "Clave de categoría"
// @Param        tier      query  string  false  "Nivel de stock: out, low u ok"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/items [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	fields, err := inventory.ParseItemFields(c.Query("fields"))
	if err != nil {
		return writeError(c, err)
	}
	var filter inventory.ItemFilter
	var bad []string
	if raw := c.Query("category"); raw != "" {
		filter.Category = entity.Category(raw)
		if !filter.Category.Valid() {
			bad = append(bad, "category")
		}
	}
	if raw := c.Query("tier"); raw != "" {
		tier, ok := stock.ParseTier(raw)
		if !ok {
			bad = append(bad, "tier")
		}
		filter.Tier = tier
	}
	if len(bad) > 0 {
		return writeError(c, domain.NewValidationError(bad...))
	}
	return c.JSON(toItemList(h.ledger.Browse(c.Query("q"), filter, fields...)))
}

// Create godoc
// @Summary      Crear artículo
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/inventory/items [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, err := h.ledger.CreateItem(c.UserContext(), toItemFields(in))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toItemResponse(item))
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.ledger.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toItemResponse(item))
}

// Update godoc
// @Summary      Actualizar artículo
// @Description  Reemplaza todos los campos editables; conserva id y created_at.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del artículo"
// @Param        body  body  dto.ItemRequest  true  "Datos del artículo"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, err := h.ledger.UpdateItem(c.UserContext(), c.Params("id"), toItemFields(in))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toItemResponse(item))
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         inventory
// @Param        id   path  string  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.ledger.DeleteItem(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Adjust godoc
// @Summary      Ajustar stock de un artículo
// @Description  Una salida mayor al stock disponible se rechaza sin modificar el artículo.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del artículo"
// @Param        body  body  dto.AdjustStockRequest  true  "direction (increase|decrease) y quantity > 0"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	item, err := h.ledger.AdjustStock(c.UserContext(), c.Params("id"), inventory.Direction(in.Direction), in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toItemResponse(item))
}

// BulkAdjust godoc
// @Summary      Ajuste masivo de stock
// @Description  Cada entrada se aplica por separado; el fallo de una no impide las demás.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkAdjustRequest  true  "Entradas {id, delta}"
// @Success      200   {object}  dto.BulkAdjustResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) BulkAdjust(c *fiber.Ctx) error {
	var in dto.BulkAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	entries := make([]inventory.StockDelta, 0, len(in.Entries))
	for _, e := range in.Entries {
		entries = append(entries, inventory.StockDelta{ID: e.ID, Delta: e.Delta})
	}

	results := h.ledger.BulkAdjustStock(c.UserContext(), entries)
	out := dto.BulkAdjustResponse{Results: make([]dto.BulkAdjustEntryResponse, 0, len(results))}
	for _, r := range results {
		entry := dto.BulkAdjustEntryResponse{ID: r.ID}
		if r.Err != nil {
			_, body := errorResponse(r.Err)
			entry.Error = &body
			out.Failed++
		} else {
			item := toItemResponse(*r.Item)
			entry.Item = &item
			out.Applied++
		}
		out.Results = append(out.Results, entry)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Resumen por categoría
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.CategorySummaryResponse
// @Router       /api/inventory/categories [get]
func (h *InventoryHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(toCategorySummaries(h.ledger.AggregateByCategory(), h.money))
}

// Stats godoc
// @Summary      Conteos por nivel de stock y valor total
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/inventory/stats [get]
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(toStatsResponse(h.ledger.Stats(), h.money))
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Artículos en nivel low u out con la cantidad sugerida para llegar a 1.5 × min_stock.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.ReplenishmentListResponse
// @Router       /api/inventory/replenishment-list [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	return c.JSON(toReplenishmentList(h.replenishment.GenerateReplenishmentList()))
}

// DownloadReport godoc
// @Summary      Descargar reporte de valorización (PDF)
// @Tags         inventory
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/report.pdf [get]
func (h *InventoryHandler) DownloadReport(c *fiber.Ctx) error {
	pdf, filename, err := h.report.DownloadValuationReport(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
