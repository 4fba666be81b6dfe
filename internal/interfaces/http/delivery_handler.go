package http

import (
	"github.com/gofiber/fiber/v2"

	appdelivery "github.com/jhoicas/Inventario-entregas/internal/application/delivery"
	"github.com/jhoicas/Inventario-entregas/internal/application/dto"
	"github.com/jhoicas/Inventario-entregas/internal/application/ports"
	"github.com/jhoicas/Inventario-entregas/internal/domain"
	"github.com/jhoicas/Inventario-entregas/internal/domain/delivery"
	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
)

// DeliveryHandler maneja las peticiones HTTP del rastreador de entregas.
type DeliveryHandler struct {
	tracker *appdelivery.Tracker
	feed    ports.SalesFeed
}

// NewDeliveryHandler construye el handler. feed puede ser nil: entonces /sync exige ventas en el body.
func NewDeliveryHandler(tracker *appdelivery.Tracker, feed ports.SalesFeed) *DeliveryHandler {
	return &DeliveryHandler{tracker: tracker, feed: feed}
}

// List godoc
// @Summary      Listar o buscar entregas
// @Tags         deliveries
// @Produce      json
// @Param        q       query  string  false  "Texto a buscar en cliente y pedido"
// @Param        status  query  string  false  "pending, shipped o delivered"
// @Success      200  {object}  dto.DeliveryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/deliveries [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	var status entity.DeliveryStatus
	if raw := c.Query("status"); raw != "" {
		s, ok := delivery.ParseStatus(raw)
		if !ok {
			return writeError(c, domain.NewValidationError("status"))
		}
		status = s
	}

	var list []entity.Delivery
	if q := c.Query("q"); q != "" {
		for _, d := range h.tracker.Search(q) {
			if status == "" || d.Status == status {
				list = append(list, d)
			}
		}
	} else {
		list = h.tracker.List(status)
	}

	out := dto.DeliveryListResponse{
		Total:      len(list),
		Counts:     make(map[string]int, 3),
		Deliveries: make([]dto.DeliveryResponse, 0, len(list)),
	}
	for s, n := range h.tracker.Counts() {
		out.Counts[string(s)] = n
	}
	for _, d := range list {
		out.Deliveries = append(out.Deliveries, toDeliveryResponse(d))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrega por ID
// @Tags         deliveries
// @Produce      json
// @Param        id   path  string  true  "ID de la entrega"
// @Success      200  {object}  dto.DeliveryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id} [get]
func (h *DeliveryHandler) GetByID(c *fiber.Ctx) error {
	d, err := h.tracker.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toDeliveryResponse(d))
}

// Sync godoc
// @Summary      Sincronizar entregas desde ventas
// @Description  Crea una entrega pending por cada venta nueva (por sale id). Sin "sales" en el body se lee el feed de ventas.
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SyncDeliveriesRequest  false  "Ventas a sincronizar"
// @Success      200   {object}  dto.SyncDeliveriesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/deliveries/sync [post]
func (h *DeliveryHandler) Sync(c *fiber.Ctx) error {
	var in dto.SyncDeliveriesRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}

	var (
		created int
		err     error
	)
	switch {
	case in.Sales != nil:
		created, err = h.tracker.SyncFromSales(c.UserContext(), toSales(in.Sales))
	case h.feed != nil:
		created, err = h.tracker.SyncFromFeed(c.UserContext(), h.feed)
	default:
		err = domain.NewValidationError("sales")
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SyncDeliveriesResponse{Created: created})
}

// Advance godoc
// @Summary      Avanzar estado de una entrega
// @Description  pending → shipped (requiere courier si no hay uno registrado) → delivered.
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la entrega"
// @Param        body  body  dto.AdvanceDeliveryRequest  true  "status destino y courier"
// @Success      200   {object}  dto.DeliveryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/advance [post]
func (h *DeliveryHandler) Advance(c *fiber.Ctx) error {
	var in dto.AdvanceDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	d, err := h.tracker.Advance(c.UserContext(), c.Params("id"), entity.DeliveryStatus(in.Status), in.Courier)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toDeliveryResponse(d))
}
