package controllers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/qcutapp/dashboard-v2/api"
	"github.com/qcutapp/dashboard-v2/models"
)

type OrdersController struct{}

func NewOrdersController() *OrdersController {
	return &OrdersController{}
}

// applyFilter reads the query params shared by the page and the export.
func (oc *OrdersController) applyFilter(c *fiber.Ctx) {
	s := currentSession(c)
	v := s.Orders

	q := c.Context().QueryArgs()
	switch {
	case q.Has("reset"):
		v.ResetFilter()
	case q.Has("search"):
		v.Search(c.Query("search"))
	case q.Has("days"):
		if days, err := strconv.Atoi(c.Query("days")); err == nil {
			v.QuickRange(days)
		}
	case q.Has("from"), q.Has("to"):
		v.SetRange(c.Query("from"), c.Query("to"))
	}
}

// GET /dashboard/orders
func (oc *OrdersController) Index(c *fiber.Ctx) error {
	s := currentSession(c)
	v := s.Orders

	oc.applyFilter(c)

	q := c.Context().QueryArgs()
	switch {
	case q.Has("view"):
		if !v.View(c.Query("view")) {
			v.CloseView()
		}
	case q.Has("closeview"):
		v.CloseView()
	}

	var flash []string
	if err := v.Refresh(c.Context()); err != nil {
		flash = api.UserLines(err)
	}

	return c.Render("orders", shellData(s, "orders", fiber.Map{
		"Orders":  v.Orders(),
		"Filter":  v.Filter(),
		"Viewing": v.Viewing(),
		"Flash":   flash,
	}))
}

// GET /dashboard/orders/export streams the currently filtered history
// as an xlsx workbook.
func (oc *OrdersController) Export(c *fiber.Ctx) error {
	s := currentSession(c)
	v := s.Orders

	oc.applyFilter(c)

	if err := v.Refresh(c.Context()); err != nil {
		log.Printf("order export: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "could not fetch order history",
		})
	}

	f, err := ordersWorkbook(v.Orders())
	if err != nil {
		log.Printf("order export: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "could not build workbook",
		})
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("order export: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "could not build workbook",
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders.xlsx"`)
	return c.SendStream(buf)
}

// ordersWorkbook renders the order list into a single-sheet workbook.
func ordersWorkbook(orders []models.Order) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Orders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Order #", "Customer", "Items", "Total", "Ordered At", "Completed At"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, o := range orders {
		values := []interface{}{
			o.OrderID,
			o.Customer.Name,
			orderItems(o),
			o.TotalPrice.Float(),
			o.CreatedAt.Format("2006-01-02 15:04"),
			o.UpdatedAt.Format("2006-01-02 15:04"),
		}
		for col, val := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// orderItems flattens an order's lines into one cell, one line per item.
func orderItems(o models.Order) string {
	lines := make([]string, 0, len(o.Drinks))
	for _, d := range o.Drinks {
		line := fmt.Sprintf("%dx %s", d.Quantity, d.Name)
		if len(d.SpecialOptions) > 0 {
			opts := make([]string, 0, len(d.SpecialOptions))
			for _, opt := range d.SpecialOptions {
				opts = append(opts, opt.DrinkName)
			}
			line += " (" + strings.Join(opts, ", ") + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
