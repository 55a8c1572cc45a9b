package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ieadaj/church-orders-api/config"
	"github.com/ieadaj/church-orders-api/models"
	"gorm.io/gorm"
)

// deliveryDateLayout is the date-only input format the order forms submit
const deliveryDateLayout = "2006-01-02"

// OrderRequest represents the request body for creating or editing an order.
// Edits apply every field below, there are no partial updates.
type OrderRequest struct {
	CongregationName string `json:"congregation_name" binding:"required"`
	ResponsibleName  string `json:"responsible_name" binding:"required"`
	ResponsiblePhone string `json:"responsible_phone"`
	ResponsibleEmail string `json:"responsible_email" binding:"omitempty,email"`
	LotNumber        string `json:"lot_number" binding:"required"`
	Model            string `json:"model" binding:"required"`
	Size             string `json:"size" binding:"required"`
	Quantity         *int   `json:"quantity" binding:"omitempty,gt=0"` // omitted defaults to 1
	Color            string `json:"color"`
	Observations     string `json:"observations"`
	DeliveryDate     string `json:"delivery_date"` // YYYY-MM-DD or empty
	Status           string `json:"status"`        // omitted defaults to Pendente
}

// apply copies the request onto an order record, resolving defaults and
// parsing the delivery date. It returns a client-facing validation message
// when the status or delivery date is invalid.
func (r *OrderRequest) apply(order *models.Order) error {
	status := r.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.IsValidStatus(status) {
		return fmt.Errorf("Status inválido: %q (valores aceitos: %s)", r.Status, strings.Join(models.OrderStatuses(), ", "))
	}

	var deliveryDate *time.Time
	if r.DeliveryDate != "" {
		parsed, err := time.Parse(deliveryDateLayout, r.DeliveryDate)
		if err != nil {
			return fmt.Errorf("Data de entrega inválida: %q (formato esperado: AAAA-MM-DD)", r.DeliveryDate)
		}
		deliveryDate = &parsed
	}

	quantity := 1
	if r.Quantity != nil {
		quantity = *r.Quantity
	}

	order.CongregationName = r.CongregationName
	order.ResponsibleName = r.ResponsibleName
	order.ResponsiblePhone = r.ResponsiblePhone
	order.ResponsibleEmail = r.ResponsibleEmail
	order.LotNumber = r.LotNumber
	order.Model = r.Model
	order.Size = r.Size
	order.Quantity = quantity
	order.Color = r.Color
	order.Observations = r.Observations
	order.DeliveryDate = deliveryDate
	order.Status = status

	return nil
}

// CreateOrder handles POST /api/v1/orders - records a new t-shirt order
func CreateOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Dados do pedido inválidos",
				"details": err.Error(),
			},
		})
		return
	}

	var order models.Order
	if err := req.apply(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": err.Error(),
			},
		})
		return
	}
	order.OrderDate = time.Now()

	db := config.GetDB()
	if err := db.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Falha ao criar o pedido",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered by
// status (exact), size (exact), model and lot (case-insensitive substring).
// Results come most recent first.
func GetOrders(c *gin.Context) {
	db := config.GetDB()
	query := db.Model(&models.Order{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if size := c.Query("size"); size != "" {
		query = query.Where("size = ?", size)
	}
	if model := c.Query("model"); model != "" {
		query = query.Where("LOWER(model) LIKE ?", "%"+strings.ToLower(model)+"%")
	}
	if lot := c.Query("lot"); lot != "" {
		query = query.Where("LOWER(lot_number) LIKE ?", "%"+strings.ToLower(lot)+"%")
	}

	var orders []models.Order
	// id breaks created_at ties so the ordering stays deterministic
	if err := query.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Falha ao listar os pedidos",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
		"count":   len(orders),
	})
}

// GetOrder handles GET /api/v1/orders/:id - fetches a single order
func GetOrder(c *gin.Context) {
	order, ok := findOrder(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateOrder handles PUT /api/v1/orders/:id - overwrites every mutable field
// of an existing order with the submitted form
func UpdateOrder(c *gin.Context) {
	order, ok := findOrder(c)
	if !ok {
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Dados do pedido inválidos",
				"details": err.Error(),
			},
		})
		return
	}

	if err := req.apply(order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()
	if err := db.Save(order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Falha ao atualizar o pedido",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:id - permanently removes an order
func DeleteOrder(c *gin.Context) {
	order, ok := findOrder(c)
	if !ok {
		return
	}

	db := config.GetDB()
	if err := db.Delete(order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Falha ao excluir o pedido",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Pedido excluído com sucesso",
	})
}

// GetOrderFilters handles GET /api/v1/orders/filters - returns the distinct
// values present across orders, used to populate the listing filters
func GetOrderFilters(c *gin.Context) {
	db := config.GetDB()

	var sizes, tshirtModels, lots []string
	if err := db.Model(&models.Order{}).Distinct().Order("size").Pluck("size", &sizes).Error; err != nil {
		filterQueryFailed(c)
		return
	}
	if err := db.Model(&models.Order{}).Distinct().Order("model").Pluck("model", &tshirtModels).Error; err != nil {
		filterQueryFailed(c)
		return
	}
	if err := db.Model(&models.Order{}).Distinct().Order("lot_number").Pluck("lot_number", &lots).Error; err != nil {
		filterQueryFailed(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"statuses": models.OrderStatuses(),
			"sizes":    sizes,
			"models":   tshirtModels,
			"lots":     lots,
		},
	})
}

// filterQueryFailed writes the standard error envelope for filter lookups
func filterQueryFailed(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": "Falha ao listar os valores de filtro",
		},
	})
}

// findOrder resolves the :id path parameter to an order record. It writes the
// 400/404 envelope and returns ok=false when the id is malformed or unknown.
func findOrder(c *gin.Context) (*models.Order, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "ID de pedido inválido",
			},
		})
		return nil, false
	}

	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Pedido não encontrado",
				},
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Falha ao buscar o pedido",
			},
		})
		return nil, false
	}

	return &order, true
}
