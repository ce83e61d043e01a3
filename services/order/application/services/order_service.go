package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/orderdesk/pkg/logger"
	"github.com/ghuser/orderdesk/pkg/telemetry"
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	"github.com/ghuser/orderdesk/services/order/domain/models"
	"github.com/ghuser/orderdesk/services/order/domain/repositories"
	domainsvcs "github.com/ghuser/orderdesk/services/order/domain/services"
)

const instrumentationName = "github.com/ghuser/orderdesk/services/order"

// ProductOption is one entry of the order form's product picker.
type ProductOption struct {
	ID    int64
	Label string
	Price decimal.Decimal
}

// FormData is everything a client needs to render the order entry form.
type FormData struct {
	Products  []ProductOption
	Customers []models.Customer
}

// PriceQuote is the current catalog price of a product. Unknown products
// quote zero with an empty name.
type PriceQuote struct {
	Price decimal.Decimal
	Name  string
}

// OrderService orchestrates order entry, maintenance and reporting.
type OrderService struct {
	store     repositories.OrderRepository
	catalog   repositories.CatalogReader
	directory repositories.DirectoryReader
	builder   *domainsvcs.OrderBuilder
	loc       *time.Location
	log       logger.Logger

	tracer  trace.Tracer
	created metric.Int64Counter
	revenue metric.Float64Counter
}

// NewOrderService wires an OrderService. loc is the zone used to bucket the
// monthly report; nil means UTC.
func NewOrderService(
	store repositories.OrderRepository,
	catalog repositories.CatalogReader,
	directory repositories.DirectoryReader,
	loc *time.Location,
	log logger.Logger,
) *OrderService {
	if loc == nil {
		loc = time.UTC
	}

	meter := telemetry.Meter(instrumentationName)
	created, err := meter.Int64Counter("orders_created_total",
		metric.WithDescription("Orders successfully created"))
	if err != nil {
		log.Warn("order metric unavailable", "metric", "orders_created_total", "error", err)
	}
	revenue, err := meter.Float64Counter("orders_revenue_total",
		metric.WithDescription("Sum of created order totals"))
	if err != nil {
		log.Warn("order metric unavailable", "metric", "orders_revenue_total", "error", err)
	}

	return &OrderService{
		store:     store,
		catalog:   catalog,
		directory: directory,
		builder:   domainsvcs.NewOrderBuilder(catalog, directory, nil),
		loc:       loc,
		log:       log,
		tracer:    telemetry.Tracer(instrumentationName),
		created:   created,
		revenue:   revenue,
	}
}

// Create builds the order from req and stores it with all its lines.
func (s *OrderService) Create(ctx context.Context, req domainsvcs.BuildRequest) (order *models.Order, err error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Create",
		trace.WithAttributes(attribute.Int("order.requested_lines", len(req.Lines))))
	defer func() { telemetry.EndSpan(span, err) }()

	order, err = s.builder.Build(ctx, req)
	if err != nil {
		s.log.WarnContext(ctx, "order rejected", "error", err)
		return nil, fmt.Errorf("build order: %w", err)
	}

	if _, err = s.store.Create(ctx, order); err != nil {
		s.log.ErrorContext(ctx, "order not saved", "error", err, "line_count", len(order.Lines))
		return nil, fmt.Errorf("create order: %w", err)
	}

	span.SetAttributes(attribute.Int64("order.id", order.ID))
	total, _ := order.TotalAmount.Float64()
	if s.created != nil {
		s.created.Add(ctx, 1)
	}
	if s.revenue != nil {
		s.revenue.Add(ctx, total)
	}

	s.log.InfoContext(ctx, "order created",
		"order_id", order.ID,
		"line_count", len(order.Lines),
		"total_amount", order.TotalAmount.StringFixed(2),
	)
	return order, nil
}

// Get returns one order with its lines. Returns ErrOrderNotFound if absent.
func (s *OrderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// List returns every order, newest first. Orders placed at the same instant
// are ordered by descending ID.
func (s *OrderService) List(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].OrderDate.Equal(orders[j].OrderDate) {
			return orders[i].OrderDate.After(orders[j].OrderDate)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}

// Replace rebuilds order id from req. The ID and the original order date are
// kept; customer name, notes, lines and prices are taken afresh.
func (s *OrderService) Replace(ctx context.Context, id int64, req domainsvcs.BuildRequest) (order *models.Order, err error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Replace",
		trace.WithAttributes(attribute.Int64("order.id", id)))
	defer func() { telemetry.EndSpan(span, err) }()

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	order, err = s.builder.Build(ctx, req)
	if err != nil {
		s.log.WarnContext(ctx, "order update rejected", "order_id", id, "error", err)
		return nil, fmt.Errorf("build order: %w", err)
	}
	order.ID = existing.ID
	order.OrderDate = existing.OrderDate

	if err = s.store.Replace(ctx, order); err != nil {
		s.log.ErrorContext(ctx, "order not updated", "order_id", id, "error", err)
		return nil, fmt.Errorf("replace order: %w", err)
	}

	s.log.InfoContext(ctx, "order updated",
		"order_id", order.ID,
		"line_count", len(order.Lines),
		"total_amount", order.TotalAmount.StringFixed(2),
	)
	return order, nil
}

// Delete removes an order and all its lines.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	s.log.InfoContext(ctx, "order deleted", "order_id", id)
	return nil
}

// Monthly groups every order by calendar month in the report location.
func (s *OrderService) Monthly(ctx context.Context) (groups []domainsvcs.MonthlyGroup, err error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Monthly")
	defer func() { telemetry.EndSpan(span, err) }()

	orders, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	groups = domainsvcs.GroupByMonth(orders, s.loc)
	span.SetAttributes(attribute.Int("report.months", len(groups)))
	return groups, nil
}

// FormData lists the products and customers an order can be entered for.
// Returns ErrNoProducts when the catalog is empty.
func (s *OrderService) FormData(ctx context.Context) (*FormData, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if len(products) == 0 {
		return nil, orderdomain.ErrNoProducts
	}

	customers, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	options := make([]ProductOption, len(products))
	for i, p := range products {
		options[i] = ProductOption{
			ID:    p.ID,
			Label: fmt.Sprintf("%s - $%s", p.Name, p.Price.StringFixed(2)),
			Price: p.Price,
		}
	}
	return &FormData{Products: options, Customers: customers}, nil
}

// ProductPrice quotes the current price of a product.
func (s *OrderService) ProductPrice(ctx context.Context, id int64) (PriceQuote, error) {
	p, err := s.catalog.FindProduct(ctx, id)
	if err != nil {
		if errors.Is(err, orderdomain.ErrProductNotFound) {
			return PriceQuote{Price: decimal.Zero}, nil
		}
		return PriceQuote{}, fmt.Errorf("find product: %w", err)
	}
	return PriceQuote{Price: p.Price, Name: p.Name}, nil
}
