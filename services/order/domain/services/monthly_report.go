package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// monthNames is fixed so labels never depend on the process locale.
var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthLabel renders "<Month> <Year>", e.g. "March 2025".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

// OrderSummary is one order row inside a monthly group.
type OrderSummary struct {
	ID           int64
	CustomerName string
	OrderDate    time.Time
	TotalAmount  decimal.Decimal
	TotalItems   int
	Notes        string
}

// MonthlyGroup aggregates the orders placed in one calendar month.
type MonthlyGroup struct {
	Year         int
	MonthNumber  int
	Label        string
	OrderCount   int
	TotalRevenue decimal.Decimal
	TotalItems   int
	Orders       []OrderSummary
}

type monthKey struct {
	year  int
	month time.Month
}

// GroupByMonth partitions orders by the calendar month of OrderDate in loc.
// Groups come newest month first; orders inside a group newest first, ties
// broken by descending ID. A nil loc means UTC.
func GroupByMonth(orders []*models.Order, loc *time.Location) []MonthlyGroup {
	if loc == nil {
		loc = time.UTC
	}

	index := make(map[monthKey]*MonthlyGroup)
	for _, o := range orders {
		local := o.OrderDate.In(loc)
		key := monthKey{year: local.Year(), month: local.Month()}

		g, ok := index[key]
		if !ok {
			g = &MonthlyGroup{
				Year:         key.year,
				MonthNumber:  int(key.month),
				Label:        MonthLabel(key.year, key.month),
				TotalRevenue: decimal.Zero,
			}
			index[key] = g
		}

		items := o.TotalItems()
		g.OrderCount++
		g.TotalRevenue = g.TotalRevenue.Add(o.TotalAmount)
		g.TotalItems += items
		g.Orders = append(g.Orders, OrderSummary{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			OrderDate:    o.OrderDate,
			TotalAmount:  o.TotalAmount,
			TotalItems:   items,
			Notes:        o.Notes,
		})
	}

	groups := make([]MonthlyGroup, 0, len(index))
	for _, g := range index {
		sort.SliceStable(g.Orders, func(i, j int) bool {
			a, b := g.Orders[i], g.Orders[j]
			if !a.OrderDate.Equal(b.OrderDate) {
				return a.OrderDate.After(b.OrderDate)
			}
			return a.ID > b.ID
		})
		groups = append(groups, *g)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Year != groups[j].Year {
			return groups[i].Year > groups[j].Year
		}
		return groups[i].MonthNumber > groups[j].MonthNumber
	})
	return groups
}
