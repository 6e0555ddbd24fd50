package listquery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/pkg/ptr"
)

type plan struct {
	name   string
	status string
	price  float64
	date   time.Time
}

func samplePlans() []plan {
	day := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	return []plan{
		{name: "Basic", status: "active", price: 100, date: day},
		{name: "Basic Plus", status: "inactive", price: 150, date: day.AddDate(0, 0, 1)},
		{name: "Premium", status: "active", price: 300, date: day},
		{name: "Premium Max", status: "active", price: 500, date: day.AddDate(0, 0, 2)},
		{name: "Fleet", status: "active", price: 900, date: day},
	}
}

func TestQuery_Paginates(t *testing.T) {
	q := New[plan](2).SetPage(2)

	page := q.Apply(samplePlans())

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Premium", page.Items[0].name)
	assert.Equal(t, "Premium Max", page.Items[1].name)
}

func TestQuery_FilterChangeResetsPage(t *testing.T) {
	q := New[plan](2).SetPage(3)
	require.Equal(t, 3, q.CurrentPage())

	q.Filter("search", Contains("premium", func(p plan) string { return p.name }))

	assert.Equal(t, 1, q.CurrentPage())
	page := q.Apply(samplePlans())
	assert.Equal(t, 2, page.TotalItems)
}

func TestQuery_ChainsPredicates(t *testing.T) {
	status := "active"
	q := New[plan](10).
		Filter("status", Equals(&status, func(p plan) string { return p.status })).
		Filter("price", InRange(ptr.Ptr(150.0), ptr.Ptr(600.0), func(p plan) float64 { return p.price }))

	page := q.Apply(samplePlans())

	require.Len(t, page.Items, 2)
	assert.Equal(t, "Premium", page.Items[0].name)
	assert.Equal(t, "Premium Max", page.Items[1].name)
}

func TestQuery_SameDay(t *testing.T) {
	day := time.Date(2026, 10, 1, 23, 0, 0, 0, time.UTC)
	q := New[plan](10).Filter("date", SameDay(&day, func(p plan) time.Time { return p.date }))

	page := q.Apply(samplePlans())

	assert.Equal(t, 3, page.TotalItems)
}

func TestQuery_NilPredicateRemovesFilter(t *testing.T) {
	q := New[plan](10).Filter("search", Contains("fleet", func(p plan) string { return p.name }))
	require.Equal(t, 1, q.Apply(samplePlans()).TotalItems)

	q.Filter("search", Contains("   ", func(p plan) string { return p.name }))

	assert.Equal(t, 5, q.Apply(samplePlans()).TotalItems)
}

func TestQuery_ClampsPagePastEnd(t *testing.T) {
	q := New[plan](2).SetPage(9)

	page := q.Apply(samplePlans())

	assert.Equal(t, 3, page.Page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Fleet", page.Items[0].name)
}

func TestQuery_EmptyList(t *testing.T) {
	page := New[plan](0).Apply(nil)

	assert.Equal(t, DefaultPageSize, page.PageSize)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Items)
}
