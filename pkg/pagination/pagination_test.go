package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

var sorts = []string{"name", "created_at"}

func TestParse_Defaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/tax-rules", nil)

	p := Parse(c, sorts, "created_at")
	assert.Equal(t, Params{Page: 1, Limit: 20, Offset: 0, Sort: "created_at", Order: "desc"}, p)
	assert.Equal(t, "created_at desc", p.OrderClause())
}

func TestParse_QueryValues(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/tax-rules?page=3&limit=10&sort=name&order=ASC", nil)

	p := Parse(c, sorts, "created_at")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 20, p.Offset)
	assert.Equal(t, "name asc", p.OrderClause())
}

func TestNew_Clamps(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		sort, order string
		want        Params
	}{
		{"zero page", 0, 5, "", "", Params{Page: 1, Limit: 5, Offset: 0, Sort: "created_at", Order: "desc"}},
		{"limit too large", 2, 1000, "", "", Params{Page: 2, Limit: 100, Offset: 100, Sort: "created_at", Order: "desc"}},
		{"negative limit", 1, -4, "", "", Params{Page: 1, Limit: 20, Offset: 0, Sort: "created_at", Order: "desc"}},
		{"unknown sort", 1, 20, "rate; DROP TABLE tax_rules", "asc", Params{Page: 1, Limit: 20, Offset: 0, Sort: "created_at", Order: "asc"}},
		{"garbage order", 1, 20, "name", "sideways", Params{Page: 1, Limit: 20, Offset: 0, Sort: "name", Order: "desc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.page, tt.limit, tt.sort, tt.order, sorts, "created_at"))
		})
	}
}
