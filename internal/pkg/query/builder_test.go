package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name", "category").
		Build()

	assert.Equal(t, "SELECT product_id, name, category FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("products").Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("users").
		Select("user_id", "name").
		Where(Eq("role", "ADMIN")).
		Build()

	assert.Equal(t, "SELECT user_id, name FROM users WHERE role = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "ADMIN",
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("users").
		Select("user_id", "name").
		Where(Eq("email", "customer@example.com")).
		Where(Ne("user_id", "abc")).
		Build()

	assert.Equal(t, "SELECT user_id, name FROM users WHERE email = @p0 AND user_id != @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "customer@example.com",
		"p1": "abc",
	}, stmt.Params)
}

func TestBuilder_ContainsFold(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(ContainsFold("name", "Milk")).
		OrderBy("name", Asc).
		Build()

	assert.Equal(t,
		"SELECT product_id, name FROM products WHERE LOWER(name) LIKE CONCAT('%', LOWER(@p0), '%') ORDER BY name ASC",
		stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "Milk",
	}, stmt.Params)
}

func TestBuilder_In(t *testing.T) {
	stmt := From("order_items").
		Select("order_id", "product_name").
		Where(In("order_id", []string{"o1", "o2"})).
		Build()

	assert.Equal(t,
		"SELECT order_id, product_name FROM order_items WHERE order_id IN UNNEST(@p0)",
		stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": []string{"o1", "o2"},
	}, stmt.Params)
}

func TestBuilder_OrderByDesc(t *testing.T) {
	stmt := From("orders").
		Select("order_id").
		OrderBy("placed_at", Desc).
		Build()

	assert.Equal(t, "SELECT order_id FROM orders ORDER BY placed_at DESC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_LimitAndOffset(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Limit(10).
		Offset(20).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit":  int64(10),
		"offset": int64(20),
	}, stmt.Params)
}

func TestBuilder_Count(t *testing.T) {
	stmt := From("orders").
		Select("order_id").
		Where(Eq("user_id", "u1")).
		OrderBy("placed_at", Desc).
		Limit(10).
		Count().
		Build()

	assert.Equal(t, "SELECT COUNT(*) FROM orders WHERE user_id = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "u1",
	}, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("product_id")
	withFilter := base.Where(Eq("category", "produce"))

	assert.Equal(t, "SELECT product_id FROM products", base.Build().SQL)
	assert.Equal(t, "SELECT product_id FROM products WHERE category = @p0", withFilter.Build().SQL)
}
