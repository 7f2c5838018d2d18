package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("role", "ADMIN") generates "role = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for equality comparison.
func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// neCondition implements inequality comparison (field != value).
type neCondition struct {
	field string
	value interface{}
}

// Ne creates a WHERE condition for inequality comparison.
// Example: Ne("user_id", id) generates "user_id != @p0"
func Ne(field string, value interface{}) Condition {
	return &neCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for inequality comparison.
func (c *neCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s != @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// containsCondition implements a case-insensitive substring match.
type containsCondition struct {
	field string
	value string
}

// ContainsFold creates a WHERE condition matching rows whose field contains
// the given substring, case-insensitively.
// Example: ContainsFold("name", "milk") generates
// "LOWER(name) LIKE CONCAT('%', LOWER(@p0), '%')"
func ContainsFold(field, value string) Condition {
	return &containsCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for case-insensitive substring match.
func (c *containsCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("LOWER(%s) LIKE CONCAT('%%', LOWER(@%s), '%%')", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// inCondition implements membership against a list of values.
type inCondition struct {
	field  string
	values []string
}

// In creates a WHERE condition matching rows whose field equals any of the
// given values.
// Example: In("order_id", ids) generates "order_id IN UNNEST(@p0)"
func In(field string, values []string) Condition {
	return &inCondition{
		field:  field,
		values: values,
	}
}

// SQL generates the SQL fragment for list membership.
func (c *inCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s IN UNNEST(@%s)", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.values,
	}
	return sql, params
}

// isNullCondition implements IS NULL comparison.
type isNullCondition struct {
	field string
}

// IsNull creates a WHERE condition for NULL checks.
// Example: IsNull("address") generates "address IS NULL"
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

// SQL generates the SQL fragment for IS NULL comparison.
func (c *isNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	sql := fmt.Sprintf("%s IS NULL", c.field)
	return sql, map[string]interface{}{}
}
