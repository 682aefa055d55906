package dynamodb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubgraph/application/ports"
	"clubgraph/tests/fixtures"
)

func stringValues(expr expression.Expression) []string {
	var out []string
	for _, v := range expr.Values() {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			out = append(out, s.Value)
		}
	}
	return out
}

func attributeNames(expr expression.Expression) []string {
	var out []string
	for _, name := range expr.Names() {
		out = append(out, name)
	}
	return out
}

func buildExpr(t *testing.T, filter ports.ClubFilter) expression.Expression {
	t.Helper()
	cond := buildClubFilterExpression(filter)
	require.NotNil(t, cond)
	expr, err := expression.NewBuilder().WithFilter(*cond).Build()
	require.NoError(t, err)
	return expr
}

func TestNewClubItemSearchAttributes(t *testing.T) {
	club := fixtures.NewClubBuilder().
		WithName("Arsenal").
		WithCity("London").
		WithCountry("England").
		Build()

	item := newClubItem(club)

	assert.Equal(t, "Arsenal", item.Name)
	assert.Equal(t, "arsenal", item.SearchName)
	assert.Equal(t, "London", item.City)
	assert.Equal(t, "london", item.SearchCity)
	assert.Equal(t, "England", item.Country)
	assert.Equal(t, "england", item.SearchCountry)
}

func TestClubFilterExpressionCountryFoldsCase(t *testing.T) {
	// country=England and country=england derive the same cache key,
	// so both must produce the same store query.
	upper := buildExpr(t, ports.ClubFilter{Country: "England"})
	lower := buildExpr(t, ports.ClubFilter{Country: "england"})

	assert.Contains(t, attributeNames(upper), "SearchCountry")
	assert.NotContains(t, attributeNames(upper), "Country")
	assert.Contains(t, stringValues(upper), "england")
	assert.NotContains(t, stringValues(upper), "England")
	assert.Equal(t, stringValues(upper), stringValues(lower))
}

func TestClubFilterExpressionCityFoldsCase(t *testing.T) {
	expr := buildExpr(t, ports.ClubFilter{City: "London"})

	assert.Contains(t, attributeNames(expr), "SearchCity")
	assert.Contains(t, stringValues(expr), "london")
}

func TestClubFilterExpressionEmptyFilter(t *testing.T) {
	assert.Nil(t, buildClubFilterExpression(ports.ClubFilter{}))
}
