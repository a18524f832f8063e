package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type productInput struct {
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	SKU           string  `json:"sku" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	DiscountPrice float64 `json:"discountPrice" validate:"required,gt=0"`
	Stock         int     `json:"stock" validate:"gte=0"`
	Metal         string  `json:"metal" validate:"required,in=silver,gold,platinum,rose gold"`
	Email         string  `json:"email" validate:"nullable,email"`
}

func validInput() productInput {
	return productInput{
		Name:          "Test Ring",
		SKU:           "KS-001",
		Price:         200,
		DiscountPrice: 150,
		Stock:         5,
		Metal:         "silver",
	}
}

func TestStructValid(t *testing.T) {
	errs := Struct(validInput())
	assert.False(t, HasErrors(errs))
}

func TestRequired(t *testing.T) {
	in := validInput()
	in.SKU = ""
	errs := Struct(in)
	assert.Contains(t, errs, "sku")
}

func TestMinLength(t *testing.T) {
	in := validInput()
	in.Name = "X"
	errs := Struct(in)
	assert.Equal(t, "The name must be at least 2 characters.", errs["name"])
}

func TestGreaterThan(t *testing.T) {
	in := validInput()
	in.Price = 0
	errs := Struct(in)
	// required fires first for a zero value
	assert.Contains(t, errs, "price")

	in = validInput()
	in.Price = -10
	errs = Struct(in)
	assert.Equal(t, "The price must be greater than 0.", errs["price"])
}

func TestInWithMultiValueParam(t *testing.T) {
	in := validInput()
	in.Metal = "rose gold"
	assert.False(t, HasErrors(Struct(in)))

	in.Metal = "copper"
	errs := Struct(in)
	assert.Equal(t, "The selected metal is invalid.", errs["metal"])
}

func TestNullableSkipsEmpty(t *testing.T) {
	in := validInput()
	assert.False(t, HasErrors(Struct(in)))

	in.Email = "not-an-email"
	errs := Struct(in)
	assert.Contains(t, errs, "email")

	in.Email = "a@b.co"
	assert.False(t, HasErrors(Struct(in)))
}

func TestSplitRules(t *testing.T) {
	rules := splitRules("required,in=silver,gold,platinum,rose gold,max=100")
	assert.Equal(t, []string{"required", "in=silver,gold,platinum,rose gold", "max=100"}, rules)
}

func TestStructPointer(t *testing.T) {
	in := validInput()
	in.Name = ""
	errs := Struct(&in)
	assert.Contains(t, errs, "name")
}

type nestedInput struct {
	Category struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"category" validate:"required"`
}

func TestRequiredStructField(t *testing.T) {
	var in nestedInput
	errs := Struct(in)
	assert.Contains(t, errs, "category")

	in.Category.Name = "Rings"
	assert.False(t, HasErrors(Struct(in)))
}
