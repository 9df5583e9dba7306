package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type storeInput struct {
	Title   string `form:"title"   validate:"required,between=3,80"`
	Address string `form:"address" validate:"required,between=5,200"`
}

type itemInput struct {
	Name     string  `form:"name"      validate:"required,between=1,80"`
	Price    float64 `form:"price"     validate:"required,gte=0.01"`
	Category string  `form:"category"  validate:"required,in=Produce,Deli,Bakery,Pantry,Frozen,Other"`
	PhotoURL string  `form:"photo_url" validate:"required,url"`
	Nickname string  `form:"nickname"  validate:"nullable,alpha_dash"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(&itemInput{
		Name:     "Bananas",
		Price:    0.59,
		Category: "Produce",
		PhotoURL: "https://example.com/bananas.jpg",
	})
	assert.Empty(t, errs)
}

func TestRequired(t *testing.T) {
	errs := Struct(&storeInput{})
	assert.Equal(t, "The title field is required.", errs["title"])
	assert.Equal(t, "The address field is required.", errs["address"])
}

func TestBetweenStringLength(t *testing.T) {
	errs := Struct(&storeInput{Title: "ab", Address: "12345"})
	assert.Contains(t, errs["title"], "between 3 and 80")
	assert.NotContains(t, errs, "address")

	long := make([]byte, 81)
	for i := range long {
		long[i] = 'x'
	}
	errs = Struct(&storeInput{Title: string(long), Address: "12 Maple St"})
	assert.Contains(t, errs["title"], "between 3 and 80")
}

func TestGteNumeric(t *testing.T) {
	in := itemInput{Name: "Peas", Price: 0.001, Category: "Frozen", PhotoURL: "https://x.com/p.jpg"}
	errs := Struct(&in)
	assert.Contains(t, errs["price"], "greater than or equal to 0.01")

	in.Price = 0.01
	assert.Empty(t, Struct(&in))
}

func TestInEnum(t *testing.T) {
	in := itemInput{Name: "Peas", Price: 1, Category: "Electronics", PhotoURL: "https://x.com/p.jpg"}
	errs := Struct(&in)
	assert.Equal(t, "The selected category is invalid.", errs["category"])

	for _, cat := range []string{"Produce", "Deli", "Bakery", "Pantry", "Frozen", "Other"} {
		in.Category = cat
		assert.Empty(t, Struct(&in), "category %s should be accepted", cat)
	}
}

func TestURLRule(t *testing.T) {
	in := itemInput{Name: "Peas", Price: 1, Category: "Frozen", PhotoURL: "not-a-url"}
	errs := Struct(&in)
	assert.Equal(t, "The photo_url must be a valid URL.", errs["photo_url"])

	in.PhotoURL = "ftp://example.com/p.jpg"
	assert.NotEmpty(t, Struct(&in)["photo_url"], "non-http scheme rejected")
}

func TestNullableSkipsWhenEmpty(t *testing.T) {
	in := itemInput{Name: "Peas", Price: 1, Category: "Frozen", PhotoURL: "https://x.com/p.jpg"}
	assert.Empty(t, Struct(&in))

	in.Nickname = "has spaces!"
	assert.NotEmpty(t, Struct(&in)["nickname"])
}

func TestFirstFailingRuleWins(t *testing.T) {
	errs := Struct(&storeInput{Title: "", Address: ""})
	// required fires before between
	assert.Equal(t, "The title field is required.", errs["title"])
}

func TestSplitRulesKeepsEnumParams(t *testing.T) {
	rules := splitRules("required,in=Produce,Deli,Bakery,Pantry,Frozen,Other")
	assert.Equal(t, []string{"required", "in=Produce,Deli,Bakery,Pantry,Frozen,Other"}, rules)

	rules = splitRules("required,between=3,80")
	assert.Equal(t, []string{"required", "between=3,80"}, rules)

	rules = splitRules("nullable,in=a,b,max=5")
	assert.Equal(t, []string{"nullable", "in=a,b", "max=5"}, rules)
}
