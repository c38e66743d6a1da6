package schemas_test

import (
	"strings"
	"testing"

	"platzistore/internal/schemas"

	"github.com/stretchr/testify/assert"
)

func validProduct() map[string]interface{} {
	return map[string]interface{}{
		"image":       "https://arepa.s3.amazonaws.com/camiseta.png",
		"title":       "Camiseta",
		"price":       25.0,
		"description": "bla bla bla bla bla",
	}
}

func TestProductIDSchema(t *testing.T) {
	valid := []string{"5e8f8f8f8f8f8f8f8f8f8f8f", "ABCDEF0123456789abcdef01"}
	for _, id := range valid {
		assert.Empty(t, schemas.ProductIDSchema.Check(map[string]interface{}{"id": id}), id)
	}

	invalid := []string{
		"",
		"123",
		"5e8f8f8f8f8f8f8f8f8f8f8",   // 23 chars
		"5e8f8f8f8f8f8f8f8f8f8f8f0", // 25 chars
		"0x8f8f8f8f8f8f8f8f8f8f8f",
		"zzzzzzzzzzzzzzzzzzzzzzzz",
		"5e8f8f8f-8f8f-8f8f-8f8f8f",
	}
	for _, id := range invalid {
		assert.NotEmpty(t, schemas.ProductIDSchema.Check(map[string]interface{}{"id": id}), id)
	}
}

func TestCreateProductSchema_Valid(t *testing.T) {
	assert.Empty(t, schemas.CreateProductSchema.Check(validProduct()))

	withTags := validProduct()
	withTags["tags"] = []interface{}{"clothes", "summer"}
	assert.Empty(t, schemas.CreateProductSchema.Check(withTags))

	free := validProduct()
	free["price"] = 0.0
	assert.Empty(t, schemas.CreateProductSchema.Check(free))
}

func TestCreateProductSchema_MissingFields(t *testing.T) {
	for _, field := range []string{"image", "title", "price", "description"} {
		body := validProduct()
		delete(body, field)

		violations := schemas.CreateProductSchema.Check(body)
		assert.Equal(t, []string{"Field '" + field + "' is required"}, violations, field)
	}
}

func TestCreateProductSchema_Constraints(t *testing.T) {
	cases := map[string]struct {
		field string
		value interface{}
	}{
		"image not a url":        {"image", "not a url"},
		"title too long":         {"title", strings.Repeat("x", 81)},
		"title empty":            {"title", ""},
		"description too long":   {"description", strings.Repeat("x", 301)},
		"price as bool":          {"price", true},
		"title as number":        {"title", 12.0},
		"tags with non string":   {"tags", []interface{}{"ok", 3.0}},
		"tags with empty string": {"tags", []interface{}{""}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			body := validProduct()
			body[tc.field] = tc.value
			violations := schemas.CreateProductSchema.Check(body)
			if assert.Len(t, violations, 1) {
				assert.Contains(t, violations[0], "'"+tc.field+"'")
			}
		})
	}
}

func TestCreateProductSchema_TitleLengthCountsRunes(t *testing.T) {
	body := validProduct()
	body["title"] = strings.Repeat("ñ", 80)
	assert.Empty(t, schemas.CreateProductSchema.Check(body))
}

func TestSchemaRejectsUnknownFields(t *testing.T) {
	body := validProduct()
	body["id"] = "5e8f8f8f8f8f8f8f8f8f8f8f"
	body["stock"] = 3.0

	violations := schemas.CreateProductSchema.Check(body)
	assert.Equal(t, []string{"Field 'id' is not allowed", "Field 'stock' is not allowed"}, violations)
}

func TestUpdateProductSchema_AnySubset(t *testing.T) {
	fields := []string{"image", "title", "price", "description"}
	full := validProduct()

	for mask := 0; mask < 1<<len(fields); mask++ {
		body := map[string]interface{}{}
		for i, f := range fields {
			if mask&(1<<i) != 0 {
				body[f] = full[f]
			}
		}
		assert.Empty(t, schemas.UpdateProductSchema.Check(body), "subset mask %b", mask)
	}
}

func TestUpdateProductSchema_StillChecksConstraints(t *testing.T) {
	violations := schemas.UpdateProductSchema.Check(map[string]interface{}{"title": strings.Repeat("x", 81)})
	assert.Equal(t, []string{"Field 'title' failed on the 'max' tag"}, violations)
}

func TestProductQuerySchema(t *testing.T) {
	check := func(data map[string]interface{}) []string {
		return schemas.ProductQuerySchema.CheckSource(schemas.Query, data)
	}
	assert.Empty(t, check(map[string]interface{}{}))
	assert.Empty(t, check(map[string]interface{}{"tags": "x"}))
	assert.Empty(t, check(map[string]interface{}{"tags": []string{"x", "y,z"}}))
	assert.NotEmpty(t, check(map[string]interface{}{"page": "2"}))
}

func TestNumberCoercedFromQueryString(t *testing.T) {
	s := schemas.Field("price", schemas.Num("gte=0").Require())
	for _, source := range []schemas.Source{schemas.Params, schemas.Query} {
		assert.Empty(t, s.CheckSource(source, map[string]interface{}{"price": "12.5"}), source)
		assert.Equal(t, []string{"Field 'price' must be a number"}, s.CheckSource(source, map[string]interface{}{"price": "abc"}), source)
		assert.Equal(t, []string{"Field 'price' failed on the 'gte' tag"}, s.CheckSource(source, map[string]interface{}{"price": "-1"}), source)
	}
}

func TestBodyStringsAreNotCoerced(t *testing.T) {
	price := validProduct()
	price["price"] = "12"
	assert.Equal(t, []string{"Field 'price' must be a number"}, schemas.CreateProductSchema.Check(price))
	assert.Equal(t, []string{"Field 'price' must be a number"}, schemas.CreateProductSchema.CheckSource(schemas.Body, price))

	tags := validProduct()
	tags["tags"] = "a,b"
	assert.Equal(t, []string{"Field 'tags' must be a list of strings"}, schemas.CreateProductSchema.Check(tags))

	assert.Equal(t, []string{"Field 'price' must be a number"},
		schemas.UpdateProductSchema.Check(map[string]interface{}{"price": "12"}))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, schemas.SplitList([]string{"a, b", " ", "c"}))
	assert.Empty(t, schemas.SplitList(nil))
}

func TestSignUpSchema(t *testing.T) {
	ok := map[string]interface{}{"name": "Ana", "email": "ana@example.com", "password": "supersecret"}
	assert.Empty(t, schemas.SignUpSchema.Check(ok))

	bad := map[string]interface{}{"name": "Ana", "email": "nope", "password": "short"}
	assert.Equal(t, []string{
		"Field 'email' failed on the 'email' tag",
		"Field 'password' failed on the 'min' tag",
	}, schemas.SignUpSchema.Check(bad))
}
