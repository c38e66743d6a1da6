package schemas

const tagRule = "dive,min=1,max=40"

// ProductIDSchema validates the :id route param.
var ProductIDSchema = Field("id", Str("objectid").Require())

// CreateProductSchema requires every content field.
var CreateProductSchema = Schema{
	"image":       Str("url").Require(),
	"title":       Str("min=1,max=80").Require(),
	"price":       Num("").Require(),
	"description": Str("min=1,max=300").Require(),
	"tags":        List(tagRule),
}

// UpdateProductSchema accepts any subset of the content fields.
var UpdateProductSchema = Schema{
	"image":       Str("url"),
	"title":       Str("min=1,max=80"),
	"price":       Num(""),
	"description": Str("min=1,max=300"),
	"tags":        List(tagRule),
}

// ProductQuerySchema validates the listing query string.
var ProductQuerySchema = Schema{
	"tags": List(tagRule),
}
